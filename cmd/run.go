package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/karimf/wortspatz/internal/app"
	"github.com/karimf/wortspatz/internal/audio"
	"github.com/karimf/wortspatz/internal/content"
	"github.com/karimf/wortspatz/internal/ledger"
	"github.com/karimf/wortspatz/internal/onboarding"
	"github.com/karimf/wortspatz/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	log := newLogger(dbPath)
	defer log.Sync() //nolint:errcheck

	st, err := store.Open(dbPath, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	catalog, err := content.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	profiles := st.ProfileRepo()
	events := st.StarEventRepo()

	opts := app.Options{
		Gate:    onboarding.NewGate(profiles, log.Named("gate")),
		Ledger:  ledger.New(profiles, events, log.Named("ledger")),
		Catalog: catalog,
		Player:  audio.NewSystemPlayer(filepath.Join(filepath.Dir(dbPath), "audio"), log.Named("audio")),
		Logger:  log,
	}

	return app.Run(opts)
}

// newLogger writes structured logs to a file next to the database. Logging to
// stderr would corrupt the TUI, and a broken logger is not worth refusing to
// start over.
func newLogger(dbPath string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(filepath.Dir(dbPath), "wortspatz.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
