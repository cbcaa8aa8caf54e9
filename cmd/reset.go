package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karimf/wortspatz/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the learner profile",
	Long:  "Deletes the stored profile so the app starts with onboarding again. The star event log is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath, nil)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.ProfileRepo().Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear profile: %w", err)
		}
		fmt.Println("Profile deleted.")
		return nil
	},
}
