// Package audio plays word pronunciation clips through whatever command-line
// player the host system offers. Playback is best-effort: a missing player or
// a missing clip disables replay for the session but never interrupts it.
package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"
)

// Player plays a named pronunciation clip.
type Player interface {
	Play(ctx context.Context, clip string) error
}

// NopPlayer silently succeeds. Used in tests and when no system player is
// available.
type NopPlayer struct{}

func (NopPlayer) Play(context.Context, string) error { return nil }

// playerCommands are tried in order; the first one on PATH wins.
var playerCommands = []string{"afplay", "paplay", "aplay", "mpv"}

// SystemPlayer shells out to a local audio command for each clip.
type SystemPlayer struct {
	command string
	dir     string
	log     *zap.Logger
}

// NewSystemPlayer locates a usable player binary and the clip directory. When
// neither is available it returns a NopPlayer so callers never need a nil
// check.
func NewSystemPlayer(clipDir string, log *zap.Logger) Player {
	if log == nil {
		log = zap.NewNop()
	}
	for _, cmd := range playerCommands {
		if _, err := exec.LookPath(cmd); err == nil {
			return &SystemPlayer{command: cmd, dir: clipDir, log: log}
		}
	}
	log.Info("no audio player found, sound disabled")
	return NopPlayer{}
}

// Play runs the system player on the clip. The clip name is resolved to
// <dir>/<clip>.mp3; a missing file is an error the caller may use to disable
// the replay control.
func (p *SystemPlayer) Play(ctx context.Context, clip string) error {
	path := filepath.Join(p.dir, clip+".mp3")
	if _, err := os.Stat(path); err != nil {
		p.log.Warn("audio clip missing", zap.String("clip", clip))
		return fmt.Errorf("audio clip %q: %w", clip, err)
	}

	if err := exec.CommandContext(ctx, p.command, path).Run(); err != nil {
		p.log.Warn("audio playback failed", zap.String("clip", clip), zap.Error(err))
		return fmt.Errorf("play %q: %w", clip, err)
	}
	return nil
}
