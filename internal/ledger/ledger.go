package ledger

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/karimf/wortspatz/internal/profile"
	"github.com/karimf/wortspatz/internal/store"
)

// ErrNoProfile is returned when a reward operation runs with no existing
// profile. It must propagate so callers can tell "no profile" from a store
// failure instead of silently dropping the write.
var ErrNoProfile = errors.New("no profile exists")

// AwardMeta tags a star award for the audit log.
type AwardMeta struct {
	SessionID string
	Activity  string
	Category  string
	Reason    string
}

// Ledger is the single auditable mutation path for reward counters. Every
// screen that awards stars goes through AwardStars; nothing else writes the
// profile's stars field.
type Ledger struct {
	profiles store.ProfileRepo
	events   store.StarEventRepo
	log      *zap.Logger
}

// New creates a Ledger over the given repositories. events may be nil, in
// which case awards are applied without audit records.
func New(profiles store.ProfileRepo, events store.StarEventRepo, log *zap.Logger) *Ledger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ledger{profiles: profiles, events: events, log: log}
}

// AwardStars adds count stars to the stored profile and returns the updated
// record. Returns ErrNoProfile when no profile exists and propagates storage
// failures unchanged.
func (l *Ledger) AwardStars(ctx context.Context, count int, meta AwardMeta) (*profile.Profile, error) {
	if count <= 0 {
		return nil, fmt.Errorf("award count must be positive, got %d", count)
	}

	p, err := l.profiles.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile for award: %w", err)
	}
	if p == nil {
		return nil, ErrNoProfile
	}

	p.Stars += count
	if err := l.profiles.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("persist award: %w", err)
	}

	if l.events != nil {
		ev := store.StarEventData{
			SessionID: meta.SessionID,
			Activity:  meta.Activity,
			Category:  meta.Category,
			Stars:     count,
			Reason:    meta.Reason,
		}
		if err := l.events.Append(ctx, ev); err != nil {
			// The profile write already landed; a missing audit row is not
			// worth failing the award over.
			l.log.Warn("star event append failed", zap.Error(err))
		}
	}

	l.log.Info("stars awarded",
		zap.Int("count", count),
		zap.Int("total", p.Stars),
		zap.String("activity", meta.Activity),
	)
	return p, nil
}
