package onboarding

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/karimf/wortspatz/internal/profile"
	"github.com/karimf/wortspatz/internal/store"
)

// ValidationError reports the first missing or invalid onboarding field,
// checked in order: name, level, avatar.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// PersistenceError wraps a save failure during profile creation. It is
// surfaced to the caller so the UI can offer a retry instead of the gate
// deciding to log-and-continue.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist profile: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Gate decides, at application start and on the onboarding screen, whether a
// profile exists and routes accordingly. It is the only place a profile is
// ever created.
type Gate struct {
	profiles store.ProfileRepo
	log      *zap.Logger

	resolved   bool
	hasProfile bool
}

// NewGate creates a Gate over the given profile repository.
func NewGate(profiles store.ProfileRepo, log *zap.Logger) *Gate {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gate{profiles: profiles, log: log}
}

// Resolve loads the stored profile and returns it together with the routing
// decision: a non-nil profile routes to the main app, nil routes to
// onboarding. A storage failure also routes to onboarding but is returned so
// the caller can tell it apart from a genuine absence.
func (g *Gate) Resolve(ctx context.Context) (*profile.Profile, error) {
	p, err := g.profiles.Load(ctx)
	g.resolved = true
	g.hasProfile = err == nil && p != nil

	if err != nil {
		g.log.Error("profile load failed, routing to onboarding", zap.Error(err))
		return nil, err
	}
	return p, nil
}

// Resolved reports whether Resolve has run at least once.
func (g *Gate) Resolved() bool {
	return g.resolved
}

// HasProfile reports the last routing decision. Only meaningful after
// Resolve.
func (g *Gate) HasProfile() bool {
	return g.hasProfile
}

// CreateProfile validates the submitted fields, constructs the initial
// profile and persists it. On success the gate is resolved with a profile.
func (g *Gate) CreateProfile(ctx context.Context, name string, level profile.Level, avatarKey string) (*profile.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	if !level.Valid() {
		return nil, &ValidationError{Field: "level"}
	}
	if !profile.ValidAvatar(avatarKey) {
		return nil, &ValidationError{Field: "avatar"}
	}

	p := profile.New(name, level, avatarKey)
	if err := g.profiles.Save(ctx, p); err != nil {
		g.log.Error("profile creation failed", zap.Error(err))
		return nil, &PersistenceError{Err: err}
	}

	g.resolved = true
	g.hasProfile = true
	g.log.Info("profile created", zap.String("level", string(level)))
	return p, nil
}
