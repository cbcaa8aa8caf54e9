package onboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karimf/wortspatz/internal/profile"
	"github.com/karimf/wortspatz/internal/store"
)

type mockProfileRepo struct {
	p       *profile.Profile
	loadErr error
	saveErr error
}

func (m *mockProfileRepo) Load(_ context.Context) (*profile.Profile, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.p, nil
}

func (m *mockProfileRepo) Save(_ context.Context, p *profile.Profile) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.p = p
	return nil
}

func (m *mockProfileRepo) Clear(_ context.Context) error {
	m.p = nil
	return nil
}

func TestResolveNoProfileRoutesToOnboarding(t *testing.T) {
	g := NewGate(&mockProfileRepo{}, nil)

	p, err := g.Resolve(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.True(t, g.Resolved())
	assert.False(t, g.HasProfile())
}

func TestResolveAnyProfileRoutesToMainApp(t *testing.T) {
	// Routing depends only on presence, not on field contents.
	malformed := &profile.Profile{Name: "", AvatarKey: "nope", Stars: -1}
	g := NewGate(&mockProfileRepo{p: malformed}, nil)

	p, err := g.Resolve(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.True(t, g.HasProfile())
}

func TestResolveStorageErrorRoutesToOnboardingButSurfaces(t *testing.T) {
	serr := &store.StorageError{Op: "decode", Err: errors.New("bad json")}
	g := NewGate(&mockProfileRepo{loadErr: serr}, nil)

	p, err := g.Resolve(context.Background())
	assert.Nil(t, p)
	assert.False(t, g.HasProfile())

	// The failure must stay distinguishable from a genuine absence.
	var got *store.StorageError
	require.True(t, errors.As(err, &got))
}

func TestCreateProfileValidationOrder(t *testing.T) {
	g := NewGate(&mockProfileRepo{}, nil)
	ctx := context.Background()

	tests := []struct {
		name      string
		inName    string
		level     profile.Level
		avatarKey string
		wantField string
	}{
		{"all missing reports name first", "", "", "", "name"},
		{"whitespace name is missing", "   ", profile.LevelBeginner, "avatar1", "name"},
		{"missing level", "Layla", "", "avatar1", "level"},
		{"unknown level", "Layla", "expert", "avatar1", "level"},
		{"missing avatar", "Layla", profile.LevelBeginner, "", "avatar"},
		{"unknown avatar", "Layla", profile.LevelBeginner, "avatar99", "avatar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.CreateProfile(ctx, tt.inName, tt.level, tt.avatarKey)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "want ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestCreateProfilePersistsInitialRecord(t *testing.T) {
	repo := &mockProfileRepo{}
	g := NewGate(repo, nil)

	p, err := g.CreateProfile(context.Background(), "Layla", profile.LevelBeginner, "avatar3")
	require.NoError(t, err)

	assert.Equal(t, "Layla", p.Name)
	assert.Equal(t, profile.LevelBeginner, p.Level)
	assert.Equal(t, "avatar3", p.AvatarKey)
	assert.Equal(t, 0, p.Stars)
	assert.Equal(t, 0, p.Badges)
	assert.Empty(t, p.Progress)

	require.NotNil(t, repo.p, "profile must be persisted")
	assert.True(t, g.HasProfile())
}

func TestCreateProfileTrimsName(t *testing.T) {
	g := NewGate(&mockProfileRepo{}, nil)

	p, err := g.CreateProfile(context.Background(), "  Layla ", profile.LevelBeginner, "avatar3")
	require.NoError(t, err)
	assert.Equal(t, "Layla", p.Name)
}

func TestCreateProfileSaveFailureSurfacesPersistenceError(t *testing.T) {
	repo := &mockProfileRepo{saveErr: errors.New("disk full")}
	g := NewGate(repo, nil)

	_, err := g.CreateProfile(context.Background(), "Layla", profile.LevelBeginner, "avatar3")
	var perr *PersistenceError
	require.True(t, errors.As(err, &perr))
	assert.False(t, g.HasProfile())
}

func TestFreshInstallEndToEnd(t *testing.T) {
	repo := &mockProfileRepo{}
	g := NewGate(repo, nil)
	ctx := context.Background()

	// Fresh install: no profile, gate routes to onboarding.
	p, err := g.Resolve(ctx)
	require.NoError(t, err)
	require.Nil(t, p)

	// Learner completes onboarding.
	_, err = g.CreateProfile(ctx, "Layla", profile.LevelBeginner, "avatar3")
	require.NoError(t, err)

	// Subsequent resolve returns the exact record and routes to the app.
	p, err = g.Resolve(ctx)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Layla", p.Name)
	assert.True(t, g.HasProfile())
}
