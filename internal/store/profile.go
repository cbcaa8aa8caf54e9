package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/karimf/wortspatz/internal/profile"
)

// StorageError wraps a read/write failure on the persistence layer. A load
// failure routes to onboarding the same way a genuine absence does, but the
// two must stay distinguishable for the caller and in logs.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("profile storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ProfileRepo manages the single persisted learner profile. The record is
// always read and written whole; field-level merging is the caller's job.
type ProfileRepo interface {
	// Load returns the profile, or (nil, nil) when none has been saved.
	// Read and decode failures return a *StorageError.
	Load(ctx context.Context) (*profile.Profile, error)

	// Save overwrites the stored profile with p in one atomic write.
	Save(ctx context.Context, p *profile.Profile) error

	// Clear removes the persisted profile. No-op when none exists.
	Clear(ctx context.Context) error
}

// profileRepo implements ProfileRepo over the single-row profile table.
type profileRepo struct {
	db  *sql.DB
	log *zap.Logger
}

func (r *profileRepo) Load(ctx context.Context) (*profile.Profile, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM profile WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("profile read failed", zap.Error(err))
		return nil, &StorageError{Op: "load", Err: err}
	}

	var p profile.Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		r.log.Error("profile record corrupt", zap.Error(err))
		return nil, &StorageError{Op: "decode", Err: err}
	}
	if p.Progress == nil {
		p.Progress = map[string]any{}
	}
	return &p, nil
}

func (r *profileRepo) Save(ctx context.Context, p *profile.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return &StorageError{Op: "encode", Err: err}
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO profile (id, data) VALUES (1, ?)
		 ON CONFLICT (id) DO UPDATE SET data = excluded.data`,
		string(data),
	)
	if err != nil {
		r.log.Error("profile write failed", zap.Error(err))
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}

func (r *profileRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profile WHERE id = 1`); err != nil {
		return &StorageError{Op: "clear", Err: err}
	}
	return nil
}
