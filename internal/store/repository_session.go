// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ats-gateway/internal/crypto"
	"github.com/MKhiriev/go-ats-gateway/internal/logger"
	"github.com/MKhiriev/go-ats-gateway/internal/session"
	"github.com/MKhiriev/go-ats-gateway/models"
)

// sessionRow is the persisted form of a [models.Session]. Tokens are sealed
// and times are unix seconds, zero meaning unset.
type sessionRow struct {
	Profile         string
	AccessToken     string
	RefreshToken    string
	ExpiresAt       int64
	UserID          string
	Email           string
	Role            string
	Name            string
	IsAuthenticated bool
	UpdatedAt       int64
}

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. Access and refresh tokens pass through a
// [crypto.Sealer] on their way in and out of the "sessions" table.
type sessionRepository struct {
	db     *DB
	sealer crypto.Sealer
	logger *logger.Logger
	now    func() time.Time
}

// NewSessionRepository constructs a [SessionRepository] over db. A nil sealer
// stores tokens unsealed.
func NewSessionRepository(db *DB, sealer crypto.Sealer, logger *logger.Logger) SessionRepository {
	if sealer == nil {
		sealer, _ = crypto.NewSealer("")
	}
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		sealer: sealer,
		logger: logger,
		now:    time.Now,
	}
}

// Get returns the session stored for profile, or [session.ErrNotFound].
func (r *sessionRepository) Get(ctx context.Context, profile string) (*models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectSessionQuery(profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row sessionRow
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&row.Profile,
		&row.AccessToken,
		&row.RefreshToken,
		&row.ExpiresAt,
		&row.UserID,
		&row.Email,
		&row.Role,
		&row.Name,
		&row.IsAuthenticated,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, session.ErrNotFound
	case err != nil:
		log.Err(err).Str("func", "*sessionRepository.Get").Str("profile", profile).Msg("error reading session")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return r.toSession(row)
}

// Save upserts s under s.ID.
func (r *sessionRepository) Save(ctx context.Context, s *models.Session) error {
	log := logger.FromContext(ctx)

	if s == nil || s.ID == "" {
		return fmt.Errorf("%w: session id is empty", ErrBuildingSQLQuery)
	}

	row, err := r.toRow(s)
	if err != nil {
		return err
	}

	query, args, err := upsertSessionQuery(row)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Save").Str("profile", s.ID).Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete removes the session of profile. A missing row is not an error.
func (r *sessionRepository) Delete(ctx context.Context, profile string) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteSessionQuery(profile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Delete").Str("profile", profile).Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) Profiles(ctx context.Context) ([]string, error) {
	query, args, err := listProfilesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var profiles []string
	for rows.Next() {
		var p string
		if err = rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		profiles = append(profiles, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return profiles, nil
}

func (r *sessionRepository) toRow(s *models.Session) (sessionRow, error) {
	access, err := r.sealer.Seal(s.Tokens.AccessToken)
	if err != nil {
		return sessionRow{}, fmt.Errorf("%w: %w", ErrSealing, err)
	}
	refresh, err := r.sealer.Seal(s.Tokens.RefreshToken)
	if err != nil {
		return sessionRow{}, fmt.Errorf("%w: %w", ErrSealing, err)
	}

	row := sessionRow{
		Profile:         s.ID,
		AccessToken:     access,
		RefreshToken:    refresh,
		UserID:          s.User.ID,
		Email:           s.User.Email,
		Role:            s.User.Role,
		Name:            s.User.Name,
		IsAuthenticated: s.IsAuthenticated,
		UpdatedAt:       r.now().Unix(),
	}
	if !s.Tokens.ExpiresAt.IsZero() {
		row.ExpiresAt = s.Tokens.ExpiresAt.Unix()
	}
	return row, nil
}

func (r *sessionRepository) toSession(row sessionRow) (*models.Session, error) {
	access, err := r.sealer.Open(row.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSealing, err)
	}
	refresh, err := r.sealer.Open(row.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSealing, err)
	}

	s := &models.Session{
		ID: row.Profile,
		Tokens: models.Tokens{
			AccessToken:  access,
			RefreshToken: refresh,
		},
		IsAuthenticated: row.IsAuthenticated,
		User: models.SessionUser{
			ID:    row.UserID,
			Email: row.Email,
			Role:  row.Role,
			Name:  row.Name,
		},
	}
	if row.ExpiresAt > 0 {
		s.Tokens.ExpiresAt = time.Unix(row.ExpiresAt, 0).UTC()
	}
	return s, nil
}
