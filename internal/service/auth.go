// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-ats-gateway/internal/gateway"
	"github.com/MKhiriev/go-ats-gateway/internal/logger"
	"github.com/MKhiriev/go-ats-gateway/internal/session"
	"github.com/MKhiriev/go-ats-gateway/models"
)

const (
	authLoginPath   = "/auth/login"
	authLogoutPath  = "/auth/logout"
	authMePath      = "/auth/me"
	authRefreshPath = "/auth/refresh"
)

// authService plays the authentication provider's role for the client
// runtime: it creates the session at login, refreshes it and destroys it at
// logout. The gateway only ever reads what it stores.
type authService struct {
	d      gateway.Dispatcher
	keeper SessionKeeper
	now    func() time.Time
}

// NewAuthService returns an [AuthService] that persists sessions in keeper.
func NewAuthService(d gateway.Dispatcher, keeper SessionKeeper) AuthService {
	return &authService{d: d, keeper: keeper, now: time.Now}
}

// Login posts creds to the public login endpoint and stores the resulting
// session.
func (s *authService) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	log := logger.FromContext(ctx)

	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return nil, ErrEmptyCredentials
	}

	resp, err := call[models.LoginResponse](ctx, s.d, gateway.Request{
		Method: http.MethodPost,
		Path:   authLoginPath,
		Body:   creds,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("email", creds.Email).Msg("login failed")
		return nil, err
	}

	sess := s.sessionFrom(resp, nil)
	if err = s.keeper.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("error saving session: %w", err)
	}

	log.Info().Str("func", "*authService.Login").Str("email", sess.User.Email).Msg("logged in")
	return sess, nil
}

// Logout tells the backend to end the session and deletes the local copy in
// any case. An already expired session is not an error.
func (s *authService) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)

	remoteErr := exec(ctx, s.d, gateway.Request{Method: http.MethodPost, Path: authLogoutPath})
	if remoteErr != nil {
		log.Warn().Err(remoteErr).Str("func", "*authService.Logout").Msg("backend logout failed, clearing local session anyway")
	}

	if err := s.keeper.Clear(ctx); err != nil {
		return errors.Join(fmt.Errorf("error clearing session: %w", err), remoteErr)
	}

	if remoteErr != nil && !isLoggedOut(remoteErr) {
		return remoteErr
	}
	return nil
}

func (s *authService) Me(ctx context.Context) (models.User, error) {
	return call[models.User](ctx, s.d, gateway.Request{Method: http.MethodGet, Path: authMePath})
}

// Refresh exchanges the stored refresh token for a new token pair and saves
// the updated session.
func (s *authService) Refresh(ctx context.Context) (*models.Session, error) {
	current, err := s.keeper.Session(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil || strings.TrimSpace(current.Tokens.RefreshToken) == "" {
		return nil, ErrNoRefreshToken
	}

	resp, err := call[models.LoginResponse](ctx, s.d, gateway.Request{
		Method: http.MethodPost,
		Path:   authRefreshPath,
		Body:   models.RefreshRequest{RefreshToken: current.Tokens.RefreshToken},
	})
	if err != nil {
		return nil, err
	}

	sess := s.sessionFrom(resp, current)
	if err = s.keeper.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("error saving session: %w", err)
	}
	return sess, nil
}

// sessionFrom builds a session from a token response. Fields the response
// leaves empty are carried over from prev.
func (s *authService) sessionFrom(resp models.LoginResponse, prev *models.Session) *models.Session {
	sess := &models.Session{
		Tokens: models.Tokens{
			AccessToken:  resp.AccessToken,
			RefreshToken: resp.RefreshToken,
		},
		IsAuthenticated: resp.AccessToken != "",
		User: models.SessionUser{
			ID:    resp.User.ID,
			Email: resp.User.Email,
			Role:  resp.User.Role,
			Name:  resp.User.Name,
		},
	}

	switch {
	case resp.ExpiresIn > 0:
		sess.Tokens.ExpiresAt = s.now().Add(time.Duration(resp.ExpiresIn) * time.Second).UTC()
	default:
		if claims, err := session.ParseClaims(resp.AccessToken); err == nil && claims.ExpiresAt != nil {
			sess.Tokens.ExpiresAt = claims.ExpiresAt.UTC()
		}
	}

	if prev != nil {
		sess.ID = prev.ID
		if sess.Tokens.RefreshToken == "" {
			sess.Tokens.RefreshToken = prev.Tokens.RefreshToken
		}
		if sess.User.ID == "" {
			sess.User = prev.User
		}
	}
	return sess
}
