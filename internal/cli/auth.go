// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ats-gateway/internal/session"
	"github.com/MKhiriev/go-ats-gateway/models"
)

var errNoPassword = errors.New("password is required")

func (a *App) newLoginCmd() *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session for the current profile",
		Long: `Sign in with email and password. The returned tokens are stored for the
current profile and attached to every protected request afterwards.

The password is read from standard input when --password is not set. On a
terminal the input is masked.

Examples:
  atsctl login --email hr@acme.io
  atsctl --profile staging login --email hr@acme.io --password secret`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if creds.Password == "" {
				password, err := a.readPassword(cmd.Context(), "Password: ")
				if err != nil {
					return err
				}
				creds.Password = password
			}

			if err := a.validator.Validate(cmd.Context(), creds); err != nil {
				return a.fail(err)
			}

			s, err := a.services.Auth.Login(cmd.Context(), creds)
			if err != nil {
				return a.fail(err)
			}

			who := s.User.Email
			if s.User.Role != "" {
				who += " (" + s.User.Role + ")"
			}
			a.toast(toastSuccess, "Signed in as "+who)
			return nil
		},
	}

	cmd.Flags().StringVarP(&creds.Email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&creds.Password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (a *App) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.services.Auth.Logout(cmd.Context()); err != nil {
				return a.fail(err)
			}
			a.toast(toastSuccess, "Signed out.")
			return nil
		},
	}
}

func (a *App) newWhoAmICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user and token lifetime",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.services.Auth.Me(cmd.Context())
			if err != nil {
				return a.fail(err)
			}

			pairs := [][2]string{
				{"ID", user.ID},
				{"Email", user.Email},
				{"Name", user.Name},
				{"Role", user.Role},
				{"Active", fmt.Sprint(user.IsActive)},
			}
			if expires := a.tokenExpiry(cmd); expires != "" {
				pairs = append(pairs, [2]string{"Token expires", expires})
			}

			details(a.out, "Signed in", pairs)
			return nil
		},
	}
}

// tokenExpiry reads the expiry claim of the stored access token. It returns
// an empty string when no session is stored or the token carries no expiry.
func (a *App) tokenExpiry(cmd *cobra.Command) string {
	if a.keeper == nil {
		return ""
	}

	s, err := a.keeper.Session(cmd.Context())
	if err != nil || !s.HasToken() {
		return ""
	}

	claims, err := session.ParseClaims(s.AccessToken())
	if err != nil {
		a.logger.Debug().Err(err).Msg("error parsing access token")
		return ""
	}
	left, ok := claims.ExpiresIn(time.Now())
	if !ok {
		return ""
	}

	at := claims.ExpiresAt.Time.Local().Format(time.DateTime)
	if left <= 0 {
		return at + " (expired)"
	}
	return fmt.Sprintf("%s (in %s)", at, left.Round(time.Second))
}
