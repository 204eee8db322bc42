// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ats-gateway/internal/config"
	handler "github.com/MKhiriev/go-ats-gateway/internal/handler/http"
	"github.com/MKhiriev/go-ats-gateway/internal/server"
	"github.com/MKhiriev/go-ats-gateway/internal/service"
	"github.com/MKhiriev/go-ats-gateway/internal/session"
	"github.com/MKhiriev/go-ats-gateway/internal/workers"
)

func (a *App) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the session endpoint for local processes",
		Long: `Serve GET ` + handler.SessionPath + ` with the current session, plus /healthz and
/metrics. Other processes use it as their raw session endpoint.

In the client runtime the stored profile session is served and kept fresh
by a background refresh job. In the server runtime sessions are looked up
in the shared store by the caller's X-Session-ID header or ats_session
cookie.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationStdoutLog: ""},
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, ws, err := a.serveSessions(cmd)
			if err != nil {
				return err
			}

			h := handler.NewHandler(sessions, a.buildInfo, a.logger)
			srv, err := server.NewServer(h.Init(), ws, a.cfg.Server, a.logger)
			if err != nil {
				return err
			}

			a.logger.Info().Str("address", a.cfg.Server.HTTPAddress).Msg("serving session endpoint")
			return srv.Run(cmd.Context())
		},
	}
}

// serveSessions picks the accessor served by the endpoint and the workers
// that run alongside the server.
func (a *App) serveSessions(cmd *cobra.Command) (session.Accessor, *workers.Workers, error) {
	if a.cfg.Gateway.Runtime == config.RuntimeServer {
		st, err := a.sharedStore(cmd.Context())
		if err != nil {
			return nil, nil, err
		}
		return session.NewServerAccessor(st), workers.New(), nil
	}

	refresh := service.NewRefreshJob(
		a.services.Auth,
		a.keeper,
		a.cfg.Workers.RefreshInterval,
		a.cfg.Workers.RefreshBefore,
		a.logger.WithStr("component", "refresh-job"),
	)
	return a.keeper, workers.New(refresh), nil
}
