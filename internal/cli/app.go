// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ats-gateway/internal/config"
	"github.com/MKhiriev/go-ats-gateway/internal/crypto"
	"github.com/MKhiriev/go-ats-gateway/internal/gateway"
	"github.com/MKhiriev/go-ats-gateway/internal/logger"
	"github.com/MKhiriev/go-ats-gateway/internal/service"
	"github.com/MKhiriev/go-ats-gateway/internal/session"
	"github.com/MKhiriev/go-ats-gateway/internal/store"
	"github.com/MKhiriev/go-ats-gateway/internal/validators"
	"github.com/MKhiriev/go-ats-gateway/models"
)

const (
	appName = "atsctl"

	// annotationNoBackend marks commands that never dispatch requests.
	annotationNoBackend = "atsctl/no-backend"
	// annotationStdoutLog marks long-running commands that log JSON to stdout.
	annotationStdoutLog = "atsctl/stdout-log"
)

// ErrHandled is returned after the failure has already been rendered to the
// user. Callers only set the exit code.
var ErrHandled = errors.New("already handled")

// App holds the state shared by every command of one invocation.
type App struct {
	buildInfo models.AppBuildInfo
	flags     *config.Flags
	cfg       *config.StructuredConfig
	logger    *logger.Logger
	validator validators.Validator

	in     io.Reader
	out    io.Writer
	errOut *lockedWriter

	services *service.Services
	keeper   service.SessionKeeper
	gateway  *gateway.Gateway
	// serverStore is the shared session store of the server runtime.
	serverStore session.Store

	// currentPath is the location of the running command, e.g. "/jobs/list".
	currentPath string
	jsonOutput  bool
	closers     []func() error
}

// Option configures an [App].
type Option func(*App)

// WithIO replaces the standard streams.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) {
		a.in = in
		a.out = out
		a.errOut = &lockedWriter{w: errOut}
	}
}

// WithServices supplies ready resource services and the session keeper
// behind them. Commands then skip opening the session database and building
// the gateway.
func WithServices(s *service.Services, keeper service.SessionKeeper) Option {
	return func(a *App) {
		a.services = s
		a.keeper = keeper
	}
}

// WithLogger sets the logger instead of the one built from configuration.
func WithLogger(l *logger.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// NewApp creates an [App] for buildInfo.
func NewApp(buildInfo models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		buildInfo: buildInfo,
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    &lockedWriter{w: os.Stderr},
		validator: validators.NewInputValidator(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Execute runs the command line args and waits for a pending login
// redirect before releasing resources.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.Command()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if a.gateway != nil {
		a.gateway.WaitRedirect()
	}
	if closeErr := a.close(); closeErr != nil && a.logger != nil {
		a.logger.Err(closeErr).Str("func", "*App.Execute").Msg("error releasing resources")
	}

	return err
}

// Command builds the root command with every subcommand attached.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Command line client for the recruiting backend",
		Long: `atsctl talks to the recruiting backend through the request gateway.

Sessions are stored per profile in a local SQLite database; tokens are
sealed at rest when a seal key is configured.

Examples:
  atsctl login --email hr@acme.io
  atsctl jobs list --status open
  atsctl dashboard overview --from 2026-01-01`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		Annotations:       map[string]string{annotationNoBackend: ""},
		PersistentPreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.SetIn(a.in)

	a.flags = config.BindFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVarP(&a.jsonOutput, "json", "j", false, "Print results as JSON")

	root.AddCommand(
		a.newLoginCmd(),
		a.newLogoutCmd(),
		a.newWhoAmICmd(),
		a.newJobsCmd(),
		a.newCandidatesCmd(),
		a.newApplicationsCmd(),
		a.newInterviewsCmd(),
		a.newDepartmentsCmd(),
		a.newCategoriesCmd(),
		a.newEmailTemplatesCmd(),
		a.newAuditLogsCmd(),
		a.newDashboardCmd(),
		a.newServeCmd(),
		a.newVersionCmd(),
	)

	return root
}

func (a *App) preRun(cmd *cobra.Command, _ []string) error {
	a.currentPath = commandPath(cmd)

	if hasAnnotation(cmd, annotationNoBackend) {
		return nil
	}

	cfg, err := config.Load(a.flags.Config())
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	a.cfg = cfg

	if a.logger == nil {
		if hasAnnotation(cmd, annotationStdoutLog) {
			a.logger = logger.NewLogger(appName, cfg.Log.Level)
		} else {
			a.logger = logger.NewFileLogger(appName, cfg.Log.File, cfg.Log.Level)
		}
	}
	a.logger.Debug().Str("command", a.currentPath).Msg("running command")

	if a.services != nil {
		return nil
	}
	return a.connect(cmd.Context())
}

// connect opens the session database and builds the gateway and the
// resource services on top of it.
func (a *App) connect(ctx context.Context) error {
	db, err := store.NewConnectSQLite(ctx, a.cfg.Storage.DB, a.logger)
	if err != nil {
		return fmt.Errorf("open session database: %w", err)
	}
	a.closers = append(a.closers, db.Close)

	if err = db.Migrate(); err != nil {
		return fmt.Errorf("migrate session database: %w", err)
	}

	sealer, err := crypto.NewSealer(a.cfg.Session.SealKey)
	if err != nil {
		return fmt.Errorf("create token sealer: %w", err)
	}

	repo := store.NewSessionRepository(db, sealer, a.logger)
	sessions := session.NewClientAccessor(repo, a.cfg.Session.Profile, a.cfg.Session.CacheTTL)

	opts := []gateway.Option{
		gateway.WithLogger(a.logger),
		gateway.WithClientSessions(sessions),
		gateway.WithNavigator(&navigator{app: a}),
	}
	if a.cfg.Gateway.Runtime == config.RuntimeServer {
		st, err := a.sharedStore(ctx)
		if err != nil {
			return err
		}
		opts = append(opts, gateway.WithServerSessions(session.NewServerAccessor(st)))
	}

	gw, err := gateway.New(a.cfg, opts...)
	if err != nil {
		return err
	}

	a.gateway = gw
	a.keeper = sessions
	a.services = service.NewServices(gw, sessions)
	return nil
}

// sharedStore returns the server-runtime session store: Redis when an
// address is configured, otherwise a process-local store.
func (a *App) sharedStore(ctx context.Context) (session.Store, error) {
	if a.serverStore != nil {
		return a.serverStore, nil
	}

	if a.cfg.Storage.Redis.Address == "" {
		a.logger.Warn().Msg("no redis address configured, server sessions are kept in memory")
		a.serverStore = session.NewMemoryStore()
		return a.serverStore, nil
	}

	client, err := session.ConnectRedis(ctx, a.cfg.Storage.Redis)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, client.Close)

	a.serverStore = session.NewRedisStore(client)
	return a.serverStore, nil
}

func (a *App) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// commandPath turns "atsctl jobs list" into "/jobs/list".
func commandPath(cmd *cobra.Command) string {
	parts := strings.Fields(cmd.CommandPath())
	if len(parts) <= 1 {
		return "/"
	}
	return "/" + strings.Join(parts[1:], "/")
}

func hasAnnotation(cmd *cobra.Command, key string) bool {
	_, ok := cmd.Annotations[key]
	return ok
}
