package config

import "time"

// Built-in defaults applied before any other source.
const (
	DefaultBaseURL           = "http://localhost:8000/api/v1"
	DefaultTimeout           = 30 * time.Second
	DefaultLoginPath         = "/login"
	DefaultRedirectDelay     = 100 * time.Millisecond
	DefaultSessionRetries    = 2
	DefaultSessionRetryDelay = 100 * time.Millisecond
	DefaultProfile           = "default"
	DefaultCacheTTL          = 5 * time.Second
	DefaultDSN               = "ats-sessions.db"
	DefaultServerAddress     = "127.0.0.1:3001"
	DefaultRefreshInterval   = time.Minute
	DefaultRefreshBefore     = 2 * time.Minute
	DefaultLogLevel          = "info"
)

// DefaultProductionDomains are hosting-provider suffixes that must never be
// reached over plain http.
var DefaultProductionDomains = []string{
	".vercel.app",
	".onrender.com",
	".herokuapp.com",
	".railway.app",
	".fly.dev",
	".netlify.app",
}

// DefaultLocalHosts are internal service hostnames treated as local.
var DefaultLocalHosts = []string{"backend"}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		API: API{
			Timeout:           DefaultTimeout,
			ProductionDomains: append([]string(nil), DefaultProductionDomains...),
			LocalHosts:        append([]string(nil), DefaultLocalHosts...),
		},
		Gateway: Gateway{
			Runtime:           RuntimeClient,
			LoginPath:         DefaultLoginPath,
			RedirectDelay:     DefaultRedirectDelay,
			SessionRetries:    DefaultSessionRetries,
			SessionRetryDelay: DefaultSessionRetryDelay,
		},
		Session: Session{
			Profile:  DefaultProfile,
			CacheTTL: DefaultCacheTTL,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{HTTPAddress: DefaultServerAddress},
		Workers: Workers{
			RefreshInterval: DefaultRefreshInterval,
			RefreshBefore:   DefaultRefreshBefore,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}
