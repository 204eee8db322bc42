package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags keeps the values bound to a flag set until the command line has
// been parsed.
type Flags struct {
	cfg    StructuredConfig
	listen NetAddress
}

// BindFlags registers every configuration flag on fs.
//
// Flags:
//
//	-c/--config          json file path with configs
//	--api-url            public API base URL
//	--backend-url        server-side backend URL
//	--timeout            request timeout (e.g., "30s")
//	--runtime            client or server
//	--login-path         where 401 responses navigate to
//	--strict-reads       abort unauthenticated protected reads locally
//	--profile            local session profile
//	--session-endpoint   raw session endpoint fallback
//	--seal-key           at-rest token protection key
//	--db                 SQLite DSN
//	--redis-addr         Redis address host:port
//	--listen             session server address host:port
//	--log-level          debug, info, warn, error
//	--log-file           log file path
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	c := &f.cfg

	fs.StringVarP(&c.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&c.API.PublicURL, "api-url", "", "Public API base URL")
	fs.StringVar(&c.API.BackendURL, "backend-url", "", "Server-side backend URL")
	fs.DurationVar(&c.API.Timeout, "timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&c.Gateway.Runtime, "runtime", "", "Gateway runtime: client or server")
	fs.StringVar(&c.Gateway.LoginPath, "login-path", "", "Login location used after 401 responses")
	fs.BoolVar(&c.Gateway.StrictReads, "strict-reads", false, "Abort protected reads without a session")
	fs.StringVar(&c.Session.Profile, "profile", "", "Local session profile")
	fs.StringVar(&c.Session.Endpoint, "session-endpoint", "", "Raw session endpoint fallback")
	fs.StringVar(&c.Session.SealKey, "seal-key", "", "Key protecting stored tokens")
	fs.StringVar(&c.Storage.DB.DSN, "db", "", "SQLite database DSN")
	fs.StringVar(&c.Storage.Redis.Address, "redis-addr", "", "Redis address host:port")
	fs.Var(&f.listen, "listen", "Session server address host:port")
	fs.StringVar(&c.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&c.Log.File, "log-file", "", "Log file path")

	return f
}

// Config returns the flag values as a partial config. Call it after the
// flag set has been parsed.
func (f *Flags) Config() *StructuredConfig {
	if f == nil {
		return nil
	}

	cfg := f.cfg
	cfg.Server.HTTPAddress = f.listen.String()
	return &cfg
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
