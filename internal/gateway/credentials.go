package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-ats-gateway/internal/logger"
	"github.com/MKhiriev/go-ats-gateway/internal/metrics"
	"github.com/MKhiriev/go-ats-gateway/internal/session"
	"github.com/avast/retry-go/v4"
)

var errNoToken = errors.New("session holds no access token")

// credentials looks up the bearer token of the current session.
type credentials struct {
	primary  session.Accessor
	fallback session.Accessor
	attempts uint
	delay    time.Duration
	logger   *logger.Logger
}

// token returns the access token or an empty string. The primary accessor is
// asked up to c.attempts times while it errors or yields no token; the
// fallback accessor is asked once after that.
func (c *credentials) token(ctx context.Context) string {
	if c.primary != nil {
		token, err := c.fromPrimary(ctx)
		if err == nil {
			return token
		}
		c.logger.Debug().Err(err).Msg("no token from primary session accessor")
	}

	if c.fallback == nil || ctx.Err() != nil {
		return ""
	}

	s, err := c.fallback.Session(ctx)
	if err != nil || !s.HasToken() {
		metrics.CredentialFallbacksTotal.WithLabelValues("miss").Inc()
		c.logger.Debug().Err(err).Msg("no token from session endpoint")
		return ""
	}

	metrics.CredentialFallbacksTotal.WithLabelValues("hit").Inc()
	return s.AccessToken()
}

func (c *credentials) fromPrimary(ctx context.Context) (string, error) {
	var token string
	attempts := max(c.attempts, 1)

	err := retry.Do(
		func() error {
			s, err := c.primary.Session(ctx)
			if err != nil {
				return err
			}
			if !s.HasToken() {
				return errNoToken
			}
			token = s.AccessToken()
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(c.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			if n+1 >= attempts {
				return
			}
			metrics.CredentialRetriesTotal.Inc()
			c.logger.Debug().Uint("attempt", n+1).Err(err).Msg("retrying session lookup")
		}),
	)

	return token, err
}
