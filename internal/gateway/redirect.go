package gateway

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-ats-gateway/internal/logger"
	"github.com/MKhiriev/go-ats-gateway/internal/metrics"
)

// loginRedirector navigates to the login location after a 401. Navigation is
// deferred by delay so the caller can surface the error first, and at most
// one navigation is pending at a time.
type loginRedirector struct {
	nav       Navigator
	loginPath string
	delay     time.Duration
	pending   atomic.Bool
	logger    *logger.Logger

	mu   sync.Mutex
	done chan struct{} // closed once the latest scheduled navigation ran
}

// schedule arranges a navigation unless one is already pending or the
// navigator is already on the login location. It reports whether a
// navigation was scheduled.
func (r *loginRedirector) schedule() bool {
	if r.nav == nil || r.onLoginPage() {
		return false
	}
	if !r.pending.CompareAndSwap(false, true) {
		return false
	}

	done := make(chan struct{})
	r.mu.Lock()
	r.done = done
	r.mu.Unlock()

	time.AfterFunc(r.delay, func() {
		defer close(done)
		defer r.pending.Store(false)

		if r.onLoginPage() {
			return
		}
		metrics.LoginRedirectsTotal.Inc()
		r.logger.Info().Str("to", r.loginPath).Msg("navigating to login after 401")
		r.nav.Navigate(r.loginPath)
	})

	return true
}

// wait blocks until the latest scheduled navigation has run. It returns at
// once when nothing was scheduled.
func (r *loginRedirector) wait() {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (r *loginRedirector) onLoginPage() bool {
	current := r.nav.CurrentPath()
	if i := strings.IndexAny(current, "?#"); i >= 0 {
		current = current[:i]
	}
	return current == r.loginPath || current == r.loginPath+"/"
}
