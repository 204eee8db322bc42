package gateway

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-ats-gateway/internal/logger"
	"github.com/stretchr/testify/assert"
)

// stayingNavigator never leaves its page, so every redirect is eligible.
type stayingNavigator struct {
	visits atomic.Int32
}

func (n *stayingNavigator) CurrentPath() string { return "/jobs" }
func (n *stayingNavigator) Navigate(string)     { n.visits.Add(1) }

func newTestRedirector(nav Navigator, delay time.Duration) *loginRedirector {
	return &loginRedirector{nav: nav, loginPath: "/login", delay: delay, logger: logger.Nop()}
}

func TestLoginRedirector_WaitBlocksUntilNavigated(t *testing.T) {
	nav := &stayingNavigator{}
	r := newTestRedirector(nav, 30*time.Millisecond)

	assert.True(t, r.schedule())
	assert.False(t, r.schedule(), "one navigation pending at a time")

	r.wait()
	assert.Equal(t, int32(1), nav.visits.Load())
	assert.False(t, r.pending.Load())
}

func TestLoginRedirector_ConcurrentScheduleAndWait(t *testing.T) {
	nav := &stayingNavigator{}
	r := newTestRedirector(nav, time.Millisecond)

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.schedule()
		}()
		go func() {
			defer wg.Done()
			r.wait()
		}()
	}
	wg.Wait()
	r.wait()

	assert.False(t, r.pending.Load())
	assert.GreaterOrEqual(t, nav.visits.Load(), int32(1))
}
