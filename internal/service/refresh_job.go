package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-ats-gateway/internal/logger"
	"github.com/MKhiriev/go-ats-gateway/internal/metrics"
	"github.com/MKhiriev/go-ats-gateway/internal/session"
)

const defaultRefreshInterval = time.Minute

type refreshJob struct {
	auth     AuthService
	sessions session.Accessor
	interval time.Duration
	before   time.Duration
	now      func() time.Time
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a job that, every interval, refreshes the session
// returned by sessions when its access token expires within before. The job
// is idle until Start is called. A non-positive interval defaults to one
// minute.
func NewRefreshJob(auth AuthService, sessions session.Accessor, interval, before time.Duration, log *logger.Logger) RefreshJob {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	return &refreshJob{
		auth:     auth,
		sessions: sessions,
		interval: interval,
		before:   before,
		now:      time.Now,
		logger:   log,
	}
}

// Start stops any previously running loop, then launches a goroutine that
// checks the session on every tick. It exits when ctx is cancelled or Stop
// is called.
func (j *refreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit. Safe to call when the job
// is not running.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *refreshJob) tick(ctx context.Context) {
	result := j.refresh(ctx)
	metrics.SessionRefreshTotal.WithLabelValues(result).Inc()
}

// refresh performs one check and reports its outcome as a metric label.
func (j *refreshJob) refresh(ctx context.Context) string {
	sess, err := j.sessions.Session(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "*refreshJob.refresh").Msg("error reading session")
		return "failed"
	}

	due, err := session.ExpiresWithin(sess, j.before, j.now())
	if err != nil {
		j.logger.Err(err).Str("func", "*refreshJob.refresh").Msg("cannot inspect access token")
		return "failed"
	}
	if !due {
		return "skipped"
	}

	if _, err = j.auth.Refresh(ctx); err != nil {
		j.logger.Err(err).Str("func", "*refreshJob.refresh").Msg("error refreshing session")
		return "failed"
	}

	j.logger.Debug().Str("func", "*refreshJob.refresh").Msg("session refreshed")
	return "refreshed"
}
