package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-ats-gateway/models"
)

// ClientAccessor reads the session persisted for one profile and keeps it in
// memory for a short time, so a burst of requests costs a single store read.
//
// It is safe for concurrent use.
type ClientAccessor struct {
	store   Store
	profile string
	ttl     time.Duration
	now     func() time.Time

	mu       sync.RWMutex
	cached   *models.Session
	loadedAt time.Time
}

// NewClientAccessor returns a [ClientAccessor] for profile. A non-positive
// ttl disables caching.
func NewClientAccessor(store Store, profile string, ttl time.Duration) *ClientAccessor {
	return &ClientAccessor{
		store:   store,
		profile: profile,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Profile returns the profile name the accessor reads.
func (a *ClientAccessor) Profile() string {
	return a.profile
}

// Session implements [Accessor]. A profile without a stored session yields an
// empty session, not an error.
func (a *ClientAccessor) Session(ctx context.Context) (*models.Session, error) {
	if s, ok := a.fresh(); ok {
		return s, nil
	}

	s, err := a.store.Get(ctx, a.profile)
	if errors.Is(err, ErrNotFound) {
		s, err = &models.Session{ID: a.profile}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session for profile %q: %w", a.profile, err)
	}

	a.remember(s)
	return s, nil
}

// Save persists s as the profile's session and refreshes the cache.
func (a *ClientAccessor) Save(ctx context.Context, s *models.Session) error {
	s.ID = a.profile
	if err := a.store.Save(ctx, s); err != nil {
		return fmt.Errorf("save session for profile %q: %w", a.profile, err)
	}

	a.remember(s)
	return nil
}

// Clear deletes the profile's session and drops the cache.
func (a *ClientAccessor) Clear(ctx context.Context) error {
	a.Invalidate()
	if err := a.store.Delete(ctx, a.profile); err != nil {
		return fmt.Errorf("delete session for profile %q: %w", a.profile, err)
	}
	return nil
}

// Invalidate drops the cached session so the next call reads the store.
func (a *ClientAccessor) Invalidate() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cached = nil
	a.loadedAt = time.Time{}
}

func (a *ClientAccessor) fresh() (*models.Session, bool) {
	if a.ttl <= 0 {
		return nil, false
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.cached == nil || a.now().Sub(a.loadedAt) >= a.ttl {
		return nil, false
	}

	s := *a.cached
	return &s, true
}

func (a *ClientAccessor) remember(s *models.Session) {
	if a.ttl <= 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	c := *s
	a.cached = &c
	a.loadedAt = a.now()
}
