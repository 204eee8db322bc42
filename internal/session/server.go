package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ats-gateway/models"
)

type serverAccessor struct {
	store Store
}

// NewServerAccessor returns the server-runtime [Accessor]. It prefers a
// session attached to the context with [WithSession]; otherwise it looks up
// the id attached with [WithID] in store. store may be nil when sessions are
// only ever passed through the context.
func NewServerAccessor(store Store) Accessor {
	return &serverAccessor{store: store}
}

func (a *serverAccessor) Session(ctx context.Context) (*models.Session, error) {
	if s, ok := FromContext(ctx); ok {
		return s, nil
	}

	id, ok := IDFromContext(ctx)
	if !ok || a.store == nil {
		return nil, ErrNoSession
	}

	s, err := a.store.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return &models.Session{ID: id}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load server session %q: %w", id, err)
	}

	return s, nil
}
