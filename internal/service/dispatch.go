package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-ats-gateway/internal/gateway"
	"github.com/MKhiriev/go-ats-gateway/models"
)

// call dispatches req and decodes the JSON response into T.
func call[T any](ctx context.Context, d gateway.Dispatcher, req gateway.Request) (T, error) {
	var out T

	resp, err := d.Dispatch(ctx, req)
	if err != nil {
		return out, err
	}

	if err = resp.Decode(&out); err != nil {
		return out, fmt.Errorf("%w: %s %s: %w", ErrDecodingResponse, req.Method, req.Path, err)
	}
	return out, nil
}

// exec dispatches req and discards the response body.
func exec(ctx context.Context, d gateway.Dispatcher, req gateway.Request) error {
	_, err := d.Dispatch(ctx, req)
	return err
}

// resourcePath joins base with escaped, non-empty segments.
func resourcePath(base string, segments ...string) (string, error) {
	var b strings.Builder
	b.WriteString(base)
	for _, s := range segments {
		s = strings.TrimSpace(s)
		if s == "" {
			return "", ErrEmptyID
		}
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String(), nil
}

// crud implements the list/get/create/update/delete calls shared by the
// backend's REST resources.
type crud[T, In any] struct {
	d    gateway.Dispatcher
	base string
}

func (c crud[T, In]) list(ctx context.Context, query url.Values) (models.Page[T], error) {
	return call[models.Page[T]](ctx, c.d, gateway.Request{Method: http.MethodGet, Path: c.base, Query: query})
}

func (c crud[T, In]) all(ctx context.Context) ([]T, error) {
	return call[[]T](ctx, c.d, gateway.Request{Method: http.MethodGet, Path: c.base})
}

func (c crud[T, In]) get(ctx context.Context, id string) (T, error) {
	path, err := resourcePath(c.base, id)
	if err != nil {
		var zero T
		return zero, err
	}
	return call[T](ctx, c.d, gateway.Request{Method: http.MethodGet, Path: path})
}

func (c crud[T, In]) create(ctx context.Context, in In) (T, error) {
	return call[T](ctx, c.d, gateway.Request{Method: http.MethodPost, Path: c.base, Body: in})
}

func (c crud[T, In]) update(ctx context.Context, id string, in In) (T, error) {
	path, err := resourcePath(c.base, id)
	if err != nil {
		var zero T
		return zero, err
	}
	return call[T](ctx, c.d, gateway.Request{Method: http.MethodPut, Path: path, Body: in})
}

func (c crud[T, In]) delete(ctx context.Context, id string) error {
	path, err := resourcePath(c.base, id)
	if err != nil {
		return err
	}
	return exec(ctx, c.d, gateway.Request{Method: http.MethodDelete, Path: path})
}
