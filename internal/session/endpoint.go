package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ats-gateway/models"
	"github.com/go-resty/resty/v2"
)

const defaultEndpointTimeout = 5 * time.Second

type endpointAccessor struct {
	client *resty.Client
	url    string
}

// NewEndpointAccessor returns an [Accessor] that fetches the session JSON
// from a raw session endpoint such as http://localhost:3001/api/auth/session.
// An empty JSON object means "no session".
func NewEndpointAccessor(url string, timeout time.Duration) Accessor {
	if timeout <= 0 {
		timeout = defaultEndpointTimeout
	}

	return &endpointAccessor{
		client: resty.New().SetTimeout(timeout),
		url:    strings.TrimSpace(url),
	}
}

func (a *endpointAccessor) Session(ctx context.Context) (*models.Session, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(a.url)
	if err != nil {
		return nil, fmt.Errorf("session endpoint request: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("session endpoint: http %d", resp.StatusCode())
	}

	body := resp.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return &models.Session{}, nil
	}

	var s models.Session
	if err = json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("decode session endpoint response: %w", err)
	}

	return &s, nil
}
