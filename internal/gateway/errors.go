// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// StatusNetworkFailure is the numeric code of failures that never produced an
// HTTP response: transport errors, timeouts and local aborts.
const StatusNetworkFailure = 0

// Symbolic error codes carried by [APIError.Code].
const (
	CodeAuthRequired   = "AUTH_REQUIRED"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNetwork        = "NETWORK_ERROR"
	CodeTimeout        = "TIMEOUT"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "NOT_FOUND"
	CodeRequestTimeout = "REQUEST_TIMEOUT"
	CodeRateLimited    = "RATE_LIMITED"
	CodeServer         = "SERVER_ERROR"
	CodeHTTP           = "HTTP_ERROR"
)

// User-facing messages.
const (
	MessageAuthRequired = "Authentication required. Please log in to continue."
	MessageUnauthorized = "Unauthorized - please login again"
	MessageFallback     = "Something went wrong"
)

// Sentinels matched by [APIError.Is].
var (
	ErrAuthRequired   = errors.New("authentication required")
	ErrInvalidRequest = errors.New("invalid request")
	ErrNetwork        = errors.New("network failure")
	ErrTimeout        = errors.New("request timed out")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrRateLimited    = errors.New("rate limited")
	ErrServer         = errors.New("server error")
)

// APIError is the only error type returned by the gateway. Every failure,
// whether a transport error, an HTTP error status or a local abort, is
// coerced into it.
type APIError struct {
	// Message is safe to show to the user.
	Message string `json:"message"`
	// Status is the server's status_code field, else the HTTP status, else
	// [StatusNetworkFailure].
	Status int `json:"status"`
	// Code is the symbolic classification, one of the Code* constants.
	Code string `json:"code"`

	err error
}

// Error implements error.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the transport error behind a network failure, if any.
func (e *APIError) Unwrap() error {
	return e.err
}

// Is matches e against the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrAuthRequired:
		return e.Code == CodeAuthRequired
	case ErrInvalidRequest:
		return e.Code == CodeInvalidRequest
	case ErrNetwork:
		return e.Code == CodeNetwork || e.Code == CodeTimeout
	case ErrTimeout:
		return e.Code == CodeTimeout
	case ErrUnauthorized:
		return e.Code == CodeUnauthorized
	case ErrForbidden:
		return e.Code == CodeForbidden
	case ErrNotFound:
		return e.Code == CodeNotFound
	case ErrRateLimited:
		return e.Code == CodeRateLimited
	case ErrServer:
		return e.Code == CodeServer
	}
	return false
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func newAuthRequiredError() *APIError {
	return &APIError{
		Message: MessageAuthRequired,
		Status:  StatusNetworkFailure,
		Code:    CodeAuthRequired,
	}
}

func newInvalidRequestError(msg string) *APIError {
	return &APIError{
		Message: msg,
		Status:  StatusNetworkFailure,
		Code:    CodeInvalidRequest,
	}
}

// newTransportError wraps a failure that produced no HTTP response.
func newTransportError(err error) *APIError {
	code := CodeNetwork
	if isTimeout(err) {
		code = CodeTimeout
	}

	msg := MessageFallback
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		msg = err.Error()
	}

	return &APIError{
		Message: msg,
		Status:  StatusNetworkFailure,
		Code:    code,
		err:     err,
	}
}

// newHTTPError builds the error for a response with an error status.
//
// Message precedence: the body's detail field (a string, or a list of
// {"msg": ...} entries), its message field, the default text of the status,
// and finally [MessageFallback]. A 401 always reads [MessageUnauthorized].
// Status prefers the body's status_code; Code follows it except for an HTTP
// 401, 403 or 404.
func newHTTPError(httpStatus int, body []byte) *APIError {
	status := httpStatus
	var detail, message string

	if gjson.ValidBytes(body) {
		parsed := gjson.ParseBytes(body)
		detail = detailMessage(parsed.Get("detail"))
		message = strings.TrimSpace(parsed.Get("message").String())
		if sc := parsed.Get("status_code"); sc.Type == gjson.Number && sc.Int() > 0 {
			status = int(sc.Int())
		}
	}

	// For an HTTP 401, 403 or 404 the transport status decides the class.
	class := status
	switch httpStatus {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		class = httpStatus
	}

	msg := firstNonEmpty(detail, message, statusText(class), MessageFallback)
	if httpStatus == http.StatusUnauthorized {
		msg = MessageUnauthorized
	}

	return &APIError{
		Message: msg,
		Status:  status,
		Code:    codeForStatus(class),
	}
}

func detailMessage(detail gjson.Result) string {
	switch {
	case detail.Type == gjson.String:
		return strings.TrimSpace(detail.String())
	case detail.IsArray():
		var msgs []string
		for _, item := range detail.Array() {
			m := item.Get("msg")
			if !m.Exists() && item.Type == gjson.String {
				m = item
			}
			if s := strings.TrimSpace(m.String()); s != "" {
				msgs = append(msgs, s)
			}
		}
		return strings.Join(msgs, "; ")
	case detail.IsObject():
		return strings.TrimSpace(detail.Get("message").String())
	}
	return ""
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return CodeUnauthorized
	case status == http.StatusForbidden:
		return CodeForbidden
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusRequestTimeout:
		return CodeRequestTimeout
	case status == http.StatusTooManyRequests:
		return CodeRateLimited
	case status >= http.StatusInternalServerError:
		return CodeServer
	default:
		return CodeHTTP
	}
}

func statusText(status int) string {
	switch {
	case status == http.StatusForbidden:
		return "You do not have permission to perform this action"
	case status == http.StatusNotFound:
		return "The requested resource was not found"
	case status == http.StatusRequestTimeout:
		return "The request timed out - please try again"
	case status == http.StatusTooManyRequests:
		return "Too many requests - please slow down"
	case status >= http.StatusInternalServerError:
		return "Server error - please try again later"
	default:
		return http.StatusText(status)
	}
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
