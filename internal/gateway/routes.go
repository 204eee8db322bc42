package gateway

import (
	"net/url"
	"slices"
	"strings"
)

// Access is the classification of an endpoint.
type Access int

const (
	// AccessProtected endpoints need a bearer credential. It is the zero
	// value so that anything unclassified fails closed.
	AccessProtected Access = iota
	// AccessPublic endpoints are reachable without a credential.
	AccessPublic
)

func (a Access) String() string {
	if a == AccessPublic {
		return "public"
	}
	return "protected"
}

// Route is one entry of a [RouteTable].
//
// Pattern matching:
//   - a pattern ending in "/" matches every path starting with it, unless
//     Exact is set;
//   - any other pattern matches the path exactly;
//   - a "{name}" segment matches exactly one non-empty path segment whose
//     value is not listed in Except.
type Route struct {
	Pattern string
	// Methods restricts the route to these HTTP methods. Empty matches any.
	Methods []string
	// Exact disables prefix matching for patterns ending in "/".
	Exact bool
	// Except lists placeholder values the route must not match.
	Except []string
}

// RouteTable classifies endpoints. Protected routes are evaluated before
// public ones, so a path matching both is protected; a path matching neither
// is protected too.
type RouteTable struct {
	Protected []Route
	Public    []Route
}

// DefaultRoutes returns the classification table of the ATS backend.
func DefaultRoutes() RouteTable {
	return RouteTable{
		Protected: []Route{
			{Pattern: "/auth/me"},
			{Pattern: "/auth/logout"},
			{Pattern: "/auth/change-password"},
			{Pattern: "/jobs/" + aiGenerateSegment},
			{Pattern: "/jobs", Methods: []string{"POST"}},
			{Pattern: "/jobs/", Methods: []string{"POST"}, Exact: true},
		},
		Public: []Route{
			{Pattern: "/auth/login"},
			{Pattern: "/auth/register"},
			{Pattern: "/auth/refresh"},
			{Pattern: "/auth/forgot-password"},
			{Pattern: "/auth/reset-password"},
			{Pattern: "/auth/verify-email"},
			{Pattern: "/health"},
			{Pattern: "/public/"},
			{Pattern: "/careers/"},
			{Pattern: "/applications/apply", Methods: []string{"POST"}},
			{Pattern: "/jobs/{id}", Methods: []string{"GET"}, Except: []string{aiGenerateSegment}},
		},
	}
}

const aiGenerateSegment = "ai-generate"

// Classify returns the access class of method and path. path may carry a
// query string or be an absolute URL; only its path component is matched.
func (t RouteTable) Classify(method, path string) Access {
	method = strings.ToUpper(method)
	path = normalizePath(path)

	for _, r := range t.Protected {
		if r.matches(method, path) {
			return AccessProtected
		}
	}
	for _, r := range t.Public {
		if r.matches(method, path) {
			return AccessPublic
		}
	}

	return AccessProtected
}

func (r Route) matches(method, path string) bool {
	if len(r.Methods) > 0 && !slices.ContainsFunc(r.Methods, func(m string) bool {
		return strings.EqualFold(m, method)
	}) {
		return false
	}

	if strings.Contains(r.Pattern, "{") {
		return r.matchSegments(path)
	}

	if strings.HasSuffix(r.Pattern, "/") && !r.Exact {
		return strings.HasPrefix(path, r.Pattern)
	}

	return path == r.Pattern
}

func (r Route) matchSegments(path string) bool {
	want := strings.Split(r.Pattern, "/")
	got := strings.Split(path, "/")
	if len(want) != len(got) {
		return false
	}

	for i, w := range want {
		if strings.HasPrefix(w, "{") && strings.HasSuffix(w, "}") {
			if got[i] == "" || slices.Contains(r.Except, got[i]) {
				return false
			}
			continue
		}
		if w != got[i] {
			return false
		}
	}

	return true
}

// normalizePath strips the query string and fragment, and the scheme and host
// of absolute URLs.
func normalizePath(p string) string {
	p = strings.TrimSpace(p)

	if strings.Contains(p, "://") {
		if u, err := url.Parse(p); err == nil {
			p = u.Path
		}
	}

	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}

	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	return p
}
