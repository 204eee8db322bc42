package gateway

import (
	"fmt"
	"net"
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/go-ats-gateway/internal/config"
)

// ResolveBaseURL picks the backend base URL from cfg, first defined wins:
// the public URL, the backend URL (server runtime only), the configured
// client default and finally [config.DefaultBaseURL]. The result is
// normalised by [NormalizeBaseURL].
func ResolveBaseURL(cfg config.API, runtime string) (string, error) {
	candidates := []string{cfg.PublicURL}
	if runtime == config.RuntimeServer {
		candidates = append(candidates, cfg.BackendURL)
	}
	candidates = append(candidates, cfg.DefaultURL)

	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return NormalizeBaseURL(c, cfg.ProductionDomains, cfg.LocalHosts)
		}
	}

	return NormalizeBaseURL(config.DefaultBaseURL, cfg.ProductionDomains, cfg.LocalHosts)
}

// NormalizeBaseURL trims raw, strips trailing slashes and upgrades http to
// https for hosts under one of productionDomains or hosts that are not local.
// localHosts names extra internal service hosts treated like localhost; the
// hosts in [config.DefaultLocalHosts] are always local. An empty
// productionDomains means [config.DefaultProductionDomains].
func NormalizeBaseURL(raw string, productionDomains, localHosts []string) (string, error) {
	if len(productionDomains) == 0 {
		productionDomains = config.DefaultProductionDomains
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	host := strings.ToLower(u.Hostname())
	if strings.EqualFold(u.Scheme, "http") &&
		(isProductionHost(host, productionDomains) || !isLocalHost(host, localHosts)) {
		u.Scheme = "https"
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func isProductionHost(host string, domains []string) bool {
	return slices.ContainsFunc(domains, func(d string) bool {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			return false
		}
		return strings.HasSuffix(host, d) || host == strings.TrimPrefix(d, ".")
	})
}

func isLocalHost(host string, localHosts []string) bool {
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}

	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback() || ip.IsUnspecified()
	}

	isHost := func(h string) bool {
		return strings.EqualFold(strings.TrimSpace(h), host)
	}
	return slices.ContainsFunc(config.DefaultLocalHosts, isHost) || slices.ContainsFunc(localHosts, isHost)
}
