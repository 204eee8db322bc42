// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidAPIConfigs)
	}

	switch cfg.Gateway.Runtime {
	case RuntimeClient, RuntimeServer:
	default:
		return fmt.Errorf("%w: unknown runtime %q", ErrInvalidGatewayConfigs, cfg.Gateway.Runtime)
	}

	if !strings.HasPrefix(cfg.Gateway.LoginPath, "/") {
		return fmt.Errorf("%w: login path must be absolute", ErrInvalidGatewayConfigs)
	}

	if cfg.Gateway.RedirectDelay < 0 || cfg.Gateway.SessionRetries < 0 || cfg.Gateway.SessionRetryDelay < 0 {
		return fmt.Errorf("%w: negative retry or delay", ErrInvalidGatewayConfigs)
	}

	if strings.TrimSpace(cfg.Session.Profile) == "" {
		return ErrInvalidSessionConfigs
	}

	if cfg.Gateway.Runtime == RuntimeClient {
		if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
			return ErrInvalidStorageConfigs
		}
	}

	if cfg.Workers.RefreshInterval <= 0 || cfg.Workers.RefreshBefore < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
