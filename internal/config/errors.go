package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid backend settings
	// (for example, a non-positive request timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidGatewayConfigs indicates invalid pipeline settings
	// (for example, an unknown runtime or a relative login path).
	ErrInvalidGatewayConfigs = errors.New("invalid gateway configuration")
	// ErrInvalidSessionConfigs indicates invalid session settings
	// (for example, an empty profile name).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN in client runtime).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
