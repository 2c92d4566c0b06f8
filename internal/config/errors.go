package config

import "errors"

// Validation errors returned by [GetClientConfig] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an in-memory DSN that would lose the vault on exit).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a negative clipboard timeout).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
