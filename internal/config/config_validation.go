// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig] for values that no source
// combination may produce.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.ClipboardTimeout < 0 {
		return ErrInvalidAppConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.ClipboardTimeout < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
