// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variable names come from
// the env and envPrefix tags of [StructuredConfig]; durations use
// time.ParseDuration syntax ("30s").
func parseEnv(cfg *StructuredConfig) error {
	opts := env.Options{Environment: env.ToMap(os.Environ())}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	return nil
}
