// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// portFallback reads the platform-provided PORT variable that is consulted
// when no other source sets [Server.Port].
type portFallback struct {
	Port int `env:"PORT"`
}

// parseEnv fills cfg from the environment following the env and envPrefix
// tags of [StructuredConfig].
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: reading environment: %w", err)
	}

	return nil
}
