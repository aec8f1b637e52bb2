// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the APP_, STORAGE_, ALLOCATION_ and LOG_ variables
// named by the struct tags of [StructuredConfig]. Every variable that fails to
// parse is reported, not only the first one.
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	var agg env.AggregateError
	if errors.As(err, &agg) && len(agg.Errors) > 1 {
		return fmt.Errorf("error getting env configs: %w", errors.Join(agg.Errors...))
	}
	return fmt.Errorf("error getting env configs: %w", err)
}
