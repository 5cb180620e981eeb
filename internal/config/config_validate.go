// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/catalogcharts/internal/validation"
)

// Validate checks struct tags first, then rules tags cannot express.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}
	return c.validateCORS()
}

// validateCORS accepts either a lone "*" or a list of http(s) origins.
func (c *Config) validateCORS() error {
	hasWildcard := false
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			hasWildcard = true
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ORIGINS entry %q must start with http:// or https://", origin)
		}
	}
	if hasWildcard && len(c.Security.CORSOrigins) > 1 {
		return fmt.Errorf("CORS_ORIGINS cannot mix '*' with explicit origins")
	}
	return nil
}
