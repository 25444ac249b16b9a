// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Outputs lists the accepted values of StructuredConfig.Output.
var Outputs = []string{"json", "yaml", "table"}

// validate checks that the final merged [StructuredConfig] can be used to
// build a client.
func (cfg *StructuredConfig) validate() error {
	if err := validateAddress(cfg.Adapter.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if !isKnownOutput(cfg.Output) {
		return fmt.Errorf("%w: %q", ErrInvalidOutputConfigs, cfg.Output)
	}

	if cfg.Scanner.Workers < 0 {
		return fmt.Errorf("%w: negative worker count", ErrInvalidScannerConfigs)
	}

	return nil
}

func validateAddress(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Host == "" {
		return fmt.Errorf("address must include host")
	}
	return nil
}

func isKnownOutput(output string) bool {
	for _, o := range Outputs {
		if o == output {
			return true
		}
	}
	return false
}
