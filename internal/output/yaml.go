// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLTo writes data as a YAML document to the specified writer.
func YAMLTo(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("YAML encoding failed: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("YAML encoding failed: %w", err)
	}
	return nil
}
