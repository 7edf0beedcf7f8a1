// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/decodiff/decodiff/internal/diff"
)

// WriteJSON emits the comparison result as indented JSON.
func WriteJSON(w io.Writer, res *diff.Result) error {
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	_, err = fmt.Fprintln(w, string(out))
	return err
}

// WriteYAML emits the comparison result as YAML.
func WriteYAML(w io.Writer, res *diff.Result) error {
	out, err := yaml.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	_, err = w.Write(out)
	return err
}
