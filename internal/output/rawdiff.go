// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// RenderRawDiff prints an ASCII JSON diff of the two export documents. This
// is the document-level view; the classified comparison is unaffected by it.
func RenderRawDiff(w io.Writer, before, after []byte, coloring bool) error {
	if len(before) == 0 || len(after) == 0 {
		return nil
	}

	differ := gojsondiff.New()

	delta, err := differ.Compare(before, after)
	if err != nil {
		return fmt.Errorf("failed to compare exports: %w", err)
	}

	if !delta.Modified() {
		fmt.Fprintln(w, "The exports are identical.")
		return nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(before, &jdoc); err != nil {
		return fmt.Errorf("failed to unmarshal export: %w", err)
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       coloring,
	}

	formatter := formatter.NewAsciiFormatter(jdoc, config)
	diffString, err := formatter.Format(delta)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, diffString)
	return nil
}
