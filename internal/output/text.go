// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/decodiff/decodiff/internal/diff"
)

// WriteText writes the comparison in the plain-text report layout: a banner
// per section, one line per record, then the two totals. Records arrive
// sorted from the comparison, so lines come out in decoration order.
func WriteText(w io.Writer, res *diff.Result) error {
	var b strings.Builder

	if len(res.Changes) > 0 {
		b.WriteString("-----Changes to Existing Decorations-----\n")
		for _, c := range res.Changes {
			fmt.Fprintf(&b, "%s, added: %d | %d\n", c.Decoration, c.Added, c.Total)
		}
	} else {
		b.WriteString("-----No Changes to Existing Decorations-----\n")
	}

	if len(res.NewItems) > 0 {
		b.WriteString("\n-----Newly Added Decorations-----\n")
		for _, n := range res.NewItems {
			fmt.Fprintf(&b, "%s, amount: %d\n", n.Decoration, n.Amount)
		}
	} else {
		b.WriteString("\n-----No Newly Added Decorations-----\n")
	}

	fmt.Fprintf(&b, "\nTotal added (changed decorations): %d\n", res.TotalChanged)
	fmt.Fprintf(&b, "Total added (new decorations): %d\n", res.TotalNew)

	_, err := io.WriteString(w, b.String())
	return err
}
