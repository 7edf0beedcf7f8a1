// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"

	"github.com/decodiff/decodiff/internal/config"
	"github.com/decodiff/decodiff/internal/diff"
)

// TableOptions control terminal rendering.
type TableOptions struct {
	Color   bool
	Titles  bool
	Padding int
}

var (
	changedHeaders = []string{"Decoration", "Added", "Total"}
	newHeaders     = []string{"Decoration", "Amount"}
)

// RenderTerminal writes both comparison tables and the totals lines to w.
// If w is nil, os.Stdout is used.
func RenderTerminal(w io.Writer, res *diff.Result, opts TableOptions) {
	if w == nil {
		w = os.Stdout
	}

	// We initialize the table styles.
	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	// And then color styles if --color is present.
	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	var changedRows [][]string
	for _, c := range res.Changes {
		changedRows = append(changedRows, []string{
			c.Decoration,
			humanize.Comma(int64(c.Added)),
			humanize.Comma(int64(c.Total)),
		})
	}

	var newRows [][]string
	for _, n := range res.NewItems {
		newRows = append(newRows, []string{
			n.Decoration,
			humanize.Comma(int64(n.Amount)),
		})
	}

	fmt.Fprintln(w, headerStyle.Render("Changes to Existing Decorations:"))
	renderTable(w, changedRows, changedHeaders, opts, headerStyle, evenRowStyle, oddRowStyle)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Newly Added Decorations:"))
	renderTable(w, newRows, newHeaders, opts, headerStyle, evenRowStyle, oddRowStyle)

	fmt.Fprintf(w, "\nTotal number added (changed decorations): %s\n",
		humanize.Comma(int64(res.TotalChanged)))
	fmt.Fprintf(w, "Total number added (new decorations): %s\n",
		humanize.Comma(int64(res.TotalNew)))
}

func renderTable(w io.Writer, rows [][]string, headers []string,
	opts TableOptions, headerStyle, evenRowStyle, oddRowStyle lipgloss.Style) {

	if len(rows) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(opts.Padding)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}

	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering. Each color is
// selected based on terminal background color and brightness so that output
// stays visible for all(?) terminal themes.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	// Use the explicit color if found in the config and leave it up to the
	// user to choose appropriate colors for their theme. If not found, pick a
	// reasonable default based on terminal background.
	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
