// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

package excel

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/xuri/excelize/v2"

	"github.com/decodiff/decodiff/internal/diff"
)

const (
	// ChangedSheet holds decorations owned before that grew (or shrank).
	ChangedSheet = "Existing Decorations"
	// NewSheet holds decorations first seen in the newer export.
	NewSheet = "New Decorations"

	// Extra column width so values stay readable under the autofilter
	// dropdown arrow.
	widthSlack = 6
)

// Write renders the comparison into a workbook at path. Sections without
// records are skipped with a notice on w; when both are empty no file is
// written and created is false. If w is nil, os.Stdout is used.
func Write(path string, res *diff.Result, w io.Writer) (created bool, err error) {
	if w == nil {
		w = os.Stdout
	}

	if len(res.Changes) == 0 && len(res.NewItems) == 0 {
		fmt.Fprintln(w, "No changes found between the two specified files. Therefore, no file was created.")
		return false, nil
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Errorf("close workbook: %v", cerr)
		}
	}()

	// The fresh workbook starts with a single default sheet; rename it for
	// the first populated section and add the second as needed.
	firstSheet := f.GetSheetName(0)

	if len(res.Changes) > 0 {
		if err := f.SetSheetName(firstSheet, ChangedSheet); err != nil {
			return false, err
		}
		firstSheet = ""
		if err := writeChangedSheet(f, res.Changes); err != nil {
			return false, err
		}
	} else {
		fmt.Fprintln(w, "No changes to existing decorations compared to previous data. The creation of the 'Existing Decorations' workbook has been skipped.")
	}

	if len(res.NewItems) > 0 {
		if firstSheet != "" {
			if err := f.SetSheetName(firstSheet, NewSheet); err != nil {
				return false, err
			}
		} else if _, err := f.NewSheet(NewSheet); err != nil {
			return false, err
		}
		if err := writeNewSheet(f, res.NewItems); err != nil {
			return false, err
		}
	} else {
		fmt.Fprintln(w, "No new decoration types identified compared to the previous export. The creation of the 'New Decorations' workbook has been skipped.")
	}

	if err := f.SaveAs(path); err != nil {
		return false, err
	}

	return true, nil
}

func writeChangedSheet(f *excelize.File, changes []diff.Change) error {
	rows := make([][]interface{}, 0, len(changes))
	widest := []int{len("Decoration"), len("Added"), len("Total")}
	for _, c := range changes {
		rows = append(rows, []interface{}{c.Decoration, c.Added, c.Total})
		widest[0] = max(widest[0], len(c.Decoration))
		widest[1] = max(widest[1], digits(c.Added))
		widest[2] = max(widest[2], digits(c.Total))
	}

	if err := writeSheet(f, ChangedSheet, []string{"Decoration", "Added", "Total"}, rows, widest); err != nil {
		return err
	}

	// Totals live two rows below the data so the workbook keeps recomputing
	// them when the user edits cells.
	lastRow := len(changes) + 1
	totalRow := lastRow + 2
	if err := f.SetCellValue(ChangedSheet, cell(1, totalRow), "Total number added:"); err != nil {
		return err
	}
	if err := f.SetCellFormula(ChangedSheet, cell(2, totalRow), fmt.Sprintf("SUM(B2:B%d)", lastRow)); err != nil {
		return err
	}
	return f.SetCellFormula(ChangedSheet, cell(3, totalRow), fmt.Sprintf("SUM(C2:C%d)", lastRow))
}

func writeNewSheet(f *excelize.File, items []diff.NewItem) error {
	rows := make([][]interface{}, 0, len(items))
	widest := []int{len("Decoration"), len("Amount")}
	for _, n := range items {
		rows = append(rows, []interface{}{n.Decoration, n.Amount})
		widest[0] = max(widest[0], len(n.Decoration))
		widest[1] = max(widest[1], digits(n.Amount))
	}

	if err := writeSheet(f, NewSheet, []string{"Decoration", "Amount"}, rows, widest); err != nil {
		return err
	}

	lastRow := len(items) + 1
	totalRow := lastRow + 2
	if err := f.SetCellValue(NewSheet, cell(1, totalRow), "Total number added:"); err != nil {
		return err
	}
	if err := f.SetCellFormula(NewSheet, cell(2, totalRow), fmt.Sprintf("SUM(B2:B%d)", lastRow)); err != nil {
		return err
	}
	if err := f.SetCellValue(NewSheet, cell(1, totalRow+1), "Total number added variations:"); err != nil {
		return err
	}
	return f.SetCellFormula(NewSheet, cell(2, totalRow+1), fmt.Sprintf("COUNTA(A2:A%d)", lastRow))
}

// writeSheet fills in the header row, the data rows, the autofilter table,
// the column widths and the frozen header shared by both sheets.
func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}, widest []int) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Font:      &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	for col, header := range headers {
		if err := f.SetCellValue(sheet, cell(col+1, 1), header); err != nil {
			return err
		}
	}
	for i, row := range rows {
		for col, value := range row {
			if err := f.SetCellValue(sheet, cell(col+1, i+2), value); err != nil {
				return err
			}
		}
	}

	lastRow := len(rows) + 1
	if err := f.SetCellStyle(sheet, cell(1, 1), cell(len(headers), 1), headerStyle); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, cell(1, 2), cell(len(headers), lastRow), cellStyle); err != nil {
		return err
	}

	// Standard Excel table without alternating row colors; brings the
	// autofilter with it.
	stripes := false
	if err := f.AddTable(sheet, &excelize.Table{
		Range:          fmt.Sprintf("%s:%s", cell(1, 1), cell(len(headers), lastRow)),
		Name:           tableName(sheet),
		StyleName:      "TableStyleLight1",
		ShowRowStripes: &stripes,
	}); err != nil {
		return err
	}

	for col := range headers {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(widest[col]+widthSlack)); err != nil {
			return err
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func digits(v int) int {
	return len(strconv.Itoa(v))
}

// cell converts 1-based column/row to an A1 reference.
func cell(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		// Only reachable with non-positive coordinates.
		panic(err)
	}
	return name
}

// tableName derives a workbook-unique table name from the sheet name. Table
// names must not contain spaces.
func tableName(sheet string) string {
	name := make([]rune, 0, len(sheet))
	for _, r := range sheet {
		if r != ' ' {
			name = append(name, r)
		}
	}
	return string(name)
}
