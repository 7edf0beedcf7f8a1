// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/decodiff/decodiff/internal/diff"
	"github.com/decodiff/decodiff/internal/excel"
	"github.com/decodiff/decodiff/internal/opener"
	"github.com/decodiff/decodiff/internal/output"
	"github.com/decodiff/decodiff/internal/snapshot"
)

// defaultBaseName is the artifact file name used when a path flag names a
// directory or is set through --both.
const defaultBaseName = "DecoChanges"

// compareAction is the action handler for the root command. It loads both
// exports, classifies the differences and dispatches to the selected
// presenters.
func compareAction(ctx context.Context, cmd *cli.Command) error {
	w := outWriter(cmd)

	args := cmd.Args()
	if args.Len() != 2 {
		return fmt.Errorf("expected <old_export> <new_export>, got %d argument(s)", args.Len())
	}
	oldPath, newPath := args.Get(0), args.Get(1)

	before, err := snapshot.Load(oldPath)
	if err != nil {
		return err
	}
	after, err := snapshot.Load(newPath)
	if err != nil {
		return err
	}

	res, err := diff.Compare(before, after)
	if errors.Is(err, diff.ErrNoDifferences) {
		fmt.Fprintln(w, "The export files contain identical data. The files will not be compared.")
		return nil
	}
	if err != nil {
		return err
	}

	switch cmd.String("output") {
	case "json":
		return output.WriteJSON(w, res)
	case "yaml":
		return output.WriteYAML(w, res)
	case "diff":
		return renderRawDiff(w, cmd, oldPath, newPath)
	}

	excelPath := cmd.String("excel")
	textPath := cmd.String("text")
	if cmd.Bool("both") {
		if excelPath == "" {
			excelPath = defaultBaseName
		}
		if textPath == "" {
			textPath = defaultBaseName
		}
	}

	// No artifact requested: render to the terminal and go home.
	if excelPath == "" && textPath == "" {
		output.RenderTerminal(w, res, output.TableOptions{
			Color:   cmd.Bool("color"),
			Titles:  cmd.Bool("titles"),
			Padding: cmd.Int("padding"),
		})
		return nil
	}

	var created []string
	if excelPath != "" {
		if path, ok := writeExcelArtifact(w, excelPath, res); ok {
			created = append(created, path)
		}
	}
	if textPath != "" {
		if path, ok := writeTextArtifact(w, textPath, res); ok {
			created = append(created, path)
		}
	}

	if !cmd.Bool("quiet") {
		opener.Prompt(created)
	}

	return nil
}

// renderRawDiff re-reads both documents and prints the document-level JSON
// diff.
func renderRawDiff(w io.Writer, cmd *cli.Command, oldPath, newPath string) error {
	before, err := snapshot.ReadDocument(oldPath)
	if err != nil {
		return err
	}
	after, err := snapshot.ReadDocument(newPath)
	if err != nil {
		return err
	}
	return output.RenderRawDiff(w, before, after, cmd.Bool("color"))
}

// writeExcelArtifact writes the workbook, reporting failure without aborting
// the run so the remaining artifact still gets written.
func writeExcelArtifact(w io.Writer, path string, res *diff.Result) (string, bool) {
	path, err := artifactPath(path, ".xlsx")
	if err != nil {
		reportArtifactError(w, path, err)
		return "", false
	}

	created, err := excel.Write(path, res, w)
	if err != nil {
		reportArtifactError(w, path, err)
		return "", false
	}
	if !created {
		return "", false
	}

	fmt.Fprintf(w, "Comparison data saved in the Excel file '%s'.\n", path)
	return path, true
}

func writeTextArtifact(w io.Writer, path string, res *diff.Result) (string, bool) {
	path, err := artifactPath(path, ".txt")
	if err != nil {
		reportArtifactError(w, path, err)
		return "", false
	}

	file, err := os.Create(path)
	if err != nil {
		reportArtifactError(w, path, err)
		return "", false
	}
	defer file.Close()

	if err := output.WriteText(file, res); err != nil {
		reportArtifactError(w, path, err)
		return "", false
	}

	fmt.Fprintf(w, "Comparison data saved in the text file '%s'.\n", path)
	return path, true
}

// artifactPath normalizes the artifact location to an absolute path with the
// right extension and makes sure its directory exists.
func artifactPath(path, ext string) (string, error) {
	path = output.EnsureExtension(path, defaultBaseName, ext)
	path, err := filepath.Abs(path)
	if err != nil {
		return path, err
	}
	return path, os.MkdirAll(filepath.Dir(path), 0o755)
}

func reportArtifactError(w io.Writer, path string, err error) {
	log.Debugf("artifact write err: path=%s err=%v", path, err)
	fmt.Fprintf(w, "Error: could not write '%s': %v. Ensure that the file is not open in another program and that you have the necessary permissions.\n", path, err)
}

// outWriter returns the app writer, falling back to stdout. Tests swap in a
// buffer through the root command's Writer.
func outWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
