// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decodiff/decodiff/internal/diff"
	"github.com/decodiff/decodiff/internal/snapshot"
)

func writeExport(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// runApp builds the app, points its writer at a buffer and runs it with the
// given arguments (binary name excluded).
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	argv := append([]string{"decodiff"}, args...)

	app, err := InitApp(context.Background(), argv)
	require.NoError(t, err)

	var buf bytes.Buffer
	app.Writer = &buf

	err = app.Run(context.Background(), argv)
	return buf.String(), err
}

func TestCompare_IdenticalExports(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeExport(t, dir, "old.json", `{"Attack Jewel 1": 3}`)
	newPath := writeExport(t, dir, "new.json", `{"Attack Jewel 1": 3}`)

	out, err := runApp(t, oldPath, newPath)

	require.NoError(t, err)
	assert.Contains(t, out, "identical data")
	assert.NotContains(t, out, "Decoration")
}

func TestCompare_TerminalOutput(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeExport(t, dir, "old.json", `{"A": 5, "B": 0, "C": 10}`)
	newPath := writeExport(t, dir, "new.json", `{"A": 5, "B": 3, "C": 15, "D": 2}`)

	out, err := runApp(t, oldPath, newPath)

	require.NoError(t, err)
	assert.Contains(t, out, "Changes to Existing Decorations:")
	assert.Contains(t, out, "C")
	assert.Contains(t, out, "Total number added (changed decorations): 5")
	assert.Contains(t, out, "Total number added (new decorations): 2")
}

func TestCompare_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeExport(t, dir, "old.json", `{"A": 5, "B": 0, "C": 10}`)
	newPath := writeExport(t, dir, "new.json", `{"A": 5, "B": 3, "C": 15, "D": 2}`)

	out, err := runApp(t, "-o", "json", oldPath, newPath)

	require.NoError(t, err)
	var res diff.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []diff.Change{{Decoration: "C", Added: 5, Total: 15}}, res.Changes)
	assert.Equal(t, 2, res.TotalNew)
}

func TestCompare_YAMLOutput(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeExport(t, dir, "old.json", `{"A": 1}`)
	newPath := writeExport(t, dir, "new.json", `{"A": 3}`)

	out, err := runApp(t, "-o", "yaml", oldPath, newPath)

	require.NoError(t, err)
	assert.Contains(t, out, "total_changed: 2")
}

func TestCompare_RawDiffOutput(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeExport(t, dir, "old.json", `{"A": 1}`)
	newPath := writeExport(t, dir, "new.json", `{"A": 3}`)

	out, err := runApp(t, "-o", "diff", oldPath, newPath)

	require.NoError(t, err)
	assert.Contains(t, out, "A")
}

func TestCompare_TextArtifact(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeExport(t, dir, "old.json", `{"A": 1}`)
	newPath := writeExport(t, dir, "new.json", `{"A": 3, "B": 1}`)
	artifact := filepath.Join(dir, "report")

	out, err := runApp(t, "-q", "-t", artifact, oldPath, newPath)

	require.NoError(t, err)
	assert.Contains(t, out, "saved in the text file")

	content, err := os.ReadFile(artifact + ".txt")
	require.NoError(t, err)
	assert.Contains(t, string(content), "A, added: 2 | 3")
	assert.Contains(t, string(content), "B, amount: 1")
}

func TestCompare_TextArtifactInDirectory(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeExport(t, dir, "old.json", `{"A": 1}`)
	newPath := writeExport(t, dir, "new.json", `{"A": 3}`)

	_, err := runApp(t, "-q", "-t", dir, oldPath, newPath)

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "DecoChanges.txt"))
}

func TestCompare_BothArtifacts(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeExport(t, dir, "old.json", `{"A": 1}`)
	newPath := writeExport(t, dir, "new.json", `{"A": 3}`)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out, err := runApp(t, "-q", "-b", oldPath, newPath)

	require.NoError(t, err)
	assert.Contains(t, out, "saved in the Excel file")
	assert.Contains(t, out, "saved in the text file")
	assert.FileExists(t, filepath.Join(dir, "DecoChanges.xlsx"))
	assert.FileExists(t, filepath.Join(dir, "DecoChanges.txt"))
}

func TestCompare_MissingArguments(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeExport(t, dir, "old.json", `{"A": 1}`)

	_, err := runApp(t, oldPath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected <old_export> <new_export>")
}

func TestCompare_UnsupportedExtensionIsFatal(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeExport(t, dir, "old.csv", `{"A": 1}`)
	newPath := writeExport(t, dir, "new.json", `{"A": 3}`)

	_, err := runApp(t, oldPath, newPath)

	var ufe *snapshot.UnsupportedFormatError
	assert.ErrorAs(t, err, &ufe)
}

func TestCompare_InvalidOutputFlag(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeExport(t, dir, "old.json", `{"A": 1}`)
	newPath := writeExport(t, dir, "new.json", `{"A": 3}`)

	_, err := runApp(t, "-o", "csv", oldPath, newPath)

	assert.Error(t, err)
}
