// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
)

// AcceptedExtensions lists the export file extensions the loader accepts.
// The in-game exporter writes .json, older exporter builds wrote .txt with
// the same JSON payload inside.
var AcceptedExtensions = []string{".json", ".txt"}

// warningMarker prefixes the disclaimer line some exporter versions prepend
// to the JSON document.
const warningMarker = "WARNING:"

// Snapshot is a point-in-time mapping of decoration identifier to owned
// quantity. Treat a loaded Snapshot as read-only.
type Snapshot map[string]int

// Get returns the quantity for id, or 0 when id is absent.
func (s Snapshot) Get(id string) int {
	return s[id]
}

// UnsupportedFormatError reports an export path whose extension is not in
// AcceptedExtensions.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("file extension not supported for %s (supported: %s)",
		e.Path, strings.Join(AcceptedExtensions, ", "))
}

// ParseError reports export content that is not a flat JSON object after the
// warning marker has been stripped.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse export %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MalformedSnapshotError reports a decoration whose quantity is not an
// integer. The comparison cannot produce a partial result from such an
// export, so callers must treat this as fatal.
type MalformedSnapshotError struct {
	Path       string
	Decoration string
	Value      string
}

func (e *MalformedSnapshotError) Error() string {
	return fmt.Sprintf("malformed quantity for %q in %s: %s",
		e.Decoration, e.Path, e.Value)
}

// Load reads the export file at path into a Snapshot.
func Load(path string) (Snapshot, error) {
	raw, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(raw) {
		return nil, &ParseError{Path: path, Err: errors.New("invalid JSON")}
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, &ParseError{Path: path, Err: errors.New("export is not a flat object")}
	}

	snap := Snapshot{}
	var malformed error
	doc.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Number || value.Num != math.Trunc(value.Num) {
			malformed = &MalformedSnapshotError{
				Path:       path,
				Decoration: key.String(),
				Value:      value.Raw,
			}
			return false
		}
		snap[key.String()] = int(value.Num)
		return true
	})
	if malformed != nil {
		return nil, malformed
	}

	log.Debugf("loaded export: path=%s decorations=%d", path, len(snap))
	return snap, nil
}

// ReadDocument reads the export file at path and returns the raw JSON
// document with any leading warning line removed. Used directly by the raw
// diff output mode, which wants the document rather than the parsed mapping.
func ReadDocument(path string) ([]byte, error) {
	if !extensionAccepted(path) {
		return nil, &UnsupportedFormatError{Path: path}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return stripWarning(content), nil
}

// stripWarning discards the first line when the document starts with the
// exporter's warning marker.
func stripWarning(content []byte) []byte {
	if !bytes.HasPrefix(content, []byte(warningMarker)) {
		return content
	}
	if i := bytes.IndexByte(content, '\n'); i >= 0 {
		return content[i+1:]
	}
	return nil
}

func extensionAccepted(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, accepted := range AcceptedExtensions {
		if ext == accepted {
			return true
		}
	}
	return false
}
