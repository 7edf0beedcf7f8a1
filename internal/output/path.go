// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"os"
	"path/filepath"
	"strings"
)

// EnsureExtension normalizes an artifact path. A path naming an existing
// directory gets the default file name joined onto it; a path without the
// expected extension gets the extension appended; anything else is returned
// unchanged.
func EnsureExtension(path, defaultName, ext string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, defaultName+ext)
	}
	if !strings.HasSuffix(strings.ToLower(path), ext) {
		return path + ext
	}
	return path
}
