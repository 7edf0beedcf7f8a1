// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

// Package output renders a comparison result to the terminal, to a plain
// text file, or to structured json/yaml/diff formats.
package output
