// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

// Package diff classifies the differences between two decoration snapshots
// into new and changed decorations and computes the aggregate totals.
package diff
