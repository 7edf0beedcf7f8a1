// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

// Package snapshot loads decoration export files into an identifier to
// quantity mapping.
package snapshot
