// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

// Package opener prompts for and launches created report files with the
// platform file opener.
package opener
