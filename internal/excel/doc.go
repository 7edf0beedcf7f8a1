// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

// Package excel writes a comparison result to an Excel workbook with one
// sheet per record class and live total formulas.
package excel
