// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

// Package command wires the CLI surface: flag definitions, validation and
// the compare action.
package command
