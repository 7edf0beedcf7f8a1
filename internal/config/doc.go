// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional decodiff.yaml configuration file and
// exposes typed getters over dotted key paths.
package config
