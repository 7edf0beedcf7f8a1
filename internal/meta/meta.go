// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/decodiff/decodiff/internal/config"
)

// Meta contains runtime metadata shared with the command action. It carries
// the raw CLI arguments, the loaded configuration and the context the app
// was started with.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
}
