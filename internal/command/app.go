// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/decodiff/decodiff/internal/config"
	"github.com/decodiff/decodiff/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	// A missing config file is fine; flags then keep their built-in values.
	cfg, _ := config.Load() //nolint
	m := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
	}

	app := &cli.Command{
		Name:      "decodiff",
		Usage:     "compare two decoration export snapshots",
		UsageText: "decodiff [options] <old_export> <new_export>",
		Metadata:  map[string]any{"meta": m},
		Flags:     NewCompareFlags(cfg.Source),
		Action:    compareAction,
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}
