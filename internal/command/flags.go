// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewCompareFlags builds the flag set for the compare action. cfgFile is the
// path of the loaded decodiff.yaml, or empty when none was found; when
// present it is appended to the value source chain of the artifact path
// flags so default output locations can live in the config file.
func NewCompareFlags(cfgFile string) []cli.Flag {
	excelFlag := &cli.StringFlag{
		Name:    "excel",
		Aliases: []string{"e"},
		Usage:   "write an Excel workbook to the given path or directory",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("DECODIFF_EXCEL"),
		),
	}

	textFlag := &cli.StringFlag{
		Name:    "text",
		Aliases: []string{"t"},
		Usage:   "write a text report to the given path or directory",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("DECODIFF_TEXT"),
		),
	}

	if cfgFile != "" {
		excelFlag = valueChainFlagFromConfigFile(cfgFile, excelFlag)
		textFlag = valueChainFlagFromConfigFile(cfgFile, textFlag)
	}

	return []cli.Flag{
		excelFlag,
		textFlag,
		&cli.BoolFlag{
			Name:    "both",
			Aliases: []string{"b"},
			Usage:   "write both the Excel and the text report at their default names",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:  "titles",
			Usage: "show column titles with text output",
			Value: false,
		},
		&cli.IntFlag{
			Name:    "padding",
			Aliases: []string{"p"},
			Usage:   "inter-column padding for text output",
			Value:   2,
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "never prompt to open created files",
			Value:   false,
		},
	}
}

// valueChainFlagFromConfigFile adds a config file source to the given flag's
// Sources chain so "excel:" and "text:" keys in decodiff.yaml act as flag
// defaults.
func valueChainFlagFromConfigFile(path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
