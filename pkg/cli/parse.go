// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/portion/pkg/header"
	"github.com/mchmarny/portion/pkg/quantity"
	"github.com/mchmarny/portion/pkg/recipe"
)

// ParseResult lists how each input line was read.
type ParseResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Lines []ParsedLine `json:"lines" yaml:"lines"`
}

// ParsedLine is one line split into quantity and name, with the quantity read.
type ParsedLine struct {
	Line     string          `json:"line" yaml:"line"`
	Quantity string          `json:"quantity" yaml:"quantity"`
	Name     string          `json:"name" yaml:"name"`
	Parsed   quantity.Parsed `json:"parsed" yaml:"parsed"`
}

// TableHeader implements serializer.Tabular.
func (p *ParseResult) TableHeader() []string {
	return []string{"LINE", "QUANTITY", "NAME", "AMOUNT", "UNIT", "SCALABLE"}
}

// TableRows implements serializer.Tabular.
func (p *ParseResult) TableRows() [][]string {
	rows := make([][]string, 0, len(p.Lines))
	for _, l := range p.Lines {
		amount := ""
		if l.Parsed.Parseable {
			amount = quantity.FormatParsed(l.Parsed)
		}
		rows = append(rows, []string{
			l.Line,
			l.Quantity,
			l.Name,
			amount,
			l.Parsed.Unit,
			strconv.FormatBool(l.Parsed.Parseable),
		})
	}
	return rows
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Show how ingredient lines are split and read, without scaling",
		ArgsUsage:             "[LINE...]",
		Description: `Split each line into its quantity and name parts and show the amount,
unit and approximation marker read from the quantity:

  portion parse "ca 1 1/2 dl mjölk" "2 cups flour" --format table

Lines are read from stdin when none are given as arguments.`,
		Flags: []cli.Flag{
			localeFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			texts, err := readLines(cmd)
			if err != nil {
				return err
			}

			b, err := recipe.NewBuilder(recipe.WithVersion(version))
			if err != nil {
				return fmt.Errorf("failed to create scaling engine: %w", err)
			}
			defer b.Close()

			eng, err := b.EngineFor(cmd.String("locale"))
			if err != nil {
				return fmt.Errorf("invalid locale: %w", err)
			}

			res := &ParseResult{Lines: make([]ParsedLine, 0, len(texts))}
			for _, t := range texts {
				split, parsed := eng.Read(t)
				res.Lines = append(res.Lines, ParsedLine{
					Line:     t,
					Quantity: split.Quantity,
					Name:     split.Name,
					Parsed:   parsed,
				})
			}
			res.Init(header.KindParseResult, version)

			return writeOutput(ctx, cmd, outFormat, res)
		},
	}
}
