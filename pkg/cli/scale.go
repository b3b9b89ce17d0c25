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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/portion/pkg/recipe"
	"github.com/mchmarny/portion/pkg/scale"
)

func scaleCmd() *cli.Command {
	return &cli.Command{
		Name:                  "scale",
		EnableShellCompletion: true,
		Usage:                 "Scale ingredient lines or a recipe to a new number of servings",
		ArgsUsage:             "[LINE...]",
		Description: `Scale ingredient lines from a serving count to another:

  portion scale --from 4 --to 6 "2 dl mjölk" "3 ägg"

Lines are read from stdin when none are given as arguments. A recipe
document (YAML or JSON, file path or HTTP/HTTPS URL) can be scaled as a
whole with --recipe, in which case its own servings are the starting point.

Lines whose quantity cannot be read are returned unchanged.`,
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:  "from",
				Usage: "original number of servings of the lines",
			},
			&cli.FloatFlag{
				Name:     "to",
				Usage:    "target number of servings",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "recipe",
				Aliases: []string{"f"},
				Usage:   "path or URL of a recipe document to scale instead of lines",
			},
			&cli.BoolFlag{
				Name:  "shopping-list",
				Usage: "output the scaled recipe as a flat shopping list (requires --recipe)",
			},
			localeFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			b, err := recipe.NewBuilder(recipe.WithVersion(version))
			if err != nil {
				return fmt.Errorf("failed to create scaling engine: %w", err)
			}
			defer b.Close()

			var out any
			if path := cmd.String("recipe"); path != "" {
				out, err = scaleRecipe(ctx, cmd, b, path)
			} else {
				out, err = scaleLines(ctx, cmd, b)
			}
			if err != nil {
				return err
			}

			return writeOutput(ctx, cmd, outFormat, out)
		},
	}
}

func scaleRecipe(ctx context.Context, cmd *cli.Command, b *recipe.Builder, path string) (any, error) {
	rec, err := recipe.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe from %q: %w", path, err)
	}
	if cmd.IsSet("from") {
		slog.Debug("recipe servings take precedence over --from",
			"from", cmd.Float("from"), "servings", rec.Servings)
	}

	res, err := b.Scale(ctx, rec, cmd.Float("to"), cmd.String("locale"))
	if err != nil {
		return nil, fmt.Errorf("error scaling recipe: %w", err)
	}

	if cmd.Bool("shopping-list") {
		return res.ShoppingList(), nil
	}
	return res, nil
}

func scaleLines(ctx context.Context, cmd *cli.Command, b *recipe.Builder) (any, error) {
	if cmd.Bool("shopping-list") {
		return nil, fmt.Errorf("--shopping-list requires --recipe")
	}

	from, to := cmd.Float("from"), cmd.Float("to")
	if !cmd.IsSet("from") || from <= 0 {
		return nil, fmt.Errorf("--from must be a positive number of servings")
	}
	if to <= 0 {
		return nil, fmt.Errorf("--to must be a positive number of servings")
	}

	texts, err := readLines(cmd)
	if err != nil {
		return nil, err
	}

	lines := make([]scale.Line, 0, len(texts))
	for _, t := range texts {
		lines = append(lines, scale.TextLine(t))
	}

	sc := scale.NewContext(from, to)
	scaled, err := b.ScaleLines(ctx, lines, sc, cmd.String("locale"))
	if err != nil {
		return nil, fmt.Errorf("error scaling lines: %w", err)
	}

	return &recipe.ScaleResponse{
		From:   from,
		To:     to,
		Factor: sc.Factor(),
		Lines:  scaled,
	}, nil
}
