// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Command mdrender renders markdown with the site's renderer, so content
// can be checked before it is published.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"portfolio/internal/markdown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mdrender:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		classes string
		blocks  bool
	)

	cmd := &cobra.Command{
		Use:           "mdrender [file]",
		Short:         "Render markdown to an HTML fragment",
		Long:          "Render markdown from a file, or stdin when no file is given, using the same renderer as the site.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []markdown.Option
			switch classes {
			case "site":
				opts = append(opts, markdown.WithClasses(markdown.SiteClasses))
			case "none":
			default:
				return fmt.Errorf("--classes must be \"site\" or \"none\", got %q", classes)
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			parsed := markdown.Parse(input)
			if blocks {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(parsed)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), markdown.New(opts...).RenderBlocks(parsed))
			return err
		},
	}

	cmd.Flags().StringVar(&classes, "classes", "site", `class set to apply: "site" or "none"`)
	cmd.Flags().BoolVar(&blocks, "blocks", false, "print the parsed blocks as JSON instead of HTML")

	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(raw), nil
}
