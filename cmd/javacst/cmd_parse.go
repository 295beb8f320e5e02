package main

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/dhamidi/javacst/format"
	"github.com/dhamidi/javacst/java/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var configPath string
	var level int
	var capacity int
	var includeComments bool
	var withText bool
	var debug bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .java file and dump the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("level") {
				cfg.LanguageLevel = level
			}
			if cmd.Flags().Changed("capacity") {
				cfg.NodeCapacity = capacity
			}
			if includeComments {
				cfg.IncludeComments = true
			}
			if cfg.Metrics {
				parser.EnableMetrics()
			}
			if debug {
				pp.Fprintln(os.Stderr, cfg)
			}

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read java file: %w", err)
			}

			log.Infof("parsing %s (level %d, capacity %d)",
				filename, cfg.LanguageLevel, cfg.NodeCapacity)

			res, err := parser.Parse(string(data), cfg.parserOptions(filename)...)
			if err != nil {
				return fmt.Errorf("parse java file: %w", err)
			}
			defer res.Release()

			switch outputFormat {
			case "json":
				enc := format.NewASTJSONEncoder(os.Stdout)
				if err := enc.Encode(res); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Println()
			case "tree":
				enc := format.NewASTTreeEncoder(os.Stdout)
				if withText {
					enc = enc.WithText(string(data))
				}
				if err := enc.Encode(res); err != nil {
					return fmt.Errorf("encode tree: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if cfg.Metrics {
				m := parser.SnapshotMetrics()
				log.Noticef("sessions=%d tokens=%d nodes=%d parse=%dns",
					m.Sessions, m.Tokens, m.NodesAllocated, m.ParseNanos)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format: tree or json")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().IntVar(&level, "level", int(parser.MaxLevel), "Java language level (8-25)")
	cmd.Flags().IntVar(&capacity, "capacity", parser.DefaultNodeCapacity, "node capacity for the session")
	cmd.Flags().BoolVar(&includeComments, "comments", false, "collect comment tokens")
	cmd.Flags().BoolVar(&withText, "text", false, "show source text on tree leaves")
	cmd.Flags().BoolVar(&debug, "debug", false, "dump the effective configuration")

	return cmd
}
