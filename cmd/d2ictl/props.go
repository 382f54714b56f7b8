package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/d2ikit/item/printer"
	"github.com/joshuapare/d2ikit/item/props"
)

var propsRepeatable bool

func init() {
	cmd := newPropsCmd()
	cmd.Flags().BoolVar(&propsRepeatable, "repeatable", false, "Only list properties that may repeat")
	rootCmd.AddCommand(cmd)
}

func newPropsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "props [id|name]...",
		Short: "List property definitions",
		Long: `The props command prints the loaded property table: id, name, bias,
value and param widths.

Example:
  d2ictl props
  d2ictl props 79 item_magicbonus
  d2ictl props --db game.sqlite --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProps(args)
		},
	}
	return cmd
}

func runProps(args []string) error {
	var defs []props.Definition
	if len(args) == 0 {
		defs = tables.Props.Definitions()
	} else {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		for _, id := range ids {
			d, err := tables.Props.Require(id)
			if err != nil {
				return err
			}
			defs = append(defs, d)
		}
	}

	if propsRepeatable {
		kept := defs[:0:0]
		for _, d := range defs {
			if d.Repeatable {
				kept = append(kept, d)
			}
		}
		defs = kept
	}

	opts := printer.DefaultOptions()
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return printer.New(tables.Props, os.Stdout, opts).PrintDefinitions(defs)
}
