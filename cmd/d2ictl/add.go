package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/d2ikit/item/edit"
)

var (
	addBackup bool
	addDryRun bool
)

func init() {
	cmd := newAddCmd()
	cmd.Flags().BoolVar(&addBackup, "backup", true, "Create backup")
	cmd.Flags().BoolVar(&addDryRun, "dry-run", false, "Verify the edit without writing")
	rootCmd.AddCommand(cmd)
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <file> <id=value[:param]>...",
		Short: "Append properties to an item",
		Long: `The add command appends properties to the end of an item's property
list. Ids may be numbers or names from the property table. A property that is
already present is rejected unless it is repeatable.

Example:
  d2ictl add ring.d2i 79=50
  d2ictl add ring.d2i item_goldbonus=9 80=100
  d2ictl add cap.d2i 97=1:54 --dry-run`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(args)
		},
	}
	return cmd
}

func runAdd(args []string) error {
	ps, err := parseAssignments(args[1:])
	if err != nil {
		return err
	}
	return applyEdit("add", args[0], edit.Delta{Add: ps}, addBackup, addDryRun)
}
