package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/d2ikit/item/edit"
)

var (
	removeBackup bool
	removeDryRun bool
)

func init() {
	cmd := newRemoveCmd()
	cmd.Flags().BoolVar(&removeBackup, "backup", true, "Create backup")
	cmd.Flags().BoolVar(&removeDryRun, "dry-run", false, "Verify the edit without writing")
	rootCmd.AddCommand(cmd)
}

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <file> <id>...",
		Short: "Remove properties from an item",
		Long: `The remove command drops every instance of each listed property id.
Ids that are not present are ignored.

Example:
  d2ictl remove ring.d2i 79
  d2ictl remove ring.d2i item_goldbonus item_magicbonus`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args)
		},
	}
	return cmd
}

func runRemove(args []string) error {
	ids, err := parseIDs(args[1:])
	if err != nil {
		return err
	}
	return applyEdit("remove", args[0], edit.Delta{Remove: ids}, removeBackup, removeDryRun)
}
