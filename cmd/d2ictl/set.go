package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/d2ikit/item/edit"
)

var (
	setOccurrence int
	setBackup     bool
	setDryRun     bool
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().IntVar(&setOccurrence, "occurrence", 0, "Instance to change when the id repeats, counted from 0")
	cmd.Flags().BoolVar(&setBackup, "backup", true, "Create backup")
	cmd.Flags().BoolVar(&setDryRun, "dry-run", false, "Verify the edit without writing")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <id=value[:param]>",
		Short: "Change an existing property",
		Long: `The set command overwrites the value (and param) of a property already
on the item. The property keeps its position in the list.

Example:
  d2ictl set ring.d2i 79=120
  d2ictl set cap.d2i 97=3:54 --occurrence 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	p, err := parseAssignment(args[1])
	if err != nil {
		return err
	}
	c := edit.Change{ID: p.ID, Occurrence: setOccurrence, Value: p.Value, Param: p.Param}
	return applyEdit("set", args[0], edit.Delta{Change: []edit.Change{c}}, setBackup, setDryRun)
}
