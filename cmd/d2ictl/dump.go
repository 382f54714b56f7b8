package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/d2ikit/item/printer"
)

var (
	dumpOffsets  bool
	dumpBits     bool
	dumpNoHeader bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpOffsets, "offsets", false, "Show the bit offset of each property")
	cmd.Flags().BoolVar(&dumpBits, "bits", false, "Append the record bits in capture-tool order")
	cmd.Flags().BoolVar(&dumpNoHeader, "no-header", false, "Omit placement, flags and extended fields")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>...",
		Short: "Print item records",
		Long: `The dump command parses each item file and prints its header and
property lists.

Example:
  d2ictl dump ring.d2i
  d2ictl dump ring.d2i --offsets --bits
  d2ictl dump *.d2i --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	opts := printer.DefaultOptions()
	opts.ShowHeader = !dumpNoHeader
	opts.ShowOffsets = dumpOffsets
	opts.ShowBits = dumpBits
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	p := printer.New(tables.Props, os.Stdout, opts)

	for i, path := range args {
		printVerbose("Opening item: %s\n", path)
		rec, err := kit.Open(path)
		if err != nil {
			return err
		}
		if i > 0 && !jsonOut {
			printInfo("\n")
		}
		if err := p.PrintRecord(rec); err != nil {
			return err
		}
	}
	return nil
}
