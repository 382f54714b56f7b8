package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/d2ikit/item/verify"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <file>...",
		Short: "Check item records for layout errors",
		Long: `The verify command parses each item file and checks that the body is
byte aligned with zero padding, that the property list ends in a sentinel, and
that writing the record back reproduces the same bits.

Example:
  d2ictl verify ring.d2i
  d2ictl verify *.d2i --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
	return cmd
}

type verifyResult struct {
	File  string `json:"file"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func runVerify(args []string) error {
	results := make([]verifyResult, 0, len(args))
	invalid := 0
	for _, path := range args {
		printVerbose("Verifying item: %s\n", path)
		res := verifyResult{File: path, Valid: true}

		rec, err := kit.Open(path)
		if err == nil {
			err = verify.Record(rec, kit.Parser)
		}
		if err != nil {
			res.Valid = false
			res.Error = err.Error()
			invalid++
		}
		results = append(results, res)
	}

	if jsonOut {
		if err := printJSON(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				printInfo("✓ %s\n", r.File)
			} else {
				printInfo("✗ %s: %s\n", r.File, r.Error)
			}
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d items failed verification", invalid, len(args))
	}
	return nil
}
