package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/d2ikit/internal/logger"
	"github.com/joshuapare/d2ikit/item/batch"
	"github.com/joshuapare/d2ikit/item/edit"
	"github.com/joshuapare/d2ikit/pkg/d2i"
)

var (
	batchAdd      string
	batchRemove   string
	batchFailFast bool
	batchBackup   bool
	batchDryRun   bool
)

func init() {
	cmd := newBatchCmd()
	cmd.Flags().StringVar(&batchAdd, "add", "", "Comma-separated id=value[:param] list to add")
	cmd.Flags().StringVar(&batchRemove, "remove", "", "Comma-separated id list to remove")
	cmd.Flags().BoolVar(&batchFailFast, "fail-fast", false, "Stop after the first failed file")
	cmd.Flags().BoolVar(&batchBackup, "backup", true, "Create backups")
	cmd.Flags().BoolVar(&batchDryRun, "dry-run", false, "Verify the edits without writing")
	rootCmd.AddCommand(cmd)
}

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Apply one edit to many items",
		Long: `The batch command applies the same removals and additions to every
listed item file concurrently. Each file is verified and written on its own;
a failure in one file does not affect the others unless --fail-fast is set.

Example:
  d2ictl batch --add 79=50,80=25 stash/*.d2i
  d2ictl batch --remove 79 --add 79=100 --workers 8 stash/*.d2i
  d2ictl batch --add 80=10 --dry-run --json a.d2i b.d2i`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.Context(), args)
		},
	}
	return cmd
}

type batchResult struct {
	File       string `json:"file"`
	Success    bool   `json:"success"`
	Properties int    `json:"properties,omitempty"`
	Error      string `json:"error,omitempty"`
}

func runBatch(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var d edit.Delta
	var err error
	if d.Add, err = parseAssignments(splitList(batchAdd)); err != nil {
		return err
	}
	if d.Remove, err = parseIDs(splitList(batchRemove)); err != nil {
		return err
	}
	if d.Empty() {
		return errors.New("nothing to do: pass --add and/or --remove")
	}

	saveOpts := &d2i.SaveOptions{CreateBackup: batchBackup, DryRun: batchDryRun}
	results, runErr := batch.Run(ctx, args, func(_ context.Context, path string) (int, error) {
		out, err := kit.ApplyFile(path, d, saveOpts)
		if err != nil {
			return 0, err
		}
		return len(out.Properties), nil
	}, batch.Options{
		Workers:  cfg.Workers,
		FailFast: batchFailFast,
		Logger:   logger.L,
	})

	report := make([]batchResult, len(results))
	for i, r := range results {
		report[i] = batchResult{File: args[r.Index], Success: r.Err == nil, Properties: r.Value}
		if r.Err != nil {
			report[i].Error = r.Err.Error()
		}
	}

	if jsonOut {
		if err := printJSON(report); err != nil {
			return err
		}
	} else {
		for _, r := range report {
			if r.Success {
				printInfo("✓ %s (%d properties)\n", r.File, r.Properties)
			} else {
				printInfo("✗ %s: %s\n", r.File, r.Error)
			}
		}
	}

	if runErr != nil {
		return runErr
	}
	if failed := batch.Failed(results); len(failed) > 0 {
		return fmt.Errorf("%d of %d items failed", len(failed), len(results))
	}
	return nil
}
