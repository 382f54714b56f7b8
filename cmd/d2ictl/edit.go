package main

import (
	"fmt"

	"github.com/joshuapare/d2ikit/item/edit"
	"github.com/joshuapare/d2ikit/pkg/d2i"
)

// applyEdit applies d to the item file at path and reports the outcome.
func applyEdit(action, path string, d edit.Delta, backup, dryRun bool) error {
	printVerbose("Opening item: %s\n", path)

	out, err := kit.ApplyFile(path, d, &d2i.SaveOptions{CreateBackup: backup, DryRun: dryRun})
	if err != nil {
		return fmt.Errorf("failed to %s properties: %w", action, err)
	}

	if jsonOut {
		result := map[string]any{
			"file":       path,
			"action":     action,
			"properties": len(out.Properties),
			"bits":       out.Bits.Len(),
			"dryRun":     dryRun,
			"success":    true,
		}
		return printJSON(result)
	}

	printInfo("\nUpdating %s:\n", path)
	printInfo("  Added: %d, removed: %d, changed: %d\n", len(d.Add), len(d.Remove), len(d.Change))
	printInfo("  Properties: %d (%d bits)\n", len(out.Properties), out.Bits.Len())
	if dryRun {
		printInfo("\n✓ Edit verified (dry run, nothing written)\n")
		return nil
	}
	printInfo("\n✓ Properties updated successfully\n")
	if backup {
		printInfo("Backup created: %s.bak\n", path)
	}
	return nil
}
