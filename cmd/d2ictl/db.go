package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/d2ikit/internal/gamedb"
)

func init() {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the sqlite game database",
	}
	cmd.AddCommand(newDBImportCmd())
	rootCmd.AddCommand(cmd)
}

func newDBImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Write the loaded tables into a game database",
		Long: `The import command replaces the props and items relations of the
database at <path> with the currently loaded tables. The file is created if it
does not exist. Load TSV exports with --props/--items to seed a database.

Example:
  d2ictl db import game.sqlite
  d2ictl db import game.sqlite --props ItemStatCost.tsv --items Items.tsv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBImport(cmd.Context(), args)
		},
	}
	return cmd
}

func runDBImport(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	path := args[0]
	printVerbose("Opening database: %s\n", path)

	db, err := gamedb.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Import(ctx, tables.Props, tables.Bases); err != nil {
		return fmt.Errorf("failed to import tables: %w", err)
	}

	if jsonOut {
		result := map[string]any{
			"db":         path,
			"properties": tables.Props.Len(),
			"bases":      tables.Bases.Len(),
			"success":    true,
		}
		return printJSON(result)
	}

	printInfo("\nImporting into %s:\n", path)
	printInfo("  Properties: %d\n", tables.Props.Len())
	printInfo("  Item bases: %d\n", tables.Bases.Len())
	printInfo("\n✓ Tables imported successfully\n")
	return nil
}
