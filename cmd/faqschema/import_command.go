package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-faqschema/pkg/fields/sqlstore"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the site fixture fields into the SQLite field store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			s, err := loadSite(cfg)
			if err != nil {
				return err
			}

			path := strings.TrimSpace(dbPath)
			if path == "" {
				path = cfg.Fields.SQLitePath
			}
			store, err := sqlstore.Open(cmd.Context(), path)
			if err != nil {
				return err
			}
			defer store.Close()

			values := s.Fields()
			skipped, err := store.Import(cmd.Context(), values)
			if err != nil {
				return err
			}

			total := 0
			for _, item := range values {
				total += len(item)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d fields into %s\n", total-len(skipped), store.Path())
			for _, name := range skipped {
				fmt.Fprintf(out, "Skipped %s (not text)\n", name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path, overrides fields.sqlite_path")
	return cmd
}
