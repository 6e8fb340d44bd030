package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSchemaCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "schema <slug>",
		Short: "Print only the FAQ structured data block of a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.buildEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			footer, err := env.renderer.Footer(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if footer == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "No FAQ items with both question and answer on this page")
				return nil
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), footer)
			return err
		},
	}
}
