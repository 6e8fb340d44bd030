package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <slug>",
		Short: "Render a page including its FAQ structured data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.buildEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			out, err := env.renderer.RenderPage(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				if err := os.WriteFile(output, out, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", output, len(out))
				return nil
			}
			_, err = w.Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the page to a file instead of stdout")
	return cmd
}
