package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var siteFlag string
	var logModeFlag string

	ctx := newCommandContext(&configFlag, &siteFlag, &logModeFlag)

	rootCmd := &cobra.Command{
		Use:           "faqschema",
		Short:         "Render pages with aggregated FAQPage structured data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (toml, yaml or json)")
	rootCmd.PersistentFlags().StringVar(&siteFlag, "site", "", "Site fixture path, overrides the configured site")
	rootCmd.PersistentFlags().StringVar(&logModeFlag, "log-mode", "", "Log mode: development, production or silent")

	rootCmd.AddCommand(newRenderCommand(ctx))
	rootCmd.AddCommand(newSchemaCommand(ctx))
	rootCmd.AddCommand(newImportCommand(ctx))
	rootCmd.AddCommand(newServeCommand(ctx))

	return rootCmd
}
