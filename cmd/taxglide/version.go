package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taxglide/taxglide/internal/output"
	"github.com/taxglide/taxglide/internal/version"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build and schema version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			text, err := output.Version(version.Info(), format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
