package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taxglide/taxglide/internal/domain"
	"github.com/taxglide/taxglide/internal/output"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the loaded configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(cmd)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")

			res := svc.Validate(ctxFrom(cmd))
			text, err := output.Validation(res, format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			if !res.OK {
				return domain.NewError(domain.ConfigurationInvalid, "configuration failed validation", nil)
			}
			return nil
		},
	}
}
