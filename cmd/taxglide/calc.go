package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taxglide/taxglide/internal/output"
)

func calcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Evaluate the tax kernel once at a given income",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(cmd)
			if err != nil {
				return err
			}
			req, err := requestFrom(cmd)
			if err != nil {
				return err
			}
			incomeSG, incomeFed, err := resolveIncomes(cmd)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")

			bd, err := svc.Calc(ctxFrom(cmd), req, incomeSG, incomeFed)
			if err != nil {
				return err
			}
			text, err := output.Breakdown(bd, format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().String("income", "", "combined taxable income (mutually exclusive with --income-sg/--income-fed)")
	cmd.Flags().String("income-sg", "", "cantonal taxable income")
	cmd.Flags().String("income-fed", "", "federal taxable income")
	return cmd
}
