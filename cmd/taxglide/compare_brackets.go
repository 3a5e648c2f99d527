package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taxglide/taxglide/internal/output"
)

func compareBracketsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare-brackets",
		Short: "Compare federal and cantonal bracket membership before/after a deduction",
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
			deduction, err := parseDecimalFlag(cmd, "deduction")
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")

			cmp, err := svc.CompareBrackets(ctxFrom(cmd), req, incomeSG, incomeFed, deduction)
			if err != nil {
				return err
			}
			text, err := output.Comparison(cmp, format)
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
	cmd.Flags().String("deduction", "", "deduction to evaluate bracket membership across (required)")
	return cmd
}
