package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taxglide/taxglide/internal/domain"
	"github.com/taxglide/taxglide/internal/output"
)

func optimiseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimise",
		Short: "Find the deduction sweet spot over a scan range",
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
			maxDeduction, err := parseDecimalFlag(cmd, "max-deduction")
			if err != nil {
				return err
			}
			step, err := parseDecimalFlag(cmd, "step")
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")

			var toleranceBp *int
			if cmd.Flags().Changed("tolerance-bp") {
				v, _ := cmd.Flags().GetInt("tolerance-bp")
				toleranceBp = &v
			} else if auto, _ := cmd.Flags().GetBool("auto-tolerance"); !auto {
				return domain.NewError(domain.InvalidInput, "either --tolerance-bp or --auto-tolerance is required", nil)
			}

			report, err := svc.Optimise(ctxFrom(cmd), req, incomeSG, incomeFed, maxDeduction, step, toleranceBp)
			if err != nil {
				return err
			}
			text, err := output.Optimisation(report, format)
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
	cmd.Flags().String("max-deduction", "", "largest deduction to scan up to (required)")
	cmd.Flags().String("step", "100", "deduction step size")
	cmd.Flags().Int("tolerance-bp", 0, "pin the plateau tolerance, in basis points, instead of using the adaptive retry schedule")
	cmd.Flags().Bool("auto-tolerance", true, "let adaptive retry pick a tolerance from the schedule for the income band")
	return cmd
}
