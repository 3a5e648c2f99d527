package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taxglide/taxglide/internal/optimize"
	"github.com/taxglide/taxglide/internal/output"
	"github.com/taxglide/taxglide/internal/tui"
)

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Produce the deduction scan table",
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
			interactive, _ := cmd.Flags().GetBool("interactive")
			format, _ := cmd.Flags().GetString("format")

			rows, err := svc.Scan(ctxFrom(cmd), req, incomeSG, incomeFed, maxDeduction, step, true)
			if err != nil {
				return err
			}

			if interactive {
				toleranceBp := 25
				plateau, perr := optimize.DetectPlateau(rows, toleranceBp)
				if perr != nil {
					plateau.MinD = maxDeduction
					plateau.MaxD = maxDeduction
				}
				return tui.Run(rows, plateau)
			}

			text, err := output.ScanRows(rows, format)
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
	cmd.Flags().Bool("interactive", false, "open the scan results in an interactive terminal viewer")
	return cmd
}
