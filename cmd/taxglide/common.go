package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/taxglide/taxglide/internal/domain"
	"github.com/taxglide/taxglide/internal/taxglide"
)

func loadService(cmd *cobra.Command) (*taxglide.Service, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return nil, domain.NewError(domain.ConfigurationMissing, "--config is required", nil)
	}
	return taxglide.Load(path, loggerFrom(cmd))
}

func requestFrom(cmd *cobra.Command) (taxglide.Request, error) {
	canton, _ := cmd.Flags().GetString("canton")
	municipality, _ := cmd.Flags().GetString("municipality")
	status, _ := cmd.Flags().GetString("status")
	picks, _ := cmd.Flags().GetStringSlice("pick")
	skips, _ := cmd.Flags().GetStringSlice("skip")

	fs := domain.FilingStatus(status)
	if !fs.Valid() {
		return taxglide.Request{}, domain.NewError(domain.InvalidInput, "unknown --status: "+status, nil)
	}

	return taxglide.Request{
		Canton:       canton,
		Municipality: municipality,
		Status:       fs,
		Picks:        picks,
		Skips:        skips,
	}, nil
}

func parseDecimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return decimal.Zero, domain.NewError(domain.InvalidInput, "--"+name+" is required", nil)
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.NewError(domain.InvalidInput, "invalid --"+name+": "+s, err)
	}
	return v, nil
}

// resolveIncomes implements the --income XOR (--income-sg + --income-fed)
// rule of spec.md §6.4.
func resolveIncomes(cmd *cobra.Command) (incomeSG, incomeFed decimal.Decimal, err error) {
	income, _ := cmd.Flags().GetString("income")
	incomeSGFlag, _ := cmd.Flags().GetString("income-sg")
	incomeFedFlag, _ := cmd.Flags().GetString("income-fed")

	combinedSet := income != ""
	splitSet := incomeSGFlag != "" || incomeFedFlag != ""

	switch {
	case combinedSet && splitSet:
		return decimal.Zero, decimal.Zero, domain.NewError(domain.InvalidInput, "--income cannot be combined with --income-sg/--income-fed", nil)
	case combinedSet:
		v, err := decimal.NewFromString(income)
		if err != nil {
			return decimal.Zero, decimal.Zero, domain.NewError(domain.InvalidInput, "invalid --income: "+income, err)
		}
		return v, v, nil
	case splitSet:
		if incomeSGFlag == "" || incomeFedFlag == "" {
			return decimal.Zero, decimal.Zero, domain.NewError(domain.InvalidInput, "both --income-sg and --income-fed are required together", nil)
		}
		sg, err := decimal.NewFromString(incomeSGFlag)
		if err != nil {
			return decimal.Zero, decimal.Zero, domain.NewError(domain.InvalidInput, "invalid --income-sg: "+incomeSGFlag, err)
		}
		fed, err := decimal.NewFromString(incomeFedFlag)
		if err != nil {
			return decimal.Zero, decimal.Zero, domain.NewError(domain.InvalidInput, "invalid --income-fed: "+incomeFedFlag, err)
		}
		return sg, fed, nil
	default:
		return decimal.Zero, decimal.Zero, domain.NewError(domain.InvalidInput, "one of --income or --income-sg/--income-fed is required", nil)
	}
}
