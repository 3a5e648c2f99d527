// Package taxglide is the façade between the loaded configuration and the
// six core operations (spec.md §6.2). cmd/taxglide is the only caller of
// this package in this repository, mirroring how the teacher's cmd/rpgo
// holds the only CalculationEngine in that codebase.
package taxglide

import (
	"context"

	"github.com/taxglide/taxglide/internal/compare"
	"github.com/taxglide/taxglide/internal/config"
	"github.com/taxglide/taxglide/internal/domain"
	"github.com/taxglide/taxglide/internal/moneydec"
	"github.com/taxglide/taxglide/internal/optimize"
	"github.com/taxglide/taxglide/internal/taxengine"
	"github.com/taxglide/taxglide/internal/version"
)

// Service wraps a loaded configuration and exposes calc/optimise/scan/
// compare_brackets/validate/version as methods.
type Service struct {
	Config *domain.Configuration
	Logger domain.Logger
}

// New constructs a Service. logger may be nil, in which case a NopLogger is
// used.
func New(cfg *domain.Configuration, logger domain.Logger) *Service {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Service{Config: cfg, Logger: logger}
}

// Load reads and validates a configuration file, then wraps it in a
// Service.
func Load(path string, logger domain.Logger) (*Service, error) {
	cfg, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	return New(cfg, logger), nil
}

// Request carries the canton/municipality/filing-status/multiplier
// selection shared by Calc, Optimise, and Scan.
type Request struct {
	Canton       string
	Municipality string
	Status       domain.FilingStatus
	Picks        []string
	Skips        []string
}

func (s *Service) kernel(req Request) (taxengine.Kernel, domain.FilingStatus, error) {
	canton, ok := s.Config.Canton(req.Canton)
	if !ok {
		return taxengine.Kernel{}, "", domain.NewError(domain.InvalidInput, "unknown canton", nil)
	}
	muni, ok := s.Config.Municipality(canton, req.Municipality)
	if !ok {
		return taxengine.Kernel{}, "", domain.NewError(domain.InvalidInput, "unknown municipality", nil)
	}

	status := req.Status
	if status == "" {
		status = domain.FilingSingle
	}
	if !status.Valid() {
		return taxengine.Kernel{}, "", domain.NewError(domain.InvalidInput, "unknown filing status", nil)
	}

	fedTable, ok := s.Config.FederalTableFor(status)
	if !ok {
		return taxengine.Kernel{}, "", domain.NewError(domain.ConfigurationMissing, "no federal table for filing status", nil)
	}

	return taxengine.Kernel{
		Federal:  taxengine.FederalEvaluator{Table: fedTable},
		Cantonal: taxengine.CantonalEvaluator{Canton: canton},
		Muni:     muni,
	}, status, nil
}

// Calc evaluates the tax kernel once, at incomeSG/incomeFed (spec.md §6.2
// calc).
func (s *Service) Calc(ctx context.Context, req Request, incomeSG, incomeFed moneydec.Decimal) (domain.TaxBreakdown, error) {
	k, status, err := s.kernel(req)
	if err != nil {
		return domain.TaxBreakdown{}, err
	}
	bd, err := k.Evaluate(incomeSG, incomeFed, status, req.Picks, req.Skips)
	if err != nil {
		return domain.TaxBreakdown{}, err
	}
	for _, w := range bd.Warnings {
		s.Logger.Warnf("%s", w)
	}
	return bd, nil
}

// Optimise runs the deduction-optimisation pipeline (spec.md §6.2
// optimise).
func (s *Service) Optimise(ctx context.Context, req Request, incomeSG, incomeFed, maxDeduction, step moneydec.Decimal, toleranceBp *int) (domain.OptimisationReport, error) {
	k, status, err := s.kernel(req)
	if err != nil {
		return domain.OptimisationReport{}, err
	}
	report, err := optimize.Optimise(ctx, k, optimize.Options{
		IncomeSG:             incomeSG,
		IncomeFed:            incomeFed,
		Status:               status,
		Picks:                req.Picks,
		Skips:                req.Skips,
		MaxDeduction:         maxDeduction,
		Step:                 step,
		RequestedToleranceBp: toleranceBp,
	})
	if err != nil {
		return domain.OptimisationReport{}, err
	}
	if !report.SweetSpot.FederalBracketChanged {
		s.Logger.Infof("sweet spot deduction %s saves %s", report.SweetSpot.Deduction.StringFixed(0), report.SweetSpot.TaxSavedAbsolute.StringFixed(2))
	}
	return report, nil
}

// Scan produces the deduction scan table (spec.md §6.2 scan).
func (s *Service) Scan(ctx context.Context, req Request, incomeSG, incomeFed, maxDeduction, step moneydec.Decimal, includeMarginal bool) ([]domain.ScanRow, error) {
	k, status, err := s.kernel(req)
	if err != nil {
		return nil, err
	}
	return optimize.Scan(ctx, k, incomeSG, incomeFed, status, req.Picks, req.Skips, maxDeduction, step, includeMarginal)
}

// CompareBrackets reports before/after federal and cantonal bracket
// membership across a deduction (spec.md §6.2 compare_brackets).
func (s *Service) CompareBrackets(ctx context.Context, req Request, incomeSG, incomeFed, deduction moneydec.Decimal) (domain.BracketComparison, error) {
	k, _, err := s.kernel(req)
	if err != nil {
		return domain.BracketComparison{}, err
	}
	engine := compare.Engine{Federal: k.Federal, Cantonal: k.Cantonal}
	return engine.Compare(incomeFed, incomeSG, deduction)
}

// Validate re-validates the loaded configuration (spec.md §6.2 validate).
func (s *Service) Validate(ctx context.Context) domain.ValidationResult {
	issues := config.Validate(s.Config)
	return domain.ValidationResult{OK: len(issues) == 0, Issues: issues}
}

// Version returns the build/schema version metadata (spec.md §6.2
// version).
func (s *Service) Version(ctx context.Context) domain.VersionInfo {
	return version.Info()
}
