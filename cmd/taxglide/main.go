// Command taxglide is the CLI surface over internal/taxglide.Service
// (spec.md §6.4). Grounded on cmd/rpgo/main.go in the teacher codebase:
// a cobra root command, one subcommand per core operation, a small
// log-backed Logger, and --debug/--format flags in the same place the
// teacher puts them.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/taxglide/taxglide/internal/domain"
)

// cliLogger implements domain.Logger using the standard log package,
// mirroring the teacher's simpleCLILogger.
type cliLogger struct{ debug bool }

func (l cliLogger) Debugf(format string, args ...any) {
	if l.debug {
		log.Printf("DEBUG: "+format, args...)
	}
}
func (cliLogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (cliLogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (cliLogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "taxglide",
		Short: "Swiss personal income tax calculator and deduction optimiser",
	}
	root.PersistentFlags().String("config", "", "path to a year configuration YAML file")
	root.PersistentFlags().String("canton", "", "canton abbreviation (defaults to the configuration's default_canton)")
	root.PersistentFlags().String("municipality", "", "municipality key (defaults to the configuration's default_municipality)")
	root.PersistentFlags().String("format", "console", "output format: console, json, or csv")
	root.PersistentFlags().Bool("debug", false, "enable debug logging")
	root.PersistentFlags().StringSlice("pick", nil, "optional multiplier codes to include")
	root.PersistentFlags().StringSlice("skip", nil, "multiplier codes to exclude, even if default-selected")
	root.PersistentFlags().String("status", "single", "filing status: single or married_joint")

	root.AddCommand(calcCmd())
	root.AddCommand(optimiseCmd())
	root.AddCommand(scanCmd())
	root.AddCommand(compareBracketsCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(versionCmd())
	return root
}

// exitCodeFor maps a returned error to the exit code table of spec.md §6.4.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	de, ok := domain.AsError(err)
	if !ok {
		fmt.Fprintln(os.Stderr, err)
		return 8
	}
	fmt.Fprintln(os.Stderr, de.Error())
	switch de.Kind {
	case domain.InvalidInput:
		return 2
	case domain.CalculationError:
		return 3
	case domain.ConfigurationMissing:
		return 4
	case domain.ConfigurationInvalid:
		return 5
	case domain.SchemaMismatch:
		return 9
	default:
		return 8
	}
}

func loggerFrom(cmd *cobra.Command) domain.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	return cliLogger{debug: debug}
}

func ctxFrom(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
