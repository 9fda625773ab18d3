package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nestquest/internal/calc"
	"nestquest/internal/logging"
	"nestquest/internal/taxtable"
)

var (
	// Global flags
	verbose    bool
	tablesPath string
	jsonOutput bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "nestquest",
	Short: "Compare job offers by take-home pay and time to financial independence",
	Long: `nestquest computes total compensation, progressive federal, state and local
tax, effective salary, a yearly budget and FIRE projections for job offers.

Offers are read from a YAML file; see "nestquest summary --help".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New("cli", verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&tablesPath, "tables", "", "Reference table file (YAML or JSON); defaults to the bundled tables")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of text")

	summaryCmd.Flags().StringVarP(&offersPath, "offers", "f", "offers.yaml", "Offers file")
	compareCmd.Flags().StringVarP(&offersPath, "offers", "f", "offers.yaml", "Offers file")

	tablesCmd.AddCommand(tablesValidateCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(locationsCmd)
	rootCmd.AddCommand(tablesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadCalculator() (*calc.Calculator, error) {
	var (
		tables *taxtable.Tables
		err    error
	)
	if tablesPath == "" {
		tables, err = taxtable.Default()
	} else {
		tables, err = taxtable.Load(tablesPath)
	}
	if err != nil {
		return nil, fmt.Errorf("load reference tables: %w", err)
	}
	logger.Debug("reference tables loaded", zap.String("path", tablesPath), zap.Int("locations", len(tables.Locations())))
	return calc.New(tables), nil
}
