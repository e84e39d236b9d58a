// Main CLI entrypoint using the cobra command framework.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/delvechio-designs/mortgage-toolkit/internal/calc"
	"github.com/delvechio-designs/mortgage-toolkit/internal/config"
	"github.com/delvechio-designs/mortgage-toolkit/internal/rates"
	"github.com/delvechio-designs/mortgage-toolkit/internal/server"
	"github.com/delvechio-designs/mortgage-toolkit/internal/tracing"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/constants"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/output"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/validation"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const serviceName = "mortgage-toolkit"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mortgage-toolkit",
	Short: "Mortgage and real-estate investment calculators",
	Long: `mortgage-toolkit runs mortgage and real-estate investment calculators:
purchase, refinance, affordability, rent vs buy, VA loans, DSCR, fix & flip,
plus amortization schedules and early-payoff comparisons. Scenarios are
YAML files; the same calculators are also served over a JSON HTTP API.`,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(serveCmd)
}

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mortgage-toolkit %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Calc Command ---

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run the calculator described by a scenario file",
	RunE: func(cmd *cobra.Command, args []string) error {
		configLocation, _ := cmd.Flags().GetString("config")
		outputFormatFlag, _ := cmd.Flags().GetString("output-format")
		logLevel, _ := cmd.Root().PersistentFlags().GetString("log-level")

		conf, err := config.LoadConfiguration(configLocation)
		if err != nil {
			return fmt.Errorf("failed to load configuration at %s: %w", configLocation, err)
		}

		logger, err := initializeLogger(conf.Logging, logLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() {
			_ = logger.Sync()
		}()

		outputFormat := conf.GetOutputFormat()
		if outputFormatFlag != "" {
			outputFormat = outputFormatFlag
		}
		if err := validation.ValidateOutputFormat(outputFormat); err != nil {
			return err
		}

		for _, warning := range conf.ValidateConfiguration() {
			logger.Warn("Configuration warning: "+warning,
				zap.String("op", "main"),
			)
		}

		if err := conf.ValidateCalculator(); err != nil {
			return err
		}

		report, err := runScenario(conf)
		if err != nil {
			return err
		}

		switch outputFormat {
		case constants.OutputFormatPretty:
			output.PrettyFormat(report)
		case constants.OutputFormatCSV:
			output.CsvFormat(report)
		}
		return nil
	},
}

func init() {
	calcCmd.Flags().String("config", constants.DefaultConfigFile, "path to scenario file")
	calcCmd.Flags().String("output-format", "", "type of output override: pretty, csv")
}

// runScenario dispatches to the calculator the scenario names and renders
// its result as a report.
func runScenario(conf *config.Configuration) (output.Report, error) {
	switch conf.Calculator {
	case config.CalculatorPurchase:
		result, err := calc.ComputePurchase(*conf.Purchase)
		if err != nil {
			return output.Report{}, err
		}
		return output.ForResult("Home Purchase", result), nil
	case config.CalculatorRefinance:
		result, err := calc.ComputeRefinance(*conf.Refinance)
		if err != nil {
			return output.Report{}, err
		}
		return output.ForResult("Refinance", result), nil
	case config.CalculatorAffordability:
		result, err := calc.ComputeAffordability(*conf.Affordability)
		if err != nil {
			return output.Report{}, err
		}
		return output.ForResult("Affordability", result), nil
	case config.CalculatorRentVsBuy:
		result, err := calc.ComputeRentVsBuy(*conf.RentVsBuy)
		if err != nil {
			return output.Report{}, err
		}
		return output.ForResult("Rent vs Buy", result), nil
	case config.CalculatorVAPurchase:
		result, err := calc.ComputeVAPurchase(*conf.VAPurchase)
		if err != nil {
			return output.Report{}, err
		}
		return output.ForResult("VA Purchase", result), nil
	case config.CalculatorVARefinance:
		result, err := calc.ComputeVARefinance(*conf.VARefinance)
		if err != nil {
			return output.Report{}, err
		}
		return output.ForResult("VA Refinance (IRRRL)", result), nil
	case config.CalculatorDSCR:
		result, err := calc.ComputeDSCR(*conf.DSCR)
		if err != nil {
			return output.Report{}, err
		}
		return output.ForResult("DSCR", result), nil
	case config.CalculatorFixFlip:
		result, err := calc.ComputeFixFlip(*conf.FixFlip)
		if err != nil {
			return output.Report{}, err
		}
		return output.ForResult("Fix & Flip", result), nil
	case config.CalculatorSchedule:
		entries, err := calc.ComputeSchedule(*conf.Schedule)
		if err != nil {
			return output.Report{}, err
		}
		return output.ForResult("Amortization Schedule", entries), nil
	case config.CalculatorPayoff:
		result, err := calc.ComputePayoff(*conf.Payoff)
		if err != nil {
			return output.Report{}, err
		}
		return output.ForResult("Early Payoff", result), nil
	}
	return output.Report{}, fmt.Errorf("unknown calculator %q", conf.Calculator)
}

// --- Serve Command ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculators over a JSON HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		configLocation, _ := cmd.Flags().GetString("config")
		addressFlag, _ := cmd.Flags().GetString("address")
		logLevel, _ := cmd.Root().PersistentFlags().GetString("log-level")

		cfg, err := server.LoadConfig(configLocation)
		if err != nil {
			return err
		}
		if addressFlag != "" {
			cfg.Address = addressFlag
		}

		logger, err := initializeLogger(cfg.Logging, logLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() {
			_ = logger.Sync()
		}()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		shutdownTracing, err := tracing.Init(ctx, serviceName, cfg.OTELEndpoint)
		if err != nil {
			return fmt.Errorf("failed to initialize tracing: %w", err)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownTracing(flushCtx)
		}()

		rateOpts := []rates.Option{}
		if cfg.RedisAddress != "" {
			ttl := time.Duration(0)
			if cfg.RatesCacheTTL != "" {
				ttl, err = time.ParseDuration(cfg.RatesCacheTTL)
				if err != nil {
					return fmt.Errorf("invalid ratesCacheTTL: %w", err)
				}
			}
			rateOpts = append(rateOpts, rates.WithCache(rates.NewRedisCache(cfg.RedisAddress), ttl))
		} else {
			rateOpts = append(rateOpts, rates.WithCache(rates.NewMemoryCache(), 0))
		}
		rateClient := rates.NewClient(logger, rateOpts...)

		handler := server.NewHandler(logger, cfg, version, rateClient)
		return server.Run(ctx, cfg, handler, logger)
	},
}

func init() {
	serveCmd.Flags().String("config", constants.DefaultServerConfigFile, "path to server config file")
	serveCmd.Flags().String("address", "", "listen address override")
}
