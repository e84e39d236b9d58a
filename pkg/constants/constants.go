// Package constants provides shared constants for the mortgage-toolkit application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// WeeksPerYear is the number of weeks in a year
	WeeksPerYear = 52

	// BiweeklyPaymentsPerYear is the number of biweekly payment periods in a year
	BiweeklyPaymentsPerYear = 26

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// MaxSimulationMonths bounds the payoff simulation loop; a payment that
	// has not retired the balance after 300 years never will.
	MaxSimulationMonths = 3600
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default scenario configuration file name
	DefaultConfigFile = "scenario.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// ConventionalPMICutoffLTV is the loan-to-value percentage above which
	// conventional loans carry private mortgage insurance
	ConventionalPMICutoffLTV = 80.0
)

// Fallback market rates used when the live rate source is unavailable.
const (
	// FallbackRate30Year is the static 30-year fixed rate fallback
	FallbackRate30Year = 6.75

	// FallbackRate15Year is the static 15-year fixed rate fallback
	FallbackRate15Year = 6.10
)
