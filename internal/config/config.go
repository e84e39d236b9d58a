// Package config defines the scenario file structure and loads and parses
// it. A scenario names one calculator and supplies its inputs, plus logging
// and output settings for the run.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/delvechio-designs/mortgage-toolkit/internal/calc"
	"github.com/delvechio-designs/mortgage-toolkit/pkg/constants"
)

// Calculator names accepted in the scenario file and on the API.
const (
	CalculatorPurchase      = "purchase"
	CalculatorRefinance     = "refinance"
	CalculatorAffordability = "affordability"
	CalculatorRentVsBuy     = "rent-vs-buy"
	CalculatorVAPurchase    = "va-purchase"
	CalculatorVARefinance   = "va-refinance"
	CalculatorDSCR          = "dscr"
	CalculatorFixFlip       = "fix-flip"
	CalculatorSchedule      = "schedule"
	CalculatorPayoff        = "payoff"
)

// Configuration holds one calculator scenario plus run settings.
type Configuration struct {
	Calculator string `yaml:"calculator"`

	Purchase      *calc.PurchaseInput      `yaml:"purchase,omitempty"`
	Refinance     *calc.RefinanceInput     `yaml:"refinance,omitempty"`
	Affordability *calc.AffordabilityInput `yaml:"affordability,omitempty"`
	RentVsBuy     *calc.RentVsBuyInput     `yaml:"rentVsBuy,omitempty"`
	VAPurchase    *calc.VAPurchaseInput    `yaml:"vaPurchase,omitempty"`
	VARefinance   *calc.VARefinanceInput   `yaml:"vaRefinance,omitempty"`
	DSCR          *calc.DSCRInput          `yaml:"dscr,omitempty"`
	FixFlip       *calc.FixFlipInput       `yaml:"fixFlip,omitempty"`
	Schedule      *calc.ScheduleInput      `yaml:"schedule,omitempty"`
	Payoff        *calc.PayoffInput        `yaml:"payoff,omitempty"`

	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// section returns the input block matching the named calculator, or nil when
// the block is absent.
func (conf *Configuration) section() any {
	switch conf.Calculator {
	case CalculatorPurchase:
		if conf.Purchase != nil {
			return conf.Purchase
		}
	case CalculatorRefinance:
		if conf.Refinance != nil {
			return conf.Refinance
		}
	case CalculatorAffordability:
		if conf.Affordability != nil {
			return conf.Affordability
		}
	case CalculatorRentVsBuy:
		if conf.RentVsBuy != nil {
			return conf.RentVsBuy
		}
	case CalculatorVAPurchase:
		if conf.VAPurchase != nil {
			return conf.VAPurchase
		}
	case CalculatorVARefinance:
		if conf.VARefinance != nil {
			return conf.VARefinance
		}
	case CalculatorDSCR:
		if conf.DSCR != nil {
			return conf.DSCR
		}
	case CalculatorFixFlip:
		if conf.FixFlip != nil {
			return conf.FixFlip
		}
	case CalculatorSchedule:
		if conf.Schedule != nil {
			return conf.Schedule
		}
	case CalculatorPayoff:
		if conf.Payoff != nil {
			return conf.Payoff
		}
	}
	return nil
}

// ValidateCalculator checks that the scenario names a known calculator and
// carries the matching input block.
func (conf *Configuration) ValidateCalculator() error {
	switch conf.Calculator {
	case CalculatorPurchase, CalculatorRefinance, CalculatorAffordability,
		CalculatorRentVsBuy, CalculatorVAPurchase, CalculatorVARefinance,
		CalculatorDSCR, CalculatorFixFlip, CalculatorSchedule, CalculatorPayoff:
	case "":
		return fmt.Errorf("scenario must name a calculator")
	default:
		return fmt.Errorf("unknown calculator %q", conf.Calculator)
	}
	if conf.section() == nil {
		return fmt.Errorf("scenario names calculator %q but has no matching input section", conf.Calculator)
	}
	return nil
}

// ValidateConfiguration reports non-fatal warnings about the scenario.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	sections := 0
	for _, present := range []bool{
		conf.Purchase != nil, conf.Refinance != nil, conf.Affordability != nil,
		conf.RentVsBuy != nil, conf.VAPurchase != nil, conf.VARefinance != nil,
		conf.DSCR != nil, conf.FixFlip != nil, conf.Schedule != nil, conf.Payoff != nil,
	} {
		if present {
			sections++
		}
	}
	if sections > 1 {
		warnings = append(warnings, fmt.Sprintf("scenario defines %d input sections; only %q will run", sections, conf.Calculator))
	}

	return warnings
}

// GetOutputFormat returns the configured output format, defaulting to pretty.
func (conf *Configuration) GetOutputFormat() string {
	if conf.Output.Format == "" {
		return constants.OutputFormatPretty
	}
	return conf.Output.Format
}
