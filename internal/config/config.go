// Package config defines the data structures related to configuration and
// includes functions for loading and interpreting the config.
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/iwvelando/mortgage-payoff/pkg/constants"
	"github.com/iwvelando/mortgage-payoff/pkg/datetime"
	"github.com/iwvelando/mortgage-payoff/pkg/mortgage"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-payoff.
type Configuration struct {
	Mortgage MortgageConfig `mapstructure:"mortgage" yaml:"mortgage"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging,omitempty"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format,omitempty"` // pretty, csv, summary
}

// MortgageConfig holds the loan state as a person would enter it. The
// interest rate is a percentage (2.25 means 2.25%).
type MortgageConfig struct {
	Balance         float64 `mapstructure:"balance" yaml:"balance"`
	InterestRate    float64 `mapstructure:"interestRate" yaml:"interestRate"`
	MonthlyPayment  float64 `mapstructure:"monthlyPayment" yaml:"monthlyPayment"`
	ExtraPrincipal  float64 `mapstructure:"extraPrincipal" yaml:"extraPrincipal,omitempty"`
	NextPaymentDate string  `mapstructure:"nextPaymentDate" yaml:"nextPaymentDate,omitempty"` // YYYY-MM-DD, empty means today
}

// newViper prepares a viper instance with defaults for every key so that
// PAYOFF_* environment variables can override any of them.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("mortgage.balance", 0.0)
	v.SetDefault("mortgage.interestRate", 0.0)
	v.SetDefault("mortgage.monthlyPayment", 0.0)
	v.SetDefault("mortgage.extraPrincipal", 0.0)
	v.SetDefault("mortgage.nextPaymentDate", "")
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", "")
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// Inputs converts the mortgage section into engine inputs. An empty
// nextPaymentDate resolves to the calendar date of now.
func (conf *Configuration) Inputs(now time.Time) (mortgage.Inputs, error) {
	return conf.Mortgage.Inputs(now)
}

// Inputs converts the configured loan into engine inputs.
func (m MortgageConfig) Inputs(now time.Time) (mortgage.Inputs, error) {
	next := datetime.Truncate(now)
	if m.NextPaymentDate != "" {
		parsed, err := datetime.ParseDate(m.NextPaymentDate)
		if err != nil {
			return mortgage.Inputs{}, fmt.Errorf("invalid nextPaymentDate %q: %w", m.NextPaymentDate, err)
		}
		next = parsed
	}

	inputs := mortgage.InputsFromPercent(m.Balance, m.InterestRate, m.MonthlyPayment, m.ExtraPrincipal, next)
	if err := inputs.Validate(); err != nil {
		return mortgage.Inputs{}, err
	}
	return inputs, nil
}
