package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/mortgage-payoff/pkg/datetime"
	"github.com/iwvelando/mortgage-payoff/pkg/mortgage"
)

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
		{
			name:       "Test fixture",
			configPath: "../../test/test_config.yaml",
			wantError:  false,
		},
		{
			name:       "Example config",
			configPath: "../../config.yaml.example",
			wantError:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationFixtureValues(t *testing.T) {
	config, err := LoadConfiguration("../../test/test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if config.Mortgage.Balance != 1200 {
		t.Errorf("Balance = %v, expected 1200", config.Mortgage.Balance)
	}
	if config.Mortgage.InterestRate != 12 {
		t.Errorf("InterestRate = %v, expected 12", config.Mortgage.InterestRate)
	}
	if config.Mortgage.MonthlyPayment != 500 {
		t.Errorf("MonthlyPayment = %v, expected 500", config.Mortgage.MonthlyPayment)
	}
	if config.Mortgage.NextPaymentDate != "2024-01-01" {
		t.Errorf("NextPaymentDate = %q", config.Mortgage.NextPaymentDate)
	}
	if config.Logging.Level != "debug" || config.Logging.Format != "console" {
		t.Errorf("Logging = %+v", config.Logging)
	}
	if config.Output.Format != "csv" {
		t.Errorf("Output.Format = %q, expected csv", config.Output.Format)
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	yamlData := `
mortgage:
  balance: 250000
  interestRate: 6.5
  monthlyPayment: 1580.17
  extraPrincipal: 100
`
	config, err := LoadConfigurationFromReader(strings.NewReader(yamlData))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}
	if config.Mortgage.ExtraPrincipal != 100 {
		t.Errorf("ExtraPrincipal = %v, expected 100", config.Mortgage.ExtraPrincipal)
	}
	if config.Output.Format != "" {
		t.Errorf("Output.Format = %q, expected empty default", config.Output.Format)
	}
}

func TestLoadConfigurationFromReaderInvalid(t *testing.T) {
	_, err := LoadConfigurationFromReader(strings.NewReader("mortgage: [unclosed"))
	if err == nil {
		t.Fatal("LoadConfigurationFromReader() expected error for malformed YAML")
	}
}

func TestLoadConfigurationEnvironmentOverride(t *testing.T) {
	t.Setenv("PAYOFF_MORTGAGE_EXTRAPRINCIPAL", "450")

	config, err := LoadConfiguration("../../test/test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if config.Mortgage.ExtraPrincipal != 450 {
		t.Errorf("ExtraPrincipal = %v, expected environment override 450", config.Mortgage.ExtraPrincipal)
	}
}

func TestInputs(t *testing.T) {
	now := time.Date(2025, time.October, 17, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		mortgage MortgageConfig
		wantDate time.Time
		wantRate float64
		wantErr  bool
	}{
		{
			name:     "Explicit date",
			mortgage: MortgageConfig{Balance: 1200, InterestRate: 12, MonthlyPayment: 500, NextPaymentDate: "2024-01-01"},
			wantDate: datetime.Date(2024, time.January, 1),
			wantRate: 0.12,
		},
		{
			name:     "Empty date defaults to today",
			mortgage: MortgageConfig{Balance: 1200, InterestRate: 2.25, MonthlyPayment: 500},
			wantDate: datetime.Date(2025, time.October, 17),
			wantRate: 0.0225,
		},
		{
			name:     "Malformed date",
			mortgage: MortgageConfig{Balance: 1200, InterestRate: 12, MonthlyPayment: 500, NextPaymentDate: "01/01/2024"},
			wantErr:  true,
		},
		{
			name:     "Negative rate",
			mortgage: MortgageConfig{Balance: 1200, InterestRate: -1, MonthlyPayment: 500},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &Configuration{Mortgage: tt.mortgage}
			inputs, err := conf.Inputs(now)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Inputs() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Inputs() error = %v", err)
			}
			if !inputs.NextPaymentDate.Equal(tt.wantDate) {
				t.Errorf("NextPaymentDate = %s, expected %s", inputs.NextPaymentDate, tt.wantDate)
			}
			if diff := inputs.AnnualRate - tt.wantRate; diff > 1e-12 || diff < -1e-12 {
				t.Errorf("AnnualRate = %v, expected %v", inputs.AnnualRate, tt.wantRate)
			}
		})
	}
}

func TestInputsNegativeRateIsInvalidInput(t *testing.T) {
	conf := &Configuration{Mortgage: MortgageConfig{Balance: 1200, InterestRate: -1, MonthlyPayment: 500, NextPaymentDate: "2024-01-01"}}
	_, err := conf.Inputs(time.Now())
	if !errors.Is(err, mortgage.ErrInvalidInput) {
		t.Errorf("Inputs() error = %v, expected ErrInvalidInput", err)
	}
}

func TestFixtureProducesWorkedScenario(t *testing.T) {
	config, err := LoadConfiguration("../../test/test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	inputs, err := config.Inputs(time.Now())
	if err != nil {
		t.Fatalf("Inputs() error = %v", err)
	}

	summary, err := mortgage.CalculatePayoff(inputs)
	if err != nil {
		t.Fatalf("CalculatePayoff() error = %v", err)
	}
	if summary.Months != 3 || summary.TotalInterest != 21.31 {
		t.Errorf("CalculatePayoff() = %+v, expected 3 months and 21.31 interest", summary)
	}
	if !summary.PayoffDate.Equal(datetime.Date(2024, time.March, 1)) {
		t.Errorf("PayoffDate = %s, expected 2024-03-01", summary.PayoffDate)
	}
}
