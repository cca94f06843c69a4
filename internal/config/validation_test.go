package config

import (
	"strings"
	"testing"
)

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name         string
		mortgage     MortgageConfig
		wantContains []string
	}{
		{
			name:     "Healthy loan",
			mortgage: MortgageConfig{Balance: 142044.18, InterestRate: 2.25, MonthlyPayment: 2500, ExtraPrincipal: 300, NextPaymentDate: "2025-03-01"},
		},
		{
			name:         "Zero balance",
			mortgage:     MortgageConfig{Balance: 0, InterestRate: 5, MonthlyPayment: 1000},
			wantContains: []string{"is not positive"},
		},
		{
			name:         "Rate entered as fraction",
			mortgage:     MortgageConfig{Balance: 100000, InterestRate: 0.0225, MonthlyPayment: 1000},
			wantContains: []string{"looks like a fraction"},
		},
		{
			name:         "Payment does not cover interest",
			mortgage:     MortgageConfig{Balance: 300000, InterestRate: 7, MonthlyPayment: 1500},
			wantContains: []string{"does not cover first-month interest", "$1,750.00"},
		},
		{
			name:         "Payment barely covers interest",
			mortgage:     MortgageConfig{Balance: 300000, InterestRate: 7, MonthlyPayment: 1800},
			wantContains: []string{"payoff will take a very long time"},
		},
		{
			name:         "Extra principal exceeds balance",
			mortgage:     MortgageConfig{Balance: 500, InterestRate: 3, MonthlyPayment: 100, ExtraPrincipal: 1000},
			wantContains: []string{"paid off in the first month"},
		},
		{
			name:         "Malformed date",
			mortgage:     MortgageConfig{Balance: 1000, InterestRate: 3, MonthlyPayment: 100, NextPaymentDate: "2025-3-1"},
			wantContains: []string{"is not a YYYY-MM-DD date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &Configuration{Mortgage: tt.mortgage}
			warnings := conf.ValidateConfiguration()

			if len(tt.wantContains) == 0 && len(warnings) != 0 {
				t.Errorf("ValidateConfiguration() unexpected warnings: %v", warnings)
			}
			joined := strings.Join(warnings, "\n")
			for _, want := range tt.wantContains {
				if !strings.Contains(joined, want) {
					t.Errorf("ValidateConfiguration() warnings %v missing %q", warnings, want)
				}
			}
		})
	}
}
