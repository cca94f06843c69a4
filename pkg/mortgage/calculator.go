package mortgage

import (
	"errors"

	"github.com/iwvelando/mortgage-payoff/pkg/datetime"
	"go.uber.org/zap"
)

// Calculator runs the engine and logs each calculation.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator creates a new calculator instance
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// Schedule returns the full amortization schedule for inputs.
func (c *Calculator) Schedule(inputs Inputs) ([]PaymentRow, error) {
	rows, err := Amortize(inputs)
	if err != nil {
		c.logFailure("mortgage.Schedule", inputs, err)
		return nil, err
	}
	c.logger.Debug("computed amortization schedule",
		zap.String("op", "mortgage.Schedule"),
		zap.Int("months", len(rows)),
	)
	return rows, nil
}

// Payoff returns only the payoff summary for inputs.
func (c *Calculator) Payoff(inputs Inputs) (PayoffSummary, error) {
	summary, err := CalculatePayoff(inputs)
	if err != nil {
		c.logFailure("mortgage.Payoff", inputs, err)
		return PayoffSummary{}, err
	}
	c.logSummary("mortgage.Payoff", summary)
	return summary, nil
}

// Calculate returns the schedule together with its summary.
func (c *Calculator) Calculate(inputs Inputs) (Result, error) {
	result, err := Calculate(inputs)
	if err != nil {
		c.logFailure("mortgage.Calculate", inputs, err)
		return Result{}, err
	}
	c.logSummary("mortgage.Calculate", result.Summary)
	return result, nil
}

func (c *Calculator) logSummary(op string, summary PayoffSummary) {
	c.logger.Debug("computed payoff",
		zap.String("op", op),
		zap.String("payoffDate", datetime.FormatDate(summary.PayoffDate)),
		zap.Int("months", summary.Months),
		zap.Float64("totalInterest", summary.TotalInterest),
	)
}

func (c *Calculator) logFailure(op string, inputs Inputs, err error) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.Float64("balance", inputs.Balance),
		zap.Float64("annualRate", inputs.AnnualRate),
		zap.Float64("monthlyPayment", inputs.MonthlyPayment),
		zap.Float64("extraPrincipal", inputs.ExtraPrincipal),
		zap.Error(err),
	}

	var insufficient *InsufficientPaymentError
	if errors.As(err, &insufficient) {
		fields = append(fields, zap.Int("period", insufficient.Period))
	}
	c.logger.Debug("calculation rejected", fields...)
}
