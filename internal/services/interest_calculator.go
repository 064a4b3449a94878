package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InterestRegime selects the accrual convention.
type InterestRegime int

const (
	// RegimeMaturity pays a fixed-term account its monthly rate over the term: days / 30.
	RegimeMaturity InterestRegime = iota
	// RegimeElapsed accrues on no-term withdrawals over the elapsed days: days / 365.
	RegimeElapsed
)

var (
	daysPerMonth = decimal.NewFromInt(30)
	daysPerYear  = decimal.NewFromInt(365)
)

func (r InterestRegime) String() string {
	switch r {
	case RegimeMaturity:
		return "maturity"
	case RegimeElapsed:
		return "elapsed"
	default:
		return fmt.Sprintf("regime(%d)", int(r))
	}
}

// InterestCalculator computes simple interest. It has no state and performs no I/O.
type InterestCalculator struct{}

func NewInterestCalculator() *InterestCalculator {
	return &InterestCalculator{}
}

// ComputeInterest returns principal × monthlyRate × daysHeld / divisor, rounded
// half-up to whole currency units.
func (InterestCalculator) ComputeInterest(principal, monthlyRate decimal.Decimal, daysHeld int, regime InterestRegime) (decimal.Decimal, error) {
	if principal.IsNegative() {
		return decimal.Zero, invalidArgument("principal", "principal cannot be negative")
	}
	if monthlyRate.IsNegative() {
		return decimal.Zero, invalidArgument("monthly_interest_rate", "interest rate cannot be negative")
	}
	if daysHeld < 0 {
		return decimal.Zero, invalidArgument("days_held", "days held cannot be negative")
	}

	var divisor decimal.Decimal
	switch regime {
	case RegimeMaturity:
		divisor = daysPerMonth
	case RegimeElapsed:
		divisor = daysPerYear
	default:
		return decimal.Zero, invalidArgument("regime", fmt.Sprintf("unknown interest regime %s", regime))
	}

	// Multiply before dividing so the only rounding is the final one
	raw := principal.Mul(monthlyRate).Mul(decimal.NewFromInt(int64(daysHeld))).Div(divisor)
	return raw.Round(0), nil
}

// InterestLot is principal held for DaysHeld days
type InterestLot struct {
	Principal decimal.Decimal
	DaysHeld  int
}

// ComputeLotInterest accrues each lot over its own days and rounds the sum
// once, so a withdrawal split across lots pays the same as one lot would.
func (c InterestCalculator) ComputeLotInterest(lots []InterestLot, monthlyRate decimal.Decimal, regime InterestRegime) (decimal.Decimal, error) {
	principalDays := decimal.Zero
	for _, lot := range lots {
		if lot.Principal.IsNegative() {
			return decimal.Zero, invalidArgument("principal", "principal cannot be negative")
		}
		if lot.DaysHeld < 0 {
			return decimal.Zero, invalidArgument("days_held", "days held cannot be negative")
		}
		principalDays = principalDays.Add(lot.Principal.Mul(decimal.NewFromInt(int64(lot.DaysHeld))))
	}
	return c.ComputeInterest(principalDays, monthlyRate, 1, regime)
}
