package loan

import (
	"math"

	loanerrors "github.com/headhr-blip/worknest/internal/loan/errors"
)

// CalculateEMI computes the equal monthly installment for a loan using the
// standard amortization formula:
//
//	EMI = P * i * (1+i)^n / ((1+i)^n - 1)
//
// where i is the monthly rate derived from the annual percentage rate. A zero
// rate degenerates the formula (division by zero), so it is special-cased to
// straight principal/tenure. The result is rounded to currency precision.
func CalculateEMI(principal, annualRatePct float64, tenureMonths int) (float64, error) {
	if principal <= 0 {
		return 0, loanerrors.ErrInvalidPrincipal
	}
	if tenureMonths <= 0 {
		return 0, loanerrors.ErrInvalidTenure
	}
	if annualRatePct < 0 {
		return 0, loanerrors.ErrInvalidRate
	}

	if annualRatePct == 0 {
		return round2(principal / float64(tenureMonths)), nil
	}

	monthlyRate := annualRatePct / 100 / 12
	factor := math.Pow(1+monthlyRate, float64(tenureMonths))
	emi := principal * monthlyRate * factor / (factor - 1)

	return round2(emi), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
