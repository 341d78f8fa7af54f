package compensation

import (
	"math"
	"strconv"
)

// Breakdown is the result of a salary computation.
type Breakdown struct {
	BasicSalary        float64 `json:"basic_salary"`
	HRA                float64 `json:"hra"`
	TransportAllowance float64 `json:"transport_allowance"`
	SpecialAllowance   float64 `json:"special_allowance"`
	OtherAllowances    float64 `json:"other_allowances"`
	GrossSalary        float64 `json:"gross_salary"`

	PFContribution     float64 `json:"pf_contribution"`
	ESIContribution    float64 `json:"esi_contribution"`
	ProfessionalTax    float64 `json:"professional_tax"`
	IncomeTaxDeduction float64 `json:"income_tax_deduction"`
	TotalDeductions    float64 `json:"total_deductions"`

	NetSalary float64 `json:"net_salary"`
}

// Calculate derives gross, deductions and net from a compensation profile.
// Pure and total: malformed components coerce to zero rather than failing,
// and a negative net is returned as-is (callers treat it as a data-quality
// warning, not an error).
func Calculate(p CompensationProfile) Breakdown {
	basic := amountOrZero(p.BasicSalary)
	hra := amountOrZero(p.HRA)
	transport := amountOrZero(p.TransportAllowance)
	special := amountOrZero(p.SpecialAllowance)
	other := amountOrZero(p.OtherAllowances)

	gross := round2(basic + hra + transport + special + other)

	pf := amountOrZero(p.PFContribution)
	esi := amountOrZero(p.ESIContribution)
	pt := amountOrZero(p.ProfessionalTax)
	tax := amountOrZero(p.IncomeTaxDeduction)

	deductions := round2(pf + esi + pt + tax)

	return Breakdown{
		BasicSalary:        basic,
		HRA:                hra,
		TransportAllowance: transport,
		SpecialAllowance:   special,
		OtherAllowances:    other,
		GrossSalary:        gross,
		PFContribution:     pf,
		ESIContribution:    esi,
		ProfessionalTax:    pt,
		IncomeTaxDeduction: tax,
		TotalDeductions:    deductions,
		NetSalary:          round2(gross - deductions),
	}
}

// ParseAmount reads a currency amount from free-form input (CSV cells, form
// fields). Anything unparseable or negative counts as zero.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return amountOrZero(v)
}

func amountOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
