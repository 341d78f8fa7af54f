package compensation

type UpsertCompensationRequest struct {
	BasicSalary        float64 `json:"basic_salary" binding:"gte=0"`
	HRA                float64 `json:"hra" binding:"gte=0"`
	TransportAllowance float64 `json:"transport_allowance" binding:"gte=0"`
	SpecialAllowance   float64 `json:"special_allowance" binding:"gte=0"`
	OtherAllowances    float64 `json:"other_allowances" binding:"gte=0"`
	PFContribution     float64 `json:"pf_contribution" binding:"gte=0"`
	ESIContribution    float64 `json:"esi_contribution" binding:"gte=0"`
	ProfessionalTax    float64 `json:"professional_tax" binding:"gte=0"`
	IncomeTaxDeduction float64 `json:"income_tax_deduction" binding:"gte=0"`
	PaymentFrequency   string  `json:"payment_frequency" binding:"required,oneof=monthly weekly biweekly"`
	EffectiveFrom      string  `json:"effective_from" binding:"required"`
}

type CompensationResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	PaymentFrequency string    `json:"payment_frequency"`
	Breakdown        Breakdown `json:"breakdown"`
}

type SalaryHistoryResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	EffectiveFrom string    `json:"effective_from"`
	ChangedBy     string    `json:"changed_by"`
	Breakdown     Breakdown `json:"breakdown"`
}
