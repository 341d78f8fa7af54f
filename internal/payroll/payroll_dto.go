package payroll

const (
	OutcomeProcessed        = "processed"
	OutcomeAlreadyProcessed = "already_processed"
	OutcomeFailed           = "failed"
)

type RunRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
}

// EmployeeOutcome reports what happened to one employee during a run. Reason
// is set only for failed outcomes.
type EmployeeOutcome struct {
	UserID    string  `json:"user_id"`
	Outcome   string  `json:"outcome"`
	PayrollID *string `json:"payroll_id,omitempty"`
	NetSalary float64 `json:"net_salary,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}

type RunResponse struct {
	Month     int               `json:"month"`
	Year      int               `json:"year"`
	Total     int               `json:"total"`
	Processed int               `json:"processed"`
	Skipped   int               `json:"skipped"`
	Failed    int               `json:"failed"`
	Outcomes  []EmployeeOutcome `json:"outcomes"`
}

type MarkPaidRequest struct {
	PaymentMethod  string `json:"payment_method" binding:"required,oneof=bank_transfer cheque cash"`
	TransactionRef string `json:"transaction_ref" binding:"required"`
}

type PayrollResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`

	BasicSalary        float64 `json:"basic_salary"`
	HRA                float64 `json:"hra"`
	TransportAllowance float64 `json:"transport_allowance"`
	SpecialAllowance   float64 `json:"special_allowance"`
	OtherAllowances    float64 `json:"other_allowances"`
	PFContribution     float64 `json:"pf_contribution"`
	ESIContribution    float64 `json:"esi_contribution"`
	ProfessionalTax    float64 `json:"professional_tax"`
	IncomeTaxDeduction float64 `json:"income_tax_deduction"`

	GrossSalary     float64 `json:"gross_salary"`
	TotalDeductions float64 `json:"total_deductions"`
	NetSalary       float64 `json:"net_salary"`

	Status         string  `json:"status"`
	PaymentMethod  *string `json:"payment_method,omitempty"`
	TransactionRef *string `json:"transaction_ref,omitempty"`
	PaidAt         *string `json:"paid_at,omitempty"`
	PayslipURL     *string `json:"payslip_url,omitempty"`
}
