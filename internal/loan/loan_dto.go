package loan

type ApplyLoanRequest struct {
	LoanTypeID   string  `json:"loan_type_id" binding:"required,uuid"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	TenureMonths int     `json:"tenure_months" binding:"required,gt=0"`
	Reason       string  `json:"reason"`
}

type LoanResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	LoanType     string  `json:"loan_type"`
	Amount       float64 `json:"amount"`
	TenureMonths int     `json:"tenure_months"`
	InterestRate float64 `json:"interest_rate"`
	EMIAmount    float64 `json:"emi_amount"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	ApprovedAt   *string `json:"approved_at,omitempty"`
	Comments     *string `json:"comments,omitempty"`
}

type LoanTypeResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	InterestRate float64 `json:"interest_rate"`
	MaxAmount    float64 `json:"max_amount"`
}
