package expense

type CreateExpenseRequest struct {
	CategoryID  string  `json:"category_id" binding:"required,uuid"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	ExpenseDate string  `json:"expense_date" binding:"required"`
	Description string  `json:"description"`
	ReceiptURL  *string `json:"receipt_url,omitempty" binding:"omitempty,url"`
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	ExpenseDate string  `json:"expense_date"`
	Description string  `json:"description"`
	ReceiptURL  *string `json:"receipt_url,omitempty"`
	Status      string  `json:"status"`
	ApprovedBy  *string `json:"approved_by,omitempty"`
	ApprovedAt  *string `json:"approved_at,omitempty"`
	Comments    *string `json:"comments,omitempty"`
}

type CategoryResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	MaxAmount float64 `json:"max_amount"`
}
