package approval

// Kind identifies which request table a decision targets.
type Kind string

const (
	KindLeave   Kind = "leave"
	KindExpense Kind = "expense"
	KindLoan    Kind = "loan"
)

type ResolveRequest struct {
	Decision string  `json:"decision" binding:"required,oneof=approved rejected"`
	Comments *string `json:"comments"`
}

// PendingRequest is the flattened view of any pending item in the queue,
// regardless of which table it came from.
type PendingRequest struct {
	ID           string  `json:"id"`
	Kind         Kind    `json:"kind"`
	UserID       string  `json:"user_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Summary      string  `json:"summary"`
	Amount       float64 `json:"amount,omitempty"`
	SubmittedAt  string  `json:"submitted_at"`
}

type ResolveResponse struct {
	ID         string  `json:"id"`
	Kind       Kind    `json:"kind"`
	Status     string  `json:"status"`
	ApprovedBy string  `json:"approved_by"`
	ApprovedAt string  `json:"approved_at"`
	Comments   *string `json:"comments,omitempty"`
}
