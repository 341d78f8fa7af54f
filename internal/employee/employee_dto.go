package employee

type CreateEmployeeRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name"`
	Department  string  `json:"department"`
	Designation string  `json:"designation"`
	BranchID    *string `json:"branch_id,omitempty" binding:"omitempty,uuid"`
	JoinDate    string  `json:"join_date" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
	BranchID    *string `json:"branch_id,omitempty" binding:"omitempty,uuid"`
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	EmployeeCode string  `json:"employee_code"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Department   string  `json:"department"`
	Designation  string  `json:"designation"`
	BranchID     *string `json:"branch_id,omitempty"`
	JoinDate     string  `json:"join_date"`
	IsActive     bool    `json:"is_active"`
}
