package rbac

type AssignRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type RoleAssignmentResponse struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
