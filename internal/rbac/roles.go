package rbac

// Role is the closed vocabulary of assignable roles. Anything outside this
// set is rejected at the boundary.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleHRHead     Role = "hr_head"
	RoleHR         Role = "hr"
	RoleBranchHR   Role = "branch_hr"
	RoleManager    Role = "manager"
	RoleTeamLead   Role = "team_lead"
	RoleEmployee   Role = "employee"
)

var allRoles = []Role{
	RoleSuperAdmin,
	RoleAdmin,
	RoleHRHead,
	RoleHR,
	RoleBranchHR,
	RoleManager,
	RoleTeamLead,
	RoleEmployee,
}

func AllRoles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

func ParseRole(s string) (Role, bool) {
	r := Role(s)
	for _, known := range allRoles {
		if r == known {
			return r, true
		}
	}
	return "", false
}
