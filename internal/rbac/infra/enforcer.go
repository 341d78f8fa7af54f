package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (r.obj == p.obj || p.obj == "*") && (r.act == p.act || p.act == "*")
`

// policyMatrix is the static permission table, keyed by role. Subjects are
// role names; role membership is resolved from user_roles before enforcing.
var policyMatrix = [][]string{
	{"super_admin", "*", "*"},
	{"admin", "*", "*"},

	{"hr_head", "employees", "read"},
	{"hr_head", "employees", "write"},
	{"hr_head", "compensation", "read"},
	{"hr_head", "compensation", "write"},
	{"hr_head", "payrolls", "read"},
	{"hr_head", "payrolls", "run"},
	{"hr_head", "payrolls", "pay"},
	{"hr_head", "approvals", "read"},
	{"hr_head", "approvals", "resolve"},
	{"hr_head", "leaves", "read"},
	{"hr_head", "expenses", "read"},
	{"hr_head", "loans", "read"},
	{"hr_head", "attendance", "read"},
	{"hr_head", "documents", "read"},
	{"hr_head", "documents", "write"},
	{"hr_head", "branches", "read"},
	{"hr_head", "branches", "write"},
	{"hr_head", "roles", "read"},

	{"hr", "employees", "read"},
	{"hr", "employees", "write"},
	{"hr", "compensation", "read"},
	{"hr", "compensation", "write"},
	{"hr", "payrolls", "read"},
	{"hr", "leaves", "read"},
	{"hr", "expenses", "read"},
	{"hr", "loans", "read"},
	{"hr", "attendance", "read"},
	{"hr", "documents", "read"},
	{"hr", "documents", "write"},
	{"hr", "branches", "read"},

	{"branch_hr", "employees", "read"},
	{"branch_hr", "leaves", "read"},
	{"branch_hr", "expenses", "read"},
	{"branch_hr", "attendance", "read"},
	{"branch_hr", "branches", "read"},

	{"manager", "approvals", "read"},
	{"manager", "approvals", "resolve"},
	{"manager", "leaves", "read"},
	{"manager", "expenses", "read"},

	{"team_lead", "approvals", "read"},
	{"team_lead", "leaves", "read"},
}

// NewEnforcer builds a casbin enforcer with the model and policy compiled in.
// There is no adapter: the matrix only changes with a deploy.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policyMatrix {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return enforcer, nil
}
