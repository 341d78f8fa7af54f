package rbac_test

import (
	"context"
	"testing"

	"github.com/headhr-blip/worknest/internal/rbac"
	rbacerrors "github.com/headhr-blip/worknest/internal/rbac/errors"
	"github.com/headhr-blip/worknest/internal/rbac/infra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRBACRepository struct {
	assignFn      func(ctx context.Context, userID uuid.UUID, role rbac.Role) error
	revokeFn      func(ctx context.Context, userID uuid.UUID, role rbac.Role) (int64, error)
	listForUserFn func(ctx context.Context, userID string) ([]rbac.Role, error)
}

func (f *fakeRBACRepository) Assign(ctx context.Context, userID uuid.UUID, role rbac.Role) error {
	if f.assignFn != nil {
		return f.assignFn(ctx, userID, role)
	}
	return nil
}

func (f *fakeRBACRepository) Revoke(ctx context.Context, userID uuid.UUID, role rbac.Role) (int64, error) {
	if f.revokeFn != nil {
		return f.revokeFn(ctx, userID, role)
	}
	return 1, nil
}

func (f *fakeRBACRepository) ListForUser(ctx context.Context, userID string) ([]rbac.Role, error) {
	if f.listForUserFn != nil {
		return f.listForUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeRBACRepository) ListUsersWithRole(ctx context.Context, role rbac.Role) ([]uuid.UUID, error) {
	return nil, nil
}

func newTestService(t *testing.T, repo rbac.Repository) rbac.Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)
	return rbac.NewService(repo, enforcer)
}

func TestParseRole(t *testing.T) {
	for _, role := range rbac.AllRoles() {
		parsed, ok := rbac.ParseRole(string(role))
		assert.True(t, ok)
		assert.Equal(t, role, parsed)
	}

	_, ok := rbac.ParseRole("intern")
	assert.False(t, ok)
	_, ok = rbac.ParseRole("")
	assert.False(t, ok)
	_, ok = rbac.ParseRole("ADMIN")
	assert.False(t, ok)
}

func TestRBACService_Assign(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("assign is idempotent on the role set", func(t *testing.T) {
		assigned := map[rbac.Role]bool{}
		repo := &fakeRBACRepository{
			assignFn: func(ctx context.Context, uid uuid.UUID, role rbac.Role) error {
				assigned[role] = true
				return nil
			},
			listForUserFn: func(ctx context.Context, uid string) ([]rbac.Role, error) {
				roles := make([]rbac.Role, 0, len(assigned))
				for r := range assigned {
					roles = append(roles, r)
				}
				return roles, nil
			},
		}
		svc := newTestService(t, repo)

		resp, err := svc.Assign(ctx, userID, rbac.AssignRoleRequest{Role: "hr"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"hr"}, resp.Roles)

		resp, err = svc.Assign(ctx, userID, rbac.AssignRoleRequest{Role: "hr"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"hr"}, resp.Roles)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		svc := newTestService(t, &fakeRBACRepository{})

		_, err := svc.Assign(ctx, userID, rbac.AssignRoleRequest{Role: "wizard"})

		assert.ErrorIs(t, err, rbacerrors.ErrUnknownRole)
	})

	t.Run("invalid user id", func(t *testing.T) {
		svc := newTestService(t, &fakeRBACRepository{})

		_, err := svc.Assign(ctx, "not-a-uuid", rbac.AssignRoleRequest{Role: "hr"})

		assert.ErrorIs(t, err, rbacerrors.ErrInvalidUserID)
	})
}

func TestRBACService_Revoke(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("revoking an unassigned role fails", func(t *testing.T) {
		repo := &fakeRBACRepository{
			revokeFn: func(ctx context.Context, uid uuid.UUID, role rbac.Role) (int64, error) {
				return 0, nil
			},
		}
		svc := newTestService(t, repo)

		_, err := svc.Revoke(ctx, userID, "manager")

		assert.ErrorIs(t, err, rbacerrors.ErrAssignmentNotFound)
	})

	t.Run("success returns the remaining set", func(t *testing.T) {
		repo := &fakeRBACRepository{
			listForUserFn: func(ctx context.Context, uid string) ([]rbac.Role, error) {
				return []rbac.Role{rbac.RoleEmployee}, nil
			},
		}
		svc := newTestService(t, repo)

		resp, err := svc.Revoke(ctx, userID, "manager")

		assert.NoError(t, err)
		assert.Equal(t, []string{"employee"}, resp.Roles)
	})
}

func TestRBACService_Enforce(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	withRoles := func(roles ...rbac.Role) rbac.Service {
		repo := &fakeRBACRepository{
			listForUserFn: func(ctx context.Context, uid string) ([]rbac.Role, error) {
				return roles, nil
			},
		}
		return newTestService(t, repo)
	}

	t.Run("admin wildcard allows everything", func(t *testing.T) {
		svc := withRoles(rbac.RoleAdmin)

		allowed, err := svc.Enforce(ctx, userID, "payrolls", "run")
		assert.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = svc.Enforce(ctx, userID, "anything", "at-all")
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("hr_head can run payroll, hr and employee cannot", func(t *testing.T) {
		svc := withRoles(rbac.RoleHRHead)
		allowed, err := svc.Enforce(ctx, userID, "payrolls", "run")
		assert.NoError(t, err)
		assert.True(t, allowed)

		svc = withRoles(rbac.RoleHR)
		allowed, err = svc.Enforce(ctx, userID, "payrolls", "run")
		assert.NoError(t, err)
		assert.False(t, allowed)

		svc = withRoles(rbac.RoleEmployee)
		allowed, err = svc.Enforce(ctx, userID, "payrolls", "run")
		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("any role in the set can grant", func(t *testing.T) {
		svc := withRoles(rbac.RoleEmployee, rbac.RoleHRHead)

		allowed, err := svc.Enforce(ctx, userID, "approvals", "resolve")
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("no roles denies", func(t *testing.T) {
		svc := withRoles()

		allowed, err := svc.Enforce(ctx, userID, "leaves", "read")
		assert.NoError(t, err)
		assert.False(t, allowed)
	})
}
