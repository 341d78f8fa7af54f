package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/headhr-blip/worknest/internal/auth"
	autherrors "github.com/headhr-blip/worknest/internal/auth/errors"
	"github.com/headhr-blip/worknest/internal/rbac"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	createFn     func(ctx context.Context, user *auth.User) error
	deleteFn     func(ctx context.Context, id uuid.UUID) error
	getByEmailFn func(ctx context.Context, email string) (*auth.User, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*auth.User, error)
}

func (f *fakeUserRepository) Create(ctx context.Context, user *auth.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeRBACService struct {
	assignFn func(ctx context.Context, userID string, req rbac.AssignRoleRequest) (rbac.RoleAssignmentResponse, error)
	rolesFn  func(ctx context.Context, userID string) (rbac.RoleAssignmentResponse, error)
}

func (f *fakeRBACService) Assign(ctx context.Context, userID string, req rbac.AssignRoleRequest) (rbac.RoleAssignmentResponse, error) {
	if f.assignFn != nil {
		return f.assignFn(ctx, userID, req)
	}
	return rbac.RoleAssignmentResponse{UserID: userID, Roles: []string{req.Role}}, nil
}

func (f *fakeRBACService) Revoke(ctx context.Context, userID, role string) (rbac.RoleAssignmentResponse, error) {
	return rbac.RoleAssignmentResponse{}, nil
}

func (f *fakeRBACService) ListForUser(ctx context.Context, userID string) (rbac.RoleAssignmentResponse, error) {
	if f.rolesFn != nil {
		return f.rolesFn(ctx, userID)
	}
	return rbac.RoleAssignmentResponse{UserID: userID, Roles: []string{"employee"}}, nil
}

func (f *fakeRBACService) Enforce(ctx context.Context, userID, resource, action string) (bool, error) {
	return false, nil
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("success grants base employee role", func(t *testing.T) {
		var assignedRole string
		repo := &fakeUserRepository{}
		rbacSvc := &fakeRBACService{
			assignFn: func(ctx context.Context, userID string, req rbac.AssignRoleRequest) (rbac.RoleAssignmentResponse, error) {
				assignedRole = req.Role
				return rbac.RoleAssignmentResponse{UserID: userID, Roles: []string{req.Role}}, nil
			},
		}
		svc := auth.NewService(repo, rbacSvc)

		resp, err := svc.Register(ctx, auth.RegisterRequest{
			Name:     "Asha Rao",
			Email:    "  Asha@Example.COM ",
			Password: "correct-horse",
		})

		assert.NoError(t, err)
		assert.Equal(t, string(rbac.RoleEmployee), assignedRole)
		assert.Equal(t, "asha@example.com", resp.User.Email)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
	})

	t.Run("failed role grant removes the user row", func(t *testing.T) {
		var createdID, deletedID uuid.UUID
		repo := &fakeUserRepository{
			createFn: func(ctx context.Context, user *auth.User) error {
				createdID = user.ID
				return nil
			},
			deleteFn: func(ctx context.Context, id uuid.UUID) error {
				deletedID = id
				return nil
			},
		}
		rbacSvc := &fakeRBACService{
			assignFn: func(ctx context.Context, userID string, req rbac.AssignRoleRequest) (rbac.RoleAssignmentResponse, error) {
				return rbac.RoleAssignmentResponse{}, errors.New("role store down")
			},
		}
		svc := auth.NewService(repo, rbacSvc)

		_, err := svc.Register(ctx, auth.RegisterRequest{Name: "X", Email: "x@example.com", Password: "longenough"})

		assert.Error(t, err)
		assert.Equal(t, createdID, deletedID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := &fakeUserRepository{
			createFn: func(ctx context.Context, user *auth.User) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"}
			},
		}
		svc := auth.NewService(repo, &fakeRBACService{})

		_, err := svc.Register(ctx, auth.RegisterRequest{Name: "X", Email: "x@example.com", Password: "longenough"})

		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	assert.NoError(t, err)

	activeUser := &auth.User{
		ID:       uuid.New(),
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: string(hashed),
		IsActive: true,
	}

	t.Run("success", func(t *testing.T) {
		repo := &fakeUserRepository{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				assert.Equal(t, "asha@example.com", email)
				return activeUser, nil
			},
		}
		svc := auth.NewService(repo, &fakeRBACService{})

		resp, err := svc.Login(ctx, auth.LoginRequest{Email: "ASHA@example.com", Password: "correct-horse"})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, []string{"employee"}, resp.User.Roles)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := &fakeUserRepository{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return activeUser, nil
			},
		}
		svc := auth.NewService(repo, &fakeRBACService{})

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "asha@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email looks the same as wrong password", func(t *testing.T) {
		svc := auth.NewService(&fakeUserRepository{}, &fakeRBACService{})

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "ghost@example.com", Password: "whatever"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive user rejected", func(t *testing.T) {
		inactive := *activeUser
		inactive.IsActive = false
		repo := &fakeUserRepository{
			getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
				return &inactive, nil
			},
		}
		svc := auth.NewService(repo, &fakeRBACService{})

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "asha@example.com", Password: "correct-horse"})

		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	user := &auth.User{ID: uuid.New(), Name: "Asha Rao", Email: "asha@example.com", IsActive: true}
	repo := &fakeUserRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*auth.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			return user, nil
		},
	}
	svc := auth.NewService(repo, &fakeRBACService{})

	t.Run("round trip", func(t *testing.T) {
		hashed, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
		assert.NoError(t, err)
		user.Password = string(hashed)

		pair, err := svc.Login(ctx, auth.LoginRequest{Email: "asha@example.com", Password: "pw"})
		assert.NoError(t, err)

		refreshed, err := svc.Refresh(ctx, pair.RefreshToken)
		assert.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.Equal(t, user.ID.String(), refreshed.User.ID)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not.a.jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}
