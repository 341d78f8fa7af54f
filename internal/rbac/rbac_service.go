package rbac

import (
	"context"
	"sync"

	rbacerrors "github.com/headhr-blip/worknest/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Assign(ctx context.Context, userID string, req AssignRoleRequest) (RoleAssignmentResponse, error)
	Revoke(ctx context.Context, userID, role string) (RoleAssignmentResponse, error)
	ListForUser(ctx context.Context, userID string) (RoleAssignmentResponse, error)
	Enforce(ctx context.Context, userID, resource, action string) (bool, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{repo: repo, enforcer: enforcer, logger: l}
}

func (s *service) Assign(ctx context.Context, userID string, req AssignRoleRequest) (RoleAssignmentResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return RoleAssignmentResponse{}, rbacerrors.ErrInvalidUserID
	}
	role, ok := ParseRole(req.Role)
	if !ok {
		return RoleAssignmentResponse{}, rbacerrors.ErrUnknownRole
	}

	if err := s.repo.Assign(ctx, userUUID, role); err != nil {
		return RoleAssignmentResponse{}, err
	}

	s.logger.Info("role assigned",
		zap.String("user_id", userID),
		zap.String("role", string(role)),
	)

	return s.ListForUser(ctx, userID)
}

func (s *service) Revoke(ctx context.Context, userID, roleName string) (RoleAssignmentResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return RoleAssignmentResponse{}, rbacerrors.ErrInvalidUserID
	}
	role, ok := ParseRole(roleName)
	if !ok {
		return RoleAssignmentResponse{}, rbacerrors.ErrUnknownRole
	}

	rows, err := s.repo.Revoke(ctx, userUUID, role)
	if err != nil {
		return RoleAssignmentResponse{}, err
	}
	if rows == 0 {
		return RoleAssignmentResponse{}, rbacerrors.ErrAssignmentNotFound
	}

	s.logger.Info("role revoked",
		zap.String("user_id", userID),
		zap.String("role", string(role)),
	)

	return s.ListForUser(ctx, userID)
}

func (s *service) ListForUser(ctx context.Context, userID string) (RoleAssignmentResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return RoleAssignmentResponse{}, rbacerrors.ErrInvalidUserID
	}

	roles, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return RoleAssignmentResponse{}, err
	}

	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return RoleAssignmentResponse{UserID: userID, Roles: names}, nil
}

// Enforce resolves the user's role set and allows the request if any role in
// the set carries the permission.
func (s *service) Enforce(ctx context.Context, userID, resource, action string) (bool, error) {
	roles, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, role := range roles {
		allowed, err := s.enforcer.Enforce(string(role), resource, action)
		if err != nil {
			return false, err
		}
		if allowed {
			return true, nil
		}
	}

	s.logger.Debug("enforce denied",
		zap.String("user_id", userID),
		zap.String("resource", resource),
		zap.String("action", action),
	)
	return false, nil
}
