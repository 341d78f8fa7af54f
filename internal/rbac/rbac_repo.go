package rbac

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Assign(ctx context.Context, userID uuid.UUID, role Role) error
	Revoke(ctx context.Context, userID uuid.UUID, role Role) (int64, error)
	ListForUser(ctx context.Context, userID string) ([]Role, error)
	ListUsersWithRole(ctx context.Context, role Role) ([]uuid.UUID, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Assign inserts the (user, role) pair; a duplicate is silently a no-op, so
// repeated assigns converge on the same set.
func (r *repository) Assign(ctx context.Context, userID uuid.UUID, role Role) error {
	ur := UserRole{ID: uuid.New(), UserID: userID, Role: string(role)}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "role"}},
			DoNothing: true,
		}).
		Create(&ur).Error
}

func (r *repository) Revoke(ctx context.Context, userID uuid.UUID, role Role) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, string(role)).
		Delete(&UserRole{})
	return result.RowsAffected, result.Error
}

func (r *repository) ListForUser(ctx context.Context, userID string) ([]Role, error) {
	var rows []UserRole
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("role").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	roles := make([]Role, len(rows))
	for i, row := range rows {
		roles[i] = Role(row.Role)
	}
	return roles, nil
}

func (r *repository) ListUsersWithRole(ctx context.Context, role Role) ([]uuid.UUID, error) {
	var rows []UserRole
	err := r.db.WithContext(ctx).
		Where("role = ?", string(role)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	users := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		users[i] = row.UserID
	}
	return users, nil
}
