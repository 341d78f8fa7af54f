package document

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, d *EmployeeDocument) error
	FindByUser(ctx context.Context, userID string) ([]EmployeeDocument, error)
	FindByID(ctx context.Context, id string) (*EmployeeDocument, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *EmployeeDocument) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindByUser(ctx context.Context, userID string) ([]EmployeeDocument, error) {
	var docs []EmployeeDocument
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*EmployeeDocument, error) {
	var d EmployeeDocument
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&EmployeeDocument{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
