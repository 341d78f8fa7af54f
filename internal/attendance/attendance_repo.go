package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	CloseOpenDay(ctx context.Context, userID string, date time.Time, clockOut time.Time) (int64, error)
	FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)
	FindByUser(ctx context.Context, userID string, limit int) ([]Attendance, error)
	FindByDate(ctx context.Context, date time.Time) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// CloseOpenDay sets clock_out only when it is still unset; the row count
// tells the caller whether there was an open check-in to close.
func (r *repository) CloseOpenDay(ctx context.Context, userID string, date time.Time, clockOut time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("user_id = ? AND attendance_date = ? AND clock_out IS NULL", userID, date).
		Update("clock_out", clockOut)
	return result.RowsAffected, result.Error
}

func (r *repository) FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		First(&a, "user_id = ? AND attendance_date = ?", userID, date).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByUser(ctx context.Context, userID string, limit int) ([]Attendance, error) {
	var items []Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("attendance_date DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *repository) FindByDate(ctx context.Context, date time.Time) ([]Attendance, error) {
	var items []Attendance
	err := r.db.WithContext(ctx).
		Where("attendance_date = ?", date).
		Order("clock_in ASC").
		Find(&items).Error
	return items, err
}
