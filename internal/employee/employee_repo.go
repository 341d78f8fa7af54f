package employee

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateUser(ctx context.Context, id uuid.UUID, name, email, passwordHash string) error
	CreateProfile(ctx context.Context, p *Profile) error
	SeedCompensation(ctx context.Context, userID uuid.UUID) error
	SeedSalaryHistory(ctx context.Context, userID uuid.UUID, effectiveFrom time.Time, changedBy uuid.UUID) error
	FindAllActive(ctx context.Context) ([]Profile, error)
	FindByID(ctx context.Context, id string) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	Deactivate(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// The create path writes with raw SQL through the shared transaction, so the
// user, profile, compensation seed and history seed land or vanish together.

func (r *repository) CreateUser(ctx context.Context, id uuid.UUID, name, email, passwordHash string) error {
	query := `
        INSERT INTO users (id, name, email, password, is_active)
        VALUES ($1, $2, $3, $4, TRUE)
    `
	_, err := r.execer().ExecContext(ctx, query, id, name, email, passwordHash)
	return err
}

func (r *repository) CreateProfile(ctx context.Context, p *Profile) error {
	query := `
        INSERT INTO employee_profiles (
            id, user_id, employee_code, first_name, last_name,
            department, designation, branch_id, join_date, is_active
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
    `
	_, err := r.execer().ExecContext(
		ctx, query,
		p.ID, p.UserID, p.EmployeeCode, p.FirstName, p.LastName,
		p.Department, p.Designation, p.BranchID, p.JoinDate,
	)
	return err
}

func (r *repository) SeedCompensation(ctx context.Context, userID uuid.UUID) error {
	query := `
        INSERT INTO compensation_profiles (id, user_id, payment_frequency)
        VALUES ($1, $2, 'monthly')
    `
	_, err := r.execer().ExecContext(ctx, query, uuid.New(), userID)
	return err
}

func (r *repository) SeedSalaryHistory(ctx context.Context, userID uuid.UUID, effectiveFrom time.Time, changedBy uuid.UUID) error {
	query := `
        INSERT INTO salary_history (id, user_id, effective_from, changed_by)
        VALUES ($1, $2, $3, $4)
    `
	_, err := r.execer().ExecContext(ctx, query, uuid.New(), userID, effectiveFrom, changedBy)
	return err
}

func (r *repository) FindAllActive(ctx context.Context) ([]Profile, error) {
	var profiles []Profile
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("employee_code ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Deactivate(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&Profile{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db.ConnPool
}
