package compensation

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByUserID(ctx context.Context, userID string) (*CompensationProfile, error)
	Insert(ctx context.Context, profile *CompensationProfile) error
	Upsert(ctx context.Context, profile *CompensationProfile) error
	AppendHistory(ctx context.Context, entry *SalaryHistoryEntry) error
	ListHistory(ctx context.Context, userID string) ([]SalaryHistoryEntry, error)
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

func (r *repository) FindByUserID(ctx context.Context, userID string) (*CompensationProfile, error) {
	var profile CompensationProfile
	err := r.db.WithContext(ctx).
		First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Insert creates a profile only where none exists; a second insert for the
// same user fails on uq_compensation_user instead of touching the row.
func (r *repository) Insert(ctx context.Context, profile *CompensationProfile) error {
	query := `
        INSERT INTO compensation_profiles (
            id, user_id,
            basic_salary, hra, transport_allowance, special_allowance, other_allowances,
            pf_contribution, esi_contribution, professional_tax, income_tax_deduction,
            payment_frequency
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `
	_, err := r.execer().ExecContext(
		ctx, query,
		profile.ID, profile.UserID,
		profile.BasicSalary, profile.HRA, profile.TransportAllowance,
		profile.SpecialAllowance, profile.OtherAllowances,
		profile.PFContribution, profile.ESIContribution,
		profile.ProfessionalTax, profile.IncomeTaxDeduction,
		profile.PaymentFrequency,
	)
	return err
}

// Upsert writes with raw SQL so it can share a transaction with the history
// row the service appends alongside it.
func (r *repository) Upsert(ctx context.Context, profile *CompensationProfile) error {
	query := `
        INSERT INTO compensation_profiles (
            id, user_id,
            basic_salary, hra, transport_allowance, special_allowance, other_allowances,
            pf_contribution, esi_contribution, professional_tax, income_tax_deduction,
            payment_frequency
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        ON CONFLICT (user_id) DO UPDATE SET
            basic_salary = EXCLUDED.basic_salary,
            hra = EXCLUDED.hra,
            transport_allowance = EXCLUDED.transport_allowance,
            special_allowance = EXCLUDED.special_allowance,
            other_allowances = EXCLUDED.other_allowances,
            pf_contribution = EXCLUDED.pf_contribution,
            esi_contribution = EXCLUDED.esi_contribution,
            professional_tax = EXCLUDED.professional_tax,
            income_tax_deduction = EXCLUDED.income_tax_deduction,
            payment_frequency = EXCLUDED.payment_frequency,
            updated_at = NOW()
    `
	_, err := r.execer().ExecContext(
		ctx, query,
		profile.ID, profile.UserID,
		profile.BasicSalary, profile.HRA, profile.TransportAllowance,
		profile.SpecialAllowance, profile.OtherAllowances,
		profile.PFContribution, profile.ESIContribution,
		profile.ProfessionalTax, profile.IncomeTaxDeduction,
		profile.PaymentFrequency,
	)
	return err
}

func (r *repository) AppendHistory(ctx context.Context, entry *SalaryHistoryEntry) error {
	query := `
        INSERT INTO salary_history (
            id, user_id,
            basic_salary, hra, transport_allowance, special_allowance, other_allowances,
            pf_contribution, esi_contribution, professional_tax, income_tax_deduction,
            effective_from, changed_by
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `
	_, err := r.execer().ExecContext(
		ctx, query,
		entry.ID, entry.UserID,
		entry.BasicSalary, entry.HRA, entry.TransportAllowance,
		entry.SpecialAllowance, entry.OtherAllowances,
		entry.PFContribution, entry.ESIContribution,
		entry.ProfessionalTax, entry.IncomeTaxDeduction,
		entry.EffectiveFrom, entry.ChangedBy,
	)
	return err
}

func (r *repository) ListHistory(ctx context.Context, userID string) ([]SalaryHistoryEntry, error) {
	var entries []SalaryHistoryEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("effective_from DESC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db.ConnPool
}
