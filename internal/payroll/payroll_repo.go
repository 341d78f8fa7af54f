package payroll

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Insert(ctx context.Context, rec *PayrollRecord) error
	MarkPaid(ctx context.Context, id string, method, transactionRef string, paidBy string) (int64, error)
	SetPayslip(ctx context.Context, id string, url string) error
	FindByID(ctx context.Context, id string) (*PayrollRecord, error)
	FindByPeriod(ctx context.Context, month, year int) ([]PayrollRecord, error)
	FindByUser(ctx context.Context, userID string) ([]PayrollRecord, error)
	ListActiveEmployees(ctx context.Context) ([]EmployeeRef, error)
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

// Insert writes the snapshot with raw SQL so it can share a transaction with
// the outbox row. The unique index rejects a second insert for the same
// employee and period.
func (r *repository) Insert(ctx context.Context, rec *PayrollRecord) error {
	query := `
        INSERT INTO payrolls (
            id, user_id, month, year,
            basic_salary, hra, transport_allowance, special_allowance, other_allowances,
            pf_contribution, esi_contribution, professional_tax, income_tax_deduction,
            gross_salary, total_deductions, net_salary,
            status, processed_by
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
    `

	_, err := r.execer().ExecContext(
		ctx, query,
		rec.ID, rec.UserID, rec.Month, rec.Year,
		rec.BasicSalary, rec.HRA, rec.TransportAllowance, rec.SpecialAllowance, rec.OtherAllowances,
		rec.PFContribution, rec.ESIContribution, rec.ProfessionalTax, rec.IncomeTaxDeduction,
		rec.GrossSalary, rec.TotalDeductions, rec.NetSalary,
		rec.Status, rec.ProcessedBy,
	)
	return err
}

// MarkPaid flips a processed record to paid in a single conditional UPDATE
// and reports how many rows changed, so the caller can tell a repeat call
// from a missing record.
func (r *repository) MarkPaid(ctx context.Context, id string, method, transactionRef string, paidBy string) (int64, error) {
	query := `
UPDATE payrolls
SET
	status = $2,
	payment_method = $3,
	transaction_ref = $4,
	paid_by = $5,
	paid_at = NOW(),
	updated_at = NOW()
WHERE id = $1 AND status = $6
`
	result, err := r.execer().ExecContext(ctx, query, id, StatusPaid, method, transactionRef, paidBy, StatusProcessed)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *repository) SetPayslip(ctx context.Context, id string, url string) error {
	return r.db.WithContext(ctx).
		Model(&PayrollRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payslip_url":          url,
			"payslip_generated_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*PayrollRecord, error) {
	var rec PayrollRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) FindByPeriod(ctx context.Context, month, year int) ([]PayrollRecord, error) {
	var recs []PayrollRecord
	err := r.db.WithContext(ctx).
		Where("month = ? AND year = ?", month, year).
		Order("created_at ASC").
		Find(&recs).Error
	return recs, err
}

func (r *repository) FindByUser(ctx context.Context, userID string) ([]PayrollRecord, error) {
	var recs []PayrollRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		Find(&recs).Error
	return recs, err
}

func (r *repository) ListActiveEmployees(ctx context.Context) ([]EmployeeRef, error) {
	var refs []EmployeeRef
	err := r.db.WithContext(ctx).
		Model(&EmployeeRef{}).
		Where("is_active = ?", true).
		Order("employee_code ASC").
		Find(&refs).Error
	return refs, err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db.ConnPool
}
