package loan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/headhr-blip/worknest/internal/approval"
	approvalerrors "github.com/headhr-blip/worknest/internal/approval/errors"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, loan *Loan) error
	FindByID(ctx context.Context, id string) (*Loan, error)
	FindByUser(ctx context.Context, userID string) ([]Loan, error)
	FindAll(ctx context.Context) ([]Loan, error)
	FindActiveTypes(ctx context.Context) ([]LoanType, error)
	FindTypeByID(ctx context.Context, id string) (*LoanType, error)

	// approval.Store
	ListPending(ctx context.Context) ([]approval.PendingRequest, error)
	Resolve(ctx context.Context, id string, res approval.Resolution) error
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

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db.ConnPool
}

// Create inserts with raw SQL so it runs on the service's transaction when
// one is attached via WithTx.
func (r *repository) Create(ctx context.Context, loan *Loan) error {
	query := `
        INSERT INTO loans (
            id, user_id, loan_type_id, amount, tenure_months, interest_rate, emi_amount, reason, status
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err := r.execer().ExecContext(
		ctx, query,
		loan.ID, loan.UserID, loan.LoanTypeID, loan.Amount, loan.TenureMonths,
		loan.InterestRate, loan.EMIAmount, loan.Reason, loan.Status,
	)
	return err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Loan, error) {
	var loan Loan
	err := r.db.WithContext(ctx).
		Preload("LoanType").
		First(&loan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

func (r *repository) FindByUser(ctx context.Context, userID string) ([]Loan, error) {
	var loans []Loan
	err := r.db.WithContext(ctx).
		Preload("LoanType").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&loans).Error
	return loans, err
}

func (r *repository) FindAll(ctx context.Context) ([]Loan, error) {
	var loans []Loan
	err := r.db.WithContext(ctx).
		Preload("LoanType").
		Order("created_at DESC").
		Find(&loans).Error
	return loans, err
}

func (r *repository) FindActiveTypes(ctx context.Context) ([]LoanType, error) {
	var types []LoanType
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&types).Error
	return types, err
}

func (r *repository) FindTypeByID(ctx context.Context, id string) (*LoanType, error) {
	var lt LoanType
	err := r.db.WithContext(ctx).First(&lt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lt, nil
}

func (r *repository) ListPending(ctx context.Context) ([]approval.PendingRequest, error) {
	loans, err := r.findPending(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]approval.PendingRequest, len(loans))
	for i, l := range loans {
		typeName := ""
		if l.LoanType != nil {
			typeName = l.LoanType.Name
		}
		items[i] = approval.PendingRequest{
			ID:          l.ID.String(),
			Kind:        approval.KindLoan,
			UserID:      l.UserID.String(),
			Summary:     fmt.Sprintf("%s loan over %d months", typeName, l.TenureMonths),
			Amount:      l.Amount,
			SubmittedAt: l.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return items, nil
}

// Resolve flips a pending loan to its decided status in a single conditional
// UPDATE, so two approvers can never both win.
func (r *repository) Resolve(ctx context.Context, id string, res approval.Resolution) error {
	result := r.db.WithContext(ctx).
		Model(&Loan{}).
		Where("id = ? AND status = ?", id, approval.StatusPending).
		Updates(map[string]interface{}{
			"status":      string(res.Status),
			"approved_by": res.ApprovedBy,
			"approved_at": res.ApprovedAt,
			"comments":    res.Comments,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var existing Loan
		err := r.db.WithContext(ctx).Select("id").First(&existing, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return approvalerrors.ErrRequestNotFound
		}
		if err != nil {
			return err
		}
		return approvalerrors.ErrAlreadyResolved
	}
	return nil
}

func (r *repository) findPending(ctx context.Context) ([]Loan, error) {
	var loans []Loan
	err := r.db.WithContext(ctx).
		Preload("LoanType").
		Where("status = ?", approval.StatusPending).
		Order("created_at DESC").
		Find(&loans).Error
	return loans, err
}
