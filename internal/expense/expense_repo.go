package expense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/headhr-blip/worknest/internal/approval"
	approvalerrors "github.com/headhr-blip/worknest/internal/approval/errors"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Expense) error
	FindByID(ctx context.Context, id string) (*Expense, error)
	FindByUser(ctx context.Context, userID string) ([]Expense, error)
	FindAll(ctx context.Context) ([]Expense, error)
	FindActiveCategories(ctx context.Context) ([]ExpenseCategory, error)
	FindCategoryByID(ctx context.Context, id string) (*ExpenseCategory, error)

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
func (r *repository) Create(ctx context.Context, e *Expense) error {
	query := `
        INSERT INTO expenses (
            id, user_id, category_id, amount, expense_date, description, receipt_url, status
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.execer().ExecContext(
		ctx, query,
		e.ID, e.UserID, e.CategoryID, e.Amount, e.ExpenseDate, e.Description, e.ReceiptURL, e.Status,
	)
	return err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Expense, error) {
	var e Expense
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByUser(ctx context.Context, userID string) ([]Expense, error) {
	var items []Expense
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("expense_date DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindAll(ctx context.Context) ([]Expense, error) {
	var items []Expense
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("expense_date DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindActiveCategories(ctx context.Context) ([]ExpenseCategory, error) {
	var cats []ExpenseCategory
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&cats).Error
	return cats, err
}

func (r *repository) FindCategoryByID(ctx context.Context, id string) (*ExpenseCategory, error) {
	var cat ExpenseCategory
	err := r.db.WithContext(ctx).First(&cat, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *repository) ListPending(ctx context.Context) ([]approval.PendingRequest, error) {
	var items []Expense
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("status = ?", approval.StatusPending).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	pending := make([]approval.PendingRequest, len(items))
	for i, e := range items {
		catName := ""
		if e.Category != nil {
			catName = e.Category.Name
		}
		pending[i] = approval.PendingRequest{
			ID:          e.ID.String(),
			Kind:        approval.KindExpense,
			UserID:      e.UserID.String(),
			Summary:     fmt.Sprintf("%s claim dated %s", catName, e.ExpenseDate.Format("2006-01-02")),
			Amount:      e.Amount,
			SubmittedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return pending, nil
}

// Resolve flips a pending claim to its decided status in a single conditional
// UPDATE, so two approvers can never both win.
func (r *repository) Resolve(ctx context.Context, id string, res approval.Resolution) error {
	result := r.db.WithContext(ctx).
		Model(&Expense{}).
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
		var existing Expense
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
