package expense

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/headhr-blip/worknest/internal/approval"
	expenseerrors "github.com/headhr-blip/worknest/internal/expense/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service interface {
	Submit(ctx context.Context, userID string, req CreateExpenseRequest) (ExpenseResponse, error)
	GetMine(ctx context.Context, userID string) ([]ExpenseResponse, error)
	GetAll(ctx context.Context) ([]ExpenseResponse, error)
	GetByID(ctx context.Context, id string) (ExpenseResponse, error)
	ListCategories(ctx context.Context) ([]CategoryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("expense.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("expense.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Submit validates the claim against its category and records it as pending.
// The receipt URL is stored opaquely; uploads happen through the document
// module.
func (s *service) Submit(ctx context.Context, userID string, req CreateExpenseRequest) (ExpenseResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return ExpenseResponse{}, expenseerrors.ErrInvalidUserID
	}
	if req.Amount <= 0 {
		return ExpenseResponse{}, expenseerrors.ErrInvalidAmount
	}
	expenseDate, err := time.Parse(dateLayout, req.ExpenseDate)
	if err != nil {
		return ExpenseResponse{}, expenseerrors.ErrInvalidExpenseDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ExpenseResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	cat, err := qtx.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ExpenseResponse{}, expenseerrors.ErrCategoryNotFound
		}
		return ExpenseResponse{}, err
	}
	if !cat.IsActive {
		return ExpenseResponse{}, expenseerrors.ErrCategoryInactive
	}
	if cat.MaxAmount > 0 && req.Amount > cat.MaxAmount {
		return ExpenseResponse{}, expenseerrors.ErrAmountExceedsLimit
	}

	e := &Expense{
		ID:          uuid.New(),
		UserID:      userUUID,
		CategoryID:  cat.ID,
		Amount:      req.Amount,
		ExpenseDate: expenseDate,
		Description: req.Description,
		ReceiptURL:  req.ReceiptURL,
		Status:      string(approval.StatusPending),
	}

	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create expense failed", zap.String("user_id", userID), zap.Error(err))
		return ExpenseResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ExpenseResponse{}, err
	}

	s.logger.Info("expense claim submitted",
		zap.String("expense_id", e.ID.String()),
		zap.String("user_id", userID),
		zap.Float64("amount", req.Amount),
	)

	e.Category = cat
	return mapToResponse(*e), nil
}

func (s *service) GetMine(ctx context.Context, userID string) ([]ExpenseResponse, error) {
	items, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) GetAll(ctx context.Context) ([]ExpenseResponse, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ExpenseResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ExpenseResponse{}, expenseerrors.ErrExpenseNotFound
		}
		return ExpenseResponse{}, err
	}
	return mapToResponse(*e), nil
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	cats, err := s.repo.FindActiveCategories(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]CategoryResponse, len(cats))
	for i, cat := range cats {
		resp[i] = CategoryResponse{
			ID:        cat.ID.String(),
			Name:      cat.Name,
			MaxAmount: cat.MaxAmount,
		}
	}
	return resp, nil
}

func mapToResponse(e Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:          e.ID.String(),
		UserID:      e.UserID.String(),
		Amount:      e.Amount,
		ExpenseDate: e.ExpenseDate.Format(dateLayout),
		Description: e.Description,
		ReceiptURL:  e.ReceiptURL,
		Status:      e.Status,
		Comments:    e.Comments,
	}
	if e.Category != nil {
		resp.Category = e.Category.Name
	}
	if e.ApprovedBy != nil {
		v := e.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if e.ApprovedAt != nil {
		v := e.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}

func mapToListResponse(items []Expense) []ExpenseResponse {
	resp := make([]ExpenseResponse, len(items))
	for i, e := range items {
		resp[i] = mapToResponse(e)
	}
	return resp
}
