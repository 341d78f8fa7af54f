package loan

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/headhr-blip/worknest/internal/approval"
	loanerrors "github.com/headhr-blip/worknest/internal/loan/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Apply(ctx context.Context, userID string, req ApplyLoanRequest) (LoanResponse, error)
	GetMine(ctx context.Context, userID string) ([]LoanResponse, error)
	GetAll(ctx context.Context) ([]LoanResponse, error)
	GetByID(ctx context.Context, id string) (LoanResponse, error)
	ListTypes(ctx context.Context) ([]LoanTypeResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("loan.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("loan.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Apply validates the request against its loan type and computes the EMI
// server-side. The rate always comes from the loan type, never the client.
func (s *service) Apply(ctx context.Context, userID string, req ApplyLoanRequest) (LoanResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return LoanResponse{}, loanerrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LoanResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	loanType, err := qtx.FindTypeByID(ctx, req.LoanTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoanResponse{}, loanerrors.ErrLoanTypeNotFound
		}
		return LoanResponse{}, err
	}
	if !loanType.IsActive {
		return LoanResponse{}, loanerrors.ErrLoanTypeInactive
	}
	if loanType.MaxAmount > 0 && req.Amount > loanType.MaxAmount {
		return LoanResponse{}, loanerrors.ErrAmountExceedsLimit
	}

	emi, err := CalculateEMI(req.Amount, loanType.InterestRate, req.TenureMonths)
	if err != nil {
		return LoanResponse{}, err
	}

	l := &Loan{
		ID:           uuid.New(),
		UserID:       userUUID,
		LoanTypeID:   loanType.ID,
		Amount:       req.Amount,
		TenureMonths: req.TenureMonths,
		InterestRate: loanType.InterestRate,
		EMIAmount:    emi,
		Reason:       req.Reason,
		Status:       string(approval.StatusPending),
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create loan failed", zap.String("user_id", userID), zap.Error(err))
		return LoanResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LoanResponse{}, err
	}

	s.logger.Info("loan application submitted",
		zap.String("loan_id", l.ID.String()),
		zap.String("user_id", userID),
		zap.Float64("amount", req.Amount),
		zap.Float64("emi", emi),
	)

	l.LoanType = loanType
	return mapToResponse(*l), nil
}

func (s *service) GetMine(ctx context.Context, userID string) ([]LoanResponse, error) {
	loans, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(loans), nil
}

func (s *service) GetAll(ctx context.Context) ([]LoanResponse, error) {
	loans, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(loans), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LoanResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoanResponse{}, loanerrors.ErrLoanNotFound
		}
		return LoanResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) ListTypes(ctx context.Context) ([]LoanTypeResponse, error) {
	types, err := s.repo.FindActiveTypes(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]LoanTypeResponse, len(types))
	for i, t := range types {
		resp[i] = LoanTypeResponse{
			ID:           t.ID.String(),
			Name:         t.Name,
			InterestRate: t.InterestRate,
			MaxAmount:    t.MaxAmount,
		}
	}
	return resp, nil
}

func mapToResponse(l Loan) LoanResponse {
	resp := LoanResponse{
		ID:           l.ID.String(),
		UserID:       l.UserID.String(),
		Amount:       l.Amount,
		TenureMonths: l.TenureMonths,
		InterestRate: l.InterestRate,
		EMIAmount:    l.EMIAmount,
		Reason:       l.Reason,
		Status:       l.Status,
		Comments:     l.Comments,
	}
	if l.LoanType != nil {
		resp.LoanType = l.LoanType.Name
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}

func mapToListResponse(loans []Loan) []LoanResponse {
	resp := make([]LoanResponse, len(loans))
	for i, l := range loans {
		resp[i] = mapToResponse(l)
	}
	return resp
}
