package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/headhr-blip/worknest/internal/approval"
	leaveerrors "github.com/headhr-blip/worknest/internal/leave/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service interface {
	Submit(ctx context.Context, userID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetMine(ctx context.Context, userID string) ([]LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	Balance(ctx context.Context, userID string) ([]BalanceResponse, error)
	ListTypes(ctx context.Context) ([]LeaveTypeResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Submit validates the window, checks the remaining balance for the leave
// type, and records the request as pending. Day counts include both
// endpoints.
func (s *service) Submit(ctx context.Context, userID string, req CreateLeaveRequest) (LeaveResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidUserID
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	totalDays := TotalDaysInclusive(start, end)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	leaveType, err := qtx.FindTypeByID(ctx, req.LeaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveTypeNotFound
		}
		return LeaveResponse{}, err
	}
	if !leaveType.IsActive {
		return LeaveResponse{}, leaveerrors.ErrLeaveTypeInactive
	}

	overlaps, err := qtx.CountOverlapping(ctx, userID, start, end)
	if err != nil {
		return LeaveResponse{}, err
	}
	if overlaps > 0 {
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	if leaveType.AnnualCap > 0 {
		used, err := qtx.SumApprovedDays(ctx, userID, req.LeaveTypeID, start.Year())
		if err != nil {
			return LeaveResponse{}, err
		}
		if used+totalDays > leaveType.AnnualCap {
			return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
		}
	}

	lr := &LeaveRequest{
		ID:          uuid.New(),
		UserID:      userUUID,
		LeaveTypeID: leaveType.ID,
		StartDate:   start,
		EndDate:     end,
		TotalDays:   totalDays,
		Reason:      req.Reason,
		Status:      string(approval.StatusPending),
	}

	if err := qtx.Create(ctx, lr); err != nil {
		s.logger.Error("create leave request failed", zap.String("user_id", userID), zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave request submitted",
		zap.String("leave_id", lr.ID.String()),
		zap.String("user_id", userID),
		zap.Int("total_days", totalDays),
	)

	lr.LeaveType = leaveType
	return mapToResponse(*lr), nil
}

func (s *service) GetMine(ctx context.Context, userID string) ([]LeaveResponse, error) {
	items, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	lr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(*lr), nil
}

// Balance reports, per active leave type, the cap minus the days already
// approved in the current calendar year.
func (s *service) Balance(ctx context.Context, userID string) ([]BalanceResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, leaveerrors.ErrInvalidUserID
	}

	types, err := s.repo.FindActiveTypes(ctx)
	if err != nil {
		return nil, err
	}

	year := time.Now().UTC().Year()
	balances := make([]BalanceResponse, len(types))
	for i, t := range types {
		used, err := s.repo.SumApprovedDays(ctx, userID, t.ID.String(), year)
		if err != nil {
			return nil, err
		}
		remaining := t.AnnualCap - used
		if remaining < 0 {
			remaining = 0
		}
		balances[i] = BalanceResponse{
			LeaveTypeID:   t.ID.String(),
			LeaveType:     t.Name,
			AnnualCap:     t.AnnualCap,
			UsedDays:      used,
			RemainingDays: remaining,
		}
	}
	return balances, nil
}

func (s *service) ListTypes(ctx context.Context) ([]LeaveTypeResponse, error) {
	types, err := s.repo.FindActiveTypes(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveTypeResponse, len(types))
	for i, t := range types {
		resp[i] = LeaveTypeResponse{
			ID:        t.ID.String(),
			Name:      t.Name,
			AnnualCap: t.AnnualCap,
		}
	}
	return resp, nil
}

func mapToResponse(lr LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:        lr.ID.String(),
		UserID:    lr.UserID.String(),
		StartDate: lr.StartDate.Format(dateLayout),
		EndDate:   lr.EndDate.Format(dateLayout),
		TotalDays: lr.TotalDays,
		Reason:    lr.Reason,
		Status:    lr.Status,
		Comments:  lr.Comments,
	}
	if lr.LeaveType != nil {
		resp.LeaveType = lr.LeaveType.Name
	}
	if lr.ApprovedBy != nil {
		v := lr.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if lr.ApprovedAt != nil {
		v := lr.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}

func mapToListResponse(items []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(items))
	for i, lr := range items {
		resp[i] = mapToResponse(lr)
	}
	return resp
}
