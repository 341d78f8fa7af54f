package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	employeeerrors "github.com/headhr-blip/worknest/internal/employee/errors"
	"github.com/headhr-blip/worknest/internal/events"
	"github.com/headhr-blip/worknest/internal/messaging/kafka"
	"github.com/headhr-blip/worknest/internal/shared/contextutil"
	"github.com/headhr-blip/worknest/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, actorID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, counter: counterRepo, outbox: outbox, logger: l}
}

// Create onboards an employee: account, profile, zeroed compensation profile
// and its first history row, plus the employee.created outbox event, all in
// one transaction. Either the whole onboarding lands or none of it does.
func (s *service) Create(ctx context.Context, actorID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	joinDate, err := time.Parse(dateLayout, req.JoinDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoinDate
	}

	var branchID *uuid.UUID
	if req.BranchID != nil {
		parsed, err := uuid.Parse(*req.BranchID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		branchID = &parsed
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	nextVal, err := s.counter.GetNextValue(ctx, "employee_code")
	if err != nil {
		s.logger.Error("generate employee code failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	employeeCode := fmt.Sprintf("EMP-%04d", nextVal)

	userID := uuid.New()
	profile := &Profile{
		ID:           uuid.New(),
		UserID:       userID,
		EmployeeCode: employeeCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Department:   req.Department,
		Designation:  req.Designation,
		BranchID:     branchID,
		JoinDate:     joinDate,
		IsActive:     true,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := profile.FullName()

	if err := qtx.CreateUser(ctx, userID, name, email, string(hashed)); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := qtx.CreateProfile(ctx, profile); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := qtx.SeedCompensation(ctx, userID); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := qtx.SeedSalaryHistory(ctx, userID, joinDate, actorUUID); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	event, err := kafka.NewOutboxEvent(
		rid,
		"employee", userID.String(),
		events.EmployeeCreatedEventType,
		events.EmployeeCreatedTopic,
		events.EmployeeCreatedEvent{
			EventType:  events.EmployeeCreatedEventType,
			UserID:     userID.String(),
			EmployeeNo: employeeCode,
			OccurredAt: time.Now().UTC(),
		},
	)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee created",
		zap.String("request_id", rid),
		zap.String("user_id", userID.String()),
		zap.String("employee_code", employeeCode),
	)

	return mapToResponse(*profile), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	profiles, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]EmployeeResponse, len(profiles))
	for i, p := range profiles {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.Department != nil {
		p.Department = *req.Department
	}
	if req.Designation != nil {
		p.Designation = *req.Designation
	}
	if req.BranchID != nil {
		parsed, err := uuid.Parse(*req.BranchID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		p.BranchID = &parsed
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	rows, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return employeeerrors.ErrEmployeeNotFound
			}
			return err
		}
		return employeeerrors.ErrAlreadyInactive
	}

	s.logger.Info("employee deactivated", zap.String("profile_id", id))
	return nil
}

func mapToResponse(p Profile) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           p.ID.String(),
		UserID:       p.UserID.String(),
		EmployeeCode: p.EmployeeCode,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Department:   p.Department,
		Designation:  p.Designation,
		JoinDate:     p.JoinDate.Format(dateLayout),
		IsActive:     p.IsActive,
	}
	if p.BranchID != nil {
		v := p.BranchID.String()
		resp.BranchID = &v
	}
	return resp
}
