package compensation

import (
	"context"
	"database/sql"
	"errors"
	"time"

	compensationerrors "github.com/headhr-blip/worknest/internal/compensation/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Upsert(ctx context.Context, userID, actorID string, req UpsertCompensationRequest) (CompensationResponse, error)
	SeedDefault(ctx context.Context, userID string) error
	Get(ctx context.Context, userID string) (CompensationResponse, error)
	History(ctx context.Context, userID string) ([]SalaryHistoryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("compensation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("compensation.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Upsert replaces the current profile and appends a salary history entry in
// the same transaction. History is append-only; the previous profile is
// superseded, never deleted.
func (s *service) Upsert(
	ctx context.Context,
	userID, actorID string,
	req UpsertCompensationRequest,
) (CompensationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return CompensationResponse{}, compensationerrors.ErrInvalidUserID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return CompensationResponse{}, compensationerrors.ErrInvalidActorID
	}
	effectiveFrom, err := time.Parse("2006-01-02", req.EffectiveFrom)
	if err != nil {
		return CompensationResponse{}, compensationerrors.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CompensationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	profile := &CompensationProfile{
		ID:                 uuid.New(),
		UserID:             userUUID,
		BasicSalary:        req.BasicSalary,
		HRA:                req.HRA,
		TransportAllowance: req.TransportAllowance,
		SpecialAllowance:   req.SpecialAllowance,
		OtherAllowances:    req.OtherAllowances,
		PFContribution:     req.PFContribution,
		ESIContribution:    req.ESIContribution,
		ProfessionalTax:    req.ProfessionalTax,
		IncomeTaxDeduction: req.IncomeTaxDeduction,
		PaymentFrequency:   req.PaymentFrequency,
	}

	if err := qtx.Upsert(ctx, profile); err != nil {
		s.logger.Error("upsert compensation profile failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return CompensationResponse{}, err
	}

	entry := &SalaryHistoryEntry{
		ID:                 uuid.New(),
		UserID:             userUUID,
		BasicSalary:        req.BasicSalary,
		HRA:                req.HRA,
		TransportAllowance: req.TransportAllowance,
		SpecialAllowance:   req.SpecialAllowance,
		OtherAllowances:    req.OtherAllowances,
		PFContribution:     req.PFContribution,
		ESIContribution:    req.ESIContribution,
		ProfessionalTax:    req.ProfessionalTax,
		IncomeTaxDeduction: req.IncomeTaxDeduction,
		EffectiveFrom:      effectiveFrom,
		ChangedBy:          actorUUID,
	}

	if err := qtx.AppendHistory(ctx, entry); err != nil {
		return CompensationResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return CompensationResponse{}, err
	}

	breakdown := Calculate(*profile)
	if breakdown.NetSalary < 0 {
		s.logger.Warn("net salary is negative, deductions exceed gross",
			zap.String("user_id", userID),
			zap.Float64("gross", breakdown.GrossSalary),
			zap.Float64("deductions", breakdown.TotalDeductions),
		)
	}

	s.logger.Info("compensation profile updated",
		zap.String("user_id", userID),
		zap.String("changed_by", actorID),
		zap.String("effective_from", req.EffectiveFrom),
	)

	return mapToResponse(*profile), nil
}

// SeedDefault creates a zeroed monthly profile only where none exists yet.
// It must never update: HR may configure a salary before a late or replayed
// employee event arrives, and that data has to survive.
func (s *service) SeedDefault(ctx context.Context, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return compensationerrors.ErrInvalidUserID
	}

	profile := &CompensationProfile{
		ID:               uuid.New(),
		UserID:           userUUID,
		PaymentFrequency: FrequencyMonthly,
	}

	if err := s.repo.Insert(ctx, profile); err != nil {
		if isDuplicateProfile(err) {
			return compensationerrors.ErrProfileExists
		}
		return err
	}

	s.logger.Info("default compensation profile seeded", zap.String("user_id", userID))
	return nil
}

func (s *service) Get(ctx context.Context, userID string) (CompensationResponse, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompensationResponse{}, compensationerrors.ErrProfileNotFound
		}
		return CompensationResponse{}, err
	}

	return mapToResponse(*profile), nil
}

func (s *service) History(ctx context.Context, userID string) ([]SalaryHistoryResponse, error) {
	entries, err := s.repo.ListHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]SalaryHistoryResponse, len(entries))
	for i, e := range entries {
		resp[i] = SalaryHistoryResponse{
			ID:            e.ID.String(),
			UserID:        e.UserID.String(),
			EffectiveFrom: e.EffectiveFrom.Format("2006-01-02"),
			ChangedBy:     e.ChangedBy.String(),
			Breakdown: Calculate(CompensationProfile{
				BasicSalary:        e.BasicSalary,
				HRA:                e.HRA,
				TransportAllowance: e.TransportAllowance,
				SpecialAllowance:   e.SpecialAllowance,
				OtherAllowances:    e.OtherAllowances,
				PFContribution:     e.PFContribution,
				ESIContribution:    e.ESIContribution,
				ProfessionalTax:    e.ProfessionalTax,
				IncomeTaxDeduction: e.IncomeTaxDeduction,
			}),
		}
	}
	return resp, nil
}

func mapToResponse(p CompensationProfile) CompensationResponse {
	return CompensationResponse{
		ID:               p.ID.String(),
		UserID:           p.UserID.String(),
		PaymentFrequency: p.PaymentFrequency,
		Breakdown:        Calculate(p),
	}
}
