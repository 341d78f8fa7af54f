package payroll

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/headhr-blip/worknest/internal/compensation"
	"github.com/headhr-blip/worknest/internal/events"
	"github.com/headhr-blip/worknest/internal/messaging/kafka"
	payrollerrors "github.com/headhr-blip/worknest/internal/payroll/errors"
	"github.com/headhr-blip/worknest/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PayslipUploader stores a rendered payslip and returns its public URL.
type PayslipUploader interface {
	Upload(ctx context.Context, filename string, content []byte) (string, error)
}

type Service interface {
	Run(ctx context.Context, actorID string, req RunRequest) (RunResponse, error)
	MarkPaid(ctx context.Context, id, actorID string, req MarkPaidRequest) (PayrollResponse, error)
	GeneratePayslip(ctx context.Context, id string) (string, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	GetByPeriod(ctx context.Context, month, year int) ([]PayrollResponse, error)
	GetMine(ctx context.Context, userID string) ([]PayrollResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	compRepo compensation.Repository
	outbox   kafka.OutboxRepository
	uploader PayslipUploader
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	compRepo compensation.Repository,
	outbox kafka.OutboxRepository,
	uploader PayslipUploader,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{db: db, repo: repo, compRepo: compRepo, outbox: outbox, uploader: uploader, logger: l}
}

// Run processes every active employee for the period, one transaction per
// employee. A failure for one employee is recorded in its outcome and the
// batch moves on; the run itself only errors if the employee list cannot be
// loaded.
func (s *service) Run(ctx context.Context, actorID string, req RunRequest) (RunResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}
	if req.Month < 1 || req.Month > 12 || req.Year < 2000 || req.Year > 2100 {
		return RunResponse{}, payrollerrors.ErrInvalidPeriod
	}

	employees, err := s.repo.ListActiveEmployees(ctx)
	if err != nil {
		return RunResponse{}, err
	}

	resp := RunResponse{
		Month:    req.Month,
		Year:     req.Year,
		Total:    len(employees),
		Outcomes: make([]EmployeeOutcome, 0, len(employees)),
	}

	for _, emp := range employees {
		outcome := s.processEmployee(ctx, emp, req.Month, req.Year, actorUUID)
		switch outcome.Outcome {
		case OutcomeProcessed:
			resp.Processed++
		case OutcomeAlreadyProcessed:
			resp.Skipped++
		default:
			resp.Failed++
		}
		resp.Outcomes = append(resp.Outcomes, outcome)
	}

	s.logger.Info("payroll run finished",
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.Int("total", resp.Total),
		zap.Int("processed", resp.Processed),
		zap.Int("skipped", resp.Skipped),
		zap.Int("failed", resp.Failed),
	)

	return resp, nil
}

func (s *service) processEmployee(ctx context.Context, emp EmployeeRef, month, year int, actorID uuid.UUID) EmployeeOutcome {
	userID := emp.UserID.String()

	profile, err := s.compRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeOutcome{UserID: userID, Outcome: OutcomeFailed, Reason: "no compensation profile"}
		}
		return EmployeeOutcome{UserID: userID, Outcome: OutcomeFailed, Reason: err.Error()}
	}

	breakdown := compensation.Calculate(*profile)

	rec := &PayrollRecord{
		ID:     uuid.New(),
		UserID: emp.UserID,
		Month:  month,
		Year:   year,

		BasicSalary:        breakdown.BasicSalary,
		HRA:                breakdown.HRA,
		TransportAllowance: breakdown.TransportAllowance,
		SpecialAllowance:   breakdown.SpecialAllowance,
		OtherAllowances:    breakdown.OtherAllowances,
		PFContribution:     breakdown.PFContribution,
		ESIContribution:    breakdown.ESIContribution,
		ProfessionalTax:    breakdown.ProfessionalTax,
		IncomeTaxDeduction: breakdown.IncomeTaxDeduction,

		GrossSalary:     breakdown.GrossSalary,
		TotalDeductions: breakdown.TotalDeductions,
		NetSalary:       breakdown.NetSalary,

		Status:      StatusProcessed,
		ProcessedBy: actorID,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeOutcome{UserID: userID, Outcome: OutcomeFailed, Reason: err.Error()}
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Insert(ctx, rec); err != nil {
		if isDuplicatePeriod(err) {
			return EmployeeOutcome{UserID: userID, Outcome: OutcomeAlreadyProcessed}
		}
		s.logger.Error("insert payroll record failed",
			zap.String("user_id", userID),
			zap.Int("month", month),
			zap.Int("year", year),
			zap.Error(err),
		)
		return EmployeeOutcome{UserID: userID, Outcome: OutcomeFailed, Reason: err.Error()}
	}

	event, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		"payroll", rec.ID.String(),
		events.PayrollProcessedEventType,
		events.PayrollLifecycleTopic,
		events.PayrollProcessedEvent{
			EventType:   events.PayrollProcessedEventType,
			PayrollID:   rec.ID.String(),
			UserID:      userID,
			Month:       month,
			Year:        year,
			NetSalary:   rec.NetSalary,
			ProcessedBy: actorID.String(),
			OccurredAt:  time.Now().UTC(),
		},
	)
	if err != nil {
		return EmployeeOutcome{UserID: userID, Outcome: OutcomeFailed, Reason: err.Error()}
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		return EmployeeOutcome{UserID: userID, Outcome: OutcomeFailed, Reason: err.Error()}
	}

	if err := tx.Commit(); err != nil {
		return EmployeeOutcome{UserID: userID, Outcome: OutcomeFailed, Reason: err.Error()}
	}

	id := rec.ID.String()
	return EmployeeOutcome{
		UserID:    userID,
		Outcome:   OutcomeProcessed,
		PayrollID: &id,
		NetSalary: rec.NetSalary,
	}
}

// MarkPaid is a one-way transition from processed to paid. The conditional
// UPDATE decides the winner when two callers race.
func (s *service) MarkPaid(ctx context.Context, id, actorID string, req MarkPaidRequest) (PayrollResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}
	if req.TransactionRef == "" {
		return PayrollResponse{}, payrollerrors.ErrMissingTransactionRef
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	rows, err := s.repo.WithTx(tx).MarkPaid(ctx, id, req.PaymentMethod, req.TransactionRef, actorUUID.String())
	if err != nil {
		return PayrollResponse{}, err
	}
	if rows == 0 {
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
			}
			return PayrollResponse{}, err
		}
		return PayrollResponse{}, payrollerrors.ErrAlreadyPaid
	}

	// user_id never changes after insert, so an out-of-tx read is safe here.
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, err
	}

	event, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		"payroll", id,
		events.PayrollPaidEventType,
		events.PayrollLifecycleTopic,
		events.PayrollPaidEvent{
			EventType:      events.PayrollPaidEventType,
			PayrollID:      id,
			UserID:         current.UserID.String(),
			TransactionRef: req.TransactionRef,
			PaidBy:         actorUUID.String(),
			OccurredAt:     time.Now().UTC(),
		},
	)
	if err != nil {
		return PayrollResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	s.logger.Info("payroll marked paid",
		zap.String("payroll_id", id),
		zap.String("paid_by", actorID),
		zap.String("transaction_ref", req.TransactionRef),
	)

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*rec), nil
}

// GeneratePayslip renders a one-page PDF for the record and stores its URL.
// Safe to repeat: regenerating just overwrites the URL.
func (s *service) GeneratePayslip(ctx context.Context, id string) (string, error) {
	if s.uploader == nil {
		return "", payrollerrors.ErrUploadsDisabled
	}

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", payrollerrors.ErrPayrollNotFound
		}
		return "", err
	}

	pdf := renderPayslipPDF(*rec)

	filename := fmt.Sprintf("payslip_%s_%d_%d.pdf", rec.UserID, rec.Month, rec.Year)
	url, err := s.uploader.Upload(ctx, filename, pdf)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetPayslip(ctx, id, url); err != nil {
		return "", err
	}

	s.logger.Info("payslip stored",
		zap.String("payroll_id", id),
		zap.String("url", url),
	)
	return url, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
		}
		return PayrollResponse{}, err
	}
	return mapToResponse(*rec), nil
}

func (s *service) GetByPeriod(ctx context.Context, month, year int) ([]PayrollResponse, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return nil, payrollerrors.ErrInvalidPeriod
	}
	recs, err := s.repo.FindByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(recs), nil
}

func (s *service) GetMine(ctx context.Context, userID string) ([]PayrollResponse, error) {
	recs, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(recs), nil
}

func mapToResponse(rec PayrollRecord) PayrollResponse {
	resp := PayrollResponse{
		ID:     rec.ID.String(),
		UserID: rec.UserID.String(),
		Month:  rec.Month,
		Year:   rec.Year,

		BasicSalary:        rec.BasicSalary,
		HRA:                rec.HRA,
		TransportAllowance: rec.TransportAllowance,
		SpecialAllowance:   rec.SpecialAllowance,
		OtherAllowances:    rec.OtherAllowances,
		PFContribution:     rec.PFContribution,
		ESIContribution:    rec.ESIContribution,
		ProfessionalTax:    rec.ProfessionalTax,
		IncomeTaxDeduction: rec.IncomeTaxDeduction,

		GrossSalary:     rec.GrossSalary,
		TotalDeductions: rec.TotalDeductions,
		NetSalary:       rec.NetSalary,

		Status:         rec.Status,
		PaymentMethod:  rec.PaymentMethod,
		TransactionRef: rec.TransactionRef,
		PayslipURL:     rec.PayslipURL,
	}
	if rec.PaidAt != nil {
		v := rec.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}
	return resp
}

func mapToListResponse(recs []PayrollRecord) []PayrollResponse {
	resp := make([]PayrollResponse, len(recs))
	for i, rec := range recs {
		resp[i] = mapToResponse(rec)
	}
	return resp
}
