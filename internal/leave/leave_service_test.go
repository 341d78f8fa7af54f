package leave_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/headhr-blip/worknest/internal/approval"
	"github.com/headhr-blip/worknest/internal/leave"
	leaveerrors "github.com/headhr-blip/worknest/internal/leave/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	createFn           func(ctx context.Context, lr *leave.LeaveRequest) error
	findByIDFn         func(ctx context.Context, id string) (*leave.LeaveRequest, error)
	findByUserFn       func(ctx context.Context, userID string) ([]leave.LeaveRequest, error)
	findAllFn          func(ctx context.Context) ([]leave.LeaveRequest, error)
	countOverlappingFn func(ctx context.Context, userID string, start, end time.Time) (int64, error)
	sumApprovedDaysFn  func(ctx context.Context, userID, leaveTypeID string, year int) (int, error)
	findActiveTypesFn  func(ctx context.Context) ([]leave.LeaveType, error)
	findTypeByIDFn     func(ctx context.Context, id string) (*leave.LeaveType, error)
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository { return f }

func (f *fakeLeaveRepository) Create(ctx context.Context, lr *leave.LeaveRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, lr)
	}
	return nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) FindByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	if f.findByUserFn != nil {
		return f.findByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) CountOverlapping(ctx context.Context, userID string, start, end time.Time) (int64, error) {
	if f.countOverlappingFn != nil {
		return f.countOverlappingFn(ctx, userID, start, end)
	}
	return 0, nil
}

func (f *fakeLeaveRepository) SumApprovedDays(ctx context.Context, userID, leaveTypeID string, year int) (int, error) {
	if f.sumApprovedDaysFn != nil {
		return f.sumApprovedDaysFn(ctx, userID, leaveTypeID, year)
	}
	return 0, nil
}

func (f *fakeLeaveRepository) FindActiveTypes(ctx context.Context) ([]leave.LeaveType, error) {
	if f.findActiveTypesFn != nil {
		return f.findActiveTypesFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindTypeByID(ctx context.Context, id string) (*leave.LeaveType, error) {
	if f.findTypeByIDFn != nil {
		return f.findTypeByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) ListPending(ctx context.Context) ([]approval.PendingRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepository) Resolve(ctx context.Context, id string, res approval.Resolution) error {
	return nil
}

type leaveServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service leave.Service
	repo    *fakeLeaveRepository
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeLeaveRepository{}
	svc := leave.NewService(db, repo)

	return &leaveServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func TestTotalDaysInclusive(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		assert.NoError(t, err)
		return d
	}

	assert.Equal(t, 1, leave.TotalDaysInclusive(day("2026-03-10"), day("2026-03-10")))
	assert.Equal(t, 2, leave.TotalDaysInclusive(day("2026-03-10"), day("2026-03-11")))
	assert.Equal(t, 7, leave.TotalDaysInclusive(day("2026-03-09"), day("2026-03-15")))
}

func TestLeaveService_Submit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	leaveTypeID := uuid.New()
	activeType := &leave.LeaveType{ID: leaveTypeID, Name: "Annual", AnnualCap: 20, IsActive: true}

	baseReq := leave.CreateLeaveRequest{
		LeaveTypeID: leaveTypeID.String(),
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-12",
		Reason:      "family event",
	}

	t.Run("success counts both endpoints", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.repo.findTypeByIDFn = func(ctx context.Context, id string) (*leave.LeaveType, error) {
			return activeType, nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Submit(ctx, userID, baseReq)

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.TotalDays)
		assert.Equal(t, string(approval.StatusPending), resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("end before start", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		req := baseReq
		req.StartDate = "2026-03-12"
		req.EndDate = "2026-03-10"

		_, err := deps.service.Submit(ctx, userID, req)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("malformed dates", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		req := baseReq
		req.StartDate = "10-03-2026"

		_, err := deps.service.Submit(ctx, userID, req)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("overlapping request rejected", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.repo.findTypeByIDFn = func(ctx context.Context, id string) (*leave.LeaveType, error) {
			return activeType, nil
		}
		deps.repo.countOverlappingFn = func(ctx context.Context, userID string, start, end time.Time) (int64, error) {
			return 1, nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Submit(ctx, userID, baseReq)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("annual cap exhausted", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.repo.findTypeByIDFn = func(ctx context.Context, id string) (*leave.LeaveType, error) {
			return activeType, nil
		}
		deps.repo.sumApprovedDaysFn = func(ctx context.Context, userID, leaveTypeID string, year int) (int, error) {
			return 18, nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		// 18 used + 3 requested > 20 cap
		_, err := deps.service.Submit(ctx, userID, baseReq)

		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("inactive type rejected", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.repo.findTypeByIDFn = func(ctx context.Context, id string) (*leave.LeaveType, error) {
			return &leave.LeaveType{ID: leaveTypeID, Name: "Sabbatical", IsActive: false}, nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Submit(ctx, userID, baseReq)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveTypeInactive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown type", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Submit(ctx, userID, baseReq)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveTypeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveService_Balance(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	deps := setupLeaveServiceTest(t)
	defer deps.db.Close()

	annual := leave.LeaveType{ID: uuid.New(), Name: "Annual", AnnualCap: 20, IsActive: true}
	sick := leave.LeaveType{ID: uuid.New(), Name: "Sick", AnnualCap: 10, IsActive: true}

	deps.repo.findActiveTypesFn = func(ctx context.Context) ([]leave.LeaveType, error) {
		return []leave.LeaveType{annual, sick}, nil
	}
	deps.repo.sumApprovedDaysFn = func(ctx context.Context, uid, leaveTypeID string, year int) (int, error) {
		assert.Equal(t, time.Now().UTC().Year(), year)
		if leaveTypeID == annual.ID.String() {
			return 7, nil
		}
		// over-consumed: remaining must floor at zero
		return 12, nil
	}

	balances, err := deps.service.Balance(ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, balances, 2)
	assert.Equal(t, 13, balances[0].RemainingDays)
	assert.Equal(t, 7, balances[0].UsedDays)
	assert.Equal(t, 0, balances[1].RemainingDays)
	assert.Equal(t, 12, balances[1].UsedDays)
}

func TestLeaveService_Balance_InvalidUser(t *testing.T) {
	deps := setupLeaveServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.Balance(context.Background(), "nope")

	assert.ErrorIs(t, err, leaveerrors.ErrInvalidUserID)
}
