package attendance_test

import (
	"context"
	"testing"
	"time"

	"github.com/headhr-blip/worknest/internal/attendance"
	attendanceerrors "github.com/headhr-blip/worknest/internal/attendance/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAttendanceRepository struct {
	createFn            func(ctx context.Context, a *attendance.Attendance) error
	closeOpenDayFn      func(ctx context.Context, userID string, date, clockOut time.Time) (int64, error)
	findByUserAndDateFn func(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error)
	findByUserFn        func(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error)
	findByDateFn        func(ctx context.Context, date time.Time) ([]attendance.Attendance, error)
}

func (f *fakeAttendanceRepository) Create(ctx context.Context, a *attendance.Attendance) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeAttendanceRepository) CloseOpenDay(ctx context.Context, userID string, date, clockOut time.Time) (int64, error) {
	if f.closeOpenDayFn != nil {
		return f.closeOpenDayFn(ctx, userID, date, clockOut)
	}
	return 1, nil
}

func (f *fakeAttendanceRepository) FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	if f.findByUserAndDateFn != nil {
		return f.findByUserAndDateFn(ctx, userID, date)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) FindByUser(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	if f.findByUserFn != nil {
		return f.findByUserFn(ctx, userID, limit)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	if f.findByDateFn != nil {
		return f.findByDateFn(ctx, date)
	}
	return nil, nil
}

func TestAttendanceService_CheckIn(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("success stamps today", func(t *testing.T) {
		repo := &fakeAttendanceRepository{
			createFn: func(ctx context.Context, a *attendance.Attendance) error {
				assert.Equal(t, userID, a.UserID.String())
				assert.Equal(t, a.AttendanceDate, a.ClockIn.Truncate(24*time.Hour))
				return nil
			},
		}
		svc := attendance.NewService(repo)

		resp, err := svc.CheckIn(ctx, userID, attendance.CheckInRequest{})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.ClockIn)
		assert.Nil(t, resp.ClockOut)
	})

	t.Run("duplicate day maps to already checked in", func(t *testing.T) {
		repo := &fakeAttendanceRepository{
			createFn: func(ctx context.Context, a *attendance.Attendance) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_user_date"}
			},
		}
		svc := attendance.NewService(repo)

		_, err := svc.CheckIn(ctx, userID, attendance.CheckInRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
	})

	t.Run("invalid user id", func(t *testing.T) {
		svc := attendance.NewService(&fakeAttendanceRepository{})

		_, err := svc.CheckIn(ctx, "nope", attendance.CheckInRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidUserID)
	})
}

func TestAttendanceService_CheckOut(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("success closes the open day", func(t *testing.T) {
		clockIn := time.Now().UTC().Add(-8 * time.Hour)
		clockOut := time.Now().UTC()
		repo := &fakeAttendanceRepository{
			findByUserAndDateFn: func(ctx context.Context, uid string, date time.Time) (*attendance.Attendance, error) {
				return &attendance.Attendance{
					ID:             uuid.New(),
					UserID:         uuid.MustParse(uid),
					AttendanceDate: date,
					ClockIn:        clockIn,
					ClockOut:       &clockOut,
				}, nil
			},
		}
		svc := attendance.NewService(repo)

		resp, err := svc.CheckOut(ctx, userID)

		assert.NoError(t, err)
		assert.NotNil(t, resp.ClockOut)
	})

	t.Run("no check-in today", func(t *testing.T) {
		repo := &fakeAttendanceRepository{
			closeOpenDayFn: func(ctx context.Context, uid string, date, clockOut time.Time) (int64, error) {
				return 0, nil
			},
		}
		svc := attendance.NewService(repo)

		_, err := svc.CheckOut(ctx, userID)

		assert.ErrorIs(t, err, attendanceerrors.ErrNotCheckedIn)
	})

	t.Run("second check-out rejected", func(t *testing.T) {
		out := time.Now().UTC()
		repo := &fakeAttendanceRepository{
			closeOpenDayFn: func(ctx context.Context, uid string, date, clockOut time.Time) (int64, error) {
				return 0, nil
			},
			findByUserAndDateFn: func(ctx context.Context, uid string, date time.Time) (*attendance.Attendance, error) {
				return &attendance.Attendance{ID: uuid.New(), UserID: uuid.MustParse(uid), ClockOut: &out}, nil
			},
		}
		svc := attendance.NewService(repo)

		_, err := svc.CheckOut(ctx, userID)

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedOut)
	})
}

func TestAttendanceService_GetByDate_FallsBackToToday(t *testing.T) {
	ctx := context.Background()

	var queried time.Time
	repo := &fakeAttendanceRepository{
		findByDateFn: func(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
			queried = date
			return nil, nil
		},
	}
	svc := attendance.NewService(repo)

	_, err := svc.GetByDate(ctx, "gibberish")

	assert.NoError(t, err)
	now := time.Now().UTC()
	assert.Equal(t, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), queried)
}
