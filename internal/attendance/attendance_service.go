package attendance

import (
	"context"
	"errors"
	"strings"
	"time"

	attendanceerrors "github.com/headhr-blip/worknest/internal/attendance/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service interface {
	CheckIn(ctx context.Context, userID string, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, userID string) (AttendanceResponse, error)
	GetMine(ctx context.Context, userID string) ([]AttendanceResponse, error)
	GetByDate(ctx context.Context, date string) ([]AttendanceResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, logger: l, now: time.Now}
}

// CheckIn records today's arrival. The unique index on (user, date) makes a
// second check-in a conflict rather than a second row.
func (s *service) CheckIn(ctx context.Context, userID string, req CheckInRequest) (AttendanceResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidUserID
	}

	now := s.now().UTC()
	a := &Attendance{
		ID:             uuid.New(),
		UserID:         userUUID,
		AttendanceDate: dateOnly(now),
		ClockIn:        now,
		Notes:          req.Notes,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		if isDuplicateDay(err) {
			return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
		}
		return AttendanceResponse{}, err
	}

	s.logger.Info("checked in", zap.String("user_id", userID))
	return mapToResponse(*a), nil
}

func (s *service) CheckOut(ctx context.Context, userID string) (AttendanceResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidUserID
	}

	now := s.now().UTC()
	today := dateOnly(now)

	rows, err := s.repo.CloseOpenDay(ctx, userID, today, now)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if rows == 0 {
		if _, err := s.repo.FindByUserAndDate(ctx, userID, today); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return AttendanceResponse{}, attendanceerrors.ErrNotCheckedIn
			}
			return AttendanceResponse{}, err
		}
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	a, err := s.repo.FindByUserAndDate(ctx, userID, today)
	if err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("checked out", zap.String("user_id", userID))
	return mapToResponse(*a), nil
}

func (s *service) GetMine(ctx context.Context, userID string) ([]AttendanceResponse, error) {
	items, err := s.repo.FindByUser(ctx, userID, 31)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) GetByDate(ctx context.Context, date string) ([]AttendanceResponse, error) {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		parsed = dateOnly(s.now().UTC())
	}

	items, err := s.repo.FindByDate(ctx, parsed)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isDuplicateDay(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendance_user_date"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attendance_user_date")
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		UserID:         a.UserID.String(),
		AttendanceDate: a.AttendanceDate.Format(dateLayout),
		ClockIn:        a.ClockIn.Format(time.RFC3339),
		Notes:          a.Notes,
	}
	if a.ClockOut != nil {
		v := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	return resp
}

func mapToListResponse(items []Attendance) []AttendanceResponse {
	resp := make([]AttendanceResponse, len(items))
	for i, a := range items {
		resp[i] = mapToResponse(a)
	}
	return resp
}
