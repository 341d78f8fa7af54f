package leave

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
	Create(ctx context.Context, lr *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	FindAll(ctx context.Context) ([]LeaveRequest, error)
	CountOverlapping(ctx context.Context, userID string, start, end time.Time) (int64, error)
	SumApprovedDays(ctx context.Context, userID, leaveTypeID string, year int) (int, error)
	FindActiveTypes(ctx context.Context) ([]LeaveType, error)
	FindTypeByID(ctx context.Context, id string) (*LeaveType, error)

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
func (r *repository) Create(ctx context.Context, lr *LeaveRequest) error {
	query := `
        INSERT INTO leaverequests (
            id, user_id, leave_type_id, start_date, end_date, total_days, reason, status
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.execer().ExecContext(
		ctx, query,
		lr.ID, lr.UserID, lr.LeaveTypeID, lr.StartDate, lr.EndDate, lr.TotalDays, lr.Reason, lr.Status,
	)
	return err
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var lr LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		First(&lr, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lr, nil
}

func (r *repository) FindByUser(ctx context.Context, userID string) ([]LeaveRequest, error) {
	var items []LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveRequest, error) {
	var items []LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Order("start_date DESC").
		Find(&items).Error
	return items, err
}

// CountOverlapping counts non-rejected requests whose [start,end] window
// intersects the given one.
func (r *repository) CountOverlapping(ctx context.Context, userID string, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("user_id = ? AND status <> ? AND start_date <= ? AND end_date >= ?",
			userID, approval.StatusRejected, end, start).
		Count(&count).Error
	return count, err
}

func (r *repository) SumApprovedDays(ctx context.Context, userID, leaveTypeID string, year int) (int, error) {
	var total sql.NullInt64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Select("SUM(total_days)").
		Where("user_id = ? AND leave_type_id = ? AND status = ? AND EXTRACT(YEAR FROM start_date) = ?",
			userID, leaveTypeID, approval.StatusApproved, year).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total.Int64), nil
}

func (r *repository) FindActiveTypes(ctx context.Context) ([]LeaveType, error) {
	var types []LeaveType
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&types).Error
	return types, err
}

func (r *repository) FindTypeByID(ctx context.Context, id string) (*LeaveType, error) {
	var lt LeaveType
	err := r.db.WithContext(ctx).First(&lt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lt, nil
}

func (r *repository) ListPending(ctx context.Context) ([]approval.PendingRequest, error) {
	var items []LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Where("status = ?", approval.StatusPending).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	pending := make([]approval.PendingRequest, len(items))
	for i, lr := range items {
		typeName := ""
		if lr.LeaveType != nil {
			typeName = lr.LeaveType.Name
		}
		pending[i] = approval.PendingRequest{
			ID:     lr.ID.String(),
			Kind:   approval.KindLeave,
			UserID: lr.UserID.String(),
			Summary: fmt.Sprintf("%s, %d day(s) from %s to %s", typeName, lr.TotalDays,
				lr.StartDate.Format("2006-01-02"), lr.EndDate.Format("2006-01-02")),
			SubmittedAt: lr.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return pending, nil
}

// Resolve flips a pending request to its decided status in a single
// conditional UPDATE, so two approvers can never both win.
func (r *repository) Resolve(ctx context.Context, id string, res approval.Resolution) error {
	result := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
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
		var existing LeaveRequest
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
