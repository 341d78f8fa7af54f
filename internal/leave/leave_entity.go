package leave

import (
	"time"

	"github.com/google/uuid"
)

type LeaveRequest struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_leave_user_dates"`
	LeaveTypeID uuid.UUID  `gorm:"type:uuid;not null"`
	LeaveType   *LeaveType `gorm:"foreignKey:LeaveTypeID;references:ID"`

	StartDate time.Time `gorm:"type:date;not null;index:idx_leave_user_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leave_user_dates"`
	TotalDays int       `gorm:"type:int;not null;default:1"`
	Reason    string    `gorm:"type:text"`

	Status     string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	ApprovedBy *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt *time.Time
	Comments   *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveRequest) TableName() string {
	return "leaverequests"
}

type LeaveType struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	AnnualCap int       `gorm:"type:int;not null;default:0"` // days per calendar year
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (LeaveType) TableName() string {
	return "leavetypes"
}

// TotalDaysInclusive counts calendar days between two dates including both
// endpoints, so a single-day leave is 1.
func TotalDaysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
