package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Attendance is one row per employee per day, enforced by the unique index.
type Attendance struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_user_date"`
	AttendanceDate time.Time  `gorm:"type:date;not null;uniqueIndex:uq_attendance_user_date"`
	ClockIn        time.Time  `gorm:"type:timestamptz;not null"`
	ClockOut       *time.Time `gorm:"type:timestamptz"`
	Notes          *string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Attendance) TableName() string {
	return "attendances"
}
