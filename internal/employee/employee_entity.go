package employee

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_employee_profile_user"`
	EmployeeCode string     `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_profile_code"`
	FirstName    string     `gorm:"type:varchar(100);not null"`
	LastName     string     `gorm:"type:varchar(100);not null"`
	Department   string     `gorm:"type:varchar(100)"`
	Designation  string     `gorm:"type:varchar(100)"`
	BranchID     *uuid.UUID `gorm:"type:uuid;index"`
	JoinDate     time.Time  `gorm:"type:date;not null"`
	IsActive     bool       `gorm:"not null;default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Profile) TableName() string {
	return "employee_profiles"
}

// FullName is what listings and approval summaries display.
func (p Profile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
