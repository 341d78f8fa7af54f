package document

import (
	"time"

	"github.com/google/uuid"
)

type EmployeeDocument struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Category   string    `gorm:"type:varchar(50);not null;default:'general'"`
	URL        string    `gorm:"type:text;not null"`
	UploadedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time
}

func (EmployeeDocument) TableName() string {
	return "employee_documents"
}
