package loan

import (
	"time"

	"github.com/google/uuid"
)

type Loan struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	LoanTypeID uuid.UUID `gorm:"type:uuid;not null"`
	LoanType   *LoanType `gorm:"foreignKey:LoanTypeID;references:ID"`

	Amount       float64 `gorm:"type:numeric(12,2);not null"`
	TenureMonths int     `gorm:"type:int;not null"`
	InterestRate float64 `gorm:"type:numeric(5,2);not null"`
	EMIAmount    float64 `gorm:"column:emi_amount;type:numeric(12,2);not null"`
	Reason       string  `gorm:"type:text"`

	Status     string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	ApprovedBy *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt *time.Time
	Comments   *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Loan) TableName() string {
	return "loans"
}

type LoanType struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	InterestRate float64   `gorm:"type:numeric(5,2);not null;default:0"`
	MaxAmount    float64   `gorm:"type:numeric(12,2);not null;default:0"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
}

func (LoanType) TableName() string {
	return "loantypes"
}
