package expense

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID        `gorm:"type:uuid;not null"`
	Category   *ExpenseCategory `gorm:"foreignKey:CategoryID;references:ID"`

	Amount      float64   `gorm:"type:numeric(12,2);not null"`
	ExpenseDate time.Time `gorm:"type:date;not null"`
	Description string    `gorm:"type:text"`
	ReceiptURL  *string   `gorm:"type:text"`

	Status     string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	ApprovedBy *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt *time.Time
	Comments   *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Expense) TableName() string {
	return "expenses"
}

type ExpenseCategory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	MaxAmount float64   `gorm:"type:numeric(12,2);not null;default:0"` // 0 means no limit
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (ExpenseCategory) TableName() string {
	return "expensecategories"
}
