package payroll

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusProcessed = "processed"
	StatusPaid      = "paid"
)

// PayrollRecord snapshots the compensation components at processing time, so
// later profile edits never rewrite history. The unique index on
// (user_id, month, year) is what makes a run idempotent per employee.
type PayrollRecord struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_period"`
	Month  int       `gorm:"type:int;not null;uniqueIndex:uq_payroll_employee_period"`
	Year   int       `gorm:"type:int;not null;uniqueIndex:uq_payroll_employee_period"`

	BasicSalary        float64 `gorm:"type:numeric(12,2);not null;default:0"`
	HRA                float64 `gorm:"column:hra;type:numeric(12,2);not null;default:0"`
	TransportAllowance float64 `gorm:"type:numeric(12,2);not null;default:0"`
	SpecialAllowance   float64 `gorm:"type:numeric(12,2);not null;default:0"`
	OtherAllowances    float64 `gorm:"type:numeric(12,2);not null;default:0"`
	PFContribution     float64 `gorm:"column:pf_contribution;type:numeric(12,2);not null;default:0"`
	ESIContribution    float64 `gorm:"column:esi_contribution;type:numeric(12,2);not null;default:0"`
	ProfessionalTax    float64 `gorm:"type:numeric(12,2);not null;default:0"`
	IncomeTaxDeduction float64 `gorm:"type:numeric(12,2);not null;default:0"`

	GrossSalary     float64 `gorm:"type:numeric(12,2);not null;default:0"`
	TotalDeductions float64 `gorm:"type:numeric(12,2);not null;default:0"`
	NetSalary       float64 `gorm:"type:numeric(12,2);not null;default:0"`

	Status      string    `gorm:"type:varchar(20);not null;default:'processed';index"`
	ProcessedBy uuid.UUID `gorm:"type:uuid;not null"`

	PaymentMethod  *string    `gorm:"type:varchar(30)"`
	TransactionRef *string    `gorm:"type:varchar(100)"`
	PaidBy         *uuid.UUID `gorm:"type:uuid"`
	PaidAt         *time.Time

	PayslipURL         *string `gorm:"type:text"`
	PayslipGeneratedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PayrollRecord) TableName() string {
	return "payrolls"
}

// EmployeeRef is a read-only projection of the employee directory used when
// iterating a run.
type EmployeeRef struct {
	UserID       uuid.UUID `gorm:"column:user_id"`
	EmployeeCode string    `gorm:"column:employee_code"`
	FullName     string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employee_profiles"
}
