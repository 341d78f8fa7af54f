package compensation

import (
	"time"

	"github.com/google/uuid"
)

const (
	FrequencyMonthly  = "monthly"
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
)

type CompensationProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_compensation_user"`

	BasicSalary        float64 `gorm:"type:numeric(12,2);not null;default:0"`
	HRA                float64 `gorm:"column:hra;type:numeric(12,2);not null;default:0"`
	TransportAllowance float64 `gorm:"type:numeric(12,2);not null;default:0"`
	SpecialAllowance   float64 `gorm:"type:numeric(12,2);not null;default:0"`
	OtherAllowances    float64 `gorm:"type:numeric(12,2);not null;default:0"`

	PFContribution     float64 `gorm:"column:pf_contribution;type:numeric(12,2);not null;default:0"`
	ESIContribution    float64 `gorm:"column:esi_contribution;type:numeric(12,2);not null;default:0"`
	ProfessionalTax    float64 `gorm:"type:numeric(12,2);not null;default:0"`
	IncomeTaxDeduction float64 `gorm:"type:numeric(12,2);not null;default:0"`

	PaymentFrequency string `gorm:"type:varchar(10);not null;default:'monthly'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CompensationProfile) TableName() string {
	return "compensation_profiles"
}

// SalaryHistoryEntry is an append-only snapshot written every time a profile
// changes. Rows are never updated or deleted.
type SalaryHistoryEntry struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_salary_history_effective"`

	BasicSalary        float64 `gorm:"type:numeric(12,2);not null;default:0"`
	HRA                float64 `gorm:"column:hra;type:numeric(12,2);not null;default:0"`
	TransportAllowance float64 `gorm:"type:numeric(12,2);not null;default:0"`
	SpecialAllowance   float64 `gorm:"type:numeric(12,2);not null;default:0"`
	OtherAllowances    float64 `gorm:"type:numeric(12,2);not null;default:0"`
	PFContribution     float64 `gorm:"column:pf_contribution;type:numeric(12,2);not null;default:0"`
	ESIContribution    float64 `gorm:"column:esi_contribution;type:numeric(12,2);not null;default:0"`
	ProfessionalTax    float64 `gorm:"type:numeric(12,2);not null;default:0"`
	IncomeTaxDeduction float64 `gorm:"type:numeric(12,2);not null;default:0"`

	EffectiveFrom time.Time `gorm:"type:date;not null;uniqueIndex:uq_salary_history_effective"`
	ChangedBy     uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt     time.Time
}

func (SalaryHistoryEntry) TableName() string {
	return "salary_history"
}
