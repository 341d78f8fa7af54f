package events

import "time"

const PayrollLifecycleTopic = "hr.payroll.lifecycle.v1"

const (
	PayrollProcessedEventType = "payroll.processed"
	PayrollPaidEventType      = "payroll.paid"
)

type PayrollProcessedEvent struct {
	EventType   string    `json:"event_type"`
	PayrollID   string    `json:"payroll_id"`
	UserID      string    `json:"user_id"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	NetSalary   float64   `json:"net_salary"`
	ProcessedBy string    `json:"processed_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type PayrollPaidEvent struct {
	EventType      string    `json:"event_type"`
	PayrollID      string    `json:"payroll_id"`
	UserID         string    `json:"user_id"`
	TransactionRef string    `json:"transaction_ref"`
	PaidBy         string    `json:"paid_by"`
	OccurredAt     time.Time `json:"occurred_at"`
}
