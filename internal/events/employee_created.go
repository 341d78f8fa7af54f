package events

import "time"

const EmployeeCreatedTopic = "hr.employee.lifecycle.v1"

const EmployeeCreatedEventType = "employee.created"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	UserID     string    `json:"user_id"`
	EmployeeNo string    `json:"employee_no"`
	OccurredAt time.Time `json:"occurred_at"`
}
