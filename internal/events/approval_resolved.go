package events

import "time"

const ApprovalResolvedTopic = "hr.approvals.lifecycle.v1"

const ApprovalResolvedEventType = "approval.resolved"

type ApprovalResolvedEvent struct {
	EventType  string    `json:"event_type"`
	Kind       string    `json:"kind"`
	RequestID  string    `json:"request_id"`
	Status     string    `json:"status"`
	ApprovedBy string    `json:"approved_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
