package approval

import (
	"time"

	approvalerrors "github.com/headhr-blip/worknest/internal/approval/errors"
	"github.com/google/uuid"
)

// Status is the lifecycle state of an approvable request. Leave and expense
// requests only ever use the first three; loans carry active/completed further
// downstream (disbursement and repayment), outside this engine.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

type Decision string

const (
	DecisionApprove Decision = "approved"
	DecisionReject  Decision = "rejected"
)

// Resolution is everything a resolved request records about its decision.
type Resolution struct {
	Status     Status
	ApprovedBy uuid.UUID
	ApprovedAt time.Time
	Comments   *string
}

// Transition computes the next status for a request. Requests move exactly
// once out of pending; a second decision fails instead of silently
// overwriting the first.
func Transition(current Status, decision Decision) (Status, error) {
	if current != StatusPending {
		return current, approvalerrors.ErrAlreadyResolved
	}

	switch decision {
	case DecisionApprove:
		return StatusApproved, nil
	case DecisionReject:
		return StatusRejected, nil
	default:
		return current, approvalerrors.ErrInvalidDecision
	}
}

// NewResolution stamps a decision with the acting approver and server time.
func NewResolution(decision Decision, approverID uuid.UUID, comments *string) (Resolution, error) {
	status, err := Transition(StatusPending, decision)
	if err != nil {
		return Resolution{}, err
	}

	return Resolution{
		Status:     status,
		ApprovedBy: approverID,
		ApprovedAt: time.Now().UTC(),
		Comments:   comments,
	}, nil
}
