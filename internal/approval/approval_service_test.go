package approval_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/headhr-blip/worknest/internal/approval"
	approvalerrors "github.com/headhr-blip/worknest/internal/approval/errors"
	"github.com/headhr-blip/worknest/internal/events"
	"github.com/headhr-blip/worknest/internal/messaging/kafka"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeStore struct {
	listPendingFn func(ctx context.Context) ([]approval.PendingRequest, error)
	resolveFn     func(ctx context.Context, id string, res approval.Resolution) error
}

func (f *fakeStore) ListPending(ctx context.Context) ([]approval.PendingRequest, error) {
	if f.listPendingFn != nil {
		return f.listPendingFn(ctx)
	}
	return nil, nil
}

func (f *fakeStore) Resolve(ctx context.Context, id string, res approval.Resolution) error {
	if f.resolveFn != nil {
		return f.resolveFn(ctx, id, res)
	}
	return nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func TestApprovalService_ListPending(t *testing.T) {
	ctx := context.Background()

	pending := []approval.PendingRequest{
		{ID: uuid.New().String(), Kind: approval.KindLeave, Summary: "Annual 2026-03-10 to 2026-03-12"},
	}
	leaveStore := &fakeStore{
		listPendingFn: func(ctx context.Context) ([]approval.PendingRequest, error) {
			return pending, nil
		},
	}
	svc := approval.NewService(map[approval.Kind]approval.Store{
		approval.KindLeave: leaveStore,
	}, &fakeOutboxRepository{})

	items, err := svc.ListPending(ctx, approval.KindLeave)
	assert.NoError(t, err)
	assert.Equal(t, pending, items)

	_, err = svc.ListPending(ctx, approval.Kind("reimbursement"))
	assert.ErrorIs(t, err, approvalerrors.ErrUnknownRequestKind)
}

func TestApprovalService_Resolve(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New().String()
	approverID := uuid.New().String()

	t.Run("approve records resolution and queues event", func(t *testing.T) {
		var got approval.Resolution
		store := &fakeStore{
			resolveFn: func(ctx context.Context, id string, res approval.Resolution) error {
				assert.Equal(t, requestID, id)
				got = res
				return nil
			},
		}
		var queued *kafka.OutboxEvent
		outbox := &fakeOutboxRepository{
			createFn: func(ctx context.Context, event kafka.OutboxEvent) error {
				queued = &event
				return nil
			},
		}
		svc := approval.NewService(map[approval.Kind]approval.Store{approval.KindExpense: store}, outbox)

		comment := "receipts verified"
		resp, err := svc.Resolve(ctx, approval.KindExpense, requestID, approverID, approval.ResolveRequest{
			Decision: "approved",
			Comments: &comment,
		})

		assert.NoError(t, err)
		assert.Equal(t, approval.StatusApproved, got.Status)
		assert.Equal(t, approverID, got.ApprovedBy.String())
		assert.Equal(t, "approved", resp.Status)
		assert.Equal(t, approval.KindExpense, resp.Kind)

		if assert.NotNil(t, queued) {
			assert.Equal(t, events.ApprovalResolvedTopic, queued.Topic)
			var payload events.ApprovalResolvedEvent
			assert.NoError(t, json.Unmarshal(queued.Payload, &payload))
			assert.Equal(t, "expense", payload.Kind)
			assert.Equal(t, requestID, payload.RequestID)
			assert.Equal(t, "approved", payload.Status)
		}
	})

	t.Run("second decision surfaces already resolved", func(t *testing.T) {
		store := &fakeStore{
			resolveFn: func(ctx context.Context, id string, res approval.Resolution) error {
				return approvalerrors.ErrAlreadyResolved
			},
		}
		svc := approval.NewService(map[approval.Kind]approval.Store{approval.KindLoan: store}, &fakeOutboxRepository{})

		_, err := svc.Resolve(ctx, approval.KindLoan, requestID, approverID, approval.ResolveRequest{Decision: "rejected"})

		assert.ErrorIs(t, err, approvalerrors.ErrAlreadyResolved)
	})

	t.Run("invalid approver id", func(t *testing.T) {
		svc := approval.NewService(map[approval.Kind]approval.Store{approval.KindLeave: &fakeStore{}}, &fakeOutboxRepository{})

		_, err := svc.Resolve(ctx, approval.KindLeave, requestID, "not-a-uuid", approval.ResolveRequest{Decision: "approved"})

		assert.ErrorIs(t, err, approvalerrors.ErrInvalidApproverID)
	})

	t.Run("unknown kind", func(t *testing.T) {
		svc := approval.NewService(map[approval.Kind]approval.Store{}, &fakeOutboxRepository{})

		_, err := svc.Resolve(ctx, approval.KindLeave, requestID, approverID, approval.ResolveRequest{Decision: "approved"})

		assert.ErrorIs(t, err, approvalerrors.ErrUnknownRequestKind)
	})
}
