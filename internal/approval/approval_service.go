package approval

import (
	"context"
	"time"

	approvalerrors "github.com/headhr-blip/worknest/internal/approval/errors"
	"github.com/headhr-blip/worknest/internal/events"
	"github.com/headhr-blip/worknest/internal/messaging/kafka"
	"github.com/headhr-blip/worknest/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is implemented by each request repository (leave, expense, loan).
// Resolve must apply the resolution atomically and only while the request is
// still pending, returning ErrRequestNotFound or ErrAlreadyResolved otherwise.
type Store interface {
	ListPending(ctx context.Context) ([]PendingRequest, error)
	Resolve(ctx context.Context, id string, res Resolution) error
}

type Service interface {
	ListPending(ctx context.Context, kind Kind) ([]PendingRequest, error)
	Resolve(ctx context.Context, kind Kind, id, approverID string, req ResolveRequest) (ResolveResponse, error)
}

type service struct {
	stores map[Kind]Store
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(stores map[Kind]Store, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("approval.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.service")
	}
	return &service{stores: stores, outbox: outbox, logger: l}
}

func (s *service) ListPending(ctx context.Context, kind Kind) ([]PendingRequest, error) {
	store, ok := s.stores[kind]
	if !ok {
		return nil, approvalerrors.ErrUnknownRequestKind
	}

	return store.ListPending(ctx)
}

func (s *service) Resolve(
	ctx context.Context,
	kind Kind,
	id, approverID string,
	req ResolveRequest,
) (ResolveResponse, error) {
	store, ok := s.stores[kind]
	if !ok {
		return ResolveResponse{}, approvalerrors.ErrUnknownRequestKind
	}

	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return ResolveResponse{}, approvalerrors.ErrInvalidApproverID
	}

	res, err := NewResolution(Decision(req.Decision), approverUUID, req.Comments)
	if err != nil {
		return ResolveResponse{}, err
	}

	if err := store.Resolve(ctx, id, res); err != nil {
		s.logger.Warn("resolve request failed",
			zap.String("kind", string(kind)),
			zap.String("request_id", id),
			zap.String("decision", req.Decision),
			zap.Error(err),
		)
		return ResolveResponse{}, err
	}

	s.logger.Info("request resolved",
		zap.String("kind", string(kind)),
		zap.String("request_id", id),
		zap.String("decision", req.Decision),
		zap.String("approver_id", approverID),
	)

	// The conditional update above is the source of truth; the event is
	// best-effort notification and must never undo a resolution.
	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(
			contextutil.GetRequestID(ctx),
			"approval",
			id,
			events.ApprovalResolvedEventType,
			events.ApprovalResolvedTopic,
			events.ApprovalResolvedEvent{
				EventType:  events.ApprovalResolvedEventType,
				Kind:       string(kind),
				RequestID:  id,
				Status:     string(res.Status),
				ApprovedBy: res.ApprovedBy.String(),
				OccurredAt: res.ApprovedAt,
			},
		)
		if err == nil {
			err = s.outbox.Create(ctx, event)
		}
		if err != nil {
			s.logger.Warn("enqueue approval event failed",
				zap.String("request_id", id),
				zap.Error(err),
			)
		}
	}

	return ResolveResponse{
		ID:         id,
		Kind:       kind,
		Status:     string(res.Status),
		ApprovedBy: res.ApprovedBy.String(),
		ApprovedAt: res.ApprovedAt.Format(time.RFC3339),
		Comments:   res.Comments,
	}, nil
}
