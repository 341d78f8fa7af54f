package compensation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	compensationerrors "github.com/headhr-blip/worknest/internal/compensation/errors"
	"github.com/headhr-blip/worknest/internal/events"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EmployeeCreatedConsumer provisions a zeroed compensation profile whenever a
// new employee event arrives, so payroll never sees a missing profile. The
// seed is insert-only: an existing profile is left untouched, which makes
// redelivery and late events harmless.
type EmployeeCreatedConsumer struct {
	reader  *kafka.Reader
	service Service
	logger  *zap.Logger
}

func NewEmployeeCreatedConsumer(
	broker string,
	groupID string,
	service Service,
	logger ...*zap.Logger,
) *EmployeeCreatedConsumer {
	l := zap.L().Named("compensation.consumer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("compensation.consumer")
	}

	return &EmployeeCreatedConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        []string{broker},
			Topic:          events.EmployeeCreatedTopic,
			GroupID:        groupID,
			CommitInterval: time.Second,
			StartOffset:    kafka.FirstOffset,
		}),
		service: service,
		logger:  l,
	}
}

func (c *EmployeeCreatedConsumer) Start(ctx context.Context) {
	go func() {
		for {
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				c.logger.Error("consume employee_created failed", zap.Error(err))
				continue
			}

			var event events.EmployeeCreatedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				c.logger.Error("decode employee_created event failed", zap.Error(err))
				if commitErr := c.reader.CommitMessages(ctx, msg); commitErr != nil {
					c.logger.Error("commit invalid employee_created event failed", zap.Error(commitErr))
				}
				continue
			}

			if err := c.service.SeedDefault(ctx, event.UserID); err != nil {
				// A profile already on file wins over the seed.
				if errors.Is(err, compensationerrors.ErrProfileExists) {
					c.logger.Warn("compensation profile already exists, skipping seed",
						zap.String("user_id", event.UserID),
					)
					if commitErr := c.reader.CommitMessages(ctx, msg); commitErr != nil {
						c.logger.Error("commit duplicate employee_created event failed", zap.Error(commitErr))
					}
					continue
				}

				c.logger.Error("seed compensation profile failed",
					zap.String("user_id", event.UserID),
					zap.Error(err),
				)
				continue
			}

			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error("commit employee_created event failed", zap.Error(err))
				continue
			}

			c.logger.Info("compensation profile seeded from employee_created event",
				zap.String("user_id", event.UserID),
			)
		}
	}()
}

func (c *EmployeeCreatedConsumer) Close() error {
	return c.reader.Close()
}
