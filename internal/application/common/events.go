package common

import (
	"context"

	"github.com/erp/bizhub/internal/domain/shared"
	"go.uber.org/zap"
)

// PublishAfterCommit publishes events once the business transaction is durable.
// Failures are logged and never returned.
func PublishAfterCommit(ctx context.Context, publisher shared.EventPublisher, log *zap.Logger, events ...shared.DomainEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		for _, e := range events {
			log.Warn("Failed to publish domain event",
				zap.String("event_type", e.EventType()),
				zap.String("event_id", e.EventID().String()),
				zap.Int64("aggregate_id", e.AggregateID()),
				zap.Error(err),
			)
		}
	}
}
