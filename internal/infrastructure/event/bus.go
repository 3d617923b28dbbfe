package event

import (
	"context"
	"fmt"

	"github.com/erp/bizhub/internal/domain/shared"
	"go.uber.org/zap"
)

// Bus dispatches events synchronously to registered handlers. A failing or
// panicking handler is logged and never stops the others.
type Bus struct {
	registry *HandlerRegistry
	logger   *zap.Logger
}

// NewBus creates a bus with an empty registry
func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		registry: NewHandlerRegistry(),
		logger:   logger,
	}
}

// Subscribe registers handler under name for eventTypes (all events when empty)
func (b *Bus) Subscribe(name string, handler Handler, eventTypes ...string) {
	b.registry.Register(name, handler, eventTypes...)
	b.logger.Debug("event handler subscribed",
		zap.String("handler", name),
		zap.Strings("event_types", eventTypes),
	)
}

// Unsubscribe removes the handler registered under name
func (b *Bus) Unsubscribe(name string) {
	b.registry.Unregister(name)
}

// Publish delivers each event to its handlers
func (b *Bus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	for _, ev := range events {
		for _, reg := range b.registry.handlersFor(ev.EventType()) {
			if err := b.dispatch(ctx, reg, ev); err != nil {
				b.logger.Error("event handler failed",
					zap.String("handler", reg.name),
					zap.String("event_type", ev.EventType()),
					zap.String("event_id", ev.EventID().String()),
					zap.Error(err),
				)
			}
		}
	}
	return nil
}

func (b *Bus) dispatch(ctx context.Context, reg registration, ev shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return reg.handler.Handle(ctx, ev)
}

var _ shared.EventPublisher = (*Bus)(nil)

// NoopPublisher drops every event
type NoopPublisher struct{}

// Publish does nothing
func (NoopPublisher) Publish(context.Context, ...shared.DomainEvent) error { return nil }

var _ shared.EventPublisher = NoopPublisher{}
