package event

import (
	"context"
	"sync"

	"github.com/erp/bizhub/internal/domain/shared"
)

// Handler reacts to published domain events
type Handler interface {
	Handle(ctx context.Context, event shared.DomainEvent) error
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, event shared.DomainEvent) error

// Handle calls f
func (f HandlerFunc) Handle(ctx context.Context, event shared.DomainEvent) error {
	return f(ctx, event)
}

type registration struct {
	name    string
	handler Handler
}

// HandlerRegistry maps event types to named handlers
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[string][]registration
	wildcard []registration
}

// NewHandlerRegistry creates an empty registry
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[string][]registration)}
}

// Register adds a handler under name. With no event types it receives every event.
func (r *HandlerRegistry) Register(name string, handler Handler, eventTypes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg := registration{name: name, handler: handler}
	if len(eventTypes) == 0 {
		r.wildcard = append(r.wildcard, reg)
		return
	}
	for _, t := range eventTypes {
		r.handlers[t] = append(r.handlers[t], reg)
	}
}

// Unregister removes every registration with name
func (r *HandlerRegistry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wildcard = without(r.wildcard, name)
	for t, regs := range r.handlers {
		r.handlers[t] = without(regs, name)
		if len(r.handlers[t]) == 0 {
			delete(r.handlers, t)
		}
	}
}

// handlersFor returns the type-specific handlers followed by the wildcard ones
func (r *HandlerRegistry) handlersFor(eventType string) []registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]registration, 0, len(r.handlers[eventType])+len(r.wildcard))
	out = append(out, r.handlers[eventType]...)
	return append(out, r.wildcard...)
}

// Len counts the registrations for eventType, wildcards included
func (r *HandlerRegistry) Len(eventType string) int {
	return len(r.handlersFor(eventType))
}

func without(regs []registration, name string) []registration {
	out := regs[:0:0]
	for _, reg := range regs {
		if reg.name != name {
			out = append(out, reg)
		}
	}
	return out
}
