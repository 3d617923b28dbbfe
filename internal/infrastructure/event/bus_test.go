package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEvent struct {
	shared.BaseDomainEvent
	Data string `json:"data"`
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "order", 12, 3),
		Data:            "payload",
	}
}

type recorder struct {
	mu   sync.Mutex
	seen []string
	err  error
}

func (r *recorder) Handle(_ context.Context, ev shared.DomainEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, ev.EventType())
	return r.err
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.seen...)
}

func TestBus_Publish(t *testing.T) {
	bus := NewBus(zap.NewNop())
	placed := &recorder{}
	all := &recorder{}
	bus.Subscribe("placed", placed, "order.placed")
	bus.Subscribe("all", all)

	err := bus.Publish(context.Background(), newTestEvent("order.placed"), newTestEvent("sales_order.converted"))

	require.NoError(t, err)
	assert.Equal(t, []string{"order.placed"}, placed.types())
	assert.Equal(t, []string{"order.placed", "sales_order.converted"}, all.types())
}

func TestBus_HandlerFailureDoesNotStopOthers(t *testing.T) {
	bus := NewBus(zap.NewNop())
	failing := &recorder{err: errors.New("boom")}
	ok := &recorder{}
	bus.Subscribe("failing", failing)
	bus.Subscribe("panicking", HandlerFunc(func(context.Context, shared.DomainEvent) error {
		panic("handler bug")
	}))
	bus.Subscribe("ok", ok)

	err := bus.Publish(context.Background(), newTestEvent("order.placed"))

	require.NoError(t, err)
	assert.Len(t, failing.types(), 1)
	assert.Len(t, ok.types(), 1)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(zap.NewNop())
	h := &recorder{}
	bus.Subscribe("metrics", h, "order.placed", "purchase_order.converted")
	assert.Equal(t, 1, bus.registry.Len("order.placed"))

	bus.Unsubscribe("metrics")

	assert.Equal(t, 0, bus.registry.Len("order.placed"))
	require.NoError(t, bus.Publish(context.Background(), newTestEvent("order.placed")))
	assert.Empty(t, h.types())
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.Publish(context.Background(), newTestEvent("x")))
}

func TestEncodeDecode(t *testing.T) {
	ev := newTestEvent("order.placed")

	data, err := Encode(ev)
	require.NoError(t, err)

	env, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, ev.EventID(), env.ID)
	assert.Equal(t, "order.placed", env.Type)
	assert.Equal(t, "order", env.AggregateType)
	assert.Equal(t, int64(12), env.AggregateID)
	assert.Equal(t, int64(3), env.ActorID)
	assert.Contains(t, string(env.Payload), `"data":"payload"`)

	_, err = Decode([]byte(`{"id":"00000000-0000-0000-0000-000000000000"}`))
	assert.Error(t, err)
}

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaForwarder_Handle(t *testing.T) {
	w := &fakeWriter{}
	f := &KafkaForwarder{writer: w}

	require.NoError(t, f.Handle(context.Background(), newTestEvent("order.placed")))

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "order:12", string(w.msgs[0].Key))
	assert.Equal(t, "event_type", w.msgs[0].Headers[0].Key)
	assert.Equal(t, "order.placed", string(w.msgs[0].Headers[0].Value))

	w.err = errors.New("broker down")
	err := f.Handle(context.Background(), newTestEvent("order.placed"))
	assert.ErrorContains(t, err, "broker down")
}
