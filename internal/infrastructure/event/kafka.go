package event

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/config"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafka.Writer the forwarder needs
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaForwarder writes events to a Kafka topic, keyed by aggregate so one
// document's events stay ordered within a partition.
type KafkaForwarder struct {
	writer messageWriter
}

// NewKafkaForwarder creates a forwarder for cfg.Topic
func NewKafkaForwarder(cfg config.EventsConfig) *KafkaForwarder {
	return &KafkaForwarder{writer: &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		WriteTimeout: cfg.WriteTimeout,
	}}
}

// Handle encodes ev and writes it as one message
func (f *KafkaForwarder) Handle(ctx context.Context, ev shared.DomainEvent) error {
	value, err := Encode(ev)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(ev.AggregateType() + ":" + strconv.FormatInt(ev.AggregateID(), 10)),
		Value: value,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(ev.EventType())},
		},
	}
	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write event to kafka: %w", err)
	}
	return nil
}

// Close flushes and closes the writer
func (f *KafkaForwarder) Close() error {
	return f.writer.Close()
}

var _ Handler = (*KafkaForwarder)(nil)
