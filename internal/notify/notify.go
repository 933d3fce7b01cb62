// Package notify publishes workflow events to downstream systems.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"github.com/kuchnahi/backend/internal/model"
)

// Notifier is told about every inquiry that was persisted.
type Notifier interface {
	InquirySubmitted(ctx context.Context, inq *model.Inquiry) error
	Close() error
}

// Nop discards every event.
type Nop struct{}

func (Nop) InquirySubmitted(context.Context, *model.Inquiry) error { return nil }
func (Nop) Close() error                                          { return nil }

// InquiryEvent is the JSON payload written to Kafka.
type InquiryEvent struct {
	Type       string    `json:"type"`
	InquiryID  string    `json:"inquiryId"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	OccurredAt time.Time `json:"occurredAt"`
}

const eventInquirySubmitted = "inquiry.submitted"

// KafkaNotifier publishes inquiry events with a sarama SyncProducer.
type KafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
	now      func() time.Time
}

// NewKafkaNotifier dials brokers and returns a notifier writing to topic.
func NewKafkaNotifier(brokers []string, topic string) (*KafkaNotifier, error) {
	cfg := sarama.NewConfig()
	cfg.ClientID = "kuchnahi-backend"
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return NewKafkaNotifierWithProducer(producer, topic), nil
}

// NewKafkaNotifierWithProducer wraps an existing producer.
func NewKafkaNotifierWithProducer(producer sarama.SyncProducer, topic string) *KafkaNotifier {
	return &KafkaNotifier{
		producer: producer,
		topic:    topic,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// InquirySubmitted sends one message keyed by the inquiry id.
func (n *KafkaNotifier) InquirySubmitted(ctx context.Context, inq *model.Inquiry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(InquiryEvent{
		Type:       eventInquirySubmitted,
		InquiryID:  inq.ID,
		Email:      inq.Email,
		Message:    inq.Message,
		Status:     string(inq.Status),
		CreatedAt:  inq.CreatedAt,
		OccurredAt: n.now(),
	})
	if err != nil {
		return fmt.Errorf("encode inquiry event: %w", err)
	}

	_, _, err = n.producer.SendMessage(&sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(inq.ID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(eventInquirySubmitted)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish inquiry event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying producer.
func (n *KafkaNotifier) Close() error {
	return n.producer.Close()
}
