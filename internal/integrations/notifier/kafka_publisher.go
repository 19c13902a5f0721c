package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/barbershop-booking/pkg/tracing"
)

const (
	transportKafka = "kafka"

	// EventBookingConfirmed тип события в заголовке event_type
	EventBookingConfirmed = "booking.confirmed"
)

// MessageWriter часть kafka.Writer, нужная публикатору
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher публикует событие booking.confirmed
type KafkaPublisher struct {
	writer MessageWriter
	topic  string
}

// NewKafkaWriter создает writer с хэш-балансировкой по ключу (ID записи)
func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

// NewKafkaPublisher создает публикатор поверх writer
func NewKafkaPublisher(writer MessageWriter, topic string) *KafkaPublisher {
	if topic == "" {
		topic = EventBookingConfirmed
	}
	return &KafkaPublisher{writer: writer, topic: topic}
}

// Name имя транспорта для логов и метрик
func (p *KafkaPublisher) Name() string {
	return transportKafka
}

// Send публикует уведомление; контекст трассировки уходит в заголовках
func (p *KafkaPublisher) Send(ctx context.Context, n BookingNotification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: failed to encode event: %v", ErrNotificationFailed, err)
	}

	key := n.AppointmentID.String()
	headers := []kafka.Header{
		{Key: "event_id", Value: []byte(key)},
		{Key: "event_type", Value: []byte(EventBookingConfirmed)},
	}
	for k, v := range tracing.InjectMap(ctx) {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	msg := kafka.Message{
		Topic:   p.topic,
		Key:     []byte(key),
		Value:   payload,
		Headers: headers,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: failed to write message: %v", ErrNotificationFailed, err)
	}

	return nil
}

// Close закрывает writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
