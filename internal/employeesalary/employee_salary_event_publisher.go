package employeesalary

import (
	"context"
	"encoding/json"
	"go-salary/internal/events"

	"github.com/segmentio/kafka-go"
)

type EventPublisher interface {
	PublishSalaryRecordSaved(ctx context.Context, event events.SalaryRecordSavedEvent) error
}

type noopEventPublisher struct{}

func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) PublishSalaryRecordSaved(context.Context, events.SalaryRecordSavedEvent) error {
	return nil
}

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaEventPublisher struct {
	writer messageWriter
}

func NewKafkaEventPublisher(writer messageWriter) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishSalaryRecordSaved(
	ctx context.Context,
	event events.SalaryRecordSavedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.SalaryRecordSavedTopic,
		Key:   []byte(event.EmployeeID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	})
}
