package events

import (
	"context"
	"encoding/json"
	"strconv"

	"scholarship/engine"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// LifecycleMessage is the payload written for every status transition.
type LifecycleMessage struct {
	EventID uuid.UUID `json:"event_id"`
	engine.LifecycleEvent
}

// KafkaPublisher writes lifecycle events keyed by application id so all
// events of one application land on the same partition in order.
type KafkaPublisher struct {
	writer MessageWriter
}

var _ engine.Publisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event engine.LifecycleEvent) error {
	message, err := Encode(event, uuid.New())
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, message)
}

func Encode(event engine.LifecycleEvent, eventID uuid.UUID) (kafka.Message, error) {
	data, err := json.Marshal(LifecycleMessage{EventID: eventID, LifecycleEvent: event})
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(strconv.Itoa(event.ApplicationID)),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(eventID.String())},
			{Key: "status", Value: []byte(event.To)},
		},
	}, nil
}
