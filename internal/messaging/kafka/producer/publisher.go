package producer

import (
	"context"

	"github.com/segmentio/kafka-go"

	"go-hena-store/internal/outbox"
)

func publishEvent(ctx context.Context, writer *kafka.Writer, event outbox.Event) error {
	msg := kafka.Message{
		Key:   []byte(event.ID.String()),
		Value: event.Payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	return writer.WriteMessages(ctx, msg)
}
