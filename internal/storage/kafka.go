package storage

import (
	"context"
	"encoding/json"

	"jolof-kitchen/internal/domain"

	"github.com/segmentio/kafka-go"
)

type OrderEventPublisher struct {
	Writer *kafka.Writer
}

func NewOrderEventPublisher(writer *kafka.Writer) *OrderEventPublisher {
	return &OrderEventPublisher{Writer: writer}
}

func (p *OrderEventPublisher) PublishOrderEvent(evt domain.OrderEvent) error {
	payload, _ := json.Marshal(evt)
	return p.Writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(evt.OrderID),
		Value: payload,
	})
}
