// Package service provides the publisher that ships chat events to RabbitMQ.
// Errors are logged and returned so callers can ignore failures without
// interrupting the request flow.
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/bharat-health-buddy/api/internal/model"
	"github.com/bharat-health-buddy/api/internal/queue"
)

// EventPublisher publishes ChatReceivedEvent messages to a durable queue.
// Each Publish dials the broker, so a broker outage never leaves a broken
// connection behind.
type EventPublisher struct {
	URL   string // broker URL
	Queue string // queue name; also the routing key on the default exchange
}

// NewEventPublisher constructs an EventPublisher for the given broker and queue.
func NewEventPublisher(url, queueName string) *EventPublisher {
	return &EventPublisher{URL: url, Queue: queueName}
}

// NewChatEvent builds the event describing an answered chat request.
func NewChatEvent(req model.ChatRequest, resp model.ChatResponse, at time.Time) queue.ChatReceivedEvent {
	return queue.ChatReceivedEvent{
		ID:         uuid.NewString(),
		Message:    req.Message.String(),
		Language:   req.Language.String(),
		Reply:      resp.Reply,
		ReceivedAt: at.UTC().Format(time.RFC3339),
	}
}

// PublishChat publishes event to the configured queue.  Messages are marked
// persistent.
func (p *EventPublisher) PublishChat(ctx context.Context, event queue.ChatReceivedEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(p.Queue, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.Queue, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
