// Package queue_publisher publishes domain events to RabbitMQ. Errors are
// logged and returned so callers can ignore failures without interrupting
// the main request flow; a broker outage must never fail a signup or a
// book save.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/bookworm-labs/bookvault/internal/queue"
)

const (
	queueUserRegistered = "user.registered"
	queueBookSaved      = "book.saved"
)

// Publisher sends events to the AMQP broker at URL. The URL is fixed at
// startup from config; handlers receive the Publisher as a dependency and
// never read broker settings themselves.
type Publisher struct {
	URL string
}

func NewPublisher(url string) *Publisher {
	return &Publisher{URL: url}
}

// PublishUserRegistered publishes a UserRegisteredEvent to the
// "user.registered" queue. Messages are marked persistent.
func (p *Publisher) PublishUserRegistered(ctx context.Context, event q.UserRegisteredEvent) error {
	return p.publish(ctx, queueUserRegistered, event)
}

// PublishBookSaved publishes a BookSavedEvent to the "book.saved" queue.
func (p *Publisher) PublishBookSaved(ctx context.Context, event q.BookSavedEvent) error {
	return p.publish(ctx, queueBookSaved, event)
}

// publish dials the broker, declares the target queue (idempotent, durable
// so messages survive broker restarts) and publishes the event as JSON on
// the default exchange. The function never panics; any error is logged and
// returned for the caller to ignore.
func (p *Publisher) publish(ctx context.Context, queueName string, event any) error {
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

	if _, err := ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	); err != nil {
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
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}
