// Package queue_publisher provides functions to publish domain events to
// RabbitMQ.  Errors are logged and returned so callers can ignore
// failures without interrupting the main request flow.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/villastay/property-reservation/internal/queue"
)

// PublishBookingCreated publishes a BookingCreatedEvent to the
// booking.created queue.  Best effort: the reservation has already been
// committed, so a broker failure only costs the notification.
func PublishBookingCreated(ctx context.Context, event q.BookingCreatedEvent) error {
	return publish(ctx, "booking.created", event)
}

// PublishSweepRequested publishes a SweepRequestedEvent to the
// sweep.requested queue.  The caller should fall back to running the
// sweep locally when this returns an error, since nobody else will.
func PublishSweepRequested(ctx context.Context, event q.SweepRequestedEvent) error {
	return publish(ctx, "sweep.requested", event)
}

// publish opens a short-lived connection and channel, declares the queue
// (idempotent, durable) and sends one persistent JSON message.  Any error
// is logged and returned.
func publish(ctx context.Context, queueName string, event any) error {
	conn, err := amqp.Dial(q.BrokerURL())
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
