package messaging

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"

	"rentease-backend/internal/config"
	"rentease-backend/internal/domain"
)

// amqpChannel is the subset of *amqp.Channel used for publishing.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQBroker publishes notification events to a durable queue. It
// implements service.EventPublisher.
type RabbitMQBroker struct {
	conn      *amqp.Connection
	ch        amqpChannel
	queueName string
	cb        *gobreaker.CircuitBreaker
}

func NewRabbitMQBroker(amqpURL, queueName string) (*RabbitMQBroker, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &RabbitMQBroker{
		conn:      conn,
		ch:        ch,
		queueName: queueName,
		cb:        config.NewCircuitBreaker("RabbitMQ-Publisher"),
	}, nil
}

// NotificationEvent is the message body published for every notification.
type NotificationEvent struct {
	NotificationID  int32             `json:"notification_id"`
	RecipientType   string            `json:"recipient_type"`
	RecipientID     int32             `json:"recipient_id"`
	Type            string            `json:"type"`
	Title           string            `json:"title"`
	Message         string            `json:"message"`
	Status          string            `json:"status"`
	BookingID       *int32            `json:"booking_id,omitempty"`
	WorkerBookingID *int32            `json:"worker_booking_id,omitempty"`
	Attributes      map[string]string `json:"attributes,omitempty"`
	CreatedOn       time.Time         `json:"created_on"`
}

func newNotificationEvent(n *domain.Notification) NotificationEvent {
	return NotificationEvent{
		NotificationID:  n.ID,
		RecipientType:   string(n.Recipient.Type),
		RecipientID:     n.Recipient.ID,
		Type:            n.Type,
		Title:           n.Title,
		Message:         n.Message,
		Status:          string(n.Status),
		BookingID:       n.BookingID,
		WorkerBookingID: n.WorkerBookingID,
		Attributes:      n.Attributes,
		CreatedOn:       n.CreatedOn,
	}
}

func (rmq *RabbitMQBroker) PublishNotification(ctx context.Context, n *domain.Notification) error {
	body, err := json.Marshal(newNotificationEvent(n))
	if err != nil {
		return err
	}

	if deadline, ok := ctx.Deadline(); ok {
		if time.Until(deadline) <= 0 {
			return ctx.Err()
		}
	}

	_, err = rmq.cb.Execute(func() (interface{}, error) {
		err := rmq.ch.PublishWithContext(
			ctx,
			"",            // exchange (default)
			rmq.queueName, // routing key == queue name
			false,         // mandatory
			false,         // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    strconv.Itoa(int(n.ID)),
				Type:         n.Type,
				Timestamp:    n.CreatedOn,
				Body:         body,
			},
		)
		return nil, err
	})
	return err
}

func (rmq *RabbitMQBroker) Close() error {
	if rmq.ch != nil {
		if err := rmq.ch.Close(); err != nil {
			return err
		}
	}
	if rmq.conn != nil {
		return rmq.conn.Close()
	}
	return nil
}
