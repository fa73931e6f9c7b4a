// Package events publishes domain events to a message broker. Publishing
// is best-effort: a broker failure never fails the request that caused
// the event.
package events

import (
	"encoding/json"

	"github.com/streadway/amqp"
)

const (
	QuizCreated   = "quiz.created"
	QuizSubmitted = "quiz.submitted"
)

type Publisher interface {
	Publish(eventType string, payload interface{}) error
	Close()
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(string, interface{}) error { return nil }
func (NopPublisher) Close()                            {}

type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewAMQPPublisher(amqpURL, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}
	return &AMQPPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

func (p *AMQPPublisher) Publish(eventType string, payload interface{}) error {
	body, err := json.Marshal(map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	})
	if err != nil {
		return err
	}
	// Event type doubles as the routing key on the topic exchange.
	return p.channel.Publish(p.exchange, eventType, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

func (p *AMQPPublisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
