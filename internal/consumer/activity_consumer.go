package consumer

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/Santy01/gestion-viajes-api/internal/events"
)

// ActivityConsumer writes one log line per reservation event.
type ActivityConsumer struct {
	log logrus.FieldLogger
}

func NewActivityConsumer(log logrus.FieldLogger) *ActivityConsumer {
	return &ActivityConsumer{log: log}
}

// Run drains msgs until the channel closes or ctx is cancelled.
func (c *ActivityConsumer) Run(ctx context.Context, msgs <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				c.log.Info("activity consumer channel closed")
				return nil
			}
			c.handleMessage(msg)
		}
	}
}

func (c *ActivityConsumer) handleMessage(msg amqp.Delivery) {
	var ev events.ReservationEvent
	if err := json.Unmarshal(msg.Body, &ev); err != nil || ev.Type == "" {
		c.log.WithError(err).WithField("routing_key", msg.RoutingKey).Warn("dropping malformed reservation event")
		_ = msg.Nack(false, false)
		return
	}

	c.log.WithFields(logrus.Fields{
		"event_id":       ev.ID,
		"event_type":     ev.Type,
		"reservation_id": ev.Reservation.ID,
		"tourist_id":     ev.Reservation.TouristID,
		"destination_id": ev.Reservation.DestinationID,
		"start_date":     ev.Reservation.StartDate,
		"end_date":       ev.Reservation.EndDate,
		"total":          ev.Reservation.Total.StringFixed(2),
	}).Info("reservation activity")
	_ = msg.Ack(false)
}
