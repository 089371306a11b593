package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Santy01/gestion-viajes-api/internal/models"
)

const (
	ReservationCreated = "reservation.created"
	ReservationUpdated = "reservation.updated"
	ReservationDeleted = "reservation.deleted"
)

// ReservationEvent is the message body published on every reservation change.
type ReservationEvent struct {
	ID          string              `json:"id"`
	Type        string              `json:"type"`
	Reservation ReservationSnapshot `json:"reservation"`
	OccurredAt  time.Time           `json:"occurred_at"`
}

type ReservationSnapshot struct {
	ID            uint            `json:"id"`
	TouristID     uint            `json:"tourist_id"`
	DestinationID uint            `json:"destination_id"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	PartySize     int             `json:"party_size"`
	Total         decimal.Decimal `json:"total"`
}

func NewReservationEvent(eventType string, r *models.Reservation) ReservationEvent {
	return ReservationEvent{
		ID:   uuid.NewString(),
		Type: eventType,
		Reservation: ReservationSnapshot{
			ID:            r.ID,
			TouristID:     r.TouristID,
			DestinationID: r.DestinationID,
			StartDate:     r.StartDate.Format(models.DateLayout),
			EndDate:       r.EndDate.Format(models.DateLayout),
			PartySize:     r.PartySize,
			Total:         r.Total,
		},
		OccurredAt: time.Now().UTC(),
	}
}
