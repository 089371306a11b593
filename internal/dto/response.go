package dto

import (
	"time"

	"github.com/Santy01/gestion-viajes-api/internal/models"
)

type ReservationResponse struct {
	ID            uint       `json:"id"`
	TouristID     uint       `json:"tourist_id"`
	DestinationID uint       `json:"destination_id"`
	StartDate     Date       `json:"start_date"`
	EndDate       Date       `json:"end_date"`
	PartySize     int        `json:"party_size"`
	Total         float64    `json:"total"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type DestinationResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Country     string     `json:"country"`
	Description *string    `json:"description,omitempty"`
	Cost        float64    `json:"cost"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type TouristResponse struct {
	ID           uint       `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Phone        *string    `json:"phone,omitempty"`
	RegisteredAt time.Time  `json:"registered_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToReservationResponse(r *models.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:            r.ID,
		TouristID:     r.TouristID,
		DestinationID: r.DestinationID,
		StartDate:     NewDate(r.StartDate),
		EndDate:       NewDate(r.EndDate),
		PartySize:     r.PartySize,
		Total:         r.Total.Round(2).InexactFloat64(),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func ToReservationResponses(rs []models.Reservation) []ReservationResponse {
	resp := make([]ReservationResponse, len(rs))
	for i := range rs {
		resp[i] = ToReservationResponse(&rs[i])
	}
	return resp
}

func ToDestinationResponse(d *models.Destination) DestinationResponse {
	return DestinationResponse{
		ID:          d.ID,
		Name:        d.Name,
		Country:     d.Country,
		Description: d.Description,
		Cost:        d.Cost.Round(2).InexactFloat64(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func ToDestinationResponses(ds []models.Destination) []DestinationResponse {
	resp := make([]DestinationResponse, len(ds))
	for i := range ds {
		resp[i] = ToDestinationResponse(&ds[i])
	}
	return resp
}

func ToTouristResponse(t *models.Tourist) TouristResponse {
	return TouristResponse{
		ID:           t.ID,
		FirstName:    t.FirstName,
		LastName:     t.LastName,
		FullName:     t.FullName(),
		Email:        t.Email,
		Phone:        t.Phone,
		RegisteredAt: t.RegisteredAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func ToTouristResponses(ts []models.Tourist) []TouristResponse {
	resp := make([]TouristResponse, len(ts))
	for i := range ts {
		resp[i] = ToTouristResponse(&ts[i])
	}
	return resp
}
