package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Santy01/gestion-viajes-api/internal/models"
)

// ReservationTotal is cost * partySize * days, where a same-day stay counts as one day.
func ReservationTotal(cost decimal.Decimal, partySize int, start, end time.Time) decimal.Decimal {
	days := max(models.DaysBetween(start, end), 1)
	return cost.
		Mul(decimal.NewFromInt(int64(partySize))).
		Mul(decimal.NewFromInt(int64(days))).
		Round(2)
}
