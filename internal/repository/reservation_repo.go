package repository

import (
	"context"
	"time"

	"github.com/Santy01/gestion-viajes-api/internal/models"
	"gorm.io/gorm"
)

type ReservationRepository interface {
	Store[models.Reservation]
	// HasOverlap reports whether the tourist holds a reservation intersecting
	// [start, end), ignoring excludeID. Touching endpoints do not count.
	HasOverlap(ctx context.Context, tx *gorm.DB, touristID uint, start, end time.Time, excludeID *uint) (bool, error)
	FindByTourist(ctx context.Context, touristID uint) ([]models.Reservation, error)
	FindByDestination(ctx context.Context, destinationID uint) ([]models.Reservation, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]models.Reservation, error)
	CountByTourist(ctx context.Context, tx *gorm.DB, touristID uint) (int64, error)
	CountByDestination(ctx context.Context, tx *gorm.DB, destinationID uint) (int64, error)
}

type reservationRepository struct {
	*store[models.Reservation]
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{store: newStore[models.Reservation](db)}
}

func (r *reservationRepository) HasOverlap(ctx context.Context, tx *gorm.DB, touristID uint, start, end time.Time, excludeID *uint) (bool, error) {
	n, err := r.Count(ctx, tx, func(db *gorm.DB) *gorm.DB {
		return db.Where("tourist_id = ? AND start_date < ? AND end_date > ?",
			touristID, models.DateOnly(end), models.DateOnly(start))
	}, excluding(excludeID))
	return n > 0, err
}

func (r *reservationRepository) FindByTourist(ctx context.Context, touristID uint) ([]models.Reservation, error) {
	return r.Find(ctx, whereEq("tourist_id", touristID), orderBy("start_date DESC, id DESC"))
}

func (r *reservationRepository) FindByDestination(ctx context.Context, destinationID uint) ([]models.Reservation, error) {
	return r.Find(ctx, whereEq("destination_id", destinationID), orderBy("start_date DESC, id DESC"))
}

// FindByDateRange returns reservations lying entirely inside [from, to].
func (r *reservationRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]models.Reservation, error) {
	return r.Find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("start_date >= ? AND end_date <= ?", models.DateOnly(from), models.DateOnly(to))
	}, orderBy("start_date ASC, id ASC"))
}

func (r *reservationRepository) CountByTourist(ctx context.Context, tx *gorm.DB, touristID uint) (int64, error) {
	return r.Count(ctx, tx, whereEq("tourist_id", touristID))
}

func (r *reservationRepository) CountByDestination(ctx context.Context, tx *gorm.DB, destinationID uint) (int64, error) {
	return r.Count(ctx, tx, whereEq("destination_id", destinationID))
}
