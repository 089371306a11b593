package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Santy01/gestion-viajes-api/internal/events"
	"github.com/Santy01/gestion-viajes-api/internal/models"
	"github.com/Santy01/gestion-viajes-api/internal/repository"
)

// EventPublisher delivers domain events. Services accept a nil publisher.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// NewReservation is a booking request.
type NewReservation struct {
	TouristID     uint
	DestinationID uint
	StartDate     time.Time
	EndDate       time.Time
	PartySize     int
}

// ReservationChange carries the mutable fields of a reservation.
type ReservationChange struct {
	StartDate time.Time
	EndDate   time.Time
	PartySize int
}

type ReservationService interface {
	Create(ctx context.Context, in NewReservation) (*models.Reservation, error)
	Update(ctx context.Context, id uint, in ReservationChange) (*models.Reservation, error)
	Get(ctx context.Context, id uint) (*models.Reservation, error)
	Delete(ctx context.Context, id uint) (bool, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]models.Reservation, error)
	ListByTourist(ctx context.Context, touristID uint) ([]models.Reservation, error)
	ListByDestination(ctx context.Context, destinationID uint) ([]models.Reservation, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Reservation, error)
}

type reservationService struct {
	reservations repository.ReservationRepository
	tourists     repository.TouristRepository
	costs        repository.CostLookup
	publisher    EventPublisher
	log          logrus.FieldLogger
	now          func() time.Time
}

func NewReservationService(
	reservations repository.ReservationRepository,
	tourists repository.TouristRepository,
	costs repository.CostLookup,
	publisher EventPublisher,
	log logrus.FieldLogger,
) ReservationService {
	return &reservationService{
		reservations: reservations,
		tourists:     tourists,
		costs:        costs,
		publisher:    publisher,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func validateBooking(start, end time.Time, partySize int) error {
	if !start.Before(end) {
		return ErrInvalidDateRange
	}
	if partySize < 1 {
		return ErrInvalidPartySize
	}
	return nil
}

func (s *reservationService) Create(ctx context.Context, in NewReservation) (*models.Reservation, error) {
	start, end := models.DateOnly(in.StartDate), models.DateOnly(in.EndDate)
	if err := validateBooking(start, end, in.PartySize); err != nil {
		return nil, err
	}

	var result *models.Reservation
	err := s.reservations.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Locking the tourist row serializes concurrent bookings for the same tourist.
		ok, err := s.tourists.ExistsForUpdate(ctx, tx, in.TouristID)
		if err != nil {
			return fmt.Errorf("check tourist: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: id %d", ErrTouristNotFound, in.TouristID)
		}

		cost, ok, err := s.costs.CostByID(ctx, tx, in.DestinationID)
		if err != nil {
			return fmt.Errorf("lookup destination cost: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: id %d", ErrDestinationNotFound, in.DestinationID)
		}

		overlap, err := s.reservations.HasOverlap(ctx, tx, in.TouristID, start, end, nil)
		if err != nil {
			return fmt.Errorf("check overlap: %w", err)
		}
		if overlap {
			return ErrOverlappingReservation
		}

		r := &models.Reservation{
			TouristID:     in.TouristID,
			DestinationID: in.DestinationID,
			StartDate:     start,
			EndDate:       end,
			PartySize:     in.PartySize,
			Total:         ReservationTotal(cost, in.PartySize, start, end),
			CreatedAt:     s.now(),
		}
		if err := s.reservations.Create(ctx, tx, r); err != nil {
			return fmt.Errorf("create reservation: %w", err)
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"reservation_id": result.ID,
		"tourist_id":     result.TouristID,
		"destination_id": result.DestinationID,
		"total":          result.Total.StringFixed(2),
	}).Info("reservation created")
	s.publish(ctx, events.ReservationCreated, result)
	return result, nil
}

// Update returns nil, nil when the reservation does not exist.
func (s *reservationService) Update(ctx context.Context, id uint, in ReservationChange) (*models.Reservation, error) {
	start, end := models.DateOnly(in.StartDate), models.DateOnly(in.EndDate)
	if err := validateBooking(start, end, in.PartySize); err != nil {
		return nil, err
	}

	var result *models.Reservation
	err := s.reservations.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, err := s.reservations.FindByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("find reservation: %w", err)
		}
		if r == nil {
			return nil
		}

		if _, err := s.tourists.ExistsForUpdate(ctx, tx, r.TouristID); err != nil {
			return fmt.Errorf("lock tourist: %w", err)
		}

		overlap, err := s.reservations.HasOverlap(ctx, tx, r.TouristID, start, end, &r.ID)
		if err != nil {
			return fmt.Errorf("check overlap: %w", err)
		}
		if overlap {
			return ErrOverlappingReservation
		}

		cost, ok, err := s.costs.CostByID(ctx, tx, r.DestinationID)
		if err != nil {
			return fmt.Errorf("lookup destination cost: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: id %d", ErrDestinationNotFound, r.DestinationID)
		}

		now := s.now()
		r.StartDate = start
		r.EndDate = end
		r.PartySize = in.PartySize
		r.Total = ReservationTotal(cost, in.PartySize, start, end)
		r.UpdatedAt = &now
		if err := s.reservations.Update(ctx, tx, r); err != nil {
			return fmt.Errorf("update reservation: %w", err)
		}
		result = r
		return nil
	})
	if err != nil || result == nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"reservation_id": result.ID,
		"total":          result.Total.StringFixed(2),
	}).Info("reservation updated")
	s.publish(ctx, events.ReservationUpdated, result)
	return result, nil
}

func (s *reservationService) Get(ctx context.Context, id uint) (*models.Reservation, error) {
	return s.reservations.FindByID(ctx, nil, id)
}

func (s *reservationService) Delete(ctx context.Context, id uint) (bool, error) {
	r, err := s.reservations.FindByID(ctx, nil, id)
	if err != nil {
		return false, fmt.Errorf("find reservation: %w", err)
	}
	if r == nil {
		return false, nil
	}

	deleted, err := s.reservations.Delete(ctx, nil, id)
	if err != nil {
		return false, fmt.Errorf("delete reservation: %w", err)
	}
	if deleted {
		s.log.WithField("reservation_id", id).Info("reservation deleted")
		s.publish(ctx, events.ReservationDeleted, r)
	}
	return deleted, nil
}

func (s *reservationService) Exists(ctx context.Context, id uint) (bool, error) {
	return s.reservations.Exists(ctx, nil, id)
}

func (s *reservationService) List(ctx context.Context) ([]models.Reservation, error) {
	return s.reservations.FindAll(ctx)
}

func (s *reservationService) ListByTourist(ctx context.Context, touristID uint) ([]models.Reservation, error) {
	return s.reservations.FindByTourist(ctx, touristID)
}

func (s *reservationService) ListByDestination(ctx context.Context, destinationID uint) ([]models.Reservation, error) {
	return s.reservations.FindByDestination(ctx, destinationID)
}

func (s *reservationService) ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Reservation, error) {
	from, to = models.DateOnly(from), models.DateOnly(to)
	if !from.Before(to) {
		return nil, ErrInvalidSearchRange
	}
	return s.reservations.FindByDateRange(ctx, from, to)
}

func (s *reservationService) publish(ctx context.Context, routingKey string, r *models.Reservation) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, routingKey, events.NewReservationEvent(routingKey, r)); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"reservation_id": r.ID,
			"routing_key":    routingKey,
		}).Warn("failed to publish reservation event")
	}
}
