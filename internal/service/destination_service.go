package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Santy01/gestion-viajes-api/internal/models"
	"github.com/Santy01/gestion-viajes-api/internal/repository"
)

// CostInvalidator drops cached destination costs. May be nil.
type CostInvalidator interface {
	Invalidate(ctx context.Context, id uint) error
}

type DestinationInput struct {
	Name        string
	Country     string
	Description *string
	Cost        decimal.Decimal
}

type DestinationService interface {
	List(ctx context.Context) ([]models.Destination, error)
	Get(ctx context.Context, id uint) (*models.Destination, error)
	Create(ctx context.Context, in DestinationInput) (*models.Destination, error)
	Update(ctx context.Context, id uint, in DestinationInput) (*models.Destination, error)
	Delete(ctx context.Context, id uint) (bool, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ListByCountry(ctx context.Context, country string) ([]models.Destination, error)
	ListByCostRange(ctx context.Context, min, max decimal.Decimal) ([]models.Destination, error)
	Search(ctx context.Context, term string) ([]models.Destination, error)
}

type destinationService struct {
	destinations repository.DestinationRepository
	reservations repository.ReservationRepository
	cache        CostInvalidator
	log          logrus.FieldLogger
}

func NewDestinationService(
	destinations repository.DestinationRepository,
	reservations repository.ReservationRepository,
	cache CostInvalidator,
	log logrus.FieldLogger,
) DestinationService {
	return &destinationService{destinations: destinations, reservations: reservations, cache: cache, log: log}
}

func (in *DestinationInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Country = strings.TrimSpace(in.Country)
	if in.Name == "" || in.Country == "" {
		return ErrNameRequired
	}
	if in.Cost.IsNegative() {
		return ErrInvalidCost
	}
	in.Cost = in.Cost.Round(2)
	return nil
}

func (s *destinationService) List(ctx context.Context) ([]models.Destination, error) {
	return s.destinations.FindAll(ctx)
}

func (s *destinationService) Get(ctx context.Context, id uint) (*models.Destination, error) {
	return s.destinations.FindByID(ctx, nil, id)
}

func (s *destinationService) Create(ctx context.Context, in DestinationInput) (*models.Destination, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	dup, err := s.destinations.ExistsByNameAndCountry(ctx, in.Name, in.Country, nil)
	if err != nil {
		return nil, fmt.Errorf("check destination name: %w", err)
	}
	if dup {
		return nil, ErrDuplicateDestination
	}

	d := &models.Destination{
		Name:        in.Name,
		Country:     in.Country,
		Description: in.Description,
		Cost:        in.Cost,
		CreatedAt:   nowUTC(),
	}
	if err := s.destinations.Create(ctx, nil, d); err != nil {
		return nil, fmt.Errorf("create destination: %w", err)
	}

	s.log.WithFields(logrus.Fields{"destination_id": d.ID, "name": d.Name}).Info("destination created")
	return d, nil
}

// Update returns nil, nil when the destination does not exist.
func (s *destinationService) Update(ctx context.Context, id uint, in DestinationInput) (*models.Destination, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	d, err := s.destinations.FindByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("find destination: %w", err)
	}
	if d == nil {
		return nil, nil
	}

	dup, err := s.destinations.ExistsByNameAndCountry(ctx, in.Name, in.Country, &id)
	if err != nil {
		return nil, fmt.Errorf("check destination name: %w", err)
	}
	if dup {
		return nil, ErrDuplicateDestination
	}

	now := nowUTC()
	d.Name = in.Name
	d.Country = in.Country
	d.Description = in.Description
	d.Cost = in.Cost
	d.UpdatedAt = &now
	if err := s.destinations.Update(ctx, nil, d); err != nil {
		return nil, fmt.Errorf("update destination: %w", err)
	}
	s.invalidate(ctx, id)

	s.log.WithField("destination_id", id).Info("destination updated")
	return d, nil
}

func (s *destinationService) Delete(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := s.destinations.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.destinations.Exists(ctx, tx, id)
		if err != nil || !exists {
			return err
		}

		n, err := s.reservations.CountByDestination(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("count reservations: %w", err)
		}
		if n > 0 {
			return ErrDestinationInUse
		}

		deleted, err = s.destinations.Delete(ctx, tx, id)
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrDestinationInUse
		}
		return err
	})
	if err != nil {
		return false, err
	}
	if deleted {
		s.invalidate(ctx, id)
		s.log.WithField("destination_id", id).Info("destination deleted")
	}
	return deleted, nil
}

func (s *destinationService) Exists(ctx context.Context, id uint) (bool, error) {
	return s.destinations.Exists(ctx, nil, id)
}

func (s *destinationService) ListByCountry(ctx context.Context, country string) ([]models.Destination, error) {
	return s.destinations.FindByCountry(ctx, country)
}

func (s *destinationService) ListByCostRange(ctx context.Context, min, max decimal.Decimal) ([]models.Destination, error) {
	if min.IsNegative() || max.IsNegative() || min.GreaterThan(max) {
		return nil, ErrInvalidCostRange
	}
	return s.destinations.FindByCostRange(ctx, min, max)
}

func (s *destinationService) Search(ctx context.Context, term string) ([]models.Destination, error) {
	return s.destinations.Search(ctx, term)
}

func (s *destinationService) invalidate(ctx context.Context, id uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.WithError(err).WithField("destination_id", id).Warn("failed to invalidate cost cache")
	}
}
