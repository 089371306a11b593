package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Santy01/gestion-viajes-api/internal/models"
	"github.com/Santy01/gestion-viajes-api/internal/repository"
)

type TouristInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     *string
}

type TouristService interface {
	List(ctx context.Context) ([]models.Tourist, error)
	Get(ctx context.Context, id uint) (*models.Tourist, error)
	GetByEmail(ctx context.Context, email string) (*models.Tourist, error)
	Create(ctx context.Context, in TouristInput) (*models.Tourist, error)
	Update(ctx context.Context, id uint, in TouristInput) (*models.Tourist, error)
	Delete(ctx context.Context, id uint) (bool, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Search(ctx context.Context, term string) ([]models.Tourist, error)
}

type touristService struct {
	tourists     repository.TouristRepository
	reservations repository.ReservationRepository
	log          logrus.FieldLogger
}

func NewTouristService(
	tourists repository.TouristRepository,
	reservations repository.ReservationRepository,
	log logrus.FieldLogger,
) TouristService {
	return &touristService{tourists: tourists, reservations: reservations, log: log}
}

func (in *TouristInput) normalize() error {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return ErrTouristRequired
	}
	return nil
}

func (s *touristService) List(ctx context.Context) ([]models.Tourist, error) {
	return s.tourists.FindAll(ctx)
}

func (s *touristService) Get(ctx context.Context, id uint) (*models.Tourist, error) {
	return s.tourists.FindByID(ctx, nil, id)
}

func (s *touristService) GetByEmail(ctx context.Context, email string) (*models.Tourist, error) {
	return s.tourists.FindByEmail(ctx, email)
}

func (s *touristService) Create(ctx context.Context, in TouristInput) (*models.Tourist, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	taken, err := s.tourists.ExistsByEmail(ctx, in.Email, nil)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrDuplicateEmail
	}

	t := &models.Tourist{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		RegisteredAt: nowUTC(),
	}
	if err := s.tourists.Create(ctx, nil, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create tourist: %w", err)
	}

	s.log.WithFields(logrus.Fields{"tourist_id": t.ID, "email": t.Email}).Info("tourist registered")
	return t, nil
}

// Update returns nil, nil when the tourist does not exist.
func (s *touristService) Update(ctx context.Context, id uint, in TouristInput) (*models.Tourist, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	t, err := s.tourists.FindByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("find tourist: %w", err)
	}
	if t == nil {
		return nil, nil
	}

	taken, err := s.tourists.ExistsByEmail(ctx, in.Email, &id)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrDuplicateEmail
	}

	now := nowUTC()
	t.FirstName = in.FirstName
	t.LastName = in.LastName
	t.Email = in.Email
	t.Phone = in.Phone
	t.UpdatedAt = &now
	if err := s.tourists.Update(ctx, nil, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update tourist: %w", err)
	}

	s.log.WithField("tourist_id", id).Info("tourist updated")
	return t, nil
}

func (s *touristService) Delete(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := s.tourists.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.tourists.ExistsForUpdate(ctx, tx, id)
		if err != nil || !exists {
			return err
		}

		n, err := s.reservations.CountByTourist(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("count reservations: %w", err)
		}
		if n > 0 {
			return ErrTouristInUse
		}

		deleted, err = s.tourists.Delete(ctx, tx, id)
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrTouristInUse
		}
		return err
	})
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.WithField("tourist_id", id).Info("tourist deleted")
	}
	return deleted, nil
}

func (s *touristService) Exists(ctx context.Context, id uint) (bool, error) {
	return s.tourists.Exists(ctx, nil, id)
}

func (s *touristService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.tourists.ExistsByEmail(ctx, email, nil)
}

func (s *touristService) Search(ctx context.Context, term string) ([]models.Tourist, error) {
	return s.tourists.Search(ctx, term)
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
