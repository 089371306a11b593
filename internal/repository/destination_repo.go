package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Santy01/gestion-viajes-api/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CostLookup resolves a destination to its per-person, per-day cost.
// ok is false when the destination does not exist.
type CostLookup interface {
	CostByID(ctx context.Context, tx *gorm.DB, id uint) (cost decimal.Decimal, ok bool, err error)
}

type DestinationRepository interface {
	Store[models.Destination]
	CostLookup
	FindByCountry(ctx context.Context, country string) ([]models.Destination, error)
	FindByCostRange(ctx context.Context, min, max decimal.Decimal) ([]models.Destination, error)
	Search(ctx context.Context, term string) ([]models.Destination, error)
	ExistsByNameAndCountry(ctx context.Context, name, country string, excludeID *uint) (bool, error)
}

type destinationRepository struct {
	*store[models.Destination]
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{store: newStore[models.Destination](db)}
}

func (r *destinationRepository) FindAll(ctx context.Context) ([]models.Destination, error) {
	return r.Find(ctx, orderBy("name ASC"))
}

func (r *destinationRepository) CostByID(ctx context.Context, tx *gorm.DB, id uint) (decimal.Decimal, bool, error) {
	var d models.Destination
	err := r.conn(ctx, tx).Select("id", "cost").First(&d, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}
	return d.Cost, true, nil
}

func (r *destinationRepository) FindByCountry(ctx context.Context, country string) ([]models.Destination, error) {
	return r.Find(ctx, likeAny(country, "country"), orderBy("name ASC"))
}

func (r *destinationRepository) FindByCostRange(ctx context.Context, min, max decimal.Decimal) ([]models.Destination, error) {
	return r.Find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("cost >= ? AND cost <= ?", min, max)
	}, orderBy("cost ASC, name ASC"))
}

func (r *destinationRepository) Search(ctx context.Context, term string) ([]models.Destination, error) {
	if strings.TrimSpace(term) == "" {
		return r.FindAll(ctx)
	}
	return r.Find(ctx, likeAny(term, "name", "country", "description"), orderBy("name ASC"))
}

func (r *destinationRepository) ExistsByNameAndCountry(ctx context.Context, name, country string, excludeID *uint) (bool, error) {
	n, err := r.Count(ctx, nil, func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(name) = ? AND LOWER(country) = ?",
			strings.ToLower(strings.TrimSpace(name)), strings.ToLower(strings.TrimSpace(country)))
	}, excluding(excludeID))
	return n > 0, err
}
