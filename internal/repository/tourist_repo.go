package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Santy01/gestion-viajes-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TouristRepository interface {
	Store[models.Tourist]
	// ExistsForUpdate checks the tourist and row-locks it for the rest of tx.
	ExistsForUpdate(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	FindByEmail(ctx context.Context, email string) (*models.Tourist, error)
	ExistsByEmail(ctx context.Context, email string, excludeID *uint) (bool, error)
	Search(ctx context.Context, term string) ([]models.Tourist, error)
}

type touristRepository struct {
	*store[models.Tourist]
}

func NewTouristRepository(db *gorm.DB) TouristRepository {
	return &touristRepository{store: newStore[models.Tourist](db)}
}

func (r *touristRepository) FindAll(ctx context.Context) ([]models.Tourist, error) {
	return r.Find(ctx, orderBy("last_name ASC, first_name ASC"))
}

func (r *touristRepository) ExistsForUpdate(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	var t models.Tourist
	err := r.conn(ctx, tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindByEmail matches case-insensitively and returns nil, nil on a miss.
func (r *touristRepository) FindByEmail(ctx context.Context, email string) (*models.Tourist, error) {
	var t models.Tourist
	err := r.conn(ctx, nil).Where("LOWER(email) = ?", normalizeEmail(email)).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *touristRepository) ExistsByEmail(ctx context.Context, email string, excludeID *uint) (bool, error) {
	n, err := r.Count(ctx, nil, func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(email) = ?", normalizeEmail(email))
	}, excluding(excludeID))
	return n > 0, err
}

func (r *touristRepository) Search(ctx context.Context, term string) ([]models.Tourist, error) {
	if strings.TrimSpace(term) == "" {
		return r.FindAll(ctx)
	}
	return r.Find(ctx,
		likeAny(term, "first_name", "last_name", "email", "phone"),
		orderBy("last_name ASC, first_name ASC"))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
