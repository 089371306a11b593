package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Scope narrows a query. Find and Count apply scopes in order.
type Scope = func(*gorm.DB) *gorm.DB

// Store is the CRUD surface shared by every entity repository.
// A nil tx runs against the base connection.
type Store[T any] interface {
	Create(ctx context.Context, tx *gorm.DB, entity *T) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Find(ctx context.Context, scopes ...Scope) ([]T, error)
	Update(ctx context.Context, tx *gorm.DB, entity *T) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	Count(ctx context.Context, tx *gorm.DB, scopes ...Scope) (int64, error)
	GetDB() *gorm.DB
}

type store[T any] struct {
	db *gorm.DB
}

func newStore[T any](db *gorm.DB) *store[T] {
	return &store[T]{db: db}
}

func (s *store[T]) GetDB() *gorm.DB {
	return s.db
}

func (s *store[T]) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx == nil {
		tx = s.db
	}
	return tx.WithContext(ctx)
}

func (s *store[T]) Create(ctx context.Context, tx *gorm.DB, entity *T) error {
	return s.conn(ctx, tx).Create(entity).Error
}

// FindByID returns nil, nil when no row has the id.
func (s *store[T]) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*T, error) {
	var entity T
	if err := s.conn(ctx, tx).First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *store[T]) FindAll(ctx context.Context) ([]T, error) {
	return s.Find(ctx, orderByID)
}

func (s *store[T]) Find(ctx context.Context, scopes ...Scope) ([]T, error) {
	entities := []T{}
	if err := s.conn(ctx, nil).Scopes(scopes...).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Update writes every column of entity, which must carry its primary key.
func (s *store[T]) Update(ctx context.Context, tx *gorm.DB, entity *T) error {
	return s.conn(ctx, tx).Save(entity).Error
}

func (s *store[T]) Delete(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	res := s.conn(ctx, tx).Delete(new(T), id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *store[T]) Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	n, err := s.Count(ctx, tx, func(db *gorm.DB) *gorm.DB { return db.Where("id = ?", id) })
	return n > 0, err
}

func (s *store[T]) Count(ctx context.Context, tx *gorm.DB, scopes ...Scope) (int64, error) {
	var n int64
	err := s.conn(ctx, tx).Model(new(T)).Scopes(scopes...).Count(&n).Error
	return n, err
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
