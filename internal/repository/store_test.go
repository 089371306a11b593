package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Santy01/gestion-viajes-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStore_CRUD(t *testing.T) {
	db := setupDB(t)
	repo := NewDestinationRepository(db)
	ctx := context.Background()

	d := &models.Destination{Name: "Machu Picchu", Country: "Perú", Cost: decimal.RequireFromString("250.00"), CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, nil, d))
	require.NotZero(t, d.ID)

	got, err := repo.FindByID(ctx, nil, d.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Machu Picchu", got.Name)
	assert.True(t, got.Cost.Equal(decimal.NewFromInt(250)))
	assert.Nil(t, got.UpdatedAt)

	now := time.Now().UTC()
	got.Cost = decimal.RequireFromString("275.50")
	got.UpdatedAt = &now
	require.NoError(t, repo.Update(ctx, nil, got))

	again, err := repo.FindByID(ctx, nil, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "275.5", again.Cost.String())
	assert.NotNil(t, again.UpdatedAt)

	exists, err := repo.Exists(ctx, nil, d.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	deleted, err := repo.Delete(ctx, nil, d.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, nil, d.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStore_FindByID_Missing(t *testing.T) {
	repo := NewTouristRepository(setupDB(t))

	got, err := repo.FindByID(context.Background(), nil, 999)

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_FindEmpty(t *testing.T) {
	repo := NewReservationRepository(setupDB(t))

	got, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStore_TransactionRollback(t *testing.T) {
	db := setupDB(t)
	repo := NewTouristRepository(db)
	ctx := context.Background()

	err := db.Transaction(func(tx *gorm.DB) error {
		tr := &models.Tourist{FirstName: "Ana", LastName: "López", Email: "ana.lopez@example.com", RegisteredAt: time.Now().UTC()}
		if err := repo.Create(ctx, tx, tr); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	n, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
