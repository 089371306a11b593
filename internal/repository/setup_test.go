package repository

import (
	"testing"
	"time"

	"github.com/Santy01/gestion-viajes-api/internal/models"
	"github.com/Santy01/gestion-viajes-api/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(sqlite.Open("file::memory:?_foreign_keys=on"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func day(s string) time.Time {
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedDestination(t *testing.T, db *gorm.DB, name, country string, cost int64) *models.Destination {
	t.Helper()
	d := &models.Destination{Name: name, Country: country, Cost: decimal.NewFromInt(cost), CreatedAt: time.Now().UTC()}
	require.NoError(t, db.Create(d).Error)
	return d
}

func seedTourist(t *testing.T, db *gorm.DB, first, last, email string) *models.Tourist {
	t.Helper()
	tr := &models.Tourist{FirstName: first, LastName: last, Email: email, RegisteredAt: time.Now().UTC()}
	require.NoError(t, db.Create(tr).Error)
	return tr
}

func seedReservation(t *testing.T, db *gorm.DB, touristID, destinationID uint, start, end string) *models.Reservation {
	t.Helper()
	r := &models.Reservation{
		TouristID:     touristID,
		DestinationID: destinationID,
		StartDate:     day(start),
		EndDate:       day(end),
		PartySize:     1,
		Total:         decimal.NewFromInt(100),
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, db.Create(r).Error)
	return r
}
