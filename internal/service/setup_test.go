package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Santy01/gestion-viajes-api/internal/models"
	"github.com/Santy01/gestion-viajes-api/internal/repository"
	"github.com/Santy01/gestion-viajes-api/pkg/database"
)

type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	bodies []any
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	p.bodies = append(p.bodies, payload)
	return p.err
}

// countingTourists counts lookups made through the wrapped repository.
type countingTourists struct {
	repository.TouristRepository
	calls int
}

func (c *countingTourists) ExistsForUpdate(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	c.calls++
	return c.TouristRepository.ExistsForUpdate(ctx, tx, id)
}

type countingCosts struct {
	next  repository.CostLookup
	calls int
}

func (c *countingCosts) CostByID(ctx context.Context, tx *gorm.DB, id uint) (decimal.Decimal, bool, error) {
	c.calls++
	return c.next.CostByID(ctx, tx, id)
}

type env struct {
	db           *gorm.DB
	reservations repository.ReservationRepository
	tourists     *countingTourists
	costs        *countingCosts
	publisher    *recordingPublisher
	svc          ReservationService
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

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

func newEnv(t *testing.T) *env {
	t.Helper()
	db := setupDB(t)
	e := &env{
		db:           db,
		reservations: repository.NewReservationRepository(db),
		tourists:     &countingTourists{TouristRepository: repository.NewTouristRepository(db)},
		costs:        &countingCosts{next: repository.NewDestinationRepository(db)},
		publisher:    &recordingPublisher{},
	}
	e.svc = NewReservationService(e.reservations, e.tourists, e.costs, e.publisher, quietLogger())
	return e
}

func (e *env) tourist(t *testing.T, email string) *models.Tourist {
	t.Helper()
	tr := &models.Tourist{FirstName: "Carlos", LastName: "Mendoza", Email: email, RegisteredAt: time.Now().UTC()}
	require.NoError(t, e.db.Create(tr).Error)
	return tr
}

func (e *env) destination(t *testing.T, name, cost string) *models.Destination {
	t.Helper()
	d := &models.Destination{Name: name, Country: "Perú", Cost: decimal.RequireFromString(cost), CreatedAt: time.Now().UTC()}
	require.NoError(t, e.db.Create(d).Error)
	return d
}

func day(s string) time.Time {
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func (e *env) count(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&models.Reservation{}).Count(&n).Error)
	return n
}
