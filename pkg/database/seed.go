package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/Santy01/gestion-viajes-api/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

var seedDestinations = []models.Destination{
	{Name: "Machu Picchu", Country: "Perú", Cost: decimal.NewFromInt(250), Description: strPtr("Ciudadela inca en los Andes peruanos")},
	{Name: "Cristo Redentor", Country: "Brasil", Cost: decimal.NewFromInt(180), Description: strPtr("Estatua monumental sobre el cerro Corcovado en Río de Janeiro")},
	{Name: "Cataratas del Iguazú", Country: "Argentina", Cost: decimal.NewFromInt(150), Description: strPtr("Sistema de cataratas en la frontera entre Argentina y Brasil")},
	{Name: "Chichén Itzá", Country: "México", Cost: decimal.NewFromInt(200), Description: strPtr("Ciudad maya en la península de Yucatán")},
	{Name: "Torres del Paine", Country: "Chile", Cost: decimal.NewFromInt(300), Description: strPtr("Parque nacional en la Patagonia chilena")},
}

var seedTourists = []models.Tourist{
	{FirstName: "Carlos", LastName: "Mendoza", Email: "carlos.mendoza@example.com", Phone: strPtr("+51 987 654 321")},
	{FirstName: "María", LastName: "González", Email: "maria.gonzalez@example.com", Phone: strPtr("+55 21 99876 5432")},
	{FirstName: "José", LastName: "Silva", Email: "jose.silva@example.com", Phone: strPtr("+54 11 4567 8901")},
	{FirstName: "Ana", LastName: "López", Email: "ana.lopez@example.com", Phone: strPtr("+52 55 1234 5678")},
	{FirstName: "Pedro", LastName: "Rodríguez", Email: "pedro.rodriguez@example.com", Phone: strPtr("+56 9 8765 4321")},
}

// Seed inserts the sample catalog. Rows that already exist are left alone.
func Seed(db *gorm.DB) error {
	now := time.Now().UTC()
	return db.Transaction(func(tx *gorm.DB) error {
		for _, d := range seedDestinations {
			var existing models.Destination
			err := tx.Where("name = ? AND country = ?", d.Name, d.Country).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			d.CreatedAt = now
			if err := tx.Create(&d).Error; err != nil {
				return fmt.Errorf("failed to seed destination %s: %w", d.Name, err)
			}
		}
		for _, t := range seedTourists {
			var existing models.Tourist
			err := tx.Where("email = ?", t.Email).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			t.RegisteredAt = now
			if err := tx.Create(&t).Error; err != nil {
				return fmt.Errorf("failed to seed tourist %s: %w", t.Email, err)
			}
		}
		return nil
	})
}
