package validator

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santy01/gestion-viajes-api/internal/dto"
)

func TestValidate_OK(t *testing.T) {
	cost := 250.0
	err := New().Validate(&dto.DestinationRequest{Name: "Machu Picchu", Country: "Perú", Cost: &cost})

	assert.NoError(t, err)
}

func TestValidate_Messages(t *testing.T) {
	cost := -1.0
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"missing field", &dto.CreateReservationRequest{TouristID: 1, DestinationID: 1}, "start_date is required"},
		{"bad email", &dto.TouristRequest{FirstName: "Ana", LastName: "López", Email: "ana"}, "email must be a valid email address"},
		{"negative cost", &dto.DestinationRequest{Name: "X", Country: "Y", Cost: &cost}, "cost must be greater than or equal to 0"},
		{"missing cost", &dto.DestinationRequest{Name: "X", Country: "Y"}, "cost is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := New().Validate(tc.in)

			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Equal(t, tc.want, he.Message)
		})
	}
}
