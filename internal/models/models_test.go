package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 5, DaysBetween(day("2024-03-10"), day("2024-03-15")))
	assert.Equal(t, 0, DaysBetween(day("2024-03-10"), day("2024-03-10")))
	assert.Equal(t, 29, DaysBetween(day("2024-02-01"), day("2024-03-01")))
	assert.Equal(t, -2, DaysBetween(day("2024-03-10"), day("2024-03-08")))
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, 3, 11, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysBetween(start, end))
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	in := time.Date(2024, 3, 10, 22, 30, 0, 0, loc)

	got := DateOnly(in)

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestReservationOverlaps(t *testing.T) {
	r := &Reservation{StartDate: day("2024-03-10"), EndDate: day("2024-03-15")}

	cases := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"touching after", "2024-03-15", "2024-03-20", false},
		{"touching before", "2024-03-05", "2024-03-10", false},
		{"partial overlap", "2024-03-12", "2024-03-18", true},
		{"contained", "2024-03-11", "2024-03-12", true},
		{"containing", "2024-03-01", "2024-03-31", true},
		{"same range", "2024-03-10", "2024-03-15", true},
		{"disjoint", "2024-04-01", "2024-04-05", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Overlaps(day(tc.start), day(tc.end)))
		})
	}
}

func TestTouristFullName(t *testing.T) {
	tr := &Tourist{FirstName: "Carlos", LastName: "Mendoza"}

	assert.Equal(t, "Carlos Mendoza", tr.FullName())
}
