package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showseat/show_booking/internal/core/domain"
	"github.com/showseat/show_booking/internal/core/services"
)

func TestResolveAmount(t *testing.T) {
	seats := []domain.Seat{
		{ID: "A1", Type: domain.SeatRegular, Price: 150},
		{ID: "A2", Type: domain.SeatRegular, Price: 150},
		{ID: "R1", Type: domain.SeatRecliner, Price: 300},
	}

	total, err := services.ResolveAmount(seats, []string{"A1", "R1"})
	require.NoError(t, err)
	assert.Equal(t, 450.0, total)

	total, err = services.ResolveAmount(seats, nil)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestResolveAmount_UnknownSeat(t *testing.T) {
	seats := []domain.Seat{{ID: "A1", Type: domain.SeatRegular, Price: 150}}

	_, err := services.ResolveAmount(seats, []string{"A1", "Z9"})
	var unknown *domain.UnknownSeatError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Z9", unknown.SeatID)
}
