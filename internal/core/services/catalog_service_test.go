package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repomem "github.com/showseat/show_booking/internal/adapter/repository/memory"
	"github.com/showseat/show_booking/internal/core/domain"
	"github.com/showseat/show_booking/internal/core/services"
)

func TestCatalogService(t *testing.T) {
	svc := services.NewCatalogService(repomem.NewCatalog())
	ctx := context.Background()

	_, err := svc.CreateTheatre(ctx, "t1", "Grand Central")
	require.NoError(t, err)
	require.NoError(t, svc.AddScreen(ctx, "t1", "s1"))
	require.NoError(t, svc.AddSeat(ctx, "t1", "s1", domain.Seat{ID: "A1", Type: domain.SeatRegular, Price: 150}))
	require.NoError(t, svc.AddSeat(ctx, "t1", "s1", domain.Seat{ID: "R1", Type: domain.SeatRecliner, Price: 300}))

	_, err = svc.CreateMovie(ctx, "m1", "Interstellar", 180)
	require.NoError(t, err)

	startsAt := time.Date(2026, time.January, 22, 18, 30, 0, 0, time.UTC)
	show, err := svc.ScheduleShow(ctx, "show1", "m1", "t1", "s1", startsAt, startsAt.Add(3*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "m1", show.MovieID)

	shows, err := svc.ShowsByMovieTitle(ctx, "interstellar")
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, "show1", shows[0].ID)
}

func TestCatalogService_Validation(t *testing.T) {
	svc := services.NewCatalogService(repomem.NewCatalog())
	ctx := context.Background()

	_, err := svc.CreateTheatre(ctx, "", "")
	assert.Error(t, err)

	_, err = svc.CreateTheatre(ctx, "t1", "Grand Central")
	require.NoError(t, err)
	require.NoError(t, svc.AddScreen(ctx, "t1", "s1"))

	assert.Error(t, svc.AddSeat(ctx, "t1", "s1", domain.Seat{ID: "A1", Type: "SOFA", Price: 150}))
	assert.Error(t, svc.AddSeat(ctx, "t1", "s1", domain.Seat{ID: "A1", Type: domain.SeatRegular, Price: 0}))

	// Scheduling against a missing movie or screen is rejected.
	_, err = svc.ScheduleShow(ctx, "show1", "m1", "t1", "s1", time.Now(), time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.CreateMovie(ctx, "m1", "Interstellar", 180)
	require.NoError(t, err)

	_, err = svc.ScheduleShow(ctx, "show1", "m1", "t1", "s9", time.Now(), time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
