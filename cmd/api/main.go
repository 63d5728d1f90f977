package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/showseat/show_booking/internal/adapter/handler"
	lockmem "github.com/showseat/show_booking/internal/adapter/lockstore/memory"
	"github.com/showseat/show_booking/internal/adapter/payment"
	repomem "github.com/showseat/show_booking/internal/adapter/repository/memory"
	"github.com/showseat/show_booking/internal/core/domain"
	"github.com/showseat/show_booking/internal/core/services"
	"github.com/showseat/show_booking/internal/platform/config"
)

func main() {
	cfg := config.Load()

	lockStore := lockmem.NewLockStore(cfg.SweepInterval)
	defer lockStore.Close()

	bookingRepo := repomem.NewBookingRepository()
	catalogRepo := repomem.NewCatalog()

	catalogService := services.NewCatalogService(catalogRepo)
	bookingService := services.NewBookingService(lockStore, bookingRepo, catalogRepo, payment.NewSelector(), cfg.LockTTL)

	if err := seedCatalog(catalogService); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go bookingService.RunExpiryJanitor(janitorCtx, cfg.JanitorInterval)

	bookingHandler := handler.NewBookingHandler(bookingService)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /bookings", bookingHandler.CreateBooking)
	mux.HandleFunc("POST /bookings/{id}/confirm", bookingHandler.ConfirmBooking)
	mux.HandleFunc("GET /shows/{id}/seats", bookingHandler.GetShowSeats)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s (seat lock TTL %s)", cfg.Addr, cfg.LockTTL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("shutting down server...")

	stopJanitor()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exiting")
}

// seedCatalog loads a small demo catalog: one theatre, one screen, a mix of
// regular and recliner seats and a single scheduled show.
func seedCatalog(catalog *services.CatalogService) error {
	ctx := context.Background()

	if _, err := catalog.CreateTheatre(ctx, "t1", "PVR Phoenix"); err != nil {
		return err
	}
	if err := catalog.AddScreen(ctx, "t1", "s1"); err != nil {
		return err
	}

	seats := []domain.Seat{
		{ID: "s1-1", Type: domain.SeatRegular, Price: 150},
		{ID: "s1-2", Type: domain.SeatRegular, Price: 150},
		{ID: "s1-3", Type: domain.SeatRegular, Price: 150},
		{ID: "s1-4", Type: domain.SeatRegular, Price: 150},
		{ID: "s1-5", Type: domain.SeatRegular, Price: 150},
		{ID: "s1-6", Type: domain.SeatRecliner, Price: 300},
		{ID: "s1-7", Type: domain.SeatRecliner, Price: 300},
	}
	for _, seat := range seats {
		if err := catalog.AddSeat(ctx, "t1", "s1", seat); err != nil {
			return err
		}
	}

	if _, err := catalog.CreateMovie(ctx, "m1", "Interstellar", 180); err != nil {
		return err
	}

	startsAt := time.Date(2026, time.January, 22, 18, 30, 0, 0, time.Local)
	if _, err := catalog.ScheduleShow(ctx, "show1", "m1", "t1", "s1", startsAt, startsAt.Add(3*time.Hour)); err != nil {
		return err
	}

	log.Printf("seeded catalog: show1 with %d seats", len(seats))
	return nil
}
