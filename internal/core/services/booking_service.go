package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/showseat/show_booking/internal/core/domain"
	"github.com/showseat/show_booking/internal/core/ports"
)

// BookingService drives the booking lifecycle: CREATED on successful
// acquisition of every requested seat lock, CONFIRMED on successful payment
// while all locks are still held, EXPIRED once the locks lapse unconfirmed.
type BookingService struct {
	locks    ports.LockStore
	bookings ports.BookingRepository
	catalog  ports.ShowCatalog
	payments ports.PaymentSelector
	ttl      time.Duration
}

func NewBookingService(
	locks ports.LockStore,
	bookings ports.BookingRepository,
	catalog ports.ShowCatalog,
	payments ports.PaymentSelector,
	ttl time.Duration,
) *BookingService {
	return &BookingService{
		locks:    locks,
		bookings: bookings,
		catalog:  catalog,
		payments: payments,
		ttl:      ttl,
	}
}

// reservationKey is the lock granularity unit: one key per seat per show.
func reservationKey(showID, seatID string) string {
	return showID + ":" + seatID
}

// CreateBooking takes a TTL-bounded lock on every requested seat, prices the
// selection and records the booking in CREATED status. Acquisition is
// all-or-nothing: the first seat that cannot be locked releases everything
// acquired so far and fails the whole request with SeatUnavailableError.
func (s *BookingService) CreateBooking(ctx context.Context, userID, showID string, seatIDs []string) (*domain.Booking, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	if len(seatIDs) == 0 {
		return nil, errors.New("no seats selected")
	}

	if _, err := s.catalog.GetShow(ctx, showID); err != nil {
		return nil, err
	}

	var acquired []string
	for _, seatID := range seatIDs {
		key := reservationKey(showID, seatID)
		ok, err := s.locks.TryAcquire(ctx, key, userID, s.ttl)
		if err != nil {
			s.releaseKeys(ctx, acquired)
			return nil, fmt.Errorf("acquire lock for seat %s: %w", seatID, err)
		}
		if !ok {
			s.releaseKeys(ctx, acquired)
			return nil, &domain.SeatUnavailableError{SeatID: seatID}
		}
		acquired = append(acquired, key)
	}

	seats, err := s.catalog.ShowSeats(ctx, showID)
	if err != nil {
		s.releaseKeys(ctx, acquired)
		return nil, err
	}
	amount, err := ResolveAmount(seats, seatIDs)
	if err != nil {
		s.releaseKeys(ctx, acquired)
		return nil, err
	}

	booking := &domain.Booking{
		ID:        uuid.New(),
		UserID:    userID,
		ShowID:    showID,
		SeatIDs:   append([]string(nil), seatIDs...),
		Status:    domain.BookingCreated,
		Amount:    amount,
		CreatedAt: time.Now(),
	}

	if err := s.bookings.Save(ctx, booking); err != nil {
		s.releaseKeys(ctx, acquired)
		return nil, fmt.Errorf("save booking: %w", err)
	}

	log.Printf("booking %s created: user=%s show=%s seats=%d amount=%.2f", booking.ID, userID, showID, len(seatIDs), amount)
	return booking, nil
}

func (s *BookingService) releaseKeys(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.locks.Release(ctx, key); err != nil {
			log.Printf("release lock %s: %v", key, err)
		}
	}
}

// ConfirmBooking re-validates that every seat lock is still live and owned
// by the booking's user, charges the selected payment gateway and, on
// success, releases the locks and marks the booking CONFIRMED. A failed
// payment leaves the booking CREATED with its locks running out their TTL.
func (s *BookingService) ConfirmBooking(ctx context.Context, bookingID uuid.UUID, paymentType domain.PaymentType) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingCreated {
		return nil, fmt.Errorf("booking %s is %s: %w", booking.ID, booking.Status, domain.ErrInvalidBookingState)
	}

	for _, seatID := range booking.SeatIDs {
		key := reservationKey(booking.ShowID, seatID)
		expired, err := s.locks.IsExpired(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("check lock for seat %s: %w", seatID, err)
		}
		owned, err := s.locks.IsOwnedBy(ctx, key, booking.UserID)
		if err != nil {
			return nil, fmt.Errorf("check lock for seat %s: %w", seatID, err)
		}
		if expired || !owned {
			s.markExpired(ctx, booking)
			return nil, &domain.SeatUnavailableError{SeatID: seatID}
		}
	}

	gateway, err := s.payments.Select(paymentType)
	if err != nil {
		return nil, err
	}

	booking.PaymentType = paymentType
	if err := gateway.Pay(ctx, booking); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}

	for _, seatID := range booking.SeatIDs {
		if err := s.locks.Release(ctx, reservationKey(booking.ShowID, seatID)); err != nil {
			log.Printf("release lock for seat %s after payment: %v", seatID, err)
		}
	}

	now := time.Now()
	booking.Status = domain.BookingConfirmed
	booking.ConfirmedAt = &now
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	log.Printf("booking %s confirmed: user=%s amount=%.2f via %s", booking.ID, booking.UserID, booking.Amount, paymentType)
	return booking, nil
}

// SeatAvailability pairs every seat of a show with whether a live lock is
// currently held on it. Availability is purely a function of lock state.
type SeatAvailability struct {
	Seat      domain.Seat
	Available bool
}

func (s *BookingService) SeatAvailability(ctx context.Context, showID string) ([]SeatAvailability, error) {
	seats, err := s.catalog.ShowSeats(ctx, showID)
	if err != nil {
		return nil, err
	}

	out := make([]SeatAvailability, 0, len(seats))
	for _, seat := range seats {
		held, err := s.locks.IsHeld(ctx, reservationKey(showID, seat.ID))
		if err != nil {
			return nil, fmt.Errorf("check lock for seat %s: %w", seat.ID, err)
		}
		out = append(out, SeatAvailability{Seat: seat, Available: !held})
	}
	return out, nil
}

// RunExpiryJanitor periodically correlates CREATED bookings against lock
// state and marks the ones whose grace period lapsed as EXPIRED. Lazy checks
// on the confirm path already make late confirmations fail; this pass only
// keeps booking records from lingering in CREATED forever.
func (s *BookingService) RunExpiryJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("expiry janitor started: checking created bookings every %s", interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("expiry janitor stopped")
			return
		case <-ticker.C:
			s.expireOrphanedBookings(ctx)
		}
	}
}

func (s *BookingService) expireOrphanedBookings(ctx context.Context) {
	created, err := s.bookings.ListByStatus(ctx, domain.BookingCreated)
	if err != nil {
		log.Printf("list created bookings: %v", err)
		return
	}

	for _, booking := range created {
		if s.holdsAllLocks(ctx, booking) {
			continue
		}
		s.markExpired(ctx, booking)
	}
}

func (s *BookingService) holdsAllLocks(ctx context.Context, booking *domain.Booking) bool {
	for _, seatID := range booking.SeatIDs {
		key := reservationKey(booking.ShowID, seatID)
		expired, err := s.locks.IsExpired(ctx, key)
		if err != nil {
			return false
		}
		owned, err := s.locks.IsOwnedBy(ctx, key, booking.UserID)
		if err != nil {
			return false
		}
		if expired || !owned {
			return false
		}
	}
	return true
}

func (s *BookingService) markExpired(ctx context.Context, booking *domain.Booking) {
	booking.Status = domain.BookingExpired
	if err := s.bookings.Update(ctx, booking); err != nil {
		log.Printf("mark booking %s expired: %v", booking.ID, err)
		return
	}
	log.Printf("booking %s expired: seats returned to the pool", booking.ID)
}
