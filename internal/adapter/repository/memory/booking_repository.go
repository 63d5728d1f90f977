package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/showseat/show_booking/internal/core/domain"
)

type BookingRepository struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]domain.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{bookings: make(map[uuid.UUID]domain.Booking)}
}

// Save and GetByID copy the record both ways so callers never share mutable
// state with the repository.
func (r *BookingRepository) Save(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[booking.ID]; exists {
		return fmt.Errorf("booking %s already exists", booking.ID)
	}
	r.bookings[booking.ID] = copyBooking(booking)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
	}
	out := copyBooking(&b)
	return &out, nil
}

func (r *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.ID]; !ok {
		return fmt.Errorf("booking %s: %w", booking.ID, domain.ErrNotFound)
	}
	r.bookings[booking.ID] = copyBooking(booking)
	return nil
}

func (r *BookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.Status != status {
			continue
		}
		c := copyBooking(&b)
		out = append(out, &c)
	}
	return out, nil
}

func copyBooking(b *domain.Booking) domain.Booking {
	c := *b
	c.SeatIDs = append([]string(nil), b.SeatIDs...)
	if b.ConfirmedAt != nil {
		at := *b.ConfirmedAt
		c.ConfirmedAt = &at
	}
	return c
}
