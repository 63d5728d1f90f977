package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/showseat/show_booking/internal/core/domain"
)

// LockStore is the single synchronization point for seat contention.
// TryAcquire must be a single atomic check-and-set: it grants the lock when
// the key is absent or its deadline has passed, and always stamps a fresh
// deadline of now+ttl. It never blocks and never retries.
//
// Expiry is checked lazily on every read; implementations may additionally
// sweep expired entries in the background to bound memory, but correctness
// must not depend on the sweeper ever running.
type LockStore interface {
	TryAcquire(ctx context.Context, key, owner string, ttl time.Duration) (bool, error)
	// Release removes the entry unconditionally. Ownership is not checked;
	// callers release only keys they believe they hold.
	Release(ctx context.Context, key string) error
	// IsHeld reports whether a live (unexpired) entry exists for key.
	IsHeld(ctx context.Context, key string) (bool, error)
	// IsExpired reports whether an entry exists and its deadline has passed.
	// An absent key is not expired: absent means available, expired means
	// held-by-someone-but-stale.
	IsExpired(ctx context.Context, key string) (bool, error)
	// IsOwnedBy reports whether an entry exists with the given owner,
	// regardless of expiry. Owner identity persists after the deadline until
	// the entry is released or swept.
	IsOwnedBy(ctx context.Context, key, owner string) (bool, error)
}

type BookingRepository interface {
	Save(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error)
}

// ShowCatalog is the read side of the catalog consumed by the booking flow.
type ShowCatalog interface {
	GetShow(ctx context.Context, showID string) (*domain.Show, error)
	ShowSeats(ctx context.Context, showID string) ([]domain.Seat, error)
}

type CatalogRepository interface {
	ShowCatalog

	SaveTheatre(ctx context.Context, theatre *domain.Theatre) error
	GetTheatre(ctx context.Context, id string) (*domain.Theatre, error)
	AddScreen(ctx context.Context, theatreID string, screen domain.Screen) error
	AddSeat(ctx context.Context, theatreID, screenID string, seat domain.Seat) error

	SaveMovie(ctx context.Context, movie *domain.Movie) error
	GetMovie(ctx context.Context, id string) (*domain.Movie, error)
	MoviesByTitle(ctx context.Context, title string) ([]domain.Movie, error)

	SaveShow(ctx context.Context, show *domain.Show) error
	ShowsByMovie(ctx context.Context, movieID string) ([]domain.Show, error)
}

type PaymentGateway interface {
	Pay(ctx context.Context, booking *domain.Booking) error
}

type PaymentSelector interface {
	Select(paymentType domain.PaymentType) (PaymentGateway, error)
}
