package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/showseat/show_booking/internal/core/domain"
)

// Catalog is the in-memory show/theatre/movie store. It is plain key-value
// CRUD: seat availability is never recorded here, the lock store owns that.
type Catalog struct {
	mu       sync.RWMutex
	theatres map[string]*domain.Theatre
	movies   map[string]domain.Movie
	shows    map[string]domain.Show
}

func NewCatalog() *Catalog {
	return &Catalog{
		theatres: make(map[string]*domain.Theatre),
		movies:   make(map[string]domain.Movie),
		shows:    make(map[string]domain.Show),
	}
}

func (c *Catalog) SaveTheatre(ctx context.Context, theatre *domain.Theatre) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.theatres[theatre.ID]; exists {
		return fmt.Errorf("theatre %s already exists", theatre.ID)
	}
	t := *theatre
	t.Screens = append([]domain.Screen(nil), theatre.Screens...)
	c.theatres[theatre.ID] = &t
	return nil
}

func (c *Catalog) GetTheatre(ctx context.Context, id string) (*domain.Theatre, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.theatres[id]
	if !ok {
		return nil, fmt.Errorf("theatre %s: %w", id, domain.ErrNotFound)
	}
	out := *t
	out.Screens = make([]domain.Screen, len(t.Screens))
	for i, screen := range t.Screens {
		out.Screens[i] = screen
		out.Screens[i].Seats = append([]domain.Seat(nil), screen.Seats...)
	}
	return &out, nil
}

func (c *Catalog) AddScreen(ctx context.Context, theatreID string, screen domain.Screen) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.theatres[theatreID]
	if !ok {
		return fmt.Errorf("theatre %s: %w", theatreID, domain.ErrNotFound)
	}
	for _, s := range t.Screens {
		if s.ID == screen.ID {
			return fmt.Errorf("screen %s already exists in theatre %s", screen.ID, theatreID)
		}
	}
	screen.Seats = append([]domain.Seat(nil), screen.Seats...)
	t.Screens = append(t.Screens, screen)
	return nil
}

func (c *Catalog) AddSeat(ctx context.Context, theatreID, screenID string, seat domain.Seat) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.theatres[theatreID]
	if !ok {
		return fmt.Errorf("theatre %s: %w", theatreID, domain.ErrNotFound)
	}
	for i := range t.Screens {
		if t.Screens[i].ID != screenID {
			continue
		}
		for _, existing := range t.Screens[i].Seats {
			if existing.ID == seat.ID {
				return fmt.Errorf("seat %s already exists on screen %s", seat.ID, screenID)
			}
		}
		t.Screens[i].Seats = append(t.Screens[i].Seats, seat)
		return nil
	}
	return fmt.Errorf("screen %s: %w", screenID, domain.ErrNotFound)
}

func (c *Catalog) SaveMovie(ctx context.Context, movie *domain.Movie) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.movies[movie.ID]; exists {
		return fmt.Errorf("movie %s already exists", movie.ID)
	}
	c.movies[movie.ID] = *movie
	return nil
}

func (c *Catalog) GetMovie(ctx context.Context, id string) (*domain.Movie, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m, ok := c.movies[id]
	if !ok {
		return nil, fmt.Errorf("movie %s: %w", id, domain.ErrNotFound)
	}
	return &m, nil
}

func (c *Catalog) MoviesByTitle(ctx context.Context, title string) ([]domain.Movie, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []domain.Movie
	for _, m := range c.movies {
		if strings.EqualFold(m.Title, title) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (c *Catalog) SaveShow(ctx context.Context, show *domain.Show) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.shows[show.ID]; exists {
		return fmt.Errorf("show %s already exists", show.ID)
	}
	c.shows[show.ID] = *show
	return nil
}

func (c *Catalog) GetShow(ctx context.Context, showID string) (*domain.Show, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.shows[showID]
	if !ok {
		return nil, fmt.Errorf("show %s: %w", showID, domain.ErrNotFound)
	}
	return &s, nil
}

func (c *Catalog) ShowsByMovie(ctx context.Context, movieID string) ([]domain.Show, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []domain.Show
	for _, s := range c.shows {
		if s.MovieID == movieID {
			out = append(out, s)
		}
	}
	return out, nil
}

// ShowSeats resolves the seat list of a show through its theatre screen.
func (c *Catalog) ShowSeats(ctx context.Context, showID string) ([]domain.Seat, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	show, ok := c.shows[showID]
	if !ok {
		return nil, fmt.Errorf("show %s: %w", showID, domain.ErrNotFound)
	}
	t, ok := c.theatres[show.TheatreID]
	if !ok {
		return nil, fmt.Errorf("theatre %s: %w", show.TheatreID, domain.ErrNotFound)
	}
	for _, screen := range t.Screens {
		if screen.ID == show.ScreenID {
			return append([]domain.Seat(nil), screen.Seats...), nil
		}
	}
	return nil, fmt.Errorf("screen %s: %w", show.ScreenID, domain.ErrNotFound)
}
