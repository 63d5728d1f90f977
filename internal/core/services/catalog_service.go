package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/showseat/show_booking/internal/core/domain"
	"github.com/showseat/show_booking/internal/core/ports"
)

// CatalogService manages theatres, movies and shows. Plain CRUD over the
// catalog repository; it never touches lock or booking state.
type CatalogService struct {
	repo ports.CatalogRepository
}

func NewCatalogService(repo ports.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) CreateTheatre(ctx context.Context, id, name string) (*domain.Theatre, error) {
	if id == "" || name == "" {
		return nil, errors.New("theatre id and name are required")
	}
	theatre := &domain.Theatre{ID: id, Name: name}
	if err := s.repo.SaveTheatre(ctx, theatre); err != nil {
		return nil, err
	}
	return theatre, nil
}

func (s *CatalogService) AddScreen(ctx context.Context, theatreID, screenID string) error {
	if screenID == "" {
		return errors.New("screen id is required")
	}
	return s.repo.AddScreen(ctx, theatreID, domain.Screen{ID: screenID})
}

func (s *CatalogService) AddSeat(ctx context.Context, theatreID, screenID string, seat domain.Seat) error {
	if seat.ID == "" {
		return errors.New("seat id is required")
	}
	if !seat.Type.IsValid() {
		return fmt.Errorf("unknown seat type %q", seat.Type)
	}
	if seat.Price <= 0 {
		return errors.New("seat price must be positive")
	}
	return s.repo.AddSeat(ctx, theatreID, screenID, seat)
}

func (s *CatalogService) CreateMovie(ctx context.Context, id, title string, durationMin int) (*domain.Movie, error) {
	if id == "" || title == "" {
		return nil, errors.New("movie id and title are required")
	}
	movie := &domain.Movie{ID: id, Title: title, DurationMin: durationMin}
	if err := s.repo.SaveMovie(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// ScheduleShow validates that the movie, theatre and screen all exist before
// recording the show.
func (s *CatalogService) ScheduleShow(ctx context.Context, id, movieID, theatreID, screenID string, startsAt, endsAt time.Time) (*domain.Show, error) {
	if id == "" {
		return nil, errors.New("show id is required")
	}
	if _, err := s.repo.GetMovie(ctx, movieID); err != nil {
		return nil, err
	}
	theatre, err := s.repo.GetTheatre(ctx, theatreID)
	if err != nil {
		return nil, err
	}
	found := false
	for _, screen := range theatre.Screens {
		if screen.ID == screenID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("screen %s: %w", screenID, domain.ErrNotFound)
	}

	show := &domain.Show{
		ID:        id,
		MovieID:   movieID,
		TheatreID: theatreID,
		ScreenID:  screenID,
		StartsAt:  startsAt,
		EndsAt:    endsAt,
	}
	if err := s.repo.SaveShow(ctx, show); err != nil {
		return nil, err
	}
	return show, nil
}

func (s *CatalogService) ShowsByMovieTitle(ctx context.Context, title string) ([]domain.Show, error) {
	movies, err := s.repo.MoviesByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	var out []domain.Show
	for _, movie := range movies {
		shows, err := s.repo.ShowsByMovie(ctx, movie.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, shows...)
	}
	return out, nil
}
