package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func seedShow(t *testing.T, repo *repository.Repository, movie, theatre, city string, startsAt time.Time, seats int) uuid.UUID {
	t.Helper()

	show := &entity.Show{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MovieTitle:  movie,
		TheatreName: theatre,
		CityName:    city,
		StartsAt:    startsAt,
		Price:       10,
	}
	if err := repo.Show.Create(context.Background(), show); err != nil {
		t.Fatalf("Create show failed: %v", err)
	}
	if seats > 0 {
		if err := repo.Ledger.Create(context.Background(), show.ID, seats); err != nil {
			t.Fatalf("Create ledger failed: %v", err)
		}
	}
	return show.ID
}

func TestSearchShowsFilters(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	svc := NewCatalogService(repo, nil, zap.NewNop())

	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	seedShow(t, repo, "Interstellar", "Grand Central", "Mumbai", day.Add(18*time.Hour), 50)
	seedShow(t, repo, "Interstellar", "Riverside", "Pune", day.Add(20*time.Hour), 40)
	seedShow(t, repo, "Dune", "Grand Central", "Mumbai", day.AddDate(0, 0, 1).Add(18*time.Hour), 30)

	byCity, err := svc.SearchShows(ctx, &request.ShowFilterRequest{City: "Mumbai"})
	if err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}
	if len(byCity) != 2 {
		t.Errorf("Mumbai shows = %d, want 2", len(byCity))
	}

	byMovie, err := svc.SearchShows(ctx, &request.ShowFilterRequest{Movie: "Dune"})
	if err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}
	if len(byMovie) != 1 || byMovie[0].MovieTitle != "Dune" {
		t.Errorf("Dune shows = %+v, want one Dune entry", byMovie)
	}

	byDate, err := svc.SearchShows(ctx, &request.ShowFilterRequest{Date: "2026-09-12"})
	if err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}
	if len(byDate) != 2 {
		t.Errorf("shows on 2026-09-12 = %d, want 2", len(byDate))
	}

	combined, err := svc.SearchShows(ctx, &request.ShowFilterRequest{City: "Mumbai", Movie: "Interstellar"})
	if err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}
	if len(combined) != 1 || combined[0].CityName != "Mumbai" {
		t.Errorf("combined filter = %+v, want one Mumbai Interstellar entry", combined)
	}
}

func TestSearchShowsReportsRemaining(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	svc := NewCatalogService(repo, nil, zap.NewNop())

	showID := seedShow(t, repo, "Interstellar", "Grand Central", "Mumbai", time.Now().Add(24*time.Hour), 20)
	if _, err := repo.Ledger.TryReserve(ctx, showID, 6); err != nil {
		t.Fatalf("TryReserve failed: %v", err)
	}

	shows, err := svc.SearchShows(ctx, &request.ShowFilterRequest{})
	if err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}
	if len(shows) != 1 {
		t.Fatalf("shows = %d, want 1", len(shows))
	}
	if shows[0].RemainingSeats != 14 {
		t.Errorf("remaining = %d, want 14", shows[0].RemainingSeats)
	}
}

// A show whose ledger entry was never created is half-registered and must
// stay invisible to visitors.
func TestSearchShowsSkipsShowsWithoutLedger(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	svc := NewCatalogService(repo, nil, zap.NewNop())

	seedShow(t, repo, "Interstellar", "Grand Central", "Mumbai", time.Now().Add(24*time.Hour), 20)
	seedShow(t, repo, "Dune", "Grand Central", "Mumbai", time.Now().Add(26*time.Hour), 0) // no ledger entry

	shows, err := svc.SearchShows(ctx, &request.ShowFilterRequest{})
	if err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}
	if len(shows) != 1 {
		t.Fatalf("shows = %d, want 1", len(shows))
	}
	if shows[0].MovieTitle != "Interstellar" {
		t.Errorf("got %q, want the fully registered show only", shows[0].MovieTitle)
	}
}

func TestSearchShowsRejectsBadDate(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := NewCatalogService(repo, nil, zap.NewNop())

	_, err := svc.SearchShows(context.Background(), &request.ShowFilterRequest{Date: "12-09-2026"})
	if !errors.Is(err, repository.ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestSearchShowsNoMatches(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := NewCatalogService(repo, nil, zap.NewNop())

	seedShow(t, repo, "Interstellar", "Grand Central", "Mumbai", time.Now().Add(24*time.Hour), 20)

	shows, err := svc.SearchShows(context.Background(), &request.ShowFilterRequest{City: "Chennai"})
	if err != nil {
		t.Fatalf("SearchShows failed: %v", err)
	}
	if len(shows) != 0 {
		t.Errorf("shows = %d, want 0", len(shows))
	}
}
