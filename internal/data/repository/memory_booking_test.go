package repository

import (
	"context"
	"testing"
	"time"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
)

func appendBooking(t *testing.T, repo BookingRepository, requesterID, showID uuid.UUID, seats int, createdAt time.Time) *entity.Booking {
	t.Helper()

	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: createdAt,
		},
		OrderRef:     "BOOK-TEST-" + uuid.NewString()[:8],
		RequesterID:  requesterID,
		ShowID:       showID,
		SeatCount:    seats,
		MovieTitle:   "Interstellar",
		TheatreName:  "Grand Central",
		CityName:     "Mumbai",
		ShowStartsAt: createdAt.Add(24 * time.Hour),
		UnitPrice:    12.5,
	}
	if err := repo.Append(context.Background(), booking); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	return booking
}

func TestFindByRequesterOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookingRepository()
	requester := uuid.New()
	show := uuid.New()

	base := time.Now()
	first := appendBooking(t, repo, requester, show, 2, base)
	second := appendBooking(t, repo, requester, show, 1, base.Add(time.Minute))
	appendBooking(t, repo, uuid.New(), show, 3, base.Add(2*time.Minute)) // other requester

	bookings, err := repo.FindByRequesterID(ctx, requester, 10, 0)
	if err != nil {
		t.Fatalf("FindByRequesterID failed: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("got %d bookings, want 2", len(bookings))
	}
	if bookings[0].ID != second.ID || bookings[1].ID != first.ID {
		t.Errorf("bookings not ordered newest first")
	}

	count, err := repo.CountByRequesterID(ctx, requester)
	if err != nil {
		t.Fatalf("CountByRequesterID failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestFindByRequesterPagination(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookingRepository()
	requester := uuid.New()
	show := uuid.New()

	base := time.Now()
	for i := 0; i < 5; i++ {
		appendBooking(t, repo, requester, show, 1, base.Add(time.Duration(i)*time.Second))
	}

	page1, err := repo.FindByRequesterID(ctx, requester, 2, 0)
	if err != nil {
		t.Fatalf("FindByRequesterID failed: %v", err)
	}
	page2, err := repo.FindByRequesterID(ctx, requester, 2, 2)
	if err != nil {
		t.Fatalf("FindByRequesterID failed: %v", err)
	}

	if len(page1) != 2 || len(page2) != 2 {
		t.Fatalf("page sizes = %d, %d, want 2, 2", len(page1), len(page2))
	}
	if !page1[0].CreatedAt.After(page2[0].CreatedAt) {
		t.Errorf("pages out of order")
	}
}

func TestFindByShowAndAll(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookingRepository()
	showA := uuid.New()
	showB := uuid.New()

	base := time.Now()
	appendBooking(t, repo, uuid.New(), showA, 2, base)
	appendBooking(t, repo, uuid.New(), showA, 4, base.Add(time.Second))
	appendBooking(t, repo, uuid.New(), showB, 1, base.Add(2*time.Second))

	byShow, err := repo.FindByShowID(ctx, showA)
	if err != nil {
		t.Fatalf("FindByShowID failed: %v", err)
	}
	if len(byShow) != 2 {
		t.Errorf("show A bookings = %d, want 2", len(byShow))
	}

	all, err := repo.FindAll(ctx, 10, 0)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all bookings = %d, want 3", len(all))
	}

	total, err := repo.CountAll(ctx)
	if err != nil {
		t.Fatalf("CountAll failed: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
}

// Repeated reads without writes in between must return identical results.
func TestListingsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookingRepository()
	requester := uuid.New()
	show := uuid.New()

	base := time.Now()
	appendBooking(t, repo, requester, show, 2, base)
	appendBooking(t, repo, requester, show, 3, base.Add(time.Second))

	first, err := repo.FindByRequesterID(ctx, requester, 10, 0)
	if err != nil {
		t.Fatalf("FindByRequesterID failed: %v", err)
	}
	second, err := repo.FindByRequesterID(ctx, requester, 10, 0)
	if err != nil {
		t.Fatalf("FindByRequesterID failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("result sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("result order differs at index %d", i)
		}
	}
}
