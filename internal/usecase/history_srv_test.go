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

func seedBooking(t *testing.T, repo *repository.Repository, requesterID, showID uuid.UUID, seats int, createdAt time.Time) *entity.Booking {
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
	if err := repo.Booking.Append(context.Background(), booking); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	return booking
}

func TestGetRequesterBookings(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	svc := NewHistoryService(repo, zap.NewNop())
	requester := uuid.New()
	show := uuid.New()

	base := time.Now()
	older := seedBooking(t, repo, requester, show, 2, base)
	newer := seedBooking(t, repo, requester, show, 3, base.Add(time.Minute))
	seedBooking(t, repo, uuid.New(), show, 1, base.Add(2*time.Minute)) // other requester

	page, err := svc.GetRequesterBookings(ctx, requester.String(), &request.PaginatedRequest{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("GetRequesterBookings failed: %v", err)
	}

	if page.Pagination.Total != 2 {
		t.Errorf("total = %d, want 2", page.Pagination.Total)
	}
	if len(page.Data) != 2 {
		t.Fatalf("data = %d entries, want 2", len(page.Data))
	}
	if page.Data[0].ID != newer.ID.String() || page.Data[1].ID != older.ID.String() {
		t.Errorf("bookings not ordered newest first")
	}
	if page.Data[0].TotalPrice != 37.5 {
		t.Errorf("total price = %v, want 37.5", page.Data[0].TotalPrice)
	}
}

func TestGetRequesterBookingsPagination(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	svc := NewHistoryService(repo, zap.NewNop())
	requester := uuid.New()
	show := uuid.New()

	base := time.Now()
	for i := 0; i < 5; i++ {
		seedBooking(t, repo, requester, show, 1, base.Add(time.Duration(i)*time.Second))
	}

	page2, err := svc.GetRequesterBookings(ctx, requester.String(), &request.PaginatedRequest{Page: 2, PerPage: 2})
	if err != nil {
		t.Fatalf("GetRequesterBookings failed: %v", err)
	}

	if len(page2.Data) != 2 {
		t.Errorf("page 2 size = %d, want 2", len(page2.Data))
	}
	if page2.Pagination.Total != 5 || page2.Pagination.TotalPages != 3 {
		t.Errorf("pagination meta = %+v, want total 5 over 3 pages", page2.Pagination)
	}
}

func TestGetRequesterBookingsEmpty(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := NewHistoryService(repo, zap.NewNop())

	page, err := svc.GetRequesterBookings(context.Background(), uuid.NewString(), &request.PaginatedRequest{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("GetRequesterBookings failed: %v", err)
	}
	if len(page.Data) != 0 || page.Pagination.Total != 0 {
		t.Errorf("empty history: got %d entries, total %d", len(page.Data), page.Pagination.Total)
	}
}

func TestGetRequesterBookingsBadID(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := NewHistoryService(repo, zap.NewNop())

	_, err := svc.GetRequesterBookings(context.Background(), "not-a-uuid", &request.PaginatedRequest{Page: 1, PerPage: 10})
	if !errors.Is(err, repository.ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestGetAllBookings(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	svc := NewHistoryService(repo, zap.NewNop())

	base := time.Now()
	seedBooking(t, repo, uuid.New(), uuid.New(), 2, base)
	seedBooking(t, repo, uuid.New(), uuid.New(), 1, base.Add(time.Second))
	seedBooking(t, repo, uuid.New(), uuid.New(), 4, base.Add(2*time.Second))

	page, err := svc.GetAllBookings(ctx, &request.PaginatedRequest{Page: 1, PerPage: 2})
	if err != nil {
		t.Fatalf("GetAllBookings failed: %v", err)
	}
	if len(page.Data) != 2 {
		t.Errorf("page size = %d, want 2", len(page.Data))
	}
	if page.Pagination.Total != 3 {
		t.Errorf("total = %d, want 3", page.Pagination.Total)
	}
}

func TestGetShowBookings(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	svc := NewHistoryService(repo, zap.NewNop())
	showA := uuid.New()
	showB := uuid.New()

	base := time.Now()
	seedBooking(t, repo, uuid.New(), showA, 2, base)
	seedBooking(t, repo, uuid.New(), showA, 3, base.Add(time.Second))
	seedBooking(t, repo, uuid.New(), showB, 1, base.Add(2*time.Second))

	bookings, err := svc.GetShowBookings(ctx, showA.String())
	if err != nil {
		t.Fatalf("GetShowBookings failed: %v", err)
	}
	if len(bookings) != 2 {
		t.Errorf("show bookings = %d, want 2", len(bookings))
	}

	if _, err := svc.GetShowBookings(ctx, "not-a-uuid"); !errors.Is(err, repository.ErrInvalidArgument) {
		t.Errorf("malformed id: got %v, want ErrInvalidArgument", err)
	}
}
