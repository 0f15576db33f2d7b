package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-booking/internal/data/cache"
	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReservationService owns the booking path: it is the only writer of the
// capacity ledger and the booking record store, and the two writes form one
// all-or-nothing unit from the caller's point of view.
type ReservationService interface {
	// RegisterShow creates the catalog row and the ledger row for a new
	// show. Must be called before any Book references the show.
	RegisterShow(ctx context.Context, req *request.RegisterShowRequest) (*response.ShowResponse, error)

	// Book reserves seatCount seats on a show for a requester and returns
	// the recorded booking. On any error the ledger holds its pre-call
	// value, except for repository.ErrFatalInconsistency.
	Book(ctx context.Context, requesterID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// RemainingSeats is the display read; it may briefly over-report while
	// bookings are in flight.
	RemainingSeats(ctx context.Context, showID string) (*response.AvailabilityResponse, error)
}

type reservationService struct {
	repo  *repository.Repository
	hints *cache.AvailabilityCache // nil when Redis is disabled
	log   *zap.Logger
}

func NewReservationService(repo *repository.Repository, hints *cache.AvailabilityCache, log *zap.Logger) ReservationService {
	return &reservationService{
		repo:  repo,
		hints: hints,
		log:   log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) RegisterShow(ctx context.Context, req *request.RegisterShowRequest) (*response.ShowResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register show validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", repository.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return nil, fmt.Errorf("starts_at %s: %w", req.StartsAt, repository.ErrInvalidArgument)
	}

	now := time.Now()
	show := &entity.Show{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieTitle:  req.MovieTitle,
		TheatreName: req.TheatreName,
		CityName:    req.CityName,
		StartsAt:    startsAt,
		Price:       req.Price,
	}

	// Metadata first, ledger second. A failure between the two leaves a
	// metadata row without a ledger entry, which the catalog facade never
	// serves and Book rejects with NotFound.
	if err := s.repo.Show.Create(ctx, show); err != nil {
		s.log.Error("Failed to create show metadata",
			zap.Error(err),
			zap.String("movie_title", req.MovieTitle),
		)
		return nil, fmt.Errorf("register show: %w", err)
	}

	if err := s.repo.Ledger.Create(ctx, show.ID, req.TotalSeats); err != nil {
		s.log.Error("Failed to create capacity ledger entry",
			zap.Error(err),
			zap.String("show_id", show.ID.String()),
			zap.Int("total_seats", req.TotalSeats),
		)
		return nil, fmt.Errorf("register show capacity: %w", err)
	}

	if s.hints != nil {
		s.hints.SetRemaining(ctx, show.ID, req.TotalSeats)
	}

	s.log.Info("Show registered",
		zap.String("show_id", show.ID.String()),
		zap.String("movie_title", show.MovieTitle),
		zap.String("city_name", show.CityName),
		zap.Int("total_seats", req.TotalSeats),
	)

	resp := response.ShowToResponse(show, req.TotalSeats)
	return &resp, nil
}

func (s *reservationService) Book(ctx context.Context, requesterID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", repository.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	requesterUUID, err := uuid.Parse(requesterID)
	if err != nil {
		return nil, fmt.Errorf("requester ID %s: %w", requesterID, repository.ErrInvalidArgument)
	}

	showID, err := uuid.Parse(req.ShowID)
	if err != nil {
		return nil, fmt.Errorf("show ID %s: %w", req.ShowID, repository.ErrInvalidArgument)
	}

	// Snapshot the display metadata before touching the ledger; a missing
	// show terminates the attempt with no side effects.
	show, err := s.repo.Show.FindByID(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("book show: %w", err)
	}

	// A caller abandoning the request must not abort the attempt between
	// the decrement and its compensation; the saga runs to a terminal
	// state regardless.
	sagaCtx := context.WithoutCancel(ctx)

	remaining, err := s.repo.Ledger.TryReserve(sagaCtx, showID, req.SeatCount)
	if err != nil {
		return nil, fmt.Errorf("reserve capacity: %w", err)
	}

	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		OrderRef:     utils.GenerateOrderRef(),
		RequesterID:  requesterUUID,
		ShowID:       showID,
		SeatCount:    req.SeatCount,
		MovieTitle:   show.MovieTitle,
		TheatreName:  show.TheatreName,
		CityName:     show.CityName,
		ShowStartsAt: show.StartsAt,
		UnitPrice:    show.Price,
	}

	if err := s.repo.Booking.Append(sagaCtx, booking); err != nil {
		return nil, s.compensate(sagaCtx, showID, req.SeatCount, err)
	}

	if s.hints != nil {
		s.hints.SetRemaining(sagaCtx, showID, remaining)
	}

	s.log.Info("Booking recorded",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_ref", booking.OrderRef),
		zap.String("requester_id", requesterID),
		zap.String("show_id", req.ShowID),
		zap.Int("seat_count", req.SeatCount),
		zap.Int("remaining_seats", remaining),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// compensate restores the reserved capacity after a failed append. The
// append error is surfaced only once the release has completed, so a retry
// of the whole Book call cannot oversell. A failed release is the one case
// where ledger state and booking records disagree.
func (s *reservationService) compensate(ctx context.Context, showID uuid.UUID, seatCount int, appendErr error) error {
	remaining, releaseErr := s.repo.Ledger.Release(ctx, showID, seatCount)
	if releaseErr != nil {
		s.log.Error("Compensating release failed, remaining capacity is under-reported",
			zap.Error(releaseErr),
			zap.NamedError("append_error", appendErr),
			zap.String("show_id", showID.String()),
			zap.Int("seat_count", seatCount),
		)
		return fmt.Errorf("release %d seats for show %s after failed append: %w: %w",
			seatCount, showID.String(), repository.ErrFatalInconsistency, releaseErr)
	}

	if s.hints != nil {
		s.hints.SetRemaining(ctx, showID, remaining)
	}

	s.log.Warn("Booking rolled back after failed append",
		zap.Error(appendErr),
		zap.String("show_id", showID.String()),
		zap.Int("seat_count", seatCount),
		zap.Int("remaining_seats", remaining),
	)
	return fmt.Errorf("record booking: %w", appendErr)
}

func (s *reservationService) RemainingSeats(ctx context.Context, showID string) (*response.AvailabilityResponse, error) {
	id, err := uuid.Parse(showID)
	if err != nil {
		return nil, fmt.Errorf("show ID %s: %w", showID, repository.ErrInvalidArgument)
	}

	if s.hints != nil {
		if remaining, ok := s.hints.GetRemaining(ctx, id); ok {
			return &response.AvailabilityResponse{ShowID: showID, RemainingSeats: remaining}, nil
		}
	}

	remaining, err := s.repo.Ledger.RemainingOf(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("remaining seats: %w", err)
	}

	if s.hints != nil {
		s.hints.SetRemaining(ctx, id, remaining)
	}

	return &response.AvailabilityResponse{ShowID: showID, RemainingSeats: remaining}, nil
}
