package usecase

import (
	"context"
	"fmt"

	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HistoryService is the read path over the booking record store. Bookings
// carry their own display snapshot, so no catalog joins happen here.
type HistoryService interface {
	GetRequesterBookings(ctx context.Context, requesterID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)

	// Admin read paths.
	GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetShowBookings(ctx context.Context, showID string) ([]response.BookingResponse, error)
}

type historyService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHistoryService(repo *repository.Repository, log *zap.Logger) HistoryService {
	return &historyService{
		repo: repo,
		log:  log.With(zap.String("service", "history")),
	}
}

func (s *historyService) GetRequesterBookings(ctx context.Context, requesterID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	requesterUUID, err := uuid.Parse(requesterID)
	if err != nil {
		return nil, fmt.Errorf("requester ID %s: %w", requesterID, repository.ErrInvalidArgument)
	}

	bookings, err := s.repo.Booking.FindByRequesterID(ctx, requesterUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get requester bookings",
			zap.Error(err),
			zap.String("requester_id", requesterID),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get requester bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByRequesterID(ctx, requesterUUID)
	if err != nil {
		s.log.Error("Failed to count requester bookings", zap.Error(err))
		return nil, fmt.Errorf("count requester bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	s.log.Info("Requester bookings retrieved",
		zap.String("requester_id", requesterID),
		zap.Int("count", len(bookings)),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *historyService) GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get all bookings", zap.Error(err))
		return nil, fmt.Errorf("get all bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count all bookings", zap.Error(err))
		return nil, fmt.Errorf("count all bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *historyService) GetShowBookings(ctx context.Context, showID string) ([]response.BookingResponse, error) {
	id, err := uuid.Parse(showID)
	if err != nil {
		return nil, fmt.Errorf("show ID %s: %w", showID, repository.ErrInvalidArgument)
	}

	bookings, err := s.repo.Booking.FindByShowID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get show bookings",
			zap.Error(err),
			zap.String("show_id", showID),
		)
		return nil, fmt.Errorf("get show bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return bookingResponses, nil
}
