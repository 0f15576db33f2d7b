package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-booking/internal/data/cache"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService resolves a visitor's filter criteria into the shows to
// present. Read-only; show metadata is registered through the reservation
// service.
type CatalogService interface {
	SearchShows(ctx context.Context, req *request.ShowFilterRequest) ([]response.ShowResponse, error)
}

type catalogService struct {
	repo  *repository.Repository
	hints *cache.AvailabilityCache
	log   *zap.Logger
}

func NewCatalogService(repo *repository.Repository, hints *cache.AvailabilityCache, log *zap.Logger) CatalogService {
	return &catalogService{
		repo:  repo,
		hints: hints,
		log:   log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) SearchShows(ctx context.Context, req *request.ShowFilterRequest) ([]response.ShowResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", repository.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	filter := repository.ShowFilter{
		City:    req.City,
		Theatre: req.Theatre,
		Movie:   req.Movie,
		Date:    utils.ParseDate(req.Date),
	}

	shows, err := s.repo.Show.FindByFilter(ctx, filter)
	if err != nil {
		s.log.Error("Failed to search shows", zap.Error(err))
		return nil, fmt.Errorf("search shows: %w", err)
	}

	results := make([]response.ShowResponse, 0, len(shows))
	for _, show := range shows {
		remaining, err := s.remainingHint(ctx, show.ID)
		if errors.Is(err, repository.ErrNotFound) {
			// No ledger entry means registration never completed; the
			// show must not be served.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("search shows: %w", err)
		}
		results = append(results, response.ShowToResponse(show, remaining))
	}

	s.log.Info("Shows searched",
		zap.Int("count", len(results)),
		zap.String("city", req.City),
		zap.String("theatre", req.Theatre),
		zap.String("movie", req.Movie),
		zap.String("date", req.Date),
	)

	return results, nil
}

func (s *catalogService) remainingHint(ctx context.Context, showID uuid.UUID) (int, error) {
	if s.hints != nil {
		if remaining, ok := s.hints.GetRemaining(ctx, showID); ok {
			return remaining, nil
		}
	}
	return s.repo.Ledger.RemainingOf(ctx, showID)
}
