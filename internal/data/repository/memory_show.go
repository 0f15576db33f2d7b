package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
)

// MemoryShowRepository is an in-process ShowRepository.
type MemoryShowRepository struct {
	mu    sync.RWMutex
	shows map[uuid.UUID]entity.Show
}

func NewMemoryShowRepository() *MemoryShowRepository {
	return &MemoryShowRepository{
		shows: make(map[uuid.UUID]entity.Show),
	}
}

var _ ShowRepository = (*MemoryShowRepository)(nil)

func (r *MemoryShowRepository) Create(ctx context.Context, show *entity.Show) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.shows[show.ID]; ok {
		return fmt.Errorf("show %s: %w", show.ID.String(), ErrAlreadyExists)
	}
	r.shows[show.ID] = *show
	return nil
}

func (r *MemoryShowRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Show, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	show, ok := r.shows[id]
	if !ok {
		return nil, fmt.Errorf("show %s: %w", id.String(), ErrNotFound)
	}
	return &show, nil
}

func (r *MemoryShowRepository) FindByFilter(ctx context.Context, filter ShowFilter) ([]*entity.Show, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var shows []*entity.Show
	for _, show := range r.shows {
		if filter.City != "" && show.CityName != filter.City {
			continue
		}
		if filter.Theatre != "" && show.TheatreName != filter.Theatre {
			continue
		}
		if filter.Movie != "" && show.MovieTitle != filter.Movie {
			continue
		}
		if filter.Date != nil {
			y1, m1, d1 := filter.Date.Date()
			y2, m2, d2 := show.StartsAt.Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
		}
		s := show
		shows = append(shows, &s)
	}

	sort.Slice(shows, func(i, j int) bool {
		return shows[i].StartsAt.Before(shows[j].StartsAt)
	})
	return shows, nil
}
