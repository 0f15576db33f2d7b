package repository

import (
	"context"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ShowFilter narrows catalog queries. Zero values mean "no filter". Date
// matches the calendar day of the show's start time.
type ShowFilter struct {
	City    string
	Theatre string
	Movie   string
	Date    *time.Time
}

// ShowRepository holds the catalog metadata a show was registered with.
// Capacity is not here; the ledger owns it.
type ShowRepository interface {
	Create(ctx context.Context, show *entity.Show) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Show, error)
	FindByFilter(ctx context.Context, filter ShowFilter) ([]*entity.Show, error)
}

type showRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowRepository(db database.PgxIface, log *zap.Logger) ShowRepository {
	return &showRepository{
		db:  db,
		log: log.With(zap.String("repository", "show")),
	}
}

func (r *showRepository) Create(ctx context.Context, show *entity.Show) error {
	query := `
		INSERT INTO shows (id, movie_title, theatre_name, city_name, starts_at, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		show.ID,
		show.MovieTitle,
		show.TheatreName,
		show.CityName,
		show.StartsAt,
		show.Price,
		show.CreatedAt,
		show.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create show",
			zap.Error(err),
			zap.String("show_id", show.ID.String()),
			zap.String("movie_title", show.MovieTitle),
		)
		return fmt.Errorf("create show %s: %w: %w", show.ID.String(), ErrStoreUnavailable, err)
	}

	return nil
}

func (r *showRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Show, error) {
	query := `
		SELECT id, movie_title, theatre_name, city_name, starts_at, price, created_at, updated_at
		FROM shows
		WHERE id = $1
	`

	var show entity.Show
	err := r.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.MovieTitle,
		&show.TheatreName,
		&show.CityName,
		&show.StartsAt,
		&show.Price,
		&show.CreatedAt,
		&show.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("show %s: %w", id.String(), ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to find show by ID",
			zap.Error(err),
			zap.String("show_id", id.String()),
		)
		return nil, fmt.Errorf("find show by ID %s: %w: %w", id.String(), ErrStoreUnavailable, err)
	}

	return &show, nil
}

// FindByFilter joins the ledger so a show without a capacity row is never
// returned, even if its registration was interrupted halfway.
func (r *showRepository) FindByFilter(ctx context.Context, filter ShowFilter) ([]*entity.Show, error) {
	query := `
		SELECT s.id, s.movie_title, s.theatre_name, s.city_name, s.starts_at, s.price, s.created_at, s.updated_at
		FROM shows s
		JOIN show_capacity sc ON sc.show_id = s.id
		WHERE 1 = 1
	`

	var args []any
	if filter.City != "" {
		args = append(args, filter.City)
		query += fmt.Sprintf(" AND s.city_name = $%d", len(args))
	}
	if filter.Theatre != "" {
		args = append(args, filter.Theatre)
		query += fmt.Sprintf(" AND s.theatre_name = $%d", len(args))
	}
	if filter.Movie != "" {
		args = append(args, filter.Movie)
		query += fmt.Sprintf(" AND s.movie_title = $%d", len(args))
	}
	if filter.Date != nil {
		start := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, filter.Date.Location())
		args = append(args, start)
		query += fmt.Sprintf(" AND s.starts_at >= $%d", len(args))
		args = append(args, start.AddDate(0, 0, 1))
		query += fmt.Sprintf(" AND s.starts_at < $%d", len(args))
	}
	query += " ORDER BY s.starts_at"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find shows by filter", zap.Error(err))
		return nil, fmt.Errorf("find shows by filter: %w: %w", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var shows []*entity.Show
	for rows.Next() {
		var show entity.Show
		err := rows.Scan(
			&show.ID,
			&show.MovieTitle,
			&show.TheatreName,
			&show.CityName,
			&show.StartsAt,
			&show.Price,
			&show.CreatedAt,
			&show.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan show row: %w", err)
		}
		shows = append(shows, &show)
	}

	return shows, nil
}
