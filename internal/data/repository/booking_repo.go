package repository

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingRepository is the append-only record of confirmed bookings. Rows are
// never updated or deleted; appends for the same show are independent and
// carry no cross-booking invariant (the ledger enforces capacity).
type BookingRepository interface {
	Append(ctx context.Context, booking *entity.Booking) error
	FindByRequesterID(ctx context.Context, requesterID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByRequesterID(ctx context.Context, requesterID uuid.UUID) (int64, error)
	FindByShowID(ctx context.Context, showID uuid.UUID) ([]*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, order_ref, requester_id, show_id, seat_count,
	       movie_title, theatre_name, city_name, show_starts_at, unit_price, created_at`

func (r *bookingRepository) Append(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, order_ref, requester_id, show_id, seat_count,
		                      movie_title, theatre_name, city_name, show_starts_at, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.OrderRef,
		booking.RequesterID,
		booking.ShowID,
		booking.SeatCount,
		booking.MovieTitle,
		booking.TheatreName,
		booking.CityName,
		booking.ShowStartsAt,
		booking.UnitPrice,
		booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to append booking",
			zap.Error(err),
			zap.String("order_ref", booking.OrderRef),
			zap.String("requester_id", booking.RequesterID.String()),
		)
		return fmt.Errorf("append booking %s: %w: %w", booking.OrderRef, ErrStoreUnavailable, err)
	}

	return nil
}

func (r *bookingRepository) FindByRequesterID(ctx context.Context, requesterID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE requester_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, requesterID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by requester ID",
			zap.Error(err),
			zap.String("requester_id", requesterID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by requester %s: %w: %w", requesterID.String(), ErrStoreUnavailable, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) CountByRequesterID(ctx context.Context, requesterID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE requester_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, requesterID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by requester ID",
			zap.Error(err),
			zap.String("requester_id", requesterID.String()),
		)
		return 0, fmt.Errorf("count bookings by requester %s: %w: %w", requesterID.String(), ErrStoreUnavailable, err)
	}

	return count, nil
}

func (r *bookingRepository) FindByShowID(ctx context.Context, showID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE show_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, showID)
	if err != nil {
		r.log.Error("Failed to find bookings by show ID",
			zap.Error(err),
			zap.String("show_id", showID.String()),
		)
		return nil, fmt.Errorf("find bookings by show %s: %w: %w", showID.String(), ErrStoreUnavailable, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all bookings: %w: %w", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w: %w", ErrStoreUnavailable, err)
	}

	return count, nil
}

func scanBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.OrderRef,
			&booking.RequesterID,
			&booking.ShowID,
			&booking.SeatCount,
			&booking.MovieTitle,
			&booking.TheatreName,
			&booking.CityName,
			&booking.ShowStartsAt,
			&booking.UnitPrice,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}
