package repository

import (
	"context"
	"fmt"

	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// CapacityLedger is the single owner of remaining-seat state. TryReserve and
// Release on the same show are serialized per row; calls on different shows
// never contend with each other.
type CapacityLedger interface {
	// Create registers a show with remaining = totalSeats. Fails with
	// ErrAlreadyExists if the id is taken, ErrInvalidArgument if
	// totalSeats < 1.
	Create(ctx context.Context, showID uuid.UUID, totalSeats int) error

	// TryReserve atomically decrements remaining by count and returns the
	// new remaining. Fails with ErrInvalidArgument (count < 1), ErrNotFound
	// (unknown show) or ErrInsufficientCapacity (remaining < count, state
	// unchanged). Two concurrent calls that would jointly overdraw the show
	// can never both succeed.
	TryReserve(ctx context.Context, showID uuid.UUID, count int) (int, error)

	// Release is the inverse of TryReserve, used as the compensation step
	// when recording a booking fails. The new remaining is capped at the
	// show's total. Returns the new remaining.
	Release(ctx context.Context, showID uuid.UUID, count int) (int, error)

	// RemainingOf is a point-in-time read for display purposes. The
	// authoritative check is always TryReserve.
	RemainingOf(ctx context.Context, showID uuid.UUID) (int, error)
}

type capacityLedger struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCapacityLedger(db database.PgxIface, log *zap.Logger) CapacityLedger {
	return &capacityLedger{
		db:  db,
		log: log.With(zap.String("repository", "capacity_ledger")),
	}
}

func (r *capacityLedger) Create(ctx context.Context, showID uuid.UUID, totalSeats int) error {
	if totalSeats < 1 {
		return fmt.Errorf("total seats %d: %w", totalSeats, ErrInvalidArgument)
	}

	query := `
		INSERT INTO show_capacity (show_id, total_seats, remaining_seats)
		VALUES ($1, $2, $2)
		ON CONFLICT (show_id) DO NOTHING
	`

	result, err := r.db.Exec(ctx, query, showID, totalSeats)
	if err != nil {
		r.log.Error("Failed to create capacity row",
			zap.Error(err),
			zap.String("show_id", showID.String()),
		)
		return fmt.Errorf("create capacity for show %s: %w: %w", showID.String(), ErrStoreUnavailable, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("show %s: %w", showID.String(), ErrAlreadyExists)
	}

	return nil
}

// TryReserve relies on a conditional UPDATE so the read-check-decrement is a
// single statement, serialized by the database per row. There is no lock
// shared between different shows.
func (r *capacityLedger) TryReserve(ctx context.Context, showID uuid.UUID, count int) (int, error) {
	if count < 1 {
		return 0, fmt.Errorf("seat count %d: %w", count, ErrInvalidArgument)
	}

	query := `
		UPDATE show_capacity
		SET remaining_seats = remaining_seats - $2
		WHERE show_id = $1 AND remaining_seats >= $2
		RETURNING remaining_seats
	`

	var remaining int
	err := r.db.QueryRow(ctx, query, showID, count).Scan(&remaining)
	if err == pgx.ErrNoRows {
		// Either the show does not exist or it lacks room; a plain read
		// distinguishes the two.
		if _, lookupErr := r.RemainingOf(ctx, showID); lookupErr != nil {
			return 0, lookupErr
		}
		return 0, fmt.Errorf("show %s seats %d: %w", showID.String(), count, ErrInsufficientCapacity)
	}
	if err != nil {
		r.log.Error("Failed to reserve capacity",
			zap.Error(err),
			zap.String("show_id", showID.String()),
			zap.Int("count", count),
		)
		return 0, fmt.Errorf("reserve %d seats for show %s: %w: %w", count, showID.String(), ErrStoreUnavailable, err)
	}

	return remaining, nil
}

func (r *capacityLedger) Release(ctx context.Context, showID uuid.UUID, count int) (int, error) {
	if count < 1 {
		return 0, fmt.Errorf("seat count %d: %w", count, ErrInvalidArgument)
	}

	query := `
		UPDATE show_capacity
		SET remaining_seats = LEAST(total_seats, remaining_seats + $2)
		WHERE show_id = $1
		RETURNING remaining_seats
	`

	var remaining int
	err := r.db.QueryRow(ctx, query, showID, count).Scan(&remaining)
	if err == pgx.ErrNoRows {
		return 0, fmt.Errorf("show %s: %w", showID.String(), ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to release capacity",
			zap.Error(err),
			zap.String("show_id", showID.String()),
			zap.Int("count", count),
		)
		return 0, fmt.Errorf("release %d seats for show %s: %w: %w", count, showID.String(), ErrStoreUnavailable, err)
	}

	return remaining, nil
}

func (r *capacityLedger) RemainingOf(ctx context.Context, showID uuid.UUID) (int, error) {
	query := `SELECT remaining_seats FROM show_capacity WHERE show_id = $1`

	var remaining int
	err := r.db.QueryRow(ctx, query, showID).Scan(&remaining)
	if err == pgx.ErrNoRows {
		return 0, fmt.Errorf("show %s: %w", showID.String(), ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to read remaining capacity",
			zap.Error(err),
			zap.String("show_id", showID.String()),
		)
		return 0, fmt.Errorf("remaining of show %s: %w: %w", showID.String(), ErrStoreUnavailable, err)
	}

	return remaining, nil
}
