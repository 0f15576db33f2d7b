package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// memoryCapacityEntry carries its own mutex so that the read-check-decrement
// of one show never blocks reservations against another show.
type memoryCapacityEntry struct {
	mu        sync.Mutex
	total     int
	remaining int
}

// MemoryCapacityLedger is an in-process CapacityLedger. The map mutex is held
// only while locating an entry; the per-show entry mutex serializes the
// actual decrement.
type MemoryCapacityLedger struct {
	mu    sync.RWMutex
	shows map[uuid.UUID]*memoryCapacityEntry
}

func NewMemoryCapacityLedger() *MemoryCapacityLedger {
	return &MemoryCapacityLedger{
		shows: make(map[uuid.UUID]*memoryCapacityEntry),
	}
}

var _ CapacityLedger = (*MemoryCapacityLedger)(nil)

func (l *MemoryCapacityLedger) Create(ctx context.Context, showID uuid.UUID, totalSeats int) error {
	if totalSeats < 1 {
		return fmt.Errorf("total seats %d: %w", totalSeats, ErrInvalidArgument)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.shows[showID]; ok {
		return fmt.Errorf("show %s: %w", showID.String(), ErrAlreadyExists)
	}

	l.shows[showID] = &memoryCapacityEntry{
		total:     totalSeats,
		remaining: totalSeats,
	}
	return nil
}

func (l *MemoryCapacityLedger) TryReserve(ctx context.Context, showID uuid.UUID, count int) (int, error) {
	if count < 1 {
		return 0, fmt.Errorf("seat count %d: %w", count, ErrInvalidArgument)
	}

	entry, err := l.entry(showID)
	if err != nil {
		return 0, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.remaining < count {
		return 0, fmt.Errorf("show %s seats %d: %w", showID.String(), count, ErrInsufficientCapacity)
	}

	entry.remaining -= count
	return entry.remaining, nil
}

func (l *MemoryCapacityLedger) Release(ctx context.Context, showID uuid.UUID, count int) (int, error) {
	if count < 1 {
		return 0, fmt.Errorf("seat count %d: %w", count, ErrInvalidArgument)
	}

	entry, err := l.entry(showID)
	if err != nil {
		return 0, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.remaining += count
	if entry.remaining > entry.total {
		entry.remaining = entry.total
	}
	return entry.remaining, nil
}

func (l *MemoryCapacityLedger) RemainingOf(ctx context.Context, showID uuid.UUID) (int, error) {
	entry, err := l.entry(showID)
	if err != nil {
		return 0, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return entry.remaining, nil
}

func (l *MemoryCapacityLedger) entry(showID uuid.UUID) (*memoryCapacityEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entry, ok := l.shows[showID]
	if !ok {
		return nil, fmt.Errorf("show %s: %w", showID.String(), ErrNotFound)
	}
	return entry, nil
}
