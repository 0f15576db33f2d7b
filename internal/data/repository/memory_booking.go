package repository

import (
	"context"
	"sort"
	"sync"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
)

// MemoryBookingRepository is an in-process append-only BookingRepository.
// A monotonic sequence breaks created_at ties so repeated listings are
// stable.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	seq      uint64
	bookings []memoryBooking
}

type memoryBooking struct {
	seq     uint64
	booking entity.Booking
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{}
}

var _ BookingRepository = (*MemoryBookingRepository)(nil)

func (r *MemoryBookingRepository) Append(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.bookings = append(r.bookings, memoryBooking{seq: r.seq, booking: *booking})
	return nil
}

func (r *MemoryBookingRepository) FindByRequesterID(ctx context.Context, requesterID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return b.RequesterID == requesterID }, limit, offset), nil
}

func (r *MemoryBookingRepository) CountByRequesterID(ctx context.Context, requesterID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for i := range r.bookings {
		if r.bookings[i].booking.RequesterID == requesterID {
			count++
		}
	}
	return count, nil
}

func (r *MemoryBookingRepository) FindByShowID(ctx context.Context, showID uuid.UUID) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return b.ShowID == showID }, -1, 0), nil
}

func (r *MemoryBookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return true }, limit, offset), nil
}

func (r *MemoryBookingRepository) CountAll(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.bookings)), nil
}

// filter returns copies ordered by creation time descending, newest first.
// A negative limit means no limit.
func (r *MemoryBookingRepository) filter(match func(*entity.Booking) bool, limit, offset int) []*entity.Booking {
	records := r.snapshot()

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].booking.CreatedAt.Equal(records[j].booking.CreatedAt) {
			return records[i].seq > records[j].seq
		}
		return records[i].booking.CreatedAt.After(records[j].booking.CreatedAt)
	})

	var result []*entity.Booking
	skipped := 0
	for i := range records {
		if !match(&records[i].booking) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if limit >= 0 && len(result) >= limit {
			break
		}
		b := records[i].booking
		result = append(result, &b)
	}
	return result
}

func (r *MemoryBookingRepository) snapshot() []memoryBooking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]memoryBooking, len(r.bookings))
	copy(records, r.bookings)
	return records
}
