package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ReservationRepo provides CRUD operations for reservations plus the
// date-range queries backing the availability and deletion-guard checks.
type ReservationRepo struct {
	db *gorm.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *gorm.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// WithTx returns a copy of the repository bound to the transaction.
func (r *ReservationRepo) WithTx(tx *gorm.DB) *ReservationRepo { return &ReservationRepo{db: tx} }

// List returns all reservations. The slice is never nil.
func (r *ReservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	reservations := make([]model.Reservation, 0)
	if err := r.db.WithContext(ctx).Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// GetByID returns a reservation or ErrReservationNotFound.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint) (*model.Reservation, error) {
	var res model.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &res, nil
}

// Create inserts a new reservation, populating its generated ID.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	return r.db.WithContext(ctx).Create(res).Error
}

// Save persists all fields of an existing reservation.
func (r *ReservationRepo) Save(ctx context.Context, res *model.Reservation) error {
	return r.db.WithContext(ctx).Save(res).Error
}

// Delete removes a reservation. Its additional services cascade at the
// database level.
func (r *ReservationRepo) Delete(ctx context.Context, res *model.Reservation) error {
	return r.db.WithContext(ctx).Delete(res).Error
}

// HasOverlap reports whether any reservation for the room overlaps the
// half-open interval [start, end): existing.start < end AND
// existing.end > start. Touching endpoints do not count. excludeID
// skips the reservation being updated so it cannot conflict with
// itself; pass 0 on create.
func (r *ReservationRepo) HasOverlap(ctx context.Context, roomID uint, start, end time.Time, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.Reservation{}).
		Where("room_id = ?", roomID).
		Where("start_date < ? AND end_date > ?", end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// HasFutureByRoom reports whether the room has any reservation whose
// end date is strictly after now. Used by the room deletion and
// unavailability guards.
func (r *ReservationRepo) HasFutureByRoom(ctx context.Context, roomID uint, now time.Time) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Reservation{}).
		Where("room_id = ? AND end_date > ?", roomID, now).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// HasFutureByCustomer reports whether the customer has any reservation
// whose end date is strictly after now. Used by the customer deletion
// guard.
func (r *ReservationRepo) HasFutureByCustomer(ctx context.Context, customerID uint, now time.Time) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Reservation{}).
		Where("customer_id = ? AND end_date > ?", customerID, now).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
