package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// RoomRepo provides CRUD operations for rooms.
type RoomRepo struct {
	db *gorm.DB
}

// NewRoomRepo returns a RoomRepo bound to the given database.
func NewRoomRepo(db *gorm.DB) *RoomRepo { return &RoomRepo{db: db} }

// WithTx returns a copy of the repository bound to the transaction.
func (r *RoomRepo) WithTx(tx *gorm.DB) *RoomRepo { return &RoomRepo{db: tx} }

// List returns all rooms. The slice is never nil.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	rooms := make([]model.Room, 0)
	if err := r.db.WithContext(ctx).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetByID returns a room or ErrRoomNotFound.
func (r *RoomRepo) GetByID(ctx context.Context, id uint) (*model.Room, error) {
	var room model.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// GetByIDForUpdate loads a room under a row-level exclusive lock
// (SELECT ... FOR UPDATE). Calling it inside a transaction serialises
// concurrent validate-then-book sequences on the same room, closing the
// overlap-check-then-insert race. Must be called within a transaction.
func (r *RoomRepo) GetByIDForUpdate(ctx context.Context, id uint) (*model.Room, error) {
	var room model.Room
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// Create inserts a new room, populating its generated ID.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// Save persists all fields of an existing room.
func (r *RoomRepo) Save(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

// Delete removes a room. Dependent reservations cascade at the database
// level once the service-layer guard has passed.
func (r *RoomRepo) Delete(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Delete(room).Error
}

// NumberTaken reports whether another room already uses the room number.
// Pass excludeID = 0 on create.
func (r *RoomRepo) NumberTaken(ctx context.Context, number int, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.Room{}).Where("number = ?", number)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
