package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/validate"
)

// RoomService orchestrates room CRUD, uniqueness and the
// availability/deletion guards.
type RoomService struct {
	db           *gorm.DB
	rooms        *repository.RoomRepo
	reservations *repository.ReservationRepo
	priceCeiling float64
}

// NewRoomService constructs a RoomService. priceCeiling bounds the
// nightly price and comes from configuration.
func NewRoomService(db *gorm.DB, priceCeiling float64) *RoomService {
	return &RoomService{
		db:           db,
		rooms:        repository.NewRoomRepo(db),
		reservations: repository.NewReservationRepo(db),
		priceCeiling: priceCeiling,
	}
}

// List returns all rooms.
func (s *RoomService) List(ctx context.Context) ([]model.Room, error) {
	return s.rooms.List(ctx)
}

// Get returns one room by id.
func (s *RoomService) Get(ctx context.Context, id uint) (*model.Room, error) {
	return s.rooms.GetByID(ctx, id)
}

// Create validates field constraints, enforces room number uniqueness
// and inserts the room.
func (s *RoomService) Create(ctx context.Context, req model.RoomCreate) (*model.Room, error) {
	if err := validate.RoomFields(req.Type, req.PricePerNight, s.priceCeiling); err != nil {
		return nil, err
	}
	taken, err := s.rooms.NumberTaken(ctx, req.Number, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, repository.Conflict("room number already exists")
	}
	room := &model.Room{
		Number:        req.Number,
		Type:          req.Type,
		PricePerNight: req.PricePerNight,
		Available:     req.Available,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// Update applies a sparse patch. Flagging a room unavailable is blocked
// while it has reservations that have not ended yet; the guard and the
// save run in one transaction with the room row locked.
func (s *RoomService) Update(ctx context.Context, id uint, patch model.RoomPatch) (*model.Room, error) {
	if err := validate.RoomPatch(patch, s.priceCeiling); err != nil {
		return nil, err
	}
	var updated *model.Room
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := s.rooms.WithTx(tx).GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if patch.Number != nil {
			taken, err := s.rooms.WithTx(tx).NumberTaken(ctx, *patch.Number, id)
			if err != nil {
				return err
			}
			if taken {
				return repository.Conflict("room number already exists")
			}
			cur.Number = *patch.Number
		}
		if patch.PricePerNight != nil {
			cur.PricePerNight = *patch.PricePerNight
		}
		if patch.Type != nil {
			cur.Type = *patch.Type
		}
		if patch.Available != nil {
			if !*patch.Available {
				busy, err := s.reservations.WithTx(tx).HasFutureByRoom(ctx, id, time.Now())
				if err != nil {
					return err
				}
				if busy {
					return repository.Conflict("room has reservations that have not ended yet")
				}
			}
			cur.Available = *patch.Available
		}
		if err := s.rooms.WithTx(tx).Save(ctx, cur); err != nil {
			return err
		}
		updated = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a room unless it has a reservation that has not ended
// yet (guard-then-block). Check and delete share a transaction.
func (s *RoomService) Delete(ctx context.Context, id uint) (*model.Room, error) {
	var deleted *model.Room
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := s.rooms.WithTx(tx).GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		busy, err := s.reservations.WithTx(tx).HasFutureByRoom(ctx, id, time.Now())
		if err != nil {
			return err
		}
		if busy {
			return repository.Conflict("room has reservations that have not ended yet")
		}
		if err := s.rooms.WithTx(tx).Delete(ctx, cur); err != nil {
			return err
		}
		deleted = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
