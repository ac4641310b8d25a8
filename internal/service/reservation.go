// Package service implements the business rules between the HTTP
// handlers and the repositories: pure field validation first, then
// existence, uniqueness and availability checks, then the commit. All
// database-dependent steps of a booking run inside a single transaction.
package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/validate"
)

// ReservationService orchestrates reservation validation and booking.
type ReservationService struct {
	db           *gorm.DB
	reservations *repository.ReservationRepo
	customers    *repository.CustomerRepo
	rooms        *repository.RoomRepo
	publisher    queue.Publisher
	log          zerolog.Logger
}

// NewReservationService constructs a ReservationService. publisher may
// be nil, in which case no events are emitted.
func NewReservationService(db *gorm.DB, publisher queue.Publisher, log zerolog.Logger) *ReservationService {
	return &ReservationService{
		db:           db,
		reservations: repository.NewReservationRepo(db),
		customers:    repository.NewCustomerRepo(db),
		rooms:        repository.NewRoomRepo(db),
		publisher:    publisher,
		log:          log,
	}
}

// List returns all reservations.
func (s *ReservationService) List(ctx context.Context) ([]model.Reservation, error) {
	return s.reservations.List(ctx)
}

// Get returns one reservation by id.
func (s *ReservationService) Get(ctx context.Context, id uint) (*model.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

// Create validates and books a new reservation.
//
// The date rules run before any query. Everything that reads or writes
// the database happens inside one transaction that locks the room row
// first, so two concurrent requests for overlapping dates on the same
// room serialise: the second sees the first's insert and is rejected.
func (s *ReservationService) Create(ctx context.Context, req model.ReservationCreate) (*model.Reservation, error) {
	if err := validate.ReservationDates(req.StartDate, req.EndDate, time.Now()); err != nil {
		return nil, err
	}

	res := &model.Reservation{
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		CustomerID: req.CustomerID,
		RoomID:     req.RoomID,
	}
	var room *model.Room
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.customers.WithTx(tx).GetByID(ctx, req.CustomerID); err != nil {
			return err
		}
		var err error
		room, err = s.rooms.WithTx(tx).GetByIDForUpdate(ctx, req.RoomID)
		if err != nil {
			return err
		}
		if !room.Available {
			return &validate.Error{Field: "room_id", Message: "the specified room is not available"}
		}
		overlaps, err := s.reservations.WithTx(tx).HasOverlap(ctx, req.RoomID, req.StartDate, req.EndDate, 0)
		if err != nil {
			return err
		}
		if overlaps {
			return repository.Conflict("room is already reserved for the requested dates")
		}
		return s.reservations.WithTx(tx).Create(ctx, res)
	})
	if err != nil {
		return nil, err
	}

	s.publishConfirmed(ctx, res, room)
	return res, nil
}

// Update applies a sparse patch to a reservation. Fields absent from
// the patch keep their stored values, and the merged result is
// re-validated as a whole, so changing only the customer still
// re-checks the unchanged date range. The overlap check excludes the
// reservation's own id.
func (s *ReservationService) Update(ctx context.Context, id uint, patch model.ReservationPatch) (*model.Reservation, error) {
	var updated *model.Reservation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := s.reservations.WithTx(tx).GetByID(ctx, id)
		if err != nil {
			return err
		}
		merged := patch.Merged(*cur)
		if err := validate.ReservationDates(merged.StartDate, merged.EndDate, time.Now()); err != nil {
			return err
		}
		if patch.CustomerID != nil {
			if _, err := s.customers.WithTx(tx).GetByID(ctx, *patch.CustomerID); err != nil {
				return err
			}
		}
		room, err := s.rooms.WithTx(tx).GetByIDForUpdate(ctx, merged.RoomID)
		if err != nil {
			return err
		}
		// Availability only gates newly assigned rooms; a reservation
		// already holding a room keeps it even if the room was later
		// flagged unavailable.
		if patch.RoomID != nil && !room.Available {
			return &validate.Error{Field: "room_id", Message: "the specified room is not available"}
		}
		overlaps, err := s.reservations.WithTx(tx).HasOverlap(ctx, merged.RoomID, merged.StartDate, merged.EndDate, id)
		if err != nil {
			return err
		}
		if overlaps {
			return repository.Conflict("room is already reserved for the requested dates")
		}
		*cur = merged
		if err := s.reservations.WithTx(tx).Save(ctx, cur); err != nil {
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

// Delete removes a reservation unconditionally. Its additional services
// are removed by the cascading foreign key.
func (s *ReservationService) Delete(ctx context.Context, id uint) (*model.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.reservations.Delete(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// publishConfirmed emits a reservation.confirmed event. Failures are
// logged and swallowed; the reservation is already committed.
func (s *ReservationService) publishConfirmed(ctx context.Context, res *model.Reservation, room *model.Room) {
	if s.publisher == nil {
		return
	}
	ev := queue.ReservationConfirmedEvent{
		ReservationID: res.ID,
		CustomerID:    res.CustomerID,
		RoomID:        res.RoomID,
		RoomNumber:    room.Number,
		PricePerNight: room.PricePerNight,
		StartDate:     res.StartDate.UTC().Format(time.RFC3339),
		EndDate:       res.EndDate.UTC().Format(time.RFC3339),
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher.ReservationConfirmed(ctx, ev); err != nil {
		s.log.Warn().Err(err).Uint("reservation_id", res.ID).Msg("failed to publish reservation.confirmed")
	}
}
