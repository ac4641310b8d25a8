package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/validate"
)

func TestReservationCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db, nil, zerolog.Nop())
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, 101, true)

	res, err := svc.Create(context.Background(), model.ReservationCreate{
		StartDate:  in(24),
		EndDate:    in(72),
		CustomerID: customer.ID,
		RoomID:     room.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, res.ID)

	got, err := svc.Get(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, room.ID, got.RoomID)
	assert.Equal(t, customer.ID, got.CustomerID)
}

func TestReservationCreateRejectsOverlap(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db, nil, zerolog.Nop())
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, 101, true)

	_, err := svc.Create(context.Background(), model.ReservationCreate{
		StartDate: in(24), EndDate: in(96),
		CustomerID: customer.ID, RoomID: room.ID,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), model.ReservationCreate{
		StartDate: in(48), EndDate: in(120),
		CustomerID: customer.ID, RoomID: room.ID,
	})
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestReservationCreateAllowsBackToBack(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db, nil, zerolog.Nop())
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, 101, true)

	first, err := svc.Create(context.Background(), model.ReservationCreate{
		StartDate: in(24), EndDate: in(72),
		CustomerID: customer.ID, RoomID: room.ID,
	})
	require.NoError(t, err)

	// A stay starting exactly when the previous one ends is fine.
	_, err = svc.Create(context.Background(), model.ReservationCreate{
		StartDate: first.EndDate, EndDate: in(120),
		CustomerID: customer.ID, RoomID: room.ID,
	})
	assert.NoError(t, err)
}

func TestReservationCreateOtherRoomUnaffected(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db, nil, zerolog.Nop())
	customer := seedCustomer(t, db)
	roomA := seedRoom(t, db, 101, true)
	roomB := seedRoom(t, db, 102, true)

	_, err := svc.Create(context.Background(), model.ReservationCreate{
		StartDate: in(24), EndDate: in(96),
		CustomerID: customer.ID, RoomID: roomA.ID,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), model.ReservationCreate{
		StartDate: in(24), EndDate: in(96),
		CustomerID: customer.ID, RoomID: roomB.ID,
	})
	assert.NoError(t, err)
}

func TestReservationCreateUnknownReferences(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db, nil, zerolog.Nop())
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, 101, true)

	_, err := svc.Create(context.Background(), model.ReservationCreate{
		StartDate: in(24), EndDate: in(72),
		CustomerID: customer.ID + 99, RoomID: room.ID,
	})
	assert.ErrorIs(t, err, repository.ErrCustomerNotFound)

	_, err = svc.Create(context.Background(), model.ReservationCreate{
		StartDate: in(24), EndDate: in(72),
		CustomerID: customer.ID, RoomID: room.ID + 99,
	})
	assert.ErrorIs(t, err, repository.ErrRoomNotFound)
}

func TestReservationCreateUnavailableRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db, nil, zerolog.Nop())
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, 101, false)

	_, err := svc.Create(context.Background(), model.ReservationCreate{
		StartDate: in(24), EndDate: in(72),
		CustomerID: customer.ID, RoomID: room.ID,
	})
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "room_id", verr.Field)
}

func TestReservationCreateDateRulesRunFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db, nil, zerolog.Nop())

	// No rows seeded: a date failure must surface before any
	// existence check.
	_, err := svc.Create(context.Background(), model.ReservationCreate{
		StartDate: in(72), EndDate: in(24),
		CustomerID: 1, RoomID: 1,
	})
	assert.EqualError(t, err, "end date must be after the start date")
}

func TestReservationUpdateKeepsUnpatchedFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db, nil, zerolog.Nop())
	customer := seedCustomer(t, db)
	other := seedCustomer(t, db)
	room := seedRoom(t, db, 101, true)

	res, err := svc.Create(context.Background(), model.ReservationCreate{
		StartDate: in(24), EndDate: in(72),
		CustomerID: customer.ID, RoomID: room.ID,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), res.ID, model.ReservationPatch{
		CustomerID: uintp(other.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, other.ID, updated.CustomerID)
	assert.Equal(t, res.RoomID, updated.RoomID)
	assert.WithinDuration(t, res.StartDate, updated.StartDate, time.Second)
	assert.WithinDuration(t, res.EndDate, updated.EndDate, time.Second)
}

func TestReservationUpdateExcludesSelfFromOverlap(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db, nil, zerolog.Nop())
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, 101, true)

	res, err := svc.Create(context.Background(), model.ReservationCreate{
		StartDate: in(24), EndDate: in(96),
		CustomerID: customer.ID, RoomID: room.ID,
	})
	require.NoError(t, err)

	// Extending the same reservation overlaps only itself.
	_, err = svc.Update(context.Background(), res.ID, model.ReservationPatch{
		EndDate: timep(in(120)),
	})
	assert.NoError(t, err)
}

func TestReservationUpdateRejectsOverlapWithOther(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db, nil, zerolog.Nop())
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, 101, true)

	_, err := svc.Create(context.Background(), model.ReservationCreate{
		StartDate: in(24), EndDate: in(72),
		CustomerID: customer.ID, RoomID: room.ID,
	})
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), model.ReservationCreate{
		StartDate: in(96), EndDate: in(144),
		CustomerID: customer.ID, RoomID: room.ID,
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), second.ID, model.ReservationPatch{
		StartDate: timep(in(48)),
	})
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestReservationUpdateRevalidatesMergedDates(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db, nil, zerolog.Nop())
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, 101, true)

	res, err := svc.Create(context.Background(), model.ReservationCreate{
		StartDate: in(48), EndDate: in(96),
		CustomerID: customer.ID, RoomID: room.ID,
	})
	require.NoError(t, err)

	// Patching only the end date still validates against the stored
	// start date.
	_, err = svc.Update(context.Background(), res.ID, model.ReservationPatch{
		EndDate: timep(in(24)),
	})
	assert.EqualError(t, err, "end date must be after the start date")
}

func TestReservationUpdateUnavailableRoomOnlyGatesNewRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db, nil, zerolog.Nop())
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, 101, true)
	closed := seedRoom(t, db, 102, false)

	res, err := svc.Create(context.Background(), model.ReservationCreate{
		StartDate: in(24), EndDate: in(72),
		CustomerID: customer.ID, RoomID: room.ID,
	})
	require.NoError(t, err)

	// The held room going unavailable later does not invalidate the
	// reservation's own updates.
	require.NoError(t, db.Model(&model.Room{}).Where("id = ?", room.ID).
		Update("available", false).Error)
	_, err = svc.Update(context.Background(), res.ID, model.ReservationPatch{
		EndDate: timep(in(96)),
	})
	assert.NoError(t, err)

	// Moving to an unavailable room is rejected.
	_, err = svc.Update(context.Background(), res.ID, model.ReservationPatch{
		RoomID: uintp(closed.ID),
	})
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "room_id", verr.Field)
}

func TestReservationDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db, nil, zerolog.Nop())
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, 101, true)

	res, err := svc.Create(context.Background(), model.ReservationCreate{
		StartDate: in(24), EndDate: in(72),
		CustomerID: customer.ID, RoomID: room.ID,
	})
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.ID, deleted.ID)

	_, err = svc.Get(context.Background(), res.ID)
	assert.ErrorIs(t, err, repository.ErrReservationNotFound)
}
