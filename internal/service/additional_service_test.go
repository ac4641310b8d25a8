package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

func seedExtrasFixture(t *testing.T, db *gorm.DB) (*model.Reservation, *model.Reservation) {
	t.Helper()
	customer := seedCustomer(t, db)
	roomA := seedRoom(t, db, 101, true)
	roomB := seedRoom(t, db, 102, true)
	resA := seedReservation(t, db, customer.ID, roomA.ID, in(24), in(72))
	resB := seedReservation(t, db, customer.ID, roomB.ID, in(24), in(72))
	return resA, resB
}

func TestExtrasCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewExtrasService(db)
	res, _ := seedExtrasFixture(t, db)

	extra, err := svc.Create(context.Background(), model.AdditionalServiceCreate{
		Description: "breakfast", Cost: 12.5, ReservationID: res.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, extra.ID)

	got, err := svc.Get(context.Background(), extra.ID)
	require.NoError(t, err)
	assert.Equal(t, "breakfast", got.Description)
	assert.Equal(t, res.ID, got.ReservationID)
}

func TestExtrasCreateUnknownReservation(t *testing.T) {
	db := newTestDB(t)
	svc := NewExtrasService(db)

	_, err := svc.Create(context.Background(), model.AdditionalServiceCreate{
		Description: "breakfast", Cost: 12.5, ReservationID: 42,
	})
	assert.ErrorIs(t, err, repository.ErrReservationNotFound)
}

func TestExtrasDescriptionUniquePerReservation(t *testing.T) {
	db := newTestDB(t)
	svc := NewExtrasService(db)
	resA, resB := seedExtrasFixture(t, db)

	_, err := svc.Create(context.Background(), model.AdditionalServiceCreate{
		Description: "breakfast", Cost: 12.5, ReservationID: resA.ID,
	})
	require.NoError(t, err)

	// Same description on the same reservation is a conflict.
	_, err = svc.Create(context.Background(), model.AdditionalServiceCreate{
		Description: "breakfast", Cost: 10, ReservationID: resA.ID,
	})
	assert.ErrorIs(t, err, repository.ErrConflict)

	// The same description on another reservation is fine.
	_, err = svc.Create(context.Background(), model.AdditionalServiceCreate{
		Description: "breakfast", Cost: 12.5, ReservationID: resB.ID,
	})
	assert.NoError(t, err)
}

func TestExtrasUpdateRescopesUniquenessOnMove(t *testing.T) {
	db := newTestDB(t)
	svc := NewExtrasService(db)
	resA, resB := seedExtrasFixture(t, db)

	moving, err := svc.Create(context.Background(), model.AdditionalServiceCreate{
		Description: "breakfast", Cost: 12.5, ReservationID: resA.ID,
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), model.AdditionalServiceCreate{
		Description: "breakfast", Cost: 12.5, ReservationID: resB.ID,
	})
	require.NoError(t, err)

	// Moving to a reservation that already has the description fails.
	_, err = svc.Update(context.Background(), moving.ID, model.AdditionalServicePatch{
		ReservationID: uintp(resB.ID),
	})
	assert.ErrorIs(t, err, repository.ErrConflict)

	// Renaming at the same time resolves it.
	updated, err := svc.Update(context.Background(), moving.ID, model.AdditionalServicePatch{
		ReservationID: uintp(resB.ID),
		Description:   strp("late breakfast"),
	})
	require.NoError(t, err)
	assert.Equal(t, resB.ID, updated.ReservationID)
	assert.Equal(t, "late breakfast", updated.Description)
}

func TestExtrasUpdateSelfRenameNotConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewExtrasService(db)
	res, _ := seedExtrasFixture(t, db)

	extra, err := svc.Create(context.Background(), model.AdditionalServiceCreate{
		Description: "breakfast", Cost: 12.5, ReservationID: res.ID,
	})
	require.NoError(t, err)

	// Re-submitting the current description does not collide with
	// the row being edited.
	updated, err := svc.Update(context.Background(), extra.ID, model.AdditionalServicePatch{
		Description: strp("breakfast"),
		Cost:        floatp(15),
	})
	require.NoError(t, err)
	assert.Equal(t, 15.0, updated.Cost)
}

func TestExtrasDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewExtrasService(db)
	res, _ := seedExtrasFixture(t, db)

	extra, err := svc.Create(context.Background(), model.AdditionalServiceCreate{
		Description: "breakfast", Cost: 12.5, ReservationID: res.ID,
	})
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), extra.ID)
	require.NoError(t, err)
	assert.Equal(t, extra.ID, deleted.ID)

	_, err = svc.Get(context.Background(), extra.ID)
	assert.ErrorIs(t, err, repository.ErrServiceNotFound)
}
