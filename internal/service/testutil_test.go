package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

const testPriceCeiling = 100.0

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Customer{},
		&model.Room{},
		&model.Reservation{},
		&model.AdditionalService{},
	))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB) *model.Customer {
	t.Helper()
	c := &model.Customer{FirstName: "Ada", LastName: "Lovelace", Age: 36}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedRoom(t *testing.T, db *gorm.DB, number int, available bool) *model.Room {
	t.Helper()
	r := &model.Room{Number: number, Type: "double", PricePerNight: 75, Available: available}
	require.NoError(t, db.Create(r).Error)
	return r
}

// seedReservation inserts directly, bypassing the service rules, so
// tests can set up past reservations.
func seedReservation(t *testing.T, db *gorm.DB, customerID, roomID uint, start, end time.Time) *model.Reservation {
	t.Helper()
	res := &model.Reservation{
		StartDate:  start,
		EndDate:    end,
		CustomerID: customerID,
		RoomID:     roomID,
	}
	require.NoError(t, db.Create(res).Error)
	return res
}

func in(h int) time.Time {
	return time.Now().Add(time.Duration(h) * time.Hour).Truncate(time.Second)
}

func ago(h int) time.Time {
	return time.Now().Add(-time.Duration(h) * time.Hour).Truncate(time.Second)
}

func uintp(v uint) *uint           { return &v }
func timep(v time.Time) *time.Time { return &v }
func strp(v string) *string        { return &v }
func boolp(v bool) *bool           { return &v }
func floatp(v float64) *float64    { return &v }
func intp(v int) *int              { return &v }
