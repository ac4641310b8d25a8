package model

import "time"

// Reservation books a room for a customer over the half-open interval
// [StartDate, EndDate). Two reservations for the same room must not
// overlap; touching endpoints are allowed.
type Reservation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StartDate  time.Time `gorm:"not null" json:"start_date"`
	EndDate    time.Time `gorm:"not null;index" json:"end_date"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	RoomID     uint      `gorm:"not null;index" json:"room_id"`

	Services []AdditionalService `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE" json:"services,omitempty"`
}

// ReservationCreate is the payload for creating a reservation.
type ReservationCreate struct {
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	CustomerID uint      `json:"customer_id"`
	RoomID     uint      `json:"room_id"`
}

// ReservationPatch is a sparse update. Absent fields keep the stored
// values, and the merged result is re-validated as a whole.
type ReservationPatch struct {
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	CustomerID *uint      `json:"customer_id"`
	RoomID     *uint      `json:"room_id"`
}

// Merged returns the reservation fields that would result from applying
// the patch on top of the existing reservation, without mutating it.
func (p ReservationPatch) Merged(cur Reservation) Reservation {
	out := cur
	if p.StartDate != nil {
		out.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		out.EndDate = *p.EndDate
	}
	if p.CustomerID != nil {
		out.CustomerID = *p.CustomerID
	}
	if p.RoomID != nil {
		out.RoomID = *p.RoomID
	}
	return out
}
