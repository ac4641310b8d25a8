package model

// Room is a bookable hotel room. Number is the human-facing room number
// and must be unique. PricePerNight is bounded by the configured ceiling.
type Room struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Number        int     `gorm:"uniqueIndex;not null" json:"number"`
	Type          string  `gorm:"size:50;not null" json:"type"`
	PricePerNight float64 `gorm:"type:decimal(10,2);not null" json:"price_per_night"`
	Available     bool    `gorm:"not null" json:"available"`

	Reservations []Reservation `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"reservations,omitempty"`
}

// RoomCreate is the payload for creating a room.
type RoomCreate struct {
	Number        int     `json:"number"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"price_per_night"`
	Available     bool    `json:"available"`
}

// RoomPatch is a sparse update: only non-nil fields are applied.
type RoomPatch struct {
	Number        *int     `json:"number"`
	Type          *string  `json:"type"`
	PricePerNight *float64 `json:"price_per_night"`
	Available     *bool    `json:"available"`
}
