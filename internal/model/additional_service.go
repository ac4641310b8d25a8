package model

// AdditionalService is an extra charged to a reservation (breakfast,
// parking, ...). Description is unique within its parent reservation.
type AdditionalService struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Description   string  `gorm:"size:255;not null;uniqueIndex:idx_services_reservation_description" json:"description"`
	Cost          float64 `gorm:"type:decimal(10,2);not null" json:"cost"`
	ReservationID uint    `gorm:"not null;uniqueIndex:idx_services_reservation_description" json:"reservation_id"`
}

// AdditionalServiceCreate is the payload for creating a service.
type AdditionalServiceCreate struct {
	Description   string  `json:"description"`
	Cost          float64 `json:"cost"`
	ReservationID uint    `json:"reservation_id"`
}

// AdditionalServicePatch is a sparse update: only non-nil fields are
// applied. Moving the service to another reservation re-scopes the
// description uniqueness check to the new reservation.
type AdditionalServicePatch struct {
	Description   *string  `json:"description"`
	Cost          *float64 `json:"cost"`
	ReservationID *uint    `json:"reservation_id"`
}
