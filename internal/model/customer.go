package model

// Customer is a hotel guest on record. Phone and email are optional;
// email must be unique across customers when present.
type Customer struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FirstName string  `gorm:"size:50;not null" json:"first_name"`
	LastName  string  `gorm:"size:50;not null" json:"last_name"`
	Phone     *string `gorm:"size:20" json:"phone,omitempty"`
	Email     *string `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	Age       int     `json:"age"`

	Reservations []Reservation `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"reservations,omitempty"`
}

// CustomerCreate is the payload for creating a customer.
type CustomerCreate struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Age       int     `json:"age"`
}

// CustomerPatch is a sparse update: only non-nil fields are applied.
type CustomerPatch struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Age       *int    `json:"age"`
}
