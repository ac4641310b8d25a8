// Package queue defines the domain events exchanged over the message
// broker and the publisher/consumer that move them.
package queue

import "context"

// ReservationConfirmedEvent is published after a reservation is
// successfully created. It carries enough context for downstream
// consumers to log or notify without querying the primary database.
type ReservationConfirmedEvent struct {
	ReservationID uint    `json:"reservation_id"`
	CustomerID    uint    `json:"customer_id"`
	RoomID        uint    `json:"room_id"`
	RoomNumber    int     `json:"room_number"`
	PricePerNight float64 `json:"price_per_night"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	ConfirmedAt   string  `json:"confirmed_at"`
}

// Publisher delivers domain events to the broker. The reservation
// service treats publishing as best-effort: a nil Publisher or a
// publish error never fails the request.
type Publisher interface {
	ReservationConfirmed(ctx context.Context, ev ReservationConfirmedEvent) error
}
