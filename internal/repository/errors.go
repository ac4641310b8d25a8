// Package repository implements persistence for the hotel reservation
// entities on top of GORM. Sentinel errors defined here let handlers
// distinguish failure scenarios: not-found sentinels map to 404 and
// ErrConflict to 409.
package repository

import "errors"

var (
	// ErrCustomerNotFound is returned when a customer id does not resolve.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrRoomNotFound is returned when a room id does not resolve.
	ErrRoomNotFound = errors.New("room not found")
	// ErrReservationNotFound is returned when a reservation id does not resolve.
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrServiceNotFound is returned when an additional service id does not resolve.
	ErrServiceNotFound = errors.New("additional service not found")

	// ErrConflict is the target for errors.Is on any conflicting-state
	// rejection: overlapping dates, duplicate unique values, or a delete
	// blocked by dependent records.
	ErrConflict = errors.New("conflict")
)

// ConflictError carries the reason for a conflicting-state rejection
// while still matching ErrConflict under errors.Is.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string        { return e.Reason }
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// Conflict builds a ConflictError with the given reason.
func Conflict(reason string) error { return &ConflictError{Reason: reason} }
