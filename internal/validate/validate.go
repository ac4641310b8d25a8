// Package validate contains the pure validation rules for the hotel
// reservation domain: field constraints, date-range rules and the
// interval overlap predicate. Nothing in this package touches the
// database; existence and uniqueness checks live in the service layer
// so these checks can run first and short-circuit before any query.
package validate

// Error is a field-level validation failure. Handlers translate it
// into a 400 response.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

func fail(field, message string) *Error {
	return &Error{Field: field, Message: message}
}
