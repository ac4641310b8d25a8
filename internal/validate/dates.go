package validate

import "time"

const minStay = 24 * time.Hour

// ReservationDates validates a proposed [start, end) range against the
// given clock instant. Rules run in a fixed order and the first failure
// wins:
//
//  1. both dates present,
//  2. end after start,
//  3. neither date in the past,
//  4. at least one night between them.
func ReservationDates(start, end, now time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fail("start_date", "start and end dates are required")
	}
	if !end.After(start) {
		return fail("end_date", "end date must be after the start date")
	}
	if start.Before(now) || end.Before(now) {
		return fail("start_date", "start and end dates cannot be in the past")
	}
	if end.Sub(start) < minStay {
		return fail("end_date", "a reservation must last at least one night")
	}
	return nil
}
