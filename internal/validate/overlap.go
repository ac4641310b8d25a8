package validate

import "time"

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// share at least one instant: s1 < e2 && e1 > s2. A reservation ending
// exactly when another starts does not overlap it.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}
