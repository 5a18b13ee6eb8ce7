package models

import "time"

// Term represents an academic term with a season, year and date interval.
// Invariant: StartTime < EndTime, and no two persisted terms overlap.
type Term struct {
	ID        string    `json:"id" db:"id"`
	Season    Season    `json:"season" db:"season"`
	Year      int       `json:"year" db:"year"`
	StartTime time.Time `json:"startTime" db:"start_time"`
	EndTime   time.Time `json:"endTime" db:"end_time"`
}

// Overlaps reports whether the stored term's interval conflicts with the
// candidate [start, end] interval. The comparison is inclusive at both
// boundaries: a term ending exactly when the candidate starts is a conflict.
// See services.TermBoundaryPolicy.
func (t *Term) Overlaps(start, end time.Time) bool {
	// existing end falls within the candidate range
	if !t.EndTime.Before(start) && !t.EndTime.After(end) {
		return true
	}
	// existing start falls within the candidate range
	if !t.StartTime.Before(start) && !t.StartTime.After(end) {
		return true
	}
	// candidate range falls entirely within the existing term
	if !t.StartTime.After(start) && !t.EndTime.Before(end) {
		return true
	}
	return false
}
