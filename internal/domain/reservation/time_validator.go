package reservation

import "time"

// MinLeadHours is how far ahead a reservation must be placed.
const MinLeadHours = 2

// IsFarEnoughAhead truncates the gap to whole hours, so 1h59m is not enough
// and any past candidate fails.
func IsFarEnoughAhead(candidate, now time.Time) bool {
	return int64(candidate.Sub(now)/time.Hour) >= MinLeadHours
}

// CombineDateTime reads "YYYY-MM-DD" and "HH:MM" as wall-clock time in loc.
func CombineDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
}
