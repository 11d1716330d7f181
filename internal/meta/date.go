package meta

import "time"

// AgeBucket groups modification times into the recency classes the theme
// colors by.
type AgeBucket int

const (
	AgeHourOld AgeBucket = iota // modified within the last hour
	AgeDayOld                   // modified within the last day
	AgeOlder
)

// AgeBucketAt classifies the modification time relative to now. The
// reference instant is a parameter so the classification is testable.
func (m *Meta) AgeBucketAt(now time.Time) AgeBucket {
	age := now.Sub(m.Modified)
	switch {
	case age < time.Hour:
		return AgeHourOld
	case age < 24*time.Hour:
		return AgeDayOld
	default:
		return AgeOlder
	}
}

// DateString renders the modification time the way ls does: recent
// entries show the clock time, entries older than about six months show
// the year instead.
func (m *Meta) DateString(now time.Time) string {
	if now.Sub(m.Modified) > 6*30*24*time.Hour || m.Modified.After(now) {
		return m.Modified.Format("Jan _2  2006")
	}
	return m.Modified.Format("Jan _2 15:04")
}
