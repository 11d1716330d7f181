package meta

import (
	"testing"
	"time"
)

func TestAgeBucketAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		modified time.Time
		want     AgeBucket
	}{
		{"just now", now.Add(-time.Minute), AgeHourOld},
		{"59 minutes ago", now.Add(-59 * time.Minute), AgeHourOld},
		{"2 hours ago", now.Add(-2 * time.Hour), AgeDayOld},
		{"23 hours ago", now.Add(-23 * time.Hour), AgeDayOld},
		{"2 days ago", now.Add(-48 * time.Hour), AgeOlder},
		{"a year ago", now.AddDate(-1, 0, 0), AgeOlder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Meta{Modified: tt.modified}
			if got := m.AgeBucketAt(now); got != tt.want {
				t.Errorf("AgeBucketAt = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	recent := &Meta{Modified: time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)}
	if got := recent.DateString(now); got != "Jun 10 09:30" {
		t.Errorf("recent DateString = %q, want %q", got, "Jun 10 09:30")
	}

	old := &Meta{Modified: time.Date(2022, 3, 5, 9, 30, 0, 0, time.UTC)}
	if got := old.DateString(now); got != "Mar  5  2022" {
		t.Errorf("old DateString = %q, want %q", got, "Mar  5  2022")
	}
}
