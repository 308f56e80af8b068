package timezone

import "time"

// The salon runs on a single local clock.
const SalonTimezone = "America/Argentina/Buenos_Aires"

const DateLayout = "2006-01-02"

func Location() *time.Location {
	loc, err := time.LoadLocation(SalonTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today returns the current salon-local date at midnight.
func Today() time.Time {
	now := Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func TodayString() string {
	return Today().Format(DateLayout)
}

// ParseDate interprets an ISO date in the salon timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, Location())
}
