package utils

import "time"

// NowRFC3339 returns the current UTC time formatted as RFC3339, the format
// used for upload timestamps on the wire.
func NowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ParseRFC3339 is the inverse of NowRFC3339. Returns zero time on failure.
func ParseRFC3339(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
