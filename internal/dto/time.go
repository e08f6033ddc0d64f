package dto

import "time"

// Timestamps cross the API boundary as integer nanoseconds since the Unix epoch.

// FromUnixNano converts an epoch-nanosecond value into a UTC time.
func FromUnixNano(ns int64) time.Time {
	return time.Unix(0, ns).UTC()
}

// FromUnixNanoPtr converts an optional epoch-nanosecond value.
func FromUnixNanoPtr(ns *int64) *time.Time {
	if ns == nil {
		return nil
	}
	t := FromUnixNano(*ns)
	return &t
}

// ToUnixNanoPtr converts an optional time into epoch nanoseconds.
func ToUnixNanoPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ns := t.UnixNano()
	return &ns
}
