package regobs

import (
	"fmt"
	"time"
)

// Oslo is the time zone every observation timestamp is interpreted in.
// The observation service covers Norway only, so the zone is fixed
// rather than derived from coordinates.
var Oslo = mustLoadLocation("Europe/Oslo")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("load time zone %s: %v", name, err))
	}
	return loc
}

// Date is a calendar day in ISO 8601 format (2006-01-02). The string
// representation orders chronologically, so Date works directly as an
// ordered map key.
type Date string

const dateLayout = "2006-01-02"

// NewDate builds a Date from a calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(dateLayout))
}

// DateOf truncates a timestamp to its calendar day in the Oslo zone.
func DateOf(t time.Time) Date {
	return Date(t.In(Oslo).Format(dateLayout))
}

// ParseDate parses an ISO 8601 day.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date(t.Format(dateLayout)), nil
}

// Time returns midnight of the day in the Oslo zone.
func (d Date) Time() time.Time {
	t, err := time.ParseInLocation(dateLayout, string(d), Oslo)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Add returns the date a number of days later.
func (d Date) Add(days int) Date {
	return Date(d.Time().AddDate(0, 0, days).Format(dateLayout))
}

func (d Date) String() string {
	return string(d)
}

// timeLayout is ISO 8601 with a zone offset and no fractional seconds,
// matching what the observation service emits and accepts.
const timeLayout = "2006-01-02T15:04:05-07:00"

func formatTime(t time.Time) string {
	return t.In(Oslo).Format(timeLayout)
}

// parseObsTime accepts timestamps with or without a zone offset.
// Offset-less timestamps are taken to be Oslo wall time.
func parseObsTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", s, Oslo)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
