package domain

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"time"
)

// DateLayout is the wire and form format for pickup dates.
const DateLayout = "2006-01-02"

var ErrInvalidPickupDate = errors.New("pickup date must be formatted as YYYY-MM-DD")

// PickupDate is a calendar date on which orders may be collected.
type PickupDate struct {
	ID     int64
	Date   time.Time
	IsOpen bool
	Label  string
}

// Key is the canonical YYYY-MM-DD form used for selection.
func (d *PickupDate) Key() string {
	return d.Date.Format(DateLayout)
}

// DisplayLabel prefers the configured label and falls back to the date itself.
func (d *PickupDate) DisplayLabel() string {
	if label := strings.TrimSpace(d.Label); label != "" {
		return label
	}
	return d.Key()
}

// ParseDate parses a YYYY-MM-DD value. Timestamps are truncated to their date part.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) > len(DateLayout) {
		raw = raw[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, ErrInvalidPickupDate
	}
	return t, nil
}

// OpenPickupDates keeps open entries and orders them by date ascending.
func OpenPickupDates(dates []*PickupDate) []*PickupDate {
	open := make([]*PickupDate, 0, len(dates))
	for _, d := range dates {
		if d != nil && d.IsOpen {
			copy := *d
			open = append(open, &copy)
		}
	}
	slices.SortStableFunc(open, func(a, b *PickupDate) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return open
}

// ContainsDate reports whether key matches one of the dates.
func ContainsDate(dates []*PickupDate, key string) bool {
	return slices.ContainsFunc(dates, func(d *PickupDate) bool { return d.Key() == key })
}
