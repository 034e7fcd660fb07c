// Copyright (c) 2026 Jelajah. All rights reserved.
// Author: nanda.prasetyo.dev@gmail.com

// Package date provides a calendar date type that marshals to the
// "YYYY-MM-DD" wire format used by the tour API for publication dates.
package date

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the wire format for calendar dates.
const Layout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
//
// It embeds [time.Time] so it scans directly from PostgreSQL DATE columns,
// while JSON encoding is restricted to the date-only layout.
type Date struct {
	time.Time
}

// New constructs a Date from year, month, and day in UTC.
func New(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse parses a "YYYY-MM-DD" string into a Date.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("date: invalid value %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// MarshalJSON encodes the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(Layout) + `"`), nil
}

// UnmarshalJSON decodes a quoted "YYYY-MM-DD" string. It also tolerates a
// full RFC 3339 timestamp and truncates it to the date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}

	if parsed, err := time.Parse(Layout, s); err == nil {
		d.Time = parsed
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("date: invalid value %q", s)
	}
	d.Time = parsed.Truncate(24 * time.Hour)
	return nil
}

// String implements fmt.Stringer using the wire layout.
func (d Date) String() string {
	return d.Format(Layout)
}
