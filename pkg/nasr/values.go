package nasr

import (
	"fmt"
	"math"
	"time"
)

// Date is a calendar date without a time-of-day or zone. Distribution files
// carry dates as text in publisher-chosen formats; the transform pipeline
// normalizes them into this type.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time returns the date as a time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Cycle is the distribution's 28-day effectivity period metadata. It travels
// with the parsed graph but is not interpreted by the decoding engine.
type Cycle struct {
	Effective Date
}

func (c Cycle) String() string {
	if c.Effective.IsZero() {
		return "unknown"
	}
	return c.Effective.String()
}

// Coordinate is a geographic latitude or longitude in
// degrees-minutes-seconds form, as published in fixed-width files
// (e.g. "38-51-07.100N").
type Coordinate struct {
	Degrees    int
	Minutes    int
	Seconds    float64
	Hemisphere byte // 'N', 'S', 'E' or 'W'
}

// Decimal returns the coordinate in signed decimal degrees.
// South and west hemispheres are negative.
func (c Coordinate) Decimal() float64 {
	deg := float64(c.Degrees) + float64(c.Minutes)/60 + c.Seconds/3600
	if c.Hemisphere == 'S' || c.Hemisphere == 'W' {
		return -deg
	}
	return deg
}

// IsZero returns true if the coordinate is the zero value.
func (c Coordinate) IsZero() bool {
	return c.Hemisphere == 0 && c.Degrees == 0 && c.Minutes == 0 && c.Seconds == 0
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%02d-%02d-%06.3f%c", c.Degrees, c.Minutes, c.Seconds, c.Hemisphere)
}

// Frequency is a radio frequency in kilohertz. Distribution files publish
// frequencies in megahertz text ("122.200"), sometimes with a trailing
// modifier letter (e.g. "R" for receive-only outlets).
type Frequency struct {
	KHz      uint
	Modifier string
}

// MHz returns the frequency in megahertz.
func (f Frequency) MHz() float64 {
	return float64(f.KHz) / 1000
}

func (f Frequency) String() string {
	mhz := f.MHz()
	// Print with the minimum precision that round-trips kHz.
	if f.KHz%1000 == 0 {
		return fmt.Sprintf("%.0f%s", mhz, f.Modifier)
	}
	if f.KHz%100 == 0 {
		return fmt.Sprintf("%.1f%s", mhz, f.Modifier)
	}
	if f.KHz%10 == 0 {
		return fmt.Sprintf("%.2f%s", mhz, f.Modifier)
	}
	return fmt.Sprintf("%.3f%s", mhz, f.Modifier)
}

// ApproxEqual reports whether two decimal-degree values agree to
// about a tenth of an arcsecond. Used by tests and de-duplication.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-5
}
