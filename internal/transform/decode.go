package transform

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/airnav-tools/nasr/pkg/nasr"
)

func decodeUint(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid unsigned integer")
	}
	return uint(v), nil
}

func decodeInt(raw string) (int, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid signed integer")
	}
	return int(v), nil
}

func decodeBool(raw string) (bool, error) {
	switch raw {
	case "Y", "YES", "TRUE":
		return true, nil
	case "N", "NO", "FALSE":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean (want Y or N)")
	}
}

func decodeDate(raw, layout string) (nasr.Date, error) {
	t, err := time.Parse(layout, raw)
	if err != nil {
		return nasr.Date{}, fmt.Errorf("invalid date (want %s)", layout)
	}
	return nasr.Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// ParseDMS decodes a degrees-minutes-seconds coordinate as published in
// fixed-width files: "DD-MM-SS.SSS" followed by a hemisphere letter, e.g.
// "38-51-07.100N". Seconds may omit the fraction.
func ParseDMS(raw string) (nasr.Coordinate, error) {
	if len(raw) < 2 {
		return nasr.Coordinate{}, fmt.Errorf("invalid coordinate")
	}

	hemi := raw[len(raw)-1]
	switch hemi {
	case 'N', 'S', 'E', 'W':
	default:
		return nasr.Coordinate{}, fmt.Errorf("invalid coordinate hemisphere %q", string(hemi))
	}

	parts := strings.Split(raw[:len(raw)-1], "-")
	if len(parts) != 3 {
		return nasr.Coordinate{}, fmt.Errorf("invalid coordinate (want DD-MM-SS.SSSH)")
	}

	deg, err := strconv.Atoi(parts[0])
	if err != nil || deg < 0 {
		return nasr.Coordinate{}, fmt.Errorf("invalid coordinate degrees %q", parts[0])
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return nasr.Coordinate{}, fmt.Errorf("invalid coordinate minutes %q", parts[1])
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || seconds < 0 || seconds >= 60 {
		return nasr.Coordinate{}, fmt.Errorf("invalid coordinate seconds %q", parts[2])
	}

	return nasr.Coordinate{
		Degrees:    deg,
		Minutes:    minutes,
		Seconds:    seconds,
		Hemisphere: hemi,
	}, nil
}

// ParseFrequency decodes a megahertz-text frequency, optionally carrying a
// trailing modifier letter: "122.2", "255.4", "121.5R".
func ParseFrequency(raw string) (nasr.Frequency, error) {
	digits := raw
	modifier := ""
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c >= 'A' && c <= 'Z' {
			continue
		}
		modifier = digits[i+1:]
		digits = digits[:i+1]
		break
	}
	if digits == "" {
		return nasr.Frequency{}, fmt.Errorf("malformed frequency")
	}

	whole, frac, _ := strings.Cut(digits, ".")
	mhz, err := strconv.ParseUint(whole, 10, 32)
	if err != nil {
		return nasr.Frequency{}, fmt.Errorf("malformed frequency")
	}
	khz := uint(mhz) * 1000

	if frac != "" {
		if len(frac) > 3 {
			frac = frac[:3]
		}
		for len(frac) < 3 {
			frac += "0"
		}
		f, err := strconv.ParseUint(frac, 10, 32)
		if err != nil {
			return nasr.Frequency{}, fmt.Errorf("malformed frequency")
		}
		khz += uint(f)
	}

	if khz == 0 {
		return nasr.Frequency{}, fmt.Errorf("malformed frequency")
	}
	return nasr.Frequency{KHz: khz, Modifier: modifier}, nil
}
