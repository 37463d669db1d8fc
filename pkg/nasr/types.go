package nasr

import (
	"errors"
	"fmt"
	"strings"
)

// RecordType identifies a category of aeronautical fact within a
// distribution. Each record type has its own data file, layout description
// (fixed-width types) or header row (CSV types), and transform rules.
type RecordType string

const (
	// RecordTypeAirports covers airports, heliports and other landing
	// facilities (fixed-width APT file).
	RecordTypeAirports RecordType = "APT"

	// RecordTypeARTCCs covers air route traffic control center facilities
	// (fixed-width AFF file).
	RecordTypeARTCCs RecordType = "AFF"

	// RecordTypeFSSes covers flight service stations (fixed-width FSS file).
	RecordTypeFSSes RecordType = "FSS"

	// RecordTypeWeatherStations covers automated weather sensor stations
	// (CSV AWOS base file plus remark satellite file).
	RecordTypeWeatherStations RecordType = "AWOS"
)

// AllRecordTypes lists every record type this decoder implements, in the
// order the parse command processes them by default.
var AllRecordTypes = []RecordType{
	RecordTypeAirports,
	RecordTypeARTCCs,
	RecordTypeFSSes,
	RecordTypeWeatherStations,
}

// IsValid returns true if rt is a record type this decoder implements.
func (rt RecordType) IsValid() bool {
	for _, known := range AllRecordTypes {
		if rt == known {
			return true
		}
	}
	return false
}

// ParseRecordType converts a case-insensitive type name into a RecordType.
func ParseRecordType(s string) (RecordType, error) {
	rt := RecordType(strings.ToUpper(strings.TrimSpace(s)))
	if !rt.IsValid() {
		return "", fmt.Errorf("unknown record type %q: %w", s, ErrInvalidConfig)
	}
	return rt, nil
}

// ParseConfig contains all parameters needed for one parse run over a
// distribution.
type ParseConfig struct {
	// SourcePath is the directory holding the extracted distribution files.
	SourcePath string

	// Types are the record types to parse. Empty means all implemented types.
	Types []RecordType

	// Cycle is the distribution's effectivity metadata, carried on the
	// resulting graph but not interpreted by the decoder.
	Cycle Cycle

	// ContinueOnError makes every row-level decode failure a skip instead of
	// prompting; schema-fatal failures still abort the affected type.
	ContinueOnError bool

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the ParseConfig has all required fields and valid
// values. It returns a multi-error if multiple validation failures occur.
func (c *ParseConfig) Validate() error {
	var errs []error

	if c.SourcePath == "" {
		errs = append(errs, fmt.Errorf("SourcePath is required: %w", ErrInvalidConfig))
	}

	for _, rt := range c.Types {
		if !rt.IsValid() {
			errs = append(errs, fmt.Errorf("unknown record type %q: %w", rt, ErrInvalidConfig))
		}
	}

	return errors.Join(errs...)
}
