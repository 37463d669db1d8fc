package nasr

import (
	"fmt"
	"sync"
)

// Data is the cross-reference graph for one loaded distribution. It owns one
// optional collection per record type: a collection is nil until that type's
// parse pass finishes, then it is populated exactly once and its records
// become immutable.
//
// Reads are safe for unlimited concurrent callers. Populate for one type
// never interleaves with reads of that same type because each record type's
// pipeline publishes only once, at its own finish; the mutex exists so that
// concurrently finishing pipelines do not race each other.
//
// Resolution is soft everywhere: looking up a key in an unpopulated
// collection and missing a key in a populated one both return nil.
type Data struct {
	// Cycle is the distribution's effectivity metadata.
	Cycle Cycle

	mu        sync.RWMutex
	airports  []*Airport
	artccs    []*ARTCC
	fsses     []*FSS
	stations  []*WeatherStation
	populated map[RecordType]bool
}

// NewData creates an empty graph for one distribution.
func NewData(cycle Cycle) *Data {
	return &Data{
		Cycle:     cycle,
		populated: make(map[RecordType]bool),
	}
}

// Populate installs a record type's completed collection. It may be called
// at most once per type per graph; a second call returns ErrAlreadyPopulated
// and leaves the graph unchanged.
//
// records must be the slice type matching rt ([]*Airport for
// RecordTypeAirports, and so on). Populating binds every record, and every
// nested sub-structure that declares a cross-reference need, to this graph,
// so their resolver accessors answer against it from then on.
func (d *Data) Populate(rt RecordType, records any) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.populated[rt] {
		return fmt.Errorf("%s: %w", rt, ErrAlreadyPopulated)
	}

	switch rt {
	case RecordTypeAirports:
		airports, ok := records.([]*Airport)
		if !ok {
			return fmt.Errorf("populate %s: want []*Airport, got %T: %w", rt, records, ErrInvalidConfig)
		}
		for _, a := range airports {
			a.data = d
		}
		d.airports = airports

	case RecordTypeARTCCs:
		artccs, ok := records.([]*ARTCC)
		if !ok {
			return fmt.Errorf("populate %s: want []*ARTCC, got %T: %w", rt, records, ErrInvalidConfig)
		}
		for _, c := range artccs {
			c.data = d
			for i := range c.Frequencies {
				c.Frequencies[i].data = d
			}
		}
		d.artccs = artccs

	case RecordTypeFSSes:
		fsses, ok := records.([]*FSS)
		if !ok {
			return fmt.Errorf("populate %s: want []*FSS, got %T: %w", rt, records, ErrInvalidConfig)
		}
		for _, f := range fsses {
			f.data = d
		}
		d.fsses = fsses

	case RecordTypeWeatherStations:
		stations, ok := records.([]*WeatherStation)
		if !ok {
			return fmt.Errorf("populate %s: want []*WeatherStation, got %T: %w", rt, records, ErrInvalidConfig)
		}
		for _, s := range stations {
			s.data = d
		}
		d.stations = stations

	default:
		return fmt.Errorf("unknown record type %q: %w", rt, ErrInvalidConfig)
	}

	d.populated[rt] = true
	return nil
}

// Populated reports whether rt's collection has been installed.
func (d *Data) Populated(rt RecordType) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.populated[rt]
}

// Airports returns the airport collection, or nil if not yet populated.
func (d *Data) Airports() []*Airport {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.airports
}

// ARTCCs returns the ARTCC collection, or nil if not yet populated.
func (d *Data) ARTCCs() []*ARTCC {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.artccs
}

// FSSes returns the flight service station collection, or nil if not yet
// populated.
func (d *Data) FSSes() []*FSS {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.fsses
}

// WeatherStations returns the weather station collection, or nil if not yet
// populated.
func (d *Data) WeatherStations() []*WeatherStation {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.stations
}

// FindAirport returns the first airport with the given site number, or nil.
func (d *Data) FindAirport(siteNumber string) *Airport {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, a := range d.airports {
		if a.SiteNumber == siteNumber {
			return a
		}
	}
	return nil
}

// FindAirportByLID returns the first airport with the given location
// identifier, or nil.
func (d *Data) FindAirportByLID(lid string) *Airport {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, a := range d.airports {
		if a.LID == lid {
			return a
		}
	}
	return nil
}

// FindARTCC returns the first ARTCC facility with the given ident, or nil.
// An ident names several physical sites; first match follows file order.
func (d *Data) FindARTCC(ident string) *ARTCC {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, c := range d.artccs {
		if c.Ident == ident {
			return c
		}
	}
	return nil
}

// FindFSS returns the flight service station with the given ident, or nil.
func (d *Data) FindFSS(ident string) *FSS {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, f := range d.fsses {
		if f.Ident == ident {
			return f
		}
	}
	return nil
}

// FindWeatherStation returns the weather station with the given ident, or
// nil.
func (d *Data) FindWeatherStation(ident string) *WeatherStation {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, s := range d.stations {
		if s.Ident == ident {
			return s
		}
	}
	return nil
}
