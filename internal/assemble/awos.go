package assemble

import (
	"context"
	"fmt"
	"strconv"

	"github.com/airnav-tools/nasr/internal/transform"
	"github.com/airnav-tools/nasr/pkg/nasr"
)

const (
	awosBaseFile   = "AWOS.csv"
	awosRemarkFile = "AWOS_RMK.csv"
)

// decimalDegrees decodes the CSV coordinate columns, which are published as
// signed decimal degrees rather than DMS text.
func decimalDegrees(raw string) (any, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal coordinate")
	}
	if v < -180 || v > 180 {
		return nil, fmt.Errorf("decimal coordinate %v out of range", v)
	}
	return v, nil
}

var (
	awosBaseColumns = []string{
		"ASOS_AWOS_ID", "SENSOR_TYPE", "COMMISSIONED_DATE",
		"STATION_FREQ", "LAT_DECIMAL", "LON_DECIMAL", "APT_SITE_NO",
	}
	awosBaseSpecs = []transform.Spec{
		transform.Text(transform.NullNone), // sensor ident
		transform.Enum(sensorTypeDomain, transform.NullNone),
		transform.Date("01/02/2006", transform.NullBlank),
		transform.Frequency(transform.NullBlank),
		transform.Generic(decimalDegrees, transform.NullNone), // latitude
		transform.Generic(decimalDegrees, transform.NullNone), // longitude
		transform.Text(transform.NullBlank),                   // airport site number
	}

	awosRemarkColumns = []string{"ASOS_AWOS_ID", "REMARK"}
	awosRemarkSpecs   = []transform.Spec{
		transform.Text(transform.NullNone),
		transform.Text(transform.NullNone),
	}
)

// WeatherStationParser assembles automated weather sensor stations from the
// CSV base file plus the remark satellite file. Unlike the fixed-width
// parsers there is no layout description; each file's header row binds the
// needed columns by name.
type WeatherStationParser struct {
	registry *Registry[nasr.WeatherStation]

	file    string // current file, set by BeginFile
	columns csvColumns
}

var _ RecordParser = (*WeatherStationParser)(nil)

// NewWeatherStationParser creates a parser. It takes no distribution because
// CSV row shapes come from headers, not companion files.
func NewWeatherStationParser() *WeatherStationParser {
	return &WeatherStationParser{registry: NewRegistry[nasr.WeatherStation]()}
}

func (p *WeatherStationParser) RecordType() nasr.RecordType {
	return nasr.RecordTypeWeatherStations
}

func (p *WeatherStationParser) Files() []string {
	// The base file must stream first: remark rows reference sensors by
	// ident and an unknown ident is a hard failure.
	return []string{awosBaseFile, awosRemarkFile}
}

func (p *WeatherStationParser) BeginFile(name string) {
	p.file = name
	p.columns.reset()
	switch name {
	case awosBaseFile:
		p.columns.names = awosBaseColumns
	case awosRemarkFile:
		p.columns.names = awosRemarkColumns
	}
}

func (p *WeatherStationParser) ParseLine(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fields, err := splitCSV(line)
	if err != nil {
		return err
	}
	if fields == nil {
		return nil // blank line
	}

	// First row of each file is the header.
	if !p.columns.bound() {
		return p.columns.bind(p.file, fields)
	}

	raw, err := p.columns.selectFrom(fields)
	if err != nil {
		return err
	}

	switch p.file {
	case awosBaseFile:
		return p.parseBase(raw)
	case awosRemarkFile:
		return p.parseRemark(raw)
	default:
		return fmt.Errorf("unexpected file %q", p.file)
	}
}

func (p *WeatherStationParser) parseBase(raw []string) error {
	row, err := transform.Apply(raw, awosBaseSpecs)
	if err != nil {
		return err
	}

	station := &nasr.WeatherStation{}
	if station.Ident, err = row.Text(0); err != nil {
		return err
	}
	sensor, err := row.Enum(1)
	if err != nil {
		return err
	}
	station.SensorType = nasr.SensorType(sensor)
	if station.Commissioned, _, err = row.OptDate(2); err != nil {
		return err
	}
	freq, ok, err := row.OptFrequency(3)
	if err != nil {
		return err
	}
	if ok {
		station.Frequency = &freq
	}
	lat, err := row.Generic(4)
	if err != nil {
		return err
	}
	station.Latitude = lat.(float64)
	lon, err := row.Generic(5)
	if err != nil {
		return err
	}
	station.Longitude = lon.(float64)
	if station.AirportSiteNumber, _, err = row.OptText(6); err != nil {
		return err
	}

	p.registry.Insert(Key(station.Ident), station)
	return nil
}

func (p *WeatherStationParser) parseRemark(raw []string) error {
	row, err := transform.Apply(raw, awosRemarkSpecs)
	if err != nil {
		return err
	}

	ident, err := row.Text(0)
	if err != nil {
		return err
	}
	station, ok := p.registry.Lookup(Key(ident))
	if !ok {
		return unknownParent(nasr.RecordTypeWeatherStations, Key(ident))
	}

	remark, err := row.Text(1)
	if err != nil {
		return err
	}
	station.Remarks = append(station.Remarks, remark)
	return nil
}

func (p *WeatherStationParser) Finish(data *nasr.Data) error {
	return data.Populate(nasr.RecordTypeWeatherStations, p.registry.Values())
}

func (p *WeatherStationParser) Records() int { return p.registry.Len() }

func (p *WeatherStationParser) Replaced() int { return p.registry.Replaced() }
