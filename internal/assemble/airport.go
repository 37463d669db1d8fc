package assemble

import (
	"context"
	"fmt"

	"github.com/airnav-tools/nasr/internal/transform"
	"github.com/airnav-tools/nasr/pkg/nasr"
)

const aptDataFile = "APT.txt"

// Row type tags within the airport file.
const (
	aptTagPrimary = "APT"
	aptTagRunway  = "RWY"
	aptTagRemark  = "RMK"
)

// Transform pipelines per row shape, in layout group order. The first slot of
// every shape is the type tag, already consumed by dispatch.
var (
	aptPrimarySpecs = []transform.Spec{
		transform.Ignore(),                                 // type tag
		transform.Text(transform.NullNone),                 // site number
		transform.Enum(facilityTypeDomain, transform.NullNone),
		transform.Text(transform.NullNone),                 // location identifier
		transform.Text(transform.NullNone),                 // facility name
		transform.Text(transform.NullNone),                 // city
		transform.Text(transform.NullBlank),                // state code
		transform.Enum(ownershipDomain, transform.NullNone),
		transform.DMS(transform.NullNone),                  // latitude
		transform.DMS(transform.NullNone),                  // longitude
		transform.Int(transform.NullNone),                  // elevation, feet MSL
		transform.Text(transform.NullBlank),                // boundary ARTCC ident
		transform.Text(transform.NullBlank),                // tie-in FSS ident
		transform.Bool(transform.NullNone),                 // control tower
		transform.Frequency(transform.NullBlank),           // UNICOM
		transform.Uint(transform.NullBlank),                // based single-engine count
	}

	aptRunwaySpecs = []transform.Spec{
		transform.Ignore(),                  // type tag
		transform.Text(transform.NullNone),  // site number
		transform.Text(transform.NullNone),  // runway ident
		transform.Uint(transform.NullNone),  // length, feet
		transform.Uint(transform.NullNone),  // width, feet
		transform.Text(transform.NullBlank), // surface type
		transform.Enum(surfaceConditionDomain, transform.NullBlank),
	}

	aptRemarkSpecs = []transform.Spec{
		transform.Ignore(),                  // type tag
		transform.Text(transform.NullNone),  // site number
		transform.Text(transform.NullBlank), // element reference
		transform.Text(transform.NullNone),  // remark text
	}
)

// AirportParser assembles landing facilities from APT primary rows and their
// RWY and RMK continuations.
type AirportParser struct {
	fixedWidth
	registry *Registry[nasr.Airport]
}

var _ RecordParser = (*AirportParser)(nil)

// NewAirportParser creates a parser reading from dist.
func NewAirportParser(dist nasr.Distribution) *AirportParser {
	return &AirportParser{
		fixedWidth: newFixedWidth(dist, aptDataFile),
		registry:   NewRegistry[nasr.Airport](),
	}
}

func (p *AirportParser) RecordType() nasr.RecordType { return nasr.RecordTypeAirports }

func (p *AirportParser) Files() []string { return []string{aptDataFile} }

func (p *AirportParser) BeginFile(string) {}

func (p *AirportParser) ParseLine(ctx context.Context, line string) error {
	tag, err := p.tag(ctx, line)
	if err != nil {
		return err
	}

	switch tag {
	case aptTagPrimary:
		return p.parsePrimary(ctx, line)
	case aptTagRunway:
		return p.parseRunway(ctx, line)
	case aptTagRemark:
		return p.parseRemark(ctx, line)
	default:
		return fmt.Errorf("unrecognized row tag %q", tag)
	}
}

func (p *AirportParser) parsePrimary(ctx context.Context, line string) error {
	group, err := p.group(ctx, 0)
	if err != nil {
		return err
	}
	raw, err := group.Split(line)
	if err != nil {
		return err
	}
	row, err := transform.Apply(raw, aptPrimarySpecs)
	if err != nil {
		return err
	}

	airport := &nasr.Airport{}
	if airport.SiteNumber, err = row.Text(1); err != nil {
		return err
	}
	facility, err := row.Enum(2)
	if err != nil {
		return err
	}
	airport.FacilityType = nasr.FacilityType(facility)
	if airport.LID, err = row.Text(3); err != nil {
		return err
	}
	if airport.Name, err = row.Text(4); err != nil {
		return err
	}
	if airport.City, err = row.Text(5); err != nil {
		return err
	}
	if airport.StateCode, _, err = row.OptText(6); err != nil {
		return err
	}
	ownership, err := row.Enum(7)
	if err != nil {
		return err
	}
	airport.Ownership = nasr.Ownership(ownership)
	if airport.Latitude, err = row.Coordinate(8); err != nil {
		return err
	}
	if airport.Longitude, err = row.Coordinate(9); err != nil {
		return err
	}
	if airport.Elevation, err = row.Int(10); err != nil {
		return err
	}
	if airport.BoundaryARTCCID, _, err = row.OptText(11); err != nil {
		return err
	}
	if airport.TieInFSSID, _, err = row.OptText(12); err != nil {
		return err
	}
	if airport.ControlTower, err = row.Bool(13); err != nil {
		return err
	}
	unicom, ok, err := row.OptFrequency(14)
	if err != nil {
		return err
	}
	if ok {
		airport.UNICOM = &unicom
	}
	based, ok, err := row.OptUint(15)
	if err != nil {
		return err
	}
	if ok {
		airport.BasedSingleEngine = &based
	}

	p.registry.Insert(Key(airport.SiteNumber), airport)
	return nil
}

func (p *AirportParser) parseRunway(ctx context.Context, line string) error {
	group, err := p.group(ctx, 1)
	if err != nil {
		return err
	}
	raw, err := group.Split(line)
	if err != nil {
		return err
	}
	row, err := transform.Apply(raw, aptRunwaySpecs)
	if err != nil {
		return err
	}

	siteNumber, err := row.Text(1)
	if err != nil {
		return err
	}
	airport, ok := p.registry.Lookup(Key(siteNumber))
	if !ok {
		return unknownParent(nasr.RecordTypeAirports, Key(siteNumber))
	}

	runway := nasr.Runway{}
	if runway.Ident, err = row.Text(2); err != nil {
		return err
	}
	if runway.Length, err = row.Uint(3); err != nil {
		return err
	}
	if runway.Width, err = row.Uint(4); err != nil {
		return err
	}
	if runway.SurfaceType, _, err = row.OptText(5); err != nil {
		return err
	}
	condition, _, err := row.OptEnum(6)
	if err != nil {
		return err
	}
	runway.Condition = nasr.SurfaceCondition(condition)

	airport.Runways = append(airport.Runways, runway)
	return nil
}

func (p *AirportParser) parseRemark(ctx context.Context, line string) error {
	group, err := p.group(ctx, 2)
	if err != nil {
		return err
	}
	raw, err := group.Split(line)
	if err != nil {
		return err
	}
	row, err := transform.Apply(raw, aptRemarkSpecs)
	if err != nil {
		return err
	}

	siteNumber, err := row.Text(1)
	if err != nil {
		return err
	}
	airport, ok := p.registry.Lookup(Key(siteNumber))
	if !ok {
		return unknownParent(nasr.RecordTypeAirports, Key(siteNumber))
	}

	remark := nasr.Remark{}
	if remark.Element, _, err = row.OptText(2); err != nil {
		return err
	}
	if remark.Text, err = row.Text(3); err != nil {
		return err
	}

	airport.Remarks = append(airport.Remarks, remark)
	return nil
}

func (p *AirportParser) Finish(data *nasr.Data) error {
	return data.Populate(nasr.RecordTypeAirports, p.registry.Values())
}

func (p *AirportParser) Records() int { return p.registry.Len() }

func (p *AirportParser) Replaced() int { return p.registry.Replaced() }
