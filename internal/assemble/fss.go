package assemble

import (
	"context"
	"strings"

	"github.com/airnav-tools/nasr/internal/transform"
	"github.com/airnav-tools/nasr/pkg/nasr"
)

const fssDataFile = "FSS.txt"

// continuationSentinel marks a flight service station continuation row: the
// file has no leading type tag, so the publisher appends '*' to the shared
// ident field instead.
const continuationSentinel = "*"

var (
	fssPrimarySpecs = []transform.Spec{
		transform.Text(transform.NullNone),                 // station ident
		transform.Text(transform.NullNone),                 // station name
		transform.Date("01/02/2006", transform.NullBlank),  // information-current date
		transform.Text(transform.NullBlank),                // airport site number
		transform.DMS(transform.NullNone),                  // latitude
		transform.DMS(transform.NullNone),                  // longitude
		transform.Delimited(";", transform.Text(transform.NullBlank), transform.NullCompact), // phones
	}

	fssOutletSpecs = []transform.Spec{
		transform.Text(transform.NullNone), // station ident with sentinel
		transform.Text(transform.NullNone), // outlet name
		transform.Frequency(transform.NullNone),
	}
)

// FSSParser assembles flight service stations. Primary rows carry the bare
// station ident; continuation rows carry the ident with the sentinel
// appended and append one communications outlet each.
type FSSParser struct {
	fixedWidth
	registry *Registry[nasr.FSS]
}

var _ RecordParser = (*FSSParser)(nil)

// NewFSSParser creates a parser reading from dist.
func NewFSSParser(dist nasr.Distribution) *FSSParser {
	return &FSSParser{
		fixedWidth: newFixedWidth(dist, fssDataFile),
		registry:   NewRegistry[nasr.FSS](),
	}
}

func (p *FSSParser) RecordType() nasr.RecordType { return nasr.RecordTypeFSSes }

func (p *FSSParser) Files() []string { return []string{fssDataFile} }

func (p *FSSParser) BeginFile(string) {}

func (p *FSSParser) ParseLine(ctx context.Context, line string) error {
	// The ident field doubles as the row classifier.
	ident, err := p.tag(ctx, line)
	if err != nil {
		return err
	}

	if strings.HasSuffix(ident, continuationSentinel) {
		return p.parseOutlet(ctx, line)
	}
	return p.parsePrimary(ctx, line)
}

func (p *FSSParser) parsePrimary(ctx context.Context, line string) error {
	group, err := p.group(ctx, 0)
	if err != nil {
		return err
	}
	raw, err := group.Split(line)
	if err != nil {
		return err
	}
	row, err := transform.Apply(raw, fssPrimarySpecs)
	if err != nil {
		return err
	}

	station := &nasr.FSS{}
	if station.Ident, err = row.Text(0); err != nil {
		return err
	}
	if station.Name, err = row.Text(1); err != nil {
		return err
	}
	if station.Updated, _, err = row.OptDate(2); err != nil {
		return err
	}
	if station.AirportSiteNumber, _, err = row.OptText(3); err != nil {
		return err
	}
	if station.Latitude, err = row.Coordinate(4); err != nil {
		return err
	}
	if station.Longitude, err = row.Coordinate(5); err != nil {
		return err
	}
	if station.Phones, err = row.TextArray(6); err != nil {
		return err
	}

	p.registry.Insert(Key(station.Ident), station)
	return nil
}

func (p *FSSParser) parseOutlet(ctx context.Context, line string) error {
	group, err := p.group(ctx, 1)
	if err != nil {
		return err
	}
	raw, err := group.Split(line)
	if err != nil {
		return err
	}
	row, err := transform.Apply(raw, fssOutletSpecs)
	if err != nil {
		return err
	}

	marked, err := row.Text(0)
	if err != nil {
		return err
	}
	ident := strings.TrimSuffix(marked, continuationSentinel)
	station, ok := p.registry.Lookup(Key(ident))
	if !ok {
		return unknownParent(nasr.RecordTypeFSSes, Key(ident))
	}

	outlet := nasr.Outlet{}
	if outlet.Name, err = row.Text(1); err != nil {
		return err
	}
	if outlet.Frequency, err = row.Frequency(2); err != nil {
		return err
	}

	station.Outlets = append(station.Outlets, outlet)
	return nil
}

func (p *FSSParser) Finish(data *nasr.Data) error {
	return data.Populate(nasr.RecordTypeFSSes, p.registry.Values())
}

func (p *FSSParser) Records() int { return p.registry.Len() }

func (p *FSSParser) Replaced() int { return p.registry.Replaced() }
