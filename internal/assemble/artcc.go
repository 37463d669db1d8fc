package assemble

import (
	"context"
	"fmt"

	"github.com/airnav-tools/nasr/internal/transform"
	"github.com/airnav-tools/nasr/pkg/nasr"
)

const affDataFile = "AFF.txt"

// Row type tags within the center facility file.
const (
	affTagPrimary         = "AFF1"
	affTagRemark          = "AFF2"
	affTagFrequency       = "AFF3"
	affTagFrequencyRemark = "AFF4"
)

// Every AFF row repeats the composite key fields (ident, location name,
// facility type) so continuations can find their site.
var (
	affPrimarySpecs = []transform.Spec{
		transform.Ignore(),                 // type tag
		transform.Text(transform.NullNone), // center ident
		transform.Text(transform.NullNone), // center name
		transform.Text(transform.NullNone), // site location name
		transform.Enum(artccFacilityDomain, transform.NullNone),
		transform.DMS(transform.NullNone), // latitude
		transform.DMS(transform.NullNone), // longitude
	}

	affRemarkSpecs = []transform.Spec{
		transform.Ignore(),                 // type tag
		transform.Text(transform.NullNone), // center ident
		transform.Text(transform.NullNone), // site location name
		transform.Enum(artccFacilityDomain, transform.NullNone),
		transform.Uint(transform.NullNone), // remark sequence
		transform.Text(transform.NullNone), // remark text
	}

	affFrequencySpecs = []transform.Spec{
		transform.Ignore(),                 // type tag
		transform.Text(transform.NullNone), // center ident
		transform.Text(transform.NullNone), // site location name
		transform.Enum(artccFacilityDomain, transform.NullNone),
		transform.Frequency(transform.NullNone),
		transform.Text(transform.NullBlank), // altitude sector
		transform.Text(transform.NullBlank), // associated airport site number
	}

	affFrequencyRemarkSpecs = []transform.Spec{
		transform.Ignore(),                 // type tag
		transform.Text(transform.NullNone), // center ident
		transform.Text(transform.NullNone), // site location name
		transform.Enum(artccFacilityDomain, transform.NullNone),
		transform.Frequency(transform.NullNone),
		transform.Uint(transform.NullNone), // remark sequence
		transform.Text(transform.NullNone), // remark text
	}
)

// ARTCCParser assembles center facilities from AFF1 primary rows and their
// AFF2/AFF3/AFF4 continuations. One center ident covers many physical sites,
// so records key on the composite ident + location + facility type.
type ARTCCParser struct {
	fixedWidth
	registry *Registry[nasr.ARTCC]
}

var _ RecordParser = (*ARTCCParser)(nil)

// NewARTCCParser creates a parser reading from dist.
func NewARTCCParser(dist nasr.Distribution) *ARTCCParser {
	return &ARTCCParser{
		fixedWidth: newFixedWidth(dist, affDataFile),
		registry:   NewRegistry[nasr.ARTCC](),
	}
}

func (p *ARTCCParser) RecordType() nasr.RecordType { return nasr.RecordTypeARTCCs }

func (p *ARTCCParser) Files() []string { return []string{affDataFile} }

func (p *ARTCCParser) BeginFile(string) {}

func (p *ARTCCParser) ParseLine(ctx context.Context, line string) error {
	tag, err := p.tag(ctx, line)
	if err != nil {
		return err
	}

	switch tag {
	case affTagPrimary:
		return p.parsePrimary(ctx, line)
	case affTagRemark:
		return p.parseRemark(ctx, line)
	case affTagFrequency:
		return p.parseFrequency(ctx, line)
	case affTagFrequencyRemark:
		return p.parseFrequencyRemark(ctx, line)
	default:
		return fmt.Errorf("unrecognized row tag %q", tag)
	}
}

func (p *ARTCCParser) parsePrimary(ctx context.Context, line string) error {
	row, err := p.decode(ctx, 0, line, affPrimarySpecs)
	if err != nil {
		return err
	}

	center := &nasr.ARTCC{}
	if center.Ident, err = row.Text(1); err != nil {
		return err
	}
	if center.Name, err = row.Text(2); err != nil {
		return err
	}
	if center.LocationName, err = row.Text(3); err != nil {
		return err
	}
	facility, err := row.Enum(4)
	if err != nil {
		return err
	}
	center.FacilityType = nasr.ARTCCFacilityType(facility)
	if center.Latitude, err = row.Coordinate(5); err != nil {
		return err
	}
	if center.Longitude, err = row.Coordinate(6); err != nil {
		return err
	}

	key := CompositeKey(center.Ident, center.LocationName, facility)
	p.registry.Insert(key, center)
	return nil
}

func (p *ARTCCParser) parseRemark(ctx context.Context, line string) error {
	row, err := p.decode(ctx, 1, line, affRemarkSpecs)
	if err != nil {
		return err
	}
	center, err := p.parent(row)
	if err != nil {
		return err
	}

	remark := nasr.ARTCCRemark{}
	if remark.Sequence, err = row.Uint(4); err != nil {
		return err
	}
	if remark.Text, err = row.Text(5); err != nil {
		return err
	}

	center.Remarks = append(center.Remarks, remark)
	return nil
}

func (p *ARTCCParser) parseFrequency(ctx context.Context, line string) error {
	row, err := p.decode(ctx, 2, line, affFrequencySpecs)
	if err != nil {
		return err
	}
	center, err := p.parent(row)
	if err != nil {
		return err
	}

	freq := nasr.CommFrequency{}
	if freq.Frequency, err = row.Frequency(4); err != nil {
		return err
	}
	if freq.AltitudeSector, _, err = row.OptText(5); err != nil {
		return err
	}
	if freq.AirportSiteNumber, _, err = row.OptText(6); err != nil {
		return err
	}

	center.Frequencies = append(center.Frequencies, freq)
	return nil
}

func (p *ARTCCParser) parseFrequencyRemark(ctx context.Context, line string) error {
	row, err := p.decode(ctx, 3, line, affFrequencyRemarkSpecs)
	if err != nil {
		return err
	}
	center, err := p.parent(row)
	if err != nil {
		return err
	}

	remark := nasr.FrequencyRemark{}
	if remark.Frequency, err = row.Frequency(4); err != nil {
		return err
	}
	if remark.Sequence, err = row.Uint(5); err != nil {
		return err
	}
	if remark.Text, err = row.Text(6); err != nil {
		return err
	}

	center.FrequencyRemarks = append(center.FrequencyRemarks, remark)
	return nil
}

// decode splits the line with group g and runs it through specs.
func (p *ARTCCParser) decode(ctx context.Context, g int, line string, specs []transform.Spec) (transform.Row, error) {
	group, err := p.group(ctx, g)
	if err != nil {
		return transform.Row{}, err
	}
	raw, err := group.Split(line)
	if err != nil {
		return transform.Row{}, err
	}
	return transform.Apply(raw, specs)
}

// parent resolves a continuation row's composite key. All continuation
// shapes carry ident, location and facility type at indexes 1..3.
func (p *ARTCCParser) parent(row transform.Row) (*nasr.ARTCC, error) {
	ident, err := row.Text(1)
	if err != nil {
		return nil, err
	}
	location, err := row.Text(2)
	if err != nil {
		return nil, err
	}
	facility, err := row.Enum(3)
	if err != nil {
		return nil, err
	}

	key := CompositeKey(ident, location, facility)
	center, ok := p.registry.Lookup(key)
	if !ok {
		return nil, unknownParent(nasr.RecordTypeARTCCs, key)
	}
	return center, nil
}

func (p *ARTCCParser) Finish(data *nasr.Data) error {
	return data.Populate(nasr.RecordTypeARTCCs, p.registry.Values())
}

func (p *ARTCCParser) Records() int { return p.registry.Len() }

func (p *ARTCCParser) Replaced() int { return p.registry.Replaced() }
