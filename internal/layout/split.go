package layout

import (
	"fmt"

	"github.com/airnav-tools/nasr/pkg/nasr"
)

// Split slices a fixed-width row into raw field values using the group's
// byte ranges, in field order. A row shorter than the group requires is a
// truncated record (nasr.ErrTruncatedRecord), never silently padded.
// Bytes past the last declared field are ignored.
func (g Group) Split(line string) ([]string, error) {
	raw := make([]string, len(g.Fields))
	for i, f := range g.Fields {
		if len(line) < f.End {
			return nil, fmt.Errorf("row is %d bytes but field %d needs [%d,%d): %w",
				len(line), i, f.Start, f.End, nasr.ErrTruncatedRecord)
		}
		raw[i] = line[f.Start:f.End]
	}
	return raw, nil
}
