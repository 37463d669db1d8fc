package assemble

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airnav-tools/nasr/internal/distribution"
	"github.com/airnav-tools/nasr/pkg/nasr"
)

func affTestDist() nasr.Distribution {
	return distribution.NewMemory(map[string]string{"aff_rf.txt": affLayout})
}

func affPrimaryRow(ident, location, facility string) string {
	return composeRow(78, map[int]string{
		0: "AFF1", 4: ident, 8: "LOS ANGELES ARTCC", 28: location, 44: facility,
		49: "34-36-14.000N", 63: "118-05-01.000W",
	})
}

func TestARTCCParser_CompositeKeyAcrossSites(t *testing.T) {
	ctx := context.Background()
	p := NewARTCCParser(affTestDist())
	p.BeginFile("AFF.txt")

	// Same ident at two physical sites: two distinct records.
	require.NoError(t, p.ParseLine(ctx, affPrimaryRow("ZLA", "PALMDALE", "ARTCC")))
	require.NoError(t, p.ParseLine(ctx, affPrimaryRow("ZLA", "SAN PEDRO", "RCAG")))
	assert.Equal(t, 2, p.Records())
	assert.Zero(t, p.Replaced())

	// Continuations land on the site their key fields name.
	require.NoError(t, p.ParseLine(ctx, composeRow(91, map[int]string{
		0: "AFF2", 4: "ZLA", 8: "PALMDALE", 24: "ARTCC",
		29: " 1", 31: "HIGH ALTITUDE SECTORS COMBINED AT NIGHT",
	})))
	require.NoError(t, p.ParseLine(ctx, composeRow(55, map[int]string{
		0: "AFF3", 4: "ZLA", 8: "PALMDALE", 24: "ARTCC",
		29: "128.15", 36: "LOW", 44: "01818.*A",
	})))
	require.NoError(t, p.ParseLine(ctx, composeRow(98, map[int]string{
		0: "AFF4", 4: "ZLA", 8: "PALMDALE", 24: "ARTCC",
		29: "128.15", 36: " 1", 38: "BACKUP FOR 134.65",
	})))

	data := nasr.NewData(nasr.Cycle{})
	require.NoError(t, p.Finish(data))
	centers := data.ARTCCs()
	require.Len(t, centers, 2)

	palmdale := centers[0]
	assert.Equal(t, "ZLA", palmdale.Ident)
	assert.Equal(t, "LOS ANGELES ARTCC", palmdale.Name)
	assert.Equal(t, "PALMDALE", palmdale.LocationName)
	assert.Equal(t, nasr.ARTCCFacilityCenter, palmdale.FacilityType)

	require.Len(t, palmdale.Remarks, 1)
	assert.Equal(t, uint(1), palmdale.Remarks[0].Sequence)
	assert.Equal(t, "HIGH ALTITUDE SECTORS COMBINED AT NIGHT", palmdale.Remarks[0].Text)

	require.Len(t, palmdale.Frequencies, 1)
	assert.Equal(t, uint(128150), palmdale.Frequencies[0].Frequency.KHz)
	assert.Equal(t, "LOW", palmdale.Frequencies[0].AltitudeSector)
	assert.Equal(t, "01818.*A", palmdale.Frequencies[0].AirportSiteNumber)

	require.Len(t, palmdale.FrequencyRemarks, 1)
	assert.Equal(t, "BACKUP FOR 134.65", palmdale.FrequencyRemarks[0].Text)

	sanPedro := centers[1]
	assert.Equal(t, "SAN PEDRO", sanPedro.LocationName)
	assert.Equal(t, nasr.ARTCCFacilityRCAG, sanPedro.FacilityType)
	assert.Empty(t, sanPedro.Remarks)
	assert.Empty(t, sanPedro.Frequencies)
}

func TestARTCCParser_ContinuationWithoutParent(t *testing.T) {
	ctx := context.Background()
	p := NewARTCCParser(affTestDist())
	p.BeginFile("AFF.txt")

	err := p.ParseLine(ctx, composeRow(55, map[int]string{
		0: "AFF3", 4: "ZAB", 8: "ALBUQUERQUE", 24: "ARTCC", 29: "135.8",
	}))
	assert.ErrorIs(t, err, nasr.ErrUnknownParent)
}

func TestARTCCParser_UnknownFacilityType(t *testing.T) {
	ctx := context.Background()
	p := NewARTCCParser(affTestDist())
	p.BeginFile("AFF.txt")

	err := p.ParseLine(ctx, affPrimaryRow("ZLA", "PALMDALE", "TRSA"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"TRSA"`)
}
