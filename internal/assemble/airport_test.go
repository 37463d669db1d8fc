package assemble

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airnav-tools/nasr/internal/distribution"
	"github.com/airnav-tools/nasr/pkg/nasr"
)

func aptTestDist() nasr.Distribution {
	return distribution.NewMemory(map[string]string{"apt_rf.txt": aptLayout})
}

func aptPrimaryRow(site, name string) string {
	return composeRow(124, map[int]string{
		0: "APT", 3: site, 14: "AIRPORT", 27: "BOI", 31: name,
		51: "BOISE", 67: "ID", 69: "PU",
		71: "43-33-52.000N", 85: "116-13-22.000W",
		100: " 2871", 105: "ZLC", 109: "BOI", 113: "Y", 114: "122.95", 121: " 50",
	})
}

func TestAirportParser_AssemblesPrimaryAndContinuations(t *testing.T) {
	ctx := context.Background()
	p := NewAirportParser(aptTestDist())
	p.BeginFile("APT.txt")

	require.NoError(t, p.ParseLine(ctx, aptPrimaryRow("04508.*A", "BOISE AIR TERMINAL")))
	require.NoError(t, p.ParseLine(ctx, composeRow(51, map[int]string{
		0: "RWY", 3: "04508.*A", 14: "10L/28R", 21: "09763", 26: " 150",
		30: "ASPH-CONC", 42: "GOOD",
	})))
	require.NoError(t, p.ParseLine(ctx, composeRow(87, map[int]string{
		0: "RMK", 3: "04508.*A", 14: "A110", 27: "ATTENDED CONTINUOUSLY",
	})))

	data := nasr.NewData(nasr.Cycle{})
	require.NoError(t, p.Finish(data))

	airports := data.Airports()
	require.Len(t, airports, 1)
	a := airports[0]

	assert.Equal(t, "04508.*A", a.SiteNumber)
	assert.Equal(t, "BOI", a.LID)
	assert.Equal(t, "BOISE AIR TERMINAL", a.Name)
	assert.Equal(t, "BOISE", a.City)
	assert.Equal(t, "ID", a.StateCode)
	assert.Equal(t, nasr.FacilityAirport, a.FacilityType)
	assert.Equal(t, nasr.OwnershipPublic, a.Ownership)
	assert.Equal(t, 2871, a.Elevation)
	assert.Equal(t, "ZLC", a.BoundaryARTCCID)
	assert.Equal(t, "BOI", a.TieInFSSID)
	assert.True(t, a.ControlTower)
	require.NotNil(t, a.UNICOM)
	assert.Equal(t, uint(122950), a.UNICOM.KHz)
	require.NotNil(t, a.BasedSingleEngine)
	assert.Equal(t, uint(50), *a.BasedSingleEngine)

	assert.InDelta(t, 43.564444, a.Latitude.Decimal(), 1e-5)
	assert.InDelta(t, -116.222778, a.Longitude.Decimal(), 1e-5)

	require.Len(t, a.Runways, 1)
	assert.Equal(t, "10L/28R", a.Runways[0].Ident)
	assert.Equal(t, uint(9763), a.Runways[0].Length)
	assert.Equal(t, uint(150), a.Runways[0].Width)
	assert.Equal(t, "ASPH-CONC", a.Runways[0].SurfaceType)
	assert.Equal(t, nasr.SurfaceGood, a.Runways[0].Condition)

	require.Len(t, a.Remarks, 1)
	assert.Equal(t, "A110", a.Remarks[0].Element)
	assert.Equal(t, "ATTENDED CONTINUOUSLY", a.Remarks[0].Text)
}

// TestAirportParser_DuplicatePrimaryReplaces covers the duplicate-key rule
// end to end: a repeated site number replaces the earlier record, drops its
// accumulated continuations, and is counted.
func TestAirportParser_DuplicatePrimaryReplaces(t *testing.T) {
	ctx := context.Background()
	p := NewAirportParser(aptTestDist())
	p.BeginFile("APT.txt")

	require.NoError(t, p.ParseLine(ctx, aptPrimaryRow("04508.*A", "BOISE AIR TERMINAL")))
	require.NoError(t, p.ParseLine(ctx, composeRow(51, map[int]string{
		0: "RWY", 3: "04508.*A", 14: "10L/28R", 21: "09763", 26: " 150",
	})))
	require.NoError(t, p.ParseLine(ctx, aptPrimaryRow("04508.*A", "GOWEN FIELD")))

	assert.Equal(t, 1, p.Records())
	assert.Equal(t, 1, p.Replaced())

	data := nasr.NewData(nasr.Cycle{})
	require.NoError(t, p.Finish(data))
	airports := data.Airports()
	require.Len(t, airports, 1)
	assert.Equal(t, "GOWEN FIELD", airports[0].Name)
	assert.Empty(t, airports[0].Runways, "continuations of the replaced record do not carry over")
}

func TestAirportParser_ContinuationWithoutParent(t *testing.T) {
	ctx := context.Background()
	p := NewAirportParser(aptTestDist())
	p.BeginFile("APT.txt")

	err := p.ParseLine(ctx, composeRow(51, map[int]string{
		0: "RWY", 3: "99999.*A", 14: "01/19", 21: "02000", 26: "  60",
	}))
	require.Error(t, err)
	assert.ErrorIs(t, err, nasr.ErrUnknownParent)
}

func TestAirportParser_UnrecognizedTag(t *testing.T) {
	ctx := context.Background()
	p := NewAirportParser(aptTestDist())
	p.BeginFile("APT.txt")

	err := p.ParseLine(ctx, composeRow(124, map[int]string{0: "ZZZ"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"ZZZ"`)
}

func TestAirportParser_MissingLayoutFile(t *testing.T) {
	ctx := context.Background()
	p := NewAirportParser(distribution.NewMemory(nil))
	p.BeginFile("APT.txt")

	err := p.ParseLine(ctx, aptPrimaryRow("04508.*A", "BOISE AIR TERMINAL"))
	assert.ErrorIs(t, err, nasr.ErrFileMissing)
}

func TestAirportParser_TruncatedRow(t *testing.T) {
	ctx := context.Background()
	p := NewAirportParser(aptTestDist())
	p.BeginFile("APT.txt")

	err := p.ParseLine(ctx, "APT 04508.*A")
	assert.ErrorIs(t, err, nasr.ErrTruncatedRecord)
}
