package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airnav-tools/nasr/pkg/nasr"
)

func TestParseDMS(t *testing.T) {
	tests := []struct {
		raw  string
		want nasr.Coordinate
	}{
		{"38-51-07.100N", nasr.Coordinate{Degrees: 38, Minutes: 51, Seconds: 7.1, Hemisphere: 'N'}},
		{"077-02-15.900W", nasr.Coordinate{Degrees: 77, Minutes: 2, Seconds: 15.9, Hemisphere: 'W'}},
		{"00-00-00S", nasr.Coordinate{Hemisphere: 'S'}},
	}
	for _, tt := range tests {
		got, err := ParseDMS(tt.raw)
		require.NoError(t, err, "ParseDMS(%q)", tt.raw)
		assert.Equal(t, tt.want, got, "ParseDMS(%q)", tt.raw)
	}

	invalid := []string{
		"",
		"N",
		"38-51-07.100",  // no hemisphere
		"38-51N",        // missing seconds
		"38-61-00.000N", // minutes out of range
		"38-51-61.000N", // seconds out of range
		"3x-51-07.100N",
	}
	for _, raw := range invalid {
		_, err := ParseDMS(raw)
		assert.Error(t, err, "ParseDMS(%q) should fail", raw)
	}
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		raw  string
		want nasr.Frequency
	}{
		{"122.2", nasr.Frequency{KHz: 122200}},
		{"122.925", nasr.Frequency{KHz: 122925}},
		{"118", nasr.Frequency{KHz: 118000}},
		{"121.5R", nasr.Frequency{KHz: 121500, Modifier: "R"}},
		{"255.4X", nasr.Frequency{KHz: 255400, Modifier: "X"}},
	}
	for _, tt := range tests {
		got, err := ParseFrequency(tt.raw)
		require.NoError(t, err, "ParseFrequency(%q)", tt.raw)
		assert.Equal(t, tt.want, got, "ParseFrequency(%q)", tt.raw)
	}

	for _, raw := range []string{"", "R", "..", "12a.4", "0"} {
		_, err := ParseFrequency(raw)
		assert.Error(t, err, "ParseFrequency(%q) should fail", raw)
	}
}

func TestDecodeDate(t *testing.T) {
	row, err := Apply([]string{"07/16/2026"}, []Spec{Date("01/02/2006", NullBlank)})
	require.NoError(t, err)
	d, err := row.Date(0)
	require.NoError(t, err)
	assert.Equal(t, nasr.Date{Year: 2026, Month: 7, Day: 16}, d)

	_, err = Apply([]string{"16/07/2026"}, []Spec{Date("01/02/2006", NullBlank)})
	assert.Error(t, err, "month 16 must not parse")
}

func TestDecodeBool(t *testing.T) {
	row, err := Apply([]string{"Y", "NO"}, []Spec{Bool(NullNone), Bool(NullNone)})
	require.NoError(t, err)

	yes, err := row.Bool(0)
	require.NoError(t, err)
	assert.True(t, yes)
	no, err := row.Bool(1)
	require.NoError(t, err)
	assert.False(t, no)

	_, err = Apply([]string{"MAYBE"}, []Spec{Bool(NullNone)})
	assert.Error(t, err)
}
