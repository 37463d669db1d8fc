package nasr

// ARTCCFacilityType classifies an ARTCC site.
type ARTCCFacilityType string

const (
	ARTCCFacilityCenter ARTCCFacilityType = "ARTCC" // air route traffic control center
	ARTCCFacilityCERAP  ARTCCFacilityType = "CERAP" // combined center / radar approach control
	ARTCCFacilityRCAG   ARTCCFacilityType = "RCAG"  // remote communications air/ground
	ARTCCFacilityRadar  ARTCCFacilityType = "ARSR"  // air route surveillance radar
)

// ARTCC is one air route traffic control center facility, created by an AFF1
// row and extended by AFF2 (remarks), AFF3 (frequencies) and AFF4
// (frequency remarks) rows. A single ARTCC ident appears at many sites, so
// the natural key is the composite ident + location name + facility type.
type ARTCC struct {
	// Ident is the center's identifier, e.g. "ZLA". Not unique by itself.
	Ident string

	Name         string
	LocationName string
	FacilityType ARTCCFacilityType

	Latitude  Coordinate
	Longitude Coordinate

	Remarks          []ARTCCRemark
	Frequencies      []CommFrequency
	FrequencyRemarks []FrequencyRemark

	data *Data
}

// ARTCCRemark is one AFF2 row's payload.
type ARTCCRemark struct {
	Sequence uint
	Text     string
}

// CommFrequency is one AFF3 row's payload: a frequency the site operates,
// optionally tied to an airport.
type CommFrequency struct {
	Frequency Frequency

	// AltitudeSector is the published altitude structure the frequency
	// serves, e.g. "LOW". Empty when unpublished.
	AltitudeSector string

	// AirportSiteNumber links the frequency to a landing facility.
	// Empty when the frequency is not airport-associated.
	AirportSiteNumber string

	data *Data
}

// FrequencyRemark is one AFF4 row's payload.
type FrequencyRemark struct {
	Frequency Frequency
	Sequence  uint
	Text      string
}

// AssociatedAirport resolves the frequency's airport against the owning
// graph. Returns nil when unresolvable, never an error.
func (f *CommFrequency) AssociatedAirport() *Airport {
	if f.data == nil || f.AirportSiteNumber == "" {
		return nil
	}
	return f.data.FindAirport(f.AirportSiteNumber)
}
