package nasr

// FacilityType classifies a landing facility.
type FacilityType string

const (
	FacilityAirport      FacilityType = "AIRPORT"
	FacilityHeliport     FacilityType = "HELIPORT"
	FacilitySeaplaneBase FacilityType = "SEAPLANE BASE"
	FacilityGliderport   FacilityType = "GLIDERPORT"
	FacilityBalloonport  FacilityType = "BALLOONPORT"
	FacilityUltralight   FacilityType = "ULTRALIGHT"
)

// Ownership classifies who owns a landing facility.
type Ownership string

const (
	OwnershipPublic       Ownership = "PU" // publicly owned
	OwnershipPrivate      Ownership = "PR" // privately owned
	OwnershipAirForce     Ownership = "MA" // US Air Force
	OwnershipNavy         Ownership = "MN" // US Navy
	OwnershipArmy         Ownership = "MR" // US Army
	OwnershipCoastGuard   Ownership = "CG" // US Coast Guard
)

// SurfaceCondition classifies a runway surface's published condition.
type SurfaceCondition string

const (
	SurfaceExcellent SurfaceCondition = "EXCELLENT"
	SurfaceGood      SurfaceCondition = "GOOD"
	SurfaceFair      SurfaceCondition = "FAIR"
	SurfacePoor      SurfaceCondition = "POOR"
	SurfaceFailed    SurfaceCondition = "FAILED"
)

// Airport is one landing facility record, created by an APT primary row and
// extended by RWY and RMK continuation rows. The natural key within one
// distribution is SiteNumber.
//
// Airports reference their boundary ARTCC and tie-in flight service station
// by identifier only; BoundaryARTCC and TieInFSS resolve those identifiers
// against the owning graph at access time.
type Airport struct {
	// SiteNumber is the publisher-assigned site number, e.g. "01818.*A".
	SiteNumber string

	// LID is the location identifier, e.g. "BOI".
	LID string

	Name         string
	City         string
	StateCode    string
	FacilityType FacilityType
	Ownership    Ownership

	Latitude  Coordinate
	Longitude Coordinate

	// Elevation is the field elevation in feet MSL.
	Elevation int

	// BoundaryARTCCID is the ident of the ARTCC whose boundary contains the
	// facility. Empty when unpublished.
	BoundaryARTCCID string

	// TieInFSSID is the ident of the flight service station responsible for
	// the facility. Empty when unpublished.
	TieInFSSID string

	ControlTower bool

	// UNICOM is the facility's UNICOM frequency, when published.
	UNICOM *Frequency

	// BasedSingleEngine is the count of based single-engine aircraft, when
	// published.
	BasedSingleEngine *uint

	Runways []Runway
	Remarks []Remark

	data *Data
}

// Runway is one RWY continuation row's payload.
type Runway struct {
	// Ident is the runway designation, e.g. "10L/28R".
	Ident string

	// Length and Width are in feet.
	Length uint
	Width  uint

	// SurfaceType is the published surface composition, e.g. "ASPH-CONC".
	SurfaceType string

	// Condition is empty when the publisher left it blank.
	Condition SurfaceCondition
}

// Remark is one RMK continuation row's payload.
type Remark struct {
	// Element names the field or aspect the remark applies to.
	Element string

	Text string
}

// BoundaryARTCC resolves the airport's boundary ARTCC against the owning
// graph. Returns nil when the identifier is empty, the ARTCC collection has
// not been populated, or no facility matches.
func (a *Airport) BoundaryARTCC() *ARTCC {
	if a.data == nil || a.BoundaryARTCCID == "" {
		return nil
	}
	return a.data.FindARTCC(a.BoundaryARTCCID)
}

// TieInFSS resolves the airport's tie-in flight service station.
// Returns nil when unresolvable, never an error.
func (a *Airport) TieInFSS() *FSS {
	if a.data == nil || a.TieInFSSID == "" {
		return nil
	}
	return a.data.FindFSS(a.TieInFSSID)
}
