package nasr

// FSS is one flight service station, created by a primary FSS row and
// extended by continuation rows carrying communications outlets. The
// continuation sentinel for this type is a '*' appended to the shared ident
// field. The natural key is the station ident.
type FSS struct {
	// Ident is the station identifier, e.g. "DCA".
	Ident string

	Name string

	// Updated is the publisher's information-current date.
	Updated Date

	// AirportSiteNumber is the site number of the landing facility the
	// station is located at. Empty for standalone stations.
	AirportSiteNumber string

	Latitude  Coordinate
	Longitude Coordinate

	// Phones are the published toll-free numbers, in file order.
	Phones []string

	Outlets []Outlet

	data *Data
}

// Outlet is one communications outlet appended by a continuation row.
type Outlet struct {
	Name      string
	Frequency Frequency
}

// Airport resolves the station's landing facility against the owning graph.
// Returns nil when unresolvable, never an error.
func (f *FSS) Airport() *Airport {
	if f.data == nil || f.AirportSiteNumber == "" {
		return nil
	}
	return f.data.FindAirport(f.AirportSiteNumber)
}
