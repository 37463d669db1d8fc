package nasr

// SensorType classifies an automated weather sensor station.
type SensorType string

const (
	SensorAWOS1 SensorType = "AWOS-1"
	SensorAWOS2 SensorType = "AWOS-2"
	SensorAWOS3 SensorType = "AWOS-3"
	SensorASOS  SensorType = "ASOS"
)

// WeatherStation is one automated weather sensor station, assembled from the
// CSV base file plus the remark satellite file. The natural key is the
// sensor ident.
//
// Unlike the fixed-width types, weather station coordinates are published as
// decimal-degree text in the CSV, so they are carried as float64 directly.
type WeatherStation struct {
	// Ident is the sensor identifier, e.g. "BOI".
	Ident string

	SensorType SensorType

	// Commissioned is the in-service date.
	Commissioned Date

	// Frequency is the broadcast frequency, when published.
	Frequency *Frequency

	Latitude  float64
	Longitude float64

	// AirportSiteNumber links the sensor to a landing facility.
	// Empty for off-airport sensors.
	AirportSiteNumber string

	// Remarks come from the satellite file, in file order.
	Remarks []string

	data *Data
}

// Airport resolves the sensor's landing facility against the owning graph.
// Returns nil when unresolvable, never an error.
func (w *WeatherStation) Airport() *Airport {
	if w.data == nil || w.AirportSiteNumber == "" {
		return nil
	}
	return w.data.FindAirport(w.AirportSiteNumber)
}
