package assemble

import "github.com/airnav-tools/nasr/internal/transform"

// Closed value domains published in the fixed-width and CSV files. Synonym
// tables absorb spelling drift between distribution cycles.
var (
	facilityTypeDomain = transform.NewDomain("facility type",
		[]string{"AIRPORT", "HELIPORT", "SEAPLANE BASE", "GLIDERPORT", "BALLOONPORT", "ULTRALIGHT"},
		map[string]string{
			"ULTRALITE": "ULTRALIGHT",
			"STOLPORT":  "AIRPORT",
		})

	ownershipDomain = transform.NewDomain("ownership",
		[]string{"PU", "PR", "MA", "MN", "MR", "CG"},
		map[string]string{
			"PUBLIC":  "PU",
			"PRIVATE": "PR",
		})

	surfaceConditionDomain = transform.NewDomain("surface condition",
		[]string{"EXCELLENT", "GOOD", "FAIR", "POOR", "FAILED"},
		map[string]string{
			"E":    "EXCELLENT",
			"EXCL": "EXCELLENT",
			"G":    "GOOD",
			"F":    "FAIR",
			"P":    "POOR",
		})

	artccFacilityDomain = transform.NewDomain("center facility type",
		[]string{"ARTCC", "CERAP", "RCAG", "ARSR"},
		map[string]string{
			"CENTER": "ARTCC",
		})

	sensorTypeDomain = transform.NewDomain("sensor type",
		[]string{"AWOS-1", "AWOS-2", "AWOS-3", "ASOS"},
		map[string]string{
			"AWOS 1": "AWOS-1",
			"AWOS 2": "AWOS-2",
			"AWOS 3": "AWOS-3",
			"A1":     "AWOS-1",
			"A2":     "AWOS-2",
			"A3":     "AWOS-3",
			"AS":     "ASOS",
		})
)
