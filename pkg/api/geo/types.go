// Package geo defines the typed payloads for visitor geo resolution.
package geo

// ResolutionState distinguishes a genuine upstream resolution from the
// locale-based fallback
type ResolutionState string

const (
	StateResolved ResolutionState = "resolved"
	StateFailed   ResolutionState = "failed"
)

// UnknownValue is the sentinel for fields the resolver could not determine
const UnknownValue = "Unknown"

// LocationInfo is a best-effort visitor location. Fields are never empty:
// resolution failures produce usable placeholder values with State = failed.
type LocationInfo struct {
	Country    string          `json:"country"`
	City       string          `json:"city"`
	Region     string          `json:"region"`
	Timezone   string          `json:"timezone,omitempty"`
	IsEURegion bool            `json:"isEuRegion"`
	State      ResolutionState `json:"resolutionState"`
}

// Known reports whether a field value carries real location data
func Known(field string) bool {
	return field != "" && field != UnknownValue
}
