package geo

import (
	"strings"

	geoapi "github.com/gitswhy/cognition-web-genesis-sub001/pkg/api/geo"
)

// PlaceholderToken is the template token substituted during personalization
const PlaceholderToken = "[Location]"

// Personalize substitutes the location placeholder in template with the most
// specific known field: city, then region, then country, then fallback.
// A field is known when it is non-empty and not the "Unknown" sentinel.
func Personalize(template string, loc geoapi.LocationInfo, fallback string) string {
	value := fallback
	switch {
	case geoapi.Known(loc.City):
		value = loc.City
	case geoapi.Known(loc.Region):
		value = loc.Region
	case geoapi.Known(loc.Country):
		value = loc.Country
	}

	return strings.ReplaceAll(template, PlaceholderToken, value)
}
