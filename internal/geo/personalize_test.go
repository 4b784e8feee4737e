package geo

import (
	"testing"

	geoapi "github.com/gitswhy/cognition-web-genesis-sub001/pkg/api/geo"
)

func TestPersonalize(t *testing.T) {
	cases := []struct {
		name     string
		loc      geoapi.LocationInfo
		expected string
	}{
		{
			name:     "city preferred",
			loc:      geoapi.LocationInfo{City: "Berlin", Region: "Berlin", Country: "Germany"},
			expected: "Hello, Berlin!",
		},
		{
			name:     "region when city unknown",
			loc:      geoapi.LocationInfo{City: "Unknown", Region: "Bavaria", Country: "Germany"},
			expected: "Hello, Bavaria!",
		},
		{
			name:     "country when city and region unknown",
			loc:      geoapi.LocationInfo{City: "Unknown", Region: "Unknown", Country: "Germany"},
			expected: "Hello, Germany!",
		},
		{
			name:     "fallback when everything unknown",
			loc:      geoapi.LocationInfo{City: "Unknown", Region: "Unknown", Country: "Unknown"},
			expected: "Hello, Global!",
		},
		{
			name:     "fallback when fields empty",
			loc:      geoapi.LocationInfo{},
			expected: "Hello, Global!",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Personalize("Hello, [Location]!", tc.loc, "Global")
			if got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestPersonalizeWithoutToken(t *testing.T) {
	loc := geoapi.LocationInfo{City: "Berlin"}
	if got := Personalize("Welcome back!", loc, "Global"); got != "Welcome back!" {
		t.Fatalf("template without token must pass through, got %q", got)
	}
}
