// Package geo produces a best-effort visitor location for text
// personalization on the landing pages.
package geo

import (
	"context"
	"strings"

	geoapi "github.com/gitswhy/cognition-web-genesis-sub001/pkg/api/geo"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/clients/ipapi"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/countries"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/geoip"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/logging"
)

// euLocaleHints are the language codes the locale fallback treats as a hint
// of an EU visitor. Crude on purpose: this is the last resort when no
// provider data is available.
var euLocaleHints = []string{"de", "fr", "es", "it"}

// LocationClient is the IP-geolocation provider dependency
type LocationClient interface {
	Lookup(ctx context.Context, ip string) (*ipapi.Location, error)
}

// Resolver resolves visitor locations. A local MMDB reader is consulted
// first when configured; the HTTP provider is the fallback, and locale
// heuristics are the fallback of last resort.
type Resolver struct {
	reader *geoip.Reader
	client LocationClient
	logger logging.Logger
}

func NewResolver(reader *geoip.Reader, client LocationClient, logger logging.Logger) *Resolver {
	return &Resolver{
		reader: reader,
		client: client,
		logger: logger,
	}
}

// Resolve never fails. Every outcome is a usable LocationInfo; the State
// field distinguishes genuine resolution from the locale fallback.
func (r *Resolver) Resolve(ctx context.Context, ip, locale string) geoapi.LocationInfo {
	if data := r.reader.Lookup(ip); data != nil {
		return fromGeoData(data)
	}

	if r.client != nil {
		loc, err := r.client.Lookup(ctx, ip)
		if err == nil && loc != nil && countries.IsValid(loc.CountryCode) {
			return fromProvider(loc)
		}
		if err != nil {
			r.logger.WithFields(logging.Fields{
				"error": err.Error(),
				"ip":    ip,
			}).Warn("Geo provider lookup failed, using locale fallback")
		}
	}

	return localeFallback(locale)
}

func fromGeoData(data *geoip.GeoData) geoapi.LocationInfo {
	return geoapi.LocationInfo{
		Country:    orUnknown(data.CountryName),
		City:       orUnknown(data.City),
		Region:     orUnknown(data.Region),
		Timezone:   data.Timezone,
		IsEURegion: countries.IsEU(data.CountryCode),
		State:      geoapi.StateResolved,
	}
}

func fromProvider(loc *ipapi.Location) geoapi.LocationInfo {
	return geoapi.LocationInfo{
		Country:    orUnknown(loc.CountryName),
		City:       orUnknown(loc.City),
		Region:     orUnknown(loc.Region),
		Timezone:   loc.Timezone,
		IsEURegion: countries.IsEU(loc.CountryCode),
		State:      geoapi.StateResolved,
	}
}

// localeFallback supplies placeholder values derived from the visitor's
// locale string so callers never see an empty location.
func localeFallback(locale string) geoapi.LocationInfo {
	lower := strings.ToLower(locale)
	isEU := false
	for _, hint := range euLocaleHints {
		if strings.Contains(lower, hint) {
			isEU = true
			break
		}
	}

	return geoapi.LocationInfo{
		Country:    geoapi.UnknownValue,
		City:       "Your Location",
		Region:     "Global",
		IsEURegion: isEU,
		State:      geoapi.StateFailed,
	}
}

func orUnknown(value string) string {
	if strings.TrimSpace(value) == "" {
		return geoapi.UnknownValue
	}
	return value
}
