package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/logging"
)

type GeoHandler struct {
	resolver LocationResolver
	logger   logging.Logger
	metrics  *CommunityMetrics
}

func NewGeoHandler(resolver LocationResolver, logger logging.Logger, metrics *CommunityMetrics) *GeoHandler {
	return &GeoHandler{
		resolver: resolver,
		logger:   logger,
		metrics:  metrics,
	}
}

// Handle resolves the caller's location. Resolution never fails the request:
// the resolver always produces a usable location, degraded or not, so this
// endpoint always returns 200.
func (h *GeoHandler) Handle(c *gin.Context) {
	ip := getRemoteIP(c)
	locale := c.Request.Header.Get("Accept-Language")

	loc := h.resolver.Resolve(c.Request.Context(), ip, locale)

	h.metrics.IncGeo(string(loc.State))
	c.JSON(http.StatusOK, loc)
}

// getRemoteIP prefers the CDN-supplied client address over proxy chains.
func getRemoteIP(c *gin.Context) string {
	if ip := c.Request.Header.Get("CF-Connecting-IP"); ip != "" {
		return ip
	}

	if fwd := c.Request.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}

	return c.ClientIP()
}
