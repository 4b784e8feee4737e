package handlers

import "github.com/prometheus/client_golang/prometheus"

type CommunityMetrics struct {
	CommunityRequests *prometheus.CounterVec
	GeoRequests       *prometheus.CounterVec
	WaitlistRequests  *prometheus.CounterVec
}

func (m *CommunityMetrics) IncCommunity(status string) {
	if m == nil || m.CommunityRequests == nil {
		return
	}

	m.CommunityRequests.WithLabelValues(status).Inc()
}

func (m *CommunityMetrics) IncGeo(status string) {
	if m == nil || m.GeoRequests == nil {
		return
	}

	m.GeoRequests.WithLabelValues(status).Inc()
}

func (m *CommunityMetrics) IncWaitlist(status string) {
	if m == nil || m.WaitlistRequests == nil {
		return
	}

	m.WaitlistRequests.WithLabelValues(status).Inc()
}
