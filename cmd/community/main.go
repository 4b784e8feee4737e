package main

import (
	"context"

	"github.com/gitswhy/cognition-web-genesis-sub001/internal/aggregator"
	"github.com/gitswhy/cognition-web-genesis-sub001/internal/geo"
	"github.com/gitswhy/cognition-web-genesis-sub001/internal/handlers"
	"github.com/gitswhy/cognition-web-genesis-sub001/internal/store"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/clients/github"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/clients/ipapi"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/config"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/database"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/geoip"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/logging"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/monitoring"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/server"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/version"
)

func main() {
	logger := logging.NewLoggerWithService("community")
	config.LoadEnv(logger)

	port := config.GetEnv("PORT", "18040")
	githubToken := config.GetEnv("GITHUB_TOKEN", "")
	githubOwner := config.GetEnv("GITHUB_OWNER", "gitswhy")
	githubRepo := config.GetEnv("GITHUB_REPO", "gitswhyos")

	healthChecker := monitoring.NewHealthChecker("community", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("community", version.Version, version.GitCommit)

	healthChecker.AddCheck("config", monitoring.ConfigurationHealthCheck(map[string]string{
		"GITHUB_TOKEN": githubToken,
	}))

	metrics := &handlers.CommunityMetrics{
		CommunityRequests: metricsCollector.NewCounter(
			"community_requests_total", "Community snapshot requests by status", []string{"status"}),
		GeoRequests: metricsCollector.NewCounter(
			"geo_requests_total", "Geo resolution requests by outcome", []string{"status"}),
		WaitlistRequests: metricsCollector.NewCounter(
			"waitlist_requests_total", "Waitlist signup requests by status", []string{"status"}),
	}

	// Snapshot builder is nil without a token; the handler reports the
	// missing configuration instead of calling GitHub unauthenticated.
	var builder handlers.SnapshotBuilder
	if githubClient, err := github.NewClient(githubToken, githubOwner, githubRepo); err != nil {
		logger.WithError(err).Warn("GitHub client not configured, community data disabled")
	} else {
		builder = aggregator.New(githubClient, logger)
	}

	// The MMDB reader is optional. Without it resolution starts at the HTTP
	// provider.
	var geoReader *geoip.Reader
	if mmdbPath := config.GetEnv("GEOIP_DB", ""); mmdbPath != "" {
		reader, err := geoip.NewReader(mmdbPath)
		if err != nil {
			logger.WithError(err).Warn("GeoIP database unavailable, falling back to HTTP lookups")
		} else {
			geoReader = reader
			defer reader.Close()
		}
	}
	resolver := geo.NewResolver(geoReader, ipapi.NewClient(config.GetEnv("IPAPI_URL", ipapi.DefaultBaseURL)), logger)

	var waitlist handlers.WaitlistStore
	if databaseURL := config.GetEnv("DATABASE_URL", ""); databaseURL != "" {
		dbConfig := database.DefaultConfig()
		dbConfig.URL = databaseURL
		db, err := database.Connect(dbConfig, logger)
		if err != nil {
			logger.WithError(err).Warn("Database unavailable, waitlist disabled")
		} else {
			defer db.Close()
			if err := database.ApplySchema(context.Background(), db, logger); err != nil {
				logger.WithError(err).Fatal("Failed to apply database schema")
			}
			healthChecker.AddCheck("database", monitoring.DatabaseHealthCheck(db))
			waitlist = store.NewWaitlistStore(db)
		}
	}

	app := server.SetupServiceRouter(logger, "community", healthChecker, metricsCollector)

	communityHandler := handlers.NewCommunityHandler(builder, logger, metrics)
	geoHandler := handlers.NewGeoHandler(resolver, logger, metrics)
	waitlistHandler := handlers.NewWaitlistHandler(waitlist, logger, metrics)

	app.GET("/api/community", communityHandler.Handle)
	app.GET("/api/geo", geoHandler.Handle)
	app.POST("/api/waitlist", waitlistHandler.Handle)

	serverConfig := server.DefaultConfig("community", port)
	if err := server.Start(serverConfig, app, logger); err != nil {
		logger.Fatal(err.Error())
	}
}
