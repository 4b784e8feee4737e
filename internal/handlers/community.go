package handlers

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/api/common"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/clients/github"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/logging"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/middleware"
)

type CommunityHandler struct {
	builder SnapshotBuilder
	logger  logging.Logger
	metrics *CommunityMetrics
}

func NewCommunityHandler(builder SnapshotBuilder, logger logging.Logger, metrics *CommunityMetrics) *CommunityHandler {
	return &CommunityHandler{
		builder: builder,
		logger:  logger,
		metrics: metrics,
	}
}

func (h *CommunityHandler) Handle(c *gin.Context) {
	// No builder means the GitHub credential was never configured. Fail the
	// request before touching the network.
	if h.builder == nil {
		h.metrics.IncCommunity("not_configured")
		middleware.GetContextLogger(c, h.logger).Error("Community snapshot requested but GitHub access is not configured")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{
			Error: "Community data is not configured",
			Code:  "NOT_CONFIGURED",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 20*time.Second)
	defer cancel()

	snapshot, err := h.builder.Snapshot(ctx)
	if err != nil {
		h.metrics.IncCommunity("upstream_error")
		middleware.GetContextLogger(c, h.logger).WithError(err).Error("Community snapshot failed")
		respondUpstreamError(c, err)
		return
	}

	h.metrics.IncCommunity("success")
	c.JSON(http.StatusOK, snapshot)
}

func respondUpstreamError(c *gin.Context, err error) {
	if isTimeoutError(err) {
		c.JSON(http.StatusGatewayTimeout, common.ErrorResponse{
			Error: "Community data source timed out",
			Code:  "UPSTREAM_TIMEOUT",
		})
		return
	}

	var apiErr *github.APIError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusBadGateway, common.ErrorResponse{
			Error: "Community data source unavailable",
			Code:  "UPSTREAM_ERROR",
			Details: map[string]interface{}{
				"operation":       apiErr.Operation,
				"upstream_status": apiErr.StatusCode,
			},
		})
		return
	}

	c.JSON(http.StatusBadGateway, common.ErrorResponse{
		Error: "Community data source unavailable",
		Code:  "UPSTREAM_ERROR",
	})
}

func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
