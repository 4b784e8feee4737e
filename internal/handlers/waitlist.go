package handlers

import (
	"context"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/api/common"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/logging"
	"github.com/gitswhy/cognition-web-genesis-sub001/pkg/middleware"
)

type WaitlistRequest struct {
	Email  string `json:"email" binding:"required"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

type WaitlistResponse struct {
	Success  bool  `json:"success"`
	Position int64 `json:"position"`
}

type WaitlistHandler struct {
	store   WaitlistStore
	logger  logging.Logger
	metrics *CommunityMetrics
}

func NewWaitlistHandler(store WaitlistStore, logger logging.Logger, metrics *CommunityMetrics) *WaitlistHandler {
	return &WaitlistHandler{
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

func (h *WaitlistHandler) Handle(c *gin.Context) {
	if h.store == nil {
		h.metrics.IncWaitlist("not_configured")
		c.JSON(http.StatusServiceUnavailable, common.ErrorResponse{
			Error: "Waitlist is not available",
			Code:  "NOT_CONFIGURED",
		})
		return
	}

	var req WaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.IncWaitlist("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		h.metrics.IncWaitlist("invalid_email")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	normalizedEmail := strings.ToLower(strings.TrimSpace(req.Email))
	created, err := h.store.Add(ctx, normalizedEmail, strings.TrimSpace(req.Name), req.Source)
	if err != nil {
		h.metrics.IncWaitlist("store_error")
		middleware.GetContextLogger(c, h.logger).WithError(err).WithFields(logging.Fields{
			"email": redactEmail(normalizedEmail),
		}).Error("Waitlist signup failed")
		respondStoreError(c, err)
		return
	}

	position, err := h.store.Count(ctx)
	if err != nil {
		// The signup itself landed; report success without a position rather
		// than failing the request.
		middleware.GetContextLogger(c, h.logger).WithError(err).Warn("Waitlist count failed after signup")
		position = 0
	}

	middleware.GetContextLogger(c, h.logger).WithFields(logging.Fields{
		"email":   redactEmail(normalizedEmail),
		"name":    redactName(req.Name),
		"created": created,
	}).Info("Waitlist signup processed")

	h.metrics.IncWaitlist("success")
	c.JSON(http.StatusOK, WaitlistResponse{Success: true, Position: position})
}

func respondStoreError(c *gin.Context, err error) {
	if isTimeoutError(err) {
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Waitlist service timeout"})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "Waitlist service unavailable"})
}
