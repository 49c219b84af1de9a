package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"herald/internal/adcopy"
	"herald/internal/promokit"
	"herald/internal/seo"
	"herald/pkg/api/common"
)

// Generation calls can sit on the upstream model for a while.
const generationTimeout = 60 * time.Second

// GenerateAdCopy produces platform ad copy variations for a newsletter.
func (h *Handlers) GenerateAdCopy(c *gin.Context) {
	var req adcopy.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generationTimeout)
	defer cancel()

	start := time.Now()
	result, err := h.generator.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, adcopy.ErrValidation) {
			c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: err.Error()})
			return
		}
		h.metrics.RecordGeneration(req.Platform, "live", "error", 0)
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to generate ad copy"})
		return
	}

	mode := "live"
	if result.IsDemo {
		mode = "demo"
	}
	h.metrics.RecordGeneration(req.Platform, mode, "success", time.Since(start).Seconds())
	c.JSON(http.StatusOK, result)
}

// GeneratePromotionKit produces a weekly organic promotion kit.
func (h *Handlers) GeneratePromotionKit(c *gin.Context) {
	var req promokit.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generationTimeout)
	defer cancel()

	result, err := h.kits.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, promokit.ErrValidation) {
			c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to generate promotion kit"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// OptimizeSEO runs a live optimization pass. There is no demo fallback:
// without a configured provider the endpoint reports unavailable.
func (h *Handlers) OptimizeSEO(c *gin.Context) {
	var req seo.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generationTimeout)
	defer cancel()

	result, err := h.optimizer.Optimize(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, seo.ErrValidation):
			c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: err.Error()})
		case errors.Is(err, seo.ErrUnavailable):
			c.JSON(http.StatusServiceUnavailable, common.ErrorResponse{Error: "SEO optimization requires a configured generation provider"})
		default:
			c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to optimize SEO"})
		}
		return
	}
	c.Data(http.StatusOK, "application/json", result)
}
