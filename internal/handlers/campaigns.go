package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"herald/pkg/api/common"
	"herald/pkg/models"
)

// cross_promo campaigns track newsletter swap deals; they carry no ad
// platform copy but share the campaign lifecycle.
var allowedCampaignPlatforms = map[string]bool{
	"twitter":     true,
	"linkedin":    true,
	"seo":         true,
	"cross_promo": true,
}

var allowedCampaignStatuses = map[string]bool{
	models.CampaignStatusDraft:     true,
	models.CampaignStatusActive:    true,
	models.CampaignStatusPaused:    true,
	models.CampaignStatusCompleted: true,
}

// ListCampaigns returns the caller's campaigns with their newsletter
// names joined in for display.
func (h *Handlers) ListCampaigns(c *gin.Context) {
	rows, err := h.db.Query(`
		SELECT c.id, c.user_id, c.newsletter_id, n.name, c.name, c.platform, c.status,
		       COALESCE(c.objective, ''), c.daily_budget_cents, c.total_budget_cents,
		       c.targeting, c.ai_generated_copy, c.start_date, c.end_date,
		       c.created_at, c.updated_at
		FROM campaigns c
		JOIN newsletters n ON n.id = c.newsletter_id
		WHERE c.user_id = $1
		ORDER BY c.created_at DESC`,
		h.userID(c),
	)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list campaigns")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to list campaigns"})
		return
	}
	defer rows.Close()

	campaigns := []models.Campaign{}
	for rows.Next() {
		var cp models.Campaign
		if err := rows.Scan(&cp.ID, &cp.UserID, &cp.NewsletterID, &cp.NewsletterName, &cp.Name,
			&cp.Platform, &cp.Status, &cp.Objective, &cp.DailyBudgetCents, &cp.TotalBudgetCents,
			&cp.Targeting, &cp.AIGeneratedCopy, &cp.StartDate, &cp.EndDate,
			&cp.CreatedAt, &cp.UpdatedAt); err != nil {
			h.logger.WithError(err).Error("Failed to scan campaign")
			c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to list campaigns"})
			return
		}
		campaigns = append(campaigns, cp)
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// CreateCampaign creates a campaign against a newsletter the caller
// owns. Generated ad copy may be attached at creation time so the
// dashboard can save a generation result in one step.
func (h *Handlers) CreateCampaign(c *gin.Context) {
	var req models.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	if !allowedCampaignPlatforms[req.Platform] {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid platform. Must be twitter, linkedin, seo, or cross_promo"})
		return
	}
	status := req.Status
	if status == "" {
		status = models.CampaignStatusDraft
	}
	if !allowedCampaignStatuses[status] {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid campaign status"})
		return
	}

	userID := h.userID(c)
	var owned bool
	err := h.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM newsletters WHERE id = $1 AND user_id = $2)`,
		req.NewsletterID, userID).Scan(&owned)
	if err != nil {
		h.logger.WithError(err).Error("Failed to verify newsletter ownership")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to create campaign"})
		return
	}
	if !owned {
		c.JSON(http.StatusNotFound, common.ErrorResponse{Error: "Newsletter not found"})
		return
	}

	cp := models.Campaign{
		UserID:           userID,
		NewsletterID:     req.NewsletterID,
		Name:             req.Name,
		Platform:         req.Platform,
		Status:           status,
		Objective:        req.Objective,
		DailyBudgetCents: req.DailyBudgetCents,
		TotalBudgetCents: req.TotalBudgetCents,
		Targeting:        req.Targeting,
		AIGeneratedCopy:  req.AIGeneratedCopy,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
	}
	err = h.db.QueryRow(`
		INSERT INTO campaigns (user_id, newsletter_id, name, platform, status, objective,
		                       daily_budget_cents, total_budget_cents, targeting, ai_generated_copy,
		                       start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, '{}'::jsonb), COALESCE($10, '{}'::jsonb), $11, $12)
		RETURNING id, created_at, updated_at`,
		cp.UserID, cp.NewsletterID, cp.Name, cp.Platform, cp.Status, cp.Objective,
		cp.DailyBudgetCents, cp.TotalBudgetCents, cp.Targeting, cp.AIGeneratedCopy,
		cp.StartDate, cp.EndDate,
	).Scan(&cp.ID, &cp.CreatedAt, &cp.UpdatedAt)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create campaign")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to create campaign"})
		return
	}

	c.JSON(http.StatusCreated, cp)
}

// UpdateCampaignStatus moves a campaign through its lifecycle.
func (h *Handlers) UpdateCampaignStatus(c *gin.Context) {
	var req models.UpdateCampaignStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	if !allowedCampaignStatuses[req.Status] {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid campaign status"})
		return
	}

	var cp models.Campaign
	err := h.db.QueryRow(`
		UPDATE campaigns SET status = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, newsletter_id, name, platform, status, created_at, updated_at`,
		req.Status, c.Param("id"), h.userID(c),
	).Scan(&cp.ID, &cp.UserID, &cp.NewsletterID, &cp.Name, &cp.Platform, &cp.Status, &cp.CreatedAt, &cp.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, common.ErrorResponse{Error: "Campaign not found"})
			return
		}
		h.logger.WithError(err).Error("Failed to update campaign status")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to update campaign"})
		return
	}

	c.JSON(http.StatusOK, cp)
}
