package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"herald/pkg/api/common"
	"herald/pkg/models"
)

// ListNewsletters returns the caller's newsletters, newest first.
func (h *Handlers) ListNewsletters(c *gin.Context) {
	rows, err := h.db.Query(`
		SELECT id, user_id, name, COALESCE(description, ''), COALESCE(website_url, ''),
		       COALESCE(niche, ''), subscriber_count, created_at, updated_at
		FROM newsletters
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		h.userID(c),
	)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list newsletters")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to list newsletters"})
		return
	}
	defer rows.Close()

	newsletters := []models.Newsletter{}
	for rows.Next() {
		var n models.Newsletter
		if err := rows.Scan(&n.ID, &n.UserID, &n.Name, &n.Description, &n.WebsiteURL,
			&n.Niche, &n.SubscriberCount, &n.CreatedAt, &n.UpdatedAt); err != nil {
			h.logger.WithError(err).Error("Failed to scan newsletter")
			c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to list newsletters"})
			return
		}
		newsletters = append(newsletters, n)
	}

	c.JSON(http.StatusOK, gin.H{"newsletters": newsletters})
}

// CreateNewsletter registers a newsletter. The webhook secret is only
// surfaced in this response; it is never returned again.
func (h *Handlers) CreateNewsletter(c *gin.Context) {
	var req models.CreateNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	secret, err := generateWebhookSecret()
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate webhook secret")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to create newsletter"})
		return
	}

	n := models.Newsletter{
		UserID:          h.userID(c),
		Name:            req.Name,
		Description:     req.Description,
		WebsiteURL:      req.WebsiteURL,
		Niche:           req.Niche,
		SubscriberCount: req.SubscriberCount,
	}
	err = h.db.QueryRow(`
		INSERT INTO newsletters (user_id, name, description, website_url, niche, subscriber_count, webhook_secret)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		n.UserID, n.Name, n.Description, n.WebsiteURL, n.Niche, n.SubscriberCount, secret,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create newsletter")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to create newsletter"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"newsletter":     n,
		"webhook_secret": secret,
	})
}

// DeleteNewsletter removes a newsletter the caller owns. Campaigns and
// landing pages cascade at the database level.
func (h *Handlers) DeleteNewsletter(c *gin.Context) {
	result, err := h.db.Exec(`DELETE FROM newsletters WHERE id = $1 AND user_id = $2`,
		c.Param("id"), h.userID(c))
	if err != nil {
		h.logger.WithError(err).Error("Failed to delete newsletter")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to delete newsletter"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, common.ErrorResponse{Error: "Newsletter not found"})
		return
	}
	c.JSON(http.StatusOK, common.SuccessResponse{Success: true, Message: "Newsletter deleted"})
}

func generateWebhookSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
