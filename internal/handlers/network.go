package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"herald/pkg/api/common"
	"herald/pkg/models"
)

const networkPageSize = 50

// GetNetwork lists other creators' newsletters for cross-promotion
// matching. The caller's own newsletters are excluded; an optional
// niche query parameter narrows the directory.
func (h *Handlers) GetNetwork(c *gin.Context) {
	userID := h.userID(c)
	niche := c.Query("niche")

	query := `
		SELECT id, name, COALESCE(description, ''), COALESCE(niche, ''), subscriber_count
		FROM newsletters
		WHERE user_id != $1`
	args := []interface{}{userID}
	if niche != "" {
		query += ` AND niche = $2`
		args = append(args, niche)
	}
	query += `
		ORDER BY subscriber_count DESC
		LIMIT $` + strconv.Itoa(len(args)+1)
	args = append(args, networkPageSize)

	rows, err := h.db.Query(query, args...)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list network newsletters")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to load network"})
		return
	}
	defer rows.Close()

	listings := []models.NewsletterListing{}
	for rows.Next() {
		var l models.NewsletterListing
		if err := rows.Scan(&l.ID, &l.Name, &l.Description, &l.Niche, &l.SubscriberCount); err != nil {
			h.logger.WithError(err).Error("Failed to scan network newsletter")
			c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to load network"})
			return
		}
		listings = append(listings, l)
	}

	c.JSON(http.StatusOK, gin.H{"newsletters": listings})
}
