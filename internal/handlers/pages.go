package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"herald/pkg/api/common"
	"herald/pkg/models"
)

var allowedPageStatuses = map[string]bool{
	models.PageStatusDraft:     true,
	models.PageStatusPublished: true,
	models.PageStatusArchived:  true,
}

// ListPages returns the landing pages across all of the caller's
// newsletters.
func (h *Handlers) ListPages(c *gin.Context) {
	rows, err := h.db.Query(`
		SELECT p.id, p.newsletter_id, p.slug, p.title, COALESCE(p.meta_description, ''),
		       p.status, COALESCE(p.target_keyword, ''), p.content, p.published_at,
		       p.created_at, p.updated_at
		FROM landing_pages p
		JOIN newsletters n ON n.id = p.newsletter_id
		WHERE n.user_id = $1
		ORDER BY p.created_at DESC`,
		h.userID(c),
	)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list landing pages")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to list landing pages"})
		return
	}
	defer rows.Close()

	pages := []models.LandingPage{}
	for rows.Next() {
		var p models.LandingPage
		if err := rows.Scan(&p.ID, &p.NewsletterID, &p.Slug, &p.Title, &p.MetaDescription,
			&p.Status, &p.TargetKeyword, &p.Content, &p.PublishedAt,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			h.logger.WithError(err).Error("Failed to scan landing page")
			c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to list landing pages"})
			return
		}
		pages = append(pages, p)
	}

	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// CreatePage creates a landing page under a newsletter the caller owns.
func (h *Handlers) CreatePage(c *gin.Context) {
	var req models.CreateLandingPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	status := req.Status
	if status == "" {
		status = models.PageStatusDraft
	}
	if !allowedPageStatuses[status] {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid page status"})
		return
	}

	var owned bool
	err := h.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM newsletters WHERE id = $1 AND user_id = $2)`,
		req.NewsletterID, h.userID(c)).Scan(&owned)
	if err != nil {
		h.logger.WithError(err).Error("Failed to verify newsletter ownership")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to create landing page"})
		return
	}
	if !owned {
		c.JSON(http.StatusNotFound, common.ErrorResponse{Error: "Newsletter not found"})
		return
	}

	p := models.LandingPage{
		NewsletterID:    req.NewsletterID,
		Slug:            req.Slug,
		Title:           req.Title,
		MetaDescription: req.MetaDescription,
		Status:          status,
		TargetKeyword:   req.TargetKeyword,
		Content:         req.Content,
	}
	if status == models.PageStatusPublished {
		now := time.Now()
		p.PublishedAt = &now
	}
	err = h.db.QueryRow(`
		INSERT INTO landing_pages (newsletter_id, slug, title, meta_description, status, target_keyword, content, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, '{}'::jsonb), $8)
		RETURNING id, created_at, updated_at`,
		p.NewsletterID, p.Slug, p.Title, p.MetaDescription, p.Status, p.TargetKeyword, p.Content, p.PublishedAt,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			c.JSON(http.StatusConflict, common.ErrorResponse{Error: "A page with this slug already exists for the newsletter"})
			return
		}
		h.logger.WithError(err).Error("Failed to create landing page")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to create landing page"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// GetPublishedPage serves a published landing page by slug. Public: no
// authentication, draft and archived pages are invisible here.
func (h *Handlers) GetPublishedPage(c *gin.Context) {
	var p models.LandingPage
	var newsletterName, newsletterDescription string
	err := h.db.QueryRow(`
		SELECT p.id, p.newsletter_id, p.slug, p.title, COALESCE(p.meta_description, ''),
		       p.status, COALESCE(p.target_keyword, ''), p.content, p.published_at,
		       p.created_at, p.updated_at, n.name, COALESCE(n.description, '')
		FROM landing_pages p
		JOIN newsletters n ON n.id = p.newsletter_id
		WHERE p.slug = $1 AND p.status = 'published'
		ORDER BY p.published_at DESC
		LIMIT 1`,
		c.Param("slug"),
	).Scan(&p.ID, &p.NewsletterID, &p.Slug, &p.Title, &p.MetaDescription,
		&p.Status, &p.TargetKeyword, &p.Content, &p.PublishedAt,
		&p.CreatedAt, &p.UpdatedAt, &newsletterName, &newsletterDescription)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, common.ErrorResponse{Error: "Page not found"})
			return
		}
		h.logger.WithError(err).Error("Failed to load landing page")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to load page"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":                   p,
		"newsletter_name":        newsletterName,
		"newsletter_description": newsletterDescription,
	})
}
