package models

import (
	"time"
)

// Landing page statuses
const (
	PageStatusDraft     = "draft"
	PageStatusPublished = "published"
	PageStatusArchived  = "archived"
)

// LandingPage represents a newsletter signup landing page
type LandingPage struct {
	ID              string     `json:"id"`
	NewsletterID    string     `json:"newsletter_id"`
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	MetaDescription string     `json:"meta_description,omitempty"`
	Status          string     `json:"status"`
	TargetKeyword   string     `json:"target_keyword,omitempty"`
	Content         JSONB      `json:"content,omitempty"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CreateLandingPageRequest represents the landing page creation request
type CreateLandingPageRequest struct {
	NewsletterID    string `json:"newsletterId" binding:"required"`
	Slug            string `json:"slug" binding:"required"`
	Title           string `json:"title" binding:"required"`
	MetaDescription string `json:"metaDescription"`
	TargetKeyword   string `json:"targetKeyword"`
	Content         JSONB  `json:"content"`
	Status          string `json:"status"`
}
