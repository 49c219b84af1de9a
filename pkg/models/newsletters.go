package models

import (
	"time"
)

// Newsletter represents a creator's newsletter
type Newsletter struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	WebsiteURL      string    `json:"website_url,omitempty"`
	Niche           string    `json:"niche,omitempty"`
	SubscriberCount int       `json:"subscriber_count"`
	WebhookSecret   string    `json:"-"` // Only surfaced once, on creation
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateNewsletterRequest represents the newsletter creation request
type CreateNewsletterRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	WebsiteURL      string `json:"websiteUrl"`
	Niche           string `json:"niche"`
	SubscriberCount int    `json:"subscriberCount"`
}

// NewsletterListing is a public directory entry for cross-promotion
type NewsletterListing struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Niche           string `json:"niche,omitempty"`
	SubscriberCount int    `json:"subscriber_count"`
}
