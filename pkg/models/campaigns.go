package models

import (
	"time"
)

// Campaign statuses
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

// Campaign represents a promotion campaign for a newsletter
type Campaign struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	NewsletterID     string     `json:"newsletter_id"`
	NewsletterName   string     `json:"newsletter_name,omitempty"`
	Name             string     `json:"name"`
	Platform         string     `json:"platform"`
	Status           string     `json:"status"`
	Objective        string     `json:"objective,omitempty"`
	DailyBudgetCents *int       `json:"daily_budget_cents,omitempty"`
	TotalBudgetCents *int       `json:"total_budget_cents,omitempty"`
	Targeting        JSONB      `json:"targeting,omitempty"`
	AIGeneratedCopy  JSONB      `json:"ai_generated_copy,omitempty"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// CreateCampaignRequest represents the campaign creation request
type CreateCampaignRequest struct {
	NewsletterID     string     `json:"newsletterId" binding:"required"`
	Name             string     `json:"name" binding:"required"`
	Platform         string     `json:"platform" binding:"required"`
	Objective        string     `json:"objective"`
	DailyBudgetCents *int       `json:"dailyBudgetCents"`
	TotalBudgetCents *int       `json:"totalBudgetCents"`
	Targeting        JSONB      `json:"targeting"`
	AIGeneratedCopy  JSONB      `json:"aiGeneratedCopy"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	Status           string     `json:"status"`
}

// UpdateCampaignStatusRequest updates a campaign's lifecycle status
type UpdateCampaignStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
