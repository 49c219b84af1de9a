// Package promokit builds weekly organic promotion kits: social posts,
// a cross-promotion pitch, and a paid ad starter for one newsletter.
package promokit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"herald/pkg/llm"
	"herald/pkg/logging"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrMissingFields = fmt.Errorf("%w: newsletter name and description are required", ErrValidation)
	ErrGeneration    = errors.New("failed to generate promotion kit")
)

type TwitterPost struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}

type LinkedInPost struct {
	Content string `json:"content"`
}

type CrossPromoPitch struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type TwitterAd struct {
	Tweet    string `json:"tweet"`
	Headline string `json:"headline"`
}

// Kit is one week's worth of promotional material.
type Kit struct {
	TwitterPosts    []TwitterPost   `json:"twitterPosts"`
	LinkedInPost    LinkedInPost    `json:"linkedinPost"`
	CrossPromoPitch CrossPromoPitch `json:"crossPromoPitch"`
	TwitterAd       *TwitterAd      `json:"twitterAd,omitempty"`
}

type Request struct {
	NewsletterName        string `json:"newsletterName"`
	NewsletterDescription string `json:"newsletterDescription"`
	Niche                 string `json:"niche"`
}

type Result struct {
	Kit    Kit  `json:"kit"`
	IsDemo bool `json:"isDemo"`
}

// Generator produces promotion kits. A nil provider selects demo mode.
type Generator struct {
	provider llm.Provider
	logger   logging.Logger
}

func NewGenerator(provider llm.Provider, logger logging.Logger) *Generator {
	return &Generator{provider: provider, logger: logger}
}

const (
	maxTokens   = 2000
	temperature = 0.8
)

func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	name := strings.TrimSpace(req.NewsletterName)
	description := strings.TrimSpace(req.NewsletterDescription)
	if name == "" || description == "" {
		return nil, ErrMissingFields
	}

	if g.provider == nil {
		g.logger.Info("No generation credential configured, using demo promotion kit")
		return &Result{Kit: demoKit(name, req.Niche), IsDemo: true}, nil
	}

	raw, err := g.provider.CompleteJSON(ctx, llm.Request{
		System:      kitSystemPrompt,
		User:        kitUserPrompt(name, description, req.Niche),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		g.logger.WithError(err).Error("Promotion kit generation failed")
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var kit Kit
	if err := json.Unmarshal(raw, &kit); err != nil {
		g.logger.WithError(err).Error("Promotion kit generation returned malformed JSON")
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return &Result{Kit: kit, IsDemo: false}, nil
}

const kitSystemPrompt = `You are an expert newsletter growth strategist. You help newsletter creators promote their newsletters through organic social media and outreach.

Your content should be:
- Authentic and not salesy
- Optimized for each platform's best practices
- Focused on value, not hype
- Written in a conversational tone

Always return valid JSON.`

func kitUserPrompt(name, description, niche string) string {
	if strings.TrimSpace(niche) == "" {
		niche = "General"
	}
	return fmt.Sprintf(`Generate a weekly promotion kit for this newsletter:

Newsletter Name: %s
Description: %s
Niche: %s

Generate the following in JSON format:
{
  "twitterPosts": [
    { "content": "...", "type": "Personal story" },
    { "content": "...", "type": "Value proposition" },
    { "content": "...", "type": "Issue teaser" }
  ],
  "linkedinPost": {
    "content": "..." (longer form, professional tone, use line breaks and bullet points)
  },
  "crossPromoPitch": {
    "subject": "...",
    "body": "..." (friendly DM/email to send to other newsletter creators)
  },
  "twitterAd": {
    "tweet": "..." (under 200 chars, compelling hook),
    "headline": "..." (under 50 chars for ad card)
  }
}

Requirements:
- Twitter posts should be under 280 characters each
- Each Twitter post should have a different angle/type
- LinkedIn post should be 150-300 words, use emojis sparingly
- Cross-promo pitch should be friendly but professional
- Twitter ad should be punchy and direct`, name, description, niche)
}
