// Package seo produces keyword-driven optimization advice for
// newsletter landing pages.
package seo

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
	ErrValidation     = errors.New("validation failed")
	ErrMissingKeyword = fmt.Errorf("%w: target keyword is required", ErrValidation)

	// ErrUnavailable means no generation credential is configured.
	// Optimization has no canned fallback, unlike ad copy generation.
	ErrUnavailable = errors.New("seo optimization requires a configured generation provider")

	ErrOptimization = errors.New("failed to optimize SEO")
)

type Request struct {
	TargetKeyword   string `json:"targetKeyword"`
	CurrentContent  string `json:"currentContent"`
	PageType        string `json:"pageType"`
	NewsletterNiche string `json:"newsletterNiche"`
}

type Optimizer struct {
	provider llm.Provider
	logger   logging.Logger
}

func NewOptimizer(provider llm.Provider, logger logging.Logger) *Optimizer {
	return &Optimizer{provider: provider, logger: logger}
}

// Available reports whether live optimization can run.
func (o *Optimizer) Available() bool {
	return o.provider != nil
}

const maxTokens = 2000

// Optimize runs one optimization pass and returns the advice object as
// raw JSON. The response shape is owned by the generation service; it
// is passed through to the caller untouched.
func (o *Optimizer) Optimize(ctx context.Context, req Request) (json.RawMessage, error) {
	if strings.TrimSpace(req.TargetKeyword) == "" {
		return nil, ErrMissingKeyword
	}
	if o.provider == nil {
		return nil, ErrUnavailable
	}

	raw, err := o.provider.CompleteJSON(ctx, llm.Request{
		System:    optimizerSystemPrompt,
		User:      optimizerUserPrompt(req),
		MaxTokens: maxTokens,
	})
	if err != nil {
		o.logger.WithError(err).Error("SEO optimization failed")
		return nil, fmt.Errorf("%w: %v", ErrOptimization, err)
	}
	if !json.Valid(raw) {
		o.logger.Error("SEO optimization returned malformed JSON")
		return nil, fmt.Errorf("%w: malformed response", ErrOptimization)
	}
	return json.RawMessage(raw), nil
}

const optimizerSystemPrompt = `You are an SEO expert specializing in newsletter landing page optimization. You help create high-ranking content that converts visitors into subscribers.

Your optimization follows these principles:
1. Natural keyword integration without stuffing
2. Clear, compelling headlines that include target keywords
3. Meta descriptions that drive clicks from search results
4. Content structure with proper heading hierarchy (H1, H2, H3)
5. User-focused content that answers search intent

Provide actionable, specific recommendations.`

func optimizerUserPrompt(req Request) string {
	pageType := strings.TrimSpace(req.PageType)
	if pageType == "" {
		pageType = "landing_page"
	}
	niche := strings.TrimSpace(req.NewsletterNiche)
	if niche == "" {
		niche = "General"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Optimize a %s for the following:\n\n", pageType)
	fmt.Fprintf(&b, "Target Keyword: %s\n", req.TargetKeyword)
	fmt.Fprintf(&b, "Newsletter Niche: %s\n", niche)
	if content := strings.TrimSpace(req.CurrentContent); content != "" {
		fmt.Fprintf(&b, "Current Content:\n%s\n", content)
	}
	b.WriteString(`
Provide:
1. optimizedTitle - SEO-optimized page title (50-60 characters)
2. metaDescription - Compelling meta description (150-160 characters)
3. headings - Array of H2 subheadings to structure the page
4. contentSuggestions - Array of content ideas/paragraphs
5. keywordDensityTarget - Recommended keyword density (decimal)
6. seoScore - Estimated SEO score out of 100
7. improvements - Array of specific improvements to make

Return as JSON.`)
	return b.String()
}
