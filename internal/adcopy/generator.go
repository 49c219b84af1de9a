package adcopy

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"herald/pkg/llm"
	"herald/pkg/logging"
)

const (
	defaultCount = 3
	maxTokens    = 2000
	// Slightly higher for more creative variations.
	temperature = 0.8
)

// Request carries the newsletter context for one generation call.
type Request struct {
	Platform              string `json:"platform"`
	NewsletterName        string `json:"newsletterName"`
	NewsletterDescription string `json:"newsletterDescription"`
	TargetAudience        string `json:"targetAudience"`
	SubscriberCount       int    `json:"subscriberCount"`
	UniqueValue           string `json:"uniqueValue"`
	TargetKeyword         string `json:"targetKeyword"`
	Count                 int    `json:"count"`
}

// Result is the full generation response. Variations stays raw JSON
// because live responses are passed through untouched; demo variations
// are marshaled from the typed tables.
type Result struct {
	Platform     string          `json:"platform"`
	PlatformName string          `json:"platformName"`
	Variations   json.RawMessage `json:"variations"`
	Specs        Spec            `json:"specs"`
	IsDemo       bool            `json:"isDemo"`
}

// Generator dispatches between the demo and live generation paths. A
// nil provider selects demo mode; the mode is fixed at construction
// time, never read from the environment mid-request.
type Generator struct {
	provider llm.Provider
	logger   logging.Logger
}

func NewGenerator(provider llm.Provider, logger logging.Logger) *Generator {
	return &Generator{provider: provider, logger: logger}
}

// Generate validates the request, produces the variation list, and
// attaches the platform metadata the caller needs to render limits and
// tips alongside the copy.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.NewsletterDescription) == "" {
		return nil, ErrMissingDescription
	}
	spec, err := Lookup(req.Platform)
	if err != nil {
		return nil, err
	}

	count := req.Count
	if count <= 0 {
		count = defaultCount
	}

	result := &Result{
		Platform:     req.Platform,
		PlatformName: spec.Name,
		Specs:        spec,
		IsDemo:       g.provider == nil,
	}

	if g.provider == nil {
		g.logger.Info("No generation credential configured, using demo ad copy")
		name := strings.TrimSpace(req.NewsletterName)
		if name == "" {
			name = "Your Newsletter"
		}
		raw, err := json.Marshal(demoVariations(Platform(req.Platform), name, count))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
		}
		result.Variations = raw
		return result, nil
	}

	req.Count = count
	system, user := BuildPrompts(req)

	raw, err := g.provider.CompleteJSON(ctx, llm.Request{
		System:      system,
		User:        user,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		g.logger.WithError(err).Error("Ad copy generation failed")
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	variations, err := unwrapVariations(raw)
	if err != nil {
		g.logger.WithError(err).Error("Ad copy generation returned malformed JSON")
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	result.Variations = variations
	return result, nil
}

// unwrapVariations pulls the variation list out of a completion. The
// generation service is asked for {"variations": [...]} but responses
// without that wrapper are used as the payload verbatim.
func unwrapVariations(raw []byte) (json.RawMessage, error) {
	var envelope struct {
		Variations json.RawMessage `json:"variations"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Variations) > 0 && string(envelope.Variations) != "null" {
		return envelope.Variations, nil
	}
	return json.RawMessage(raw), nil
}
