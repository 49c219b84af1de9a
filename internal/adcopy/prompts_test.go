package adcopy

import (
	"strings"
	"testing"
)

func TestBuildPromptsIdempotent(t *testing.T) {
	req := Request{
		Platform:              "twitter",
		NewsletterName:        "The Weekly Byte",
		NewsletterDescription: "Tech news for busy engineers",
		TargetAudience:        "software engineers",
		SubscriberCount:       12500,
		UniqueValue:           "5-minute reads",
		Count:                 3,
	}

	system1, user1 := BuildPrompts(req)
	system2, user2 := BuildPrompts(req)
	if system1 != system2 || user1 != user2 {
		t.Error("identical requests must yield byte-identical prompts")
	}
}

func TestBuildPromptsTwitter(t *testing.T) {
	_, user := BuildPrompts(Request{
		Platform:              "twitter",
		NewsletterName:        "The Weekly Byte",
		NewsletterDescription: "Tech news",
		SubscriberCount:       12500,
		Count:                 3,
	})

	if !strings.Contains(user, "Generate 3 Twitter/X ad copy variations") {
		t.Errorf("missing count header:\n%s", user)
	}
	if !strings.Contains(user, "Current Subscribers: 12,500") {
		t.Errorf("expected grouped subscriber count:\n%s", user)
	}
	if !strings.Contains(user, "Target Audience: General professionals") {
		t.Errorf("expected audience fallback:\n%s", user)
	}
	if !strings.Contains(user, "MUST be under 257 characters") {
		t.Errorf("expected tweet ceiling from limit table:\n%s", user)
	}
	if !strings.Contains(user, `Return as: { "variations": [...] }`) {
		t.Errorf("missing response shape instruction:\n%s", user)
	}
}

func TestBuildPromptsOmitsEmptyContext(t *testing.T) {
	_, user := BuildPrompts(Request{
		Platform:              "linkedin",
		NewsletterDescription: "Leadership insights",
		Count:                 2,
	})

	if strings.Contains(user, "Current Subscribers") {
		t.Error("subscriber line should be omitted when count is zero")
	}
	if strings.Contains(user, "Unique Value Proposition") {
		t.Error("unique value line should be omitted when empty")
	}
	if !strings.Contains(user, "Newsletter Name: Newsletter") {
		t.Errorf("expected name fallback:\n%s", user)
	}
}

func TestBuildPromptsSEOKeywordFallback(t *testing.T) {
	_, user := BuildPrompts(Request{
		Platform:              "seo",
		NewsletterDescription: "Marketing tips",
		Count:                 3,
	})
	if !strings.Contains(user, "Target Keyword: newsletter") {
		t.Errorf("expected keyword fallback:\n%s", user)
	}
	if !strings.Contains(user, "MUST be under 55 characters") {
		t.Errorf("expected page title ceiling:\n%s", user)
	}
}

func TestBuildPromptsUnknownPlatformFallback(t *testing.T) {
	system, user := BuildPrompts(Request{
		Platform:              "tiktok",
		NewsletterDescription: "Video tips",
		Count:                 2,
	})
	if system != "" {
		t.Errorf("expected empty system prompt for unknown platform, got %q", system)
	}
	if !strings.Contains(user, "Generate 2 ad copy variations for:") {
		t.Errorf("expected generic fallback prompt:\n%s", user)
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12500, "12,500"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := groupDigits(tt.in); got != tt.want {
			t.Errorf("groupDigits(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
