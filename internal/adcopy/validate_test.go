package adcopy

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestCheckFieldOverRecommendedOnly(t *testing.T) {
	limit := FieldLimit{Max: 280, WithLink: 257}
	check := CheckField("tweetCopy", strings.Repeat("a", 260), limit)

	if check.CharCount != 260 {
		t.Errorf("expected char count 260, got %d", check.CharCount)
	}
	if check.OverMax {
		t.Error("260 chars must not be over a 280 max")
	}
	if !check.OverRecommended {
		t.Error("260 chars must be over the 257 with-link ceiling")
	}
	if check.Recommended != 257 {
		t.Errorf("expected effective recommended 257, got %d", check.Recommended)
	}
}

func TestCheckFieldCountsRunes(t *testing.T) {
	check := CheckField("headline", "café ☕", FieldLimit{Max: 70, Recommended: 50})
	if check.CharCount != 6 {
		t.Errorf("expected 6 runes, got %d", check.CharCount)
	}
}

func TestCheckVariationTwitter(t *testing.T) {
	raw, _ := json.Marshal(TwitterVariation{
		TweetCopy: strings.Repeat("x", 300),
		Headline:  "short",
	})

	checks, err := CheckVariation(PlatformTwitter, raw)
	if err != nil {
		t.Fatalf("CheckVariation: %v", err)
	}
	if len(checks) != 2 {
		t.Fatalf("expected 2 field checks, got %d", len(checks))
	}

	byField := map[string]FieldCheck{}
	for _, c := range checks {
		byField[c.Field] = c
	}
	if !byField["tweetCopy"].OverMax {
		t.Error("300-char tweet copy must be over max")
	}
	if byField["headline"].OverMax || byField["headline"].OverRecommended {
		t.Error("short headline must pass both thresholds")
	}
}

func TestCheckVariationSEO(t *testing.T) {
	raw, _ := json.Marshal(SEOVariation{
		PageTitle:       strings.Repeat("t", 58),
		MetaDescription: strings.Repeat("m", 150),
		H1Headline:      strings.Repeat("h", 75),
	})

	checks, err := CheckVariation(PlatformSEO, raw)
	if err != nil {
		t.Fatalf("CheckVariation: %v", err)
	}

	byField := map[string]FieldCheck{}
	for _, c := range checks {
		byField[c.Field] = c
	}
	if byField["pageTitle"].OverMax || !byField["pageTitle"].OverRecommended {
		t.Errorf("58-char title should only exceed the 55 recommendation: %+v", byField["pageTitle"])
	}
	if byField["metaDescription"].OverMax || byField["metaDescription"].OverRecommended {
		t.Errorf("150-char meta should pass both thresholds: %+v", byField["metaDescription"])
	}
	if !byField["h1Headline"].OverMax {
		t.Errorf("75-char H1 should exceed the 70 max: %+v", byField["h1Headline"])
	}
}

func TestCheckVariationUnknownPlatform(t *testing.T) {
	_, err := CheckVariation(Platform("facebook"), []byte(`{}`))
	if !errors.Is(err, ErrUnknownPlatform) {
		t.Fatalf("expected ErrUnknownPlatform, got %v", err)
	}
}

func TestCheckVariationMalformedJSON(t *testing.T) {
	if _, err := CheckVariation(PlatformTwitter, []byte(`not json`)); err == nil {
		t.Fatal("expected decode error")
	}
}
