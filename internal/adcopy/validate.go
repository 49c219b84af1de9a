package adcopy

import (
	"encoding/json"
	"unicode/utf8"
)

// FieldCheck reports one copy field measured against its platform
// limits. Advisory only: over-limit copy is surfaced for manual
// editing, never rejected.
type FieldCheck struct {
	Field           string `json:"field"`
	CharCount       int    `json:"charCount"`
	Max             int    `json:"max,omitempty"`
	Recommended     int    `json:"recommended,omitempty"`
	OverMax         bool   `json:"overMax"`
	OverRecommended bool   `json:"overRecommended"`
}

// CheckField measures text against a single limit. Counts runes, not
// bytes, so emoji and accented copy are not over-penalized. When a
// with-link ceiling exists it is the effective recommended threshold,
// since generated copy is expected to carry a signup link.
func CheckField(field, text string, limit FieldLimit) FieldCheck {
	recommended := limit.Recommended
	if limit.WithLink > 0 {
		recommended = limit.WithLink
	}
	n := utf8.RuneCountInString(text)
	return FieldCheck{
		Field:           field,
		CharCount:       n,
		Max:             limit.Max,
		Recommended:     recommended,
		OverMax:         limit.Max > 0 && n > limit.Max,
		OverRecommended: recommended > 0 && n > recommended,
	}
}

// CheckVariation decodes one variation for its platform and measures
// every limited field.
func CheckVariation(platform Platform, raw json.RawMessage) ([]FieldCheck, error) {
	switch platform {
	case PlatformTwitter:
		var v TwitterVariation
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return []FieldCheck{
			CheckField("tweetCopy", v.TweetCopy, twitterTweetCopy),
			CheckField("headline", v.Headline, twitterHeadline),
		}, nil
	case PlatformLinkedIn:
		var v LinkedInVariation
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return []FieldCheck{
			CheckField("introText", v.IntroText, linkedinIntroText),
			CheckField("headline", v.Headline, linkedinHeadline),
		}, nil
	case PlatformSEO:
		var v SEOVariation
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return []FieldCheck{
			CheckField("pageTitle", v.PageTitle, seoPageTitle),
			CheckField("metaDescription", v.MetaDescription, seoMetaDescription),
			CheckField("h1Headline", v.H1Headline, seoH1Headline),
		}, nil
	}
	return nil, ErrUnknownPlatform
}
