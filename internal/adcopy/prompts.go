package adcopy

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	defaultAudience = "General professionals"
	defaultKeyword  = "newsletter"
)

// BuildPrompts renders the system and user prompts for a generation
// request. Pure function of its inputs: identical requests yield
// byte-identical prompts, so a "regenerate" action varies only through
// sampling temperature.
func BuildPrompts(req Request) (system, user string) {
	count := req.Count
	if count <= 0 {
		count = defaultCount
	}
	base := baseContext(req)

	spec, err := Lookup(req.Platform)
	if err != nil {
		return "", fmt.Sprintf("Generate %d ad copy variations for: %s", count, base)
	}

	switch Platform(req.Platform) {
	case PlatformTwitter:
		return spec.SystemPrompt, fmt.Sprintf(`Generate %d Twitter/X ad copy variations for this newsletter:

%s

For EACH variation, provide a JSON object with:
- tweetCopy: The main tweet text (MUST be under %d characters to allow for link)
- headline: Website card headline (MUST be under %d characters to avoid truncation)
- ctaText: One of: "Subscribe", "Learn More", "Read More", "Sign Up"
- hashtags: Array of 1-2 relevant hashtags (without # symbol)
- reasoning: Brief explanation of why this approach might resonate

Return as: { "variations": [...] }`,
			count, base, twitterTweetCopy.WithLink, twitterHeadline.Recommended)

	case PlatformLinkedIn:
		return spec.SystemPrompt, fmt.Sprintf(`Generate %d LinkedIn ad copy variations for this newsletter:

%s

For EACH variation, provide a JSON object with:
- introText: Main body copy above image (MUST be under %d characters to avoid truncation on mobile)
- headline: Below-image headline (MUST be under %d characters to display fully)
- ctaText: One of: "Subscribe", "Learn More", "Sign Up", "Download", "Register"
- reasoning: Brief explanation of why this professional angle might work

Return as: { "variations": [...] }`,
			count, base, linkedinIntroText.Recommended, linkedinHeadline.Recommended)

	case PlatformSEO:
		keyword := strings.TrimSpace(req.TargetKeyword)
		if keyword == "" {
			keyword = defaultKeyword
		}
		return spec.SystemPrompt, fmt.Sprintf(`Generate %d SEO-optimized content variations for a newsletter landing page:

%s
Target Keyword: %s

For EACH variation, provide a JSON object with:
- pageTitle: Browser/Google title (MUST be under %d characters, include keyword naturally)
- metaDescription: Google snippet text (MUST be under %d characters, make it a compelling CTA)
- h1Headline: Main page heading (MUST be under %d characters, include keyword)
- reasoning: Brief explanation of the SEO and conversion strategy

Return as: { "variations": [...] }`,
			count, base, keyword,
			seoPageTitle.Recommended, seoMetaDescription.Recommended, seoH1Headline.Recommended)
	}

	return spec.SystemPrompt, fmt.Sprintf("Generate %d ad copy variations for: %s", count, base)
}

func baseContext(req Request) string {
	name := strings.TrimSpace(req.NewsletterName)
	if name == "" {
		name = "Newsletter"
	}
	audience := strings.TrimSpace(req.TargetAudience)
	if audience == "" {
		audience = defaultAudience
	}

	lines := []string{
		"Newsletter Name: " + name,
		"Newsletter Description: " + strings.TrimSpace(req.NewsletterDescription),
		"Target Audience: " + audience,
	}
	if req.SubscriberCount > 0 {
		lines = append(lines, "Current Subscribers: "+groupDigits(req.SubscriberCount))
	}
	if uv := strings.TrimSpace(req.UniqueValue); uv != "" {
		lines = append(lines, "Unique Value Proposition: "+uv)
	}
	return strings.Join(lines, "\n")
}

// groupDigits renders n with comma thousands separators.
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
