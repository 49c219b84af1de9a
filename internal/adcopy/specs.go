package adcopy

import "fmt"

// Platform identifies an ad destination. The set is closed; anything
// else is rejected at validation time.
type Platform string

const (
	PlatformTwitter  Platform = "twitter"
	PlatformLinkedIn Platform = "linkedin"
	PlatformSEO      Platform = "seo"
)

// FieldLimit holds character ceilings for one copy field. WithLink is
// the reduced ceiling when the text carries a shortened URL; Min only
// applies to long-form body content.
type FieldLimit struct {
	Max         int `json:"max,omitempty"`
	Recommended int `json:"recommended,omitempty"`
	WithLink    int `json:"withLink,omitempty"`
	Min         int `json:"min,omitempty"`
}

type CTAOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type AdType struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Fields      map[string]FieldLimit `json:"fields"`
}

// Spec is the per-platform metadata table: limits, CTA whitelist, tone
// and best-practice guidance, plus the system prompt used for live
// generation. Built once at init and never mutated.
type Spec struct {
	Name          string                `json:"name"`
	AdTypes       map[string]AdType     `json:"adTypes,omitempty"`
	Fields        map[string]FieldLimit `json:"fields,omitempty"`
	CTAOptions    []CTAOption           `json:"ctaOptions,omitempty"`
	Tone          string                `json:"tone,omitempty"`
	BestPractices []string              `json:"bestPractices"`
	SystemPrompt  string                `json:"-"`
}

// Character limits sourced from the 2024 platform documentation:
// Twitter/X creative ad specifications and LinkedIn help center.
var (
	twitterTweetCopy    = FieldLimit{Max: 280, WithLink: 257, Recommended: 250}
	twitterCardCopy     = FieldLimit{Max: 256, Recommended: 240}
	twitterHeadline     = FieldLimit{Max: 70, Recommended: 50}
	linkedinIntroText   = FieldLimit{Max: 600, Recommended: 150}
	linkedinHeadline    = FieldLimit{Max: 200, Recommended: 70}
	linkedinDescription = FieldLimit{Max: 70, Recommended: 70}
	linkedinTextAdTitle = FieldLimit{Max: 25, Recommended: 25}
	linkedinTextAdBody  = FieldLimit{Max: 75, Recommended: 75}
	seoPageTitle        = FieldLimit{Max: 60, Recommended: 55}
	seoMetaDescription  = FieldLimit{Max: 160, Recommended: 155}
	seoH1Headline       = FieldLimit{Max: 70, Recommended: 60}
	seoBodyContent      = FieldLimit{Min: 300, Recommended: 500}
)

var platformSpecs = buildSpecs()

// Lookup resolves a platform identifier to its spec. Unknown
// identifiers fail with ErrUnknownPlatform.
func Lookup(platform string) (Spec, error) {
	spec, ok := platformSpecs[Platform(platform)]
	if !ok {
		return Spec{}, ErrUnknownPlatform
	}
	return spec, nil
}

// Platforms returns the closed set of supported platform identifiers.
func Platforms() []Platform {
	return []Platform{PlatformTwitter, PlatformLinkedIn, PlatformSEO}
}

func buildSpecs() map[Platform]Spec {
	return map[Platform]Spec{
		PlatformTwitter: {
			Name: "Twitter/X",
			AdTypes: map[string]AdType{
				"promoted_tweet": {
					Name:        "Promoted Tweet",
					Description: "Standard promoted tweet with optional media",
					Fields: map[string]FieldLimit{
						"tweetCopy": twitterTweetCopy,
						"headline":  twitterHeadline,
					},
				},
				"website_card": {
					Name:        "Website Card",
					Description: "Card with website preview and CTA button",
					Fields: map[string]FieldLimit{
						"tweetCopy": twitterCardCopy,
						"headline":  twitterHeadline,
					},
				},
			},
			CTAOptions: []CTAOption{
				{Value: "subscribe", Label: "Subscribe"},
				{Value: "learn_more", Label: "Learn More"},
				{Value: "read_more", Label: "Read More"},
				{Value: "sign_up", Label: "Sign Up"},
				{Value: "shop_now", Label: "Shop Now"},
			},
			Tone: "casual, direct, conversational",
			BestPractices: []string{
				"Use hashtags sparingly (1-2 max)",
				"Ask questions to drive engagement",
				"Use numbers and specific stats",
				"Keep it punchy and scannable",
				"Emojis can boost engagement when relevant",
			},
			SystemPrompt: twitterSystemPrompt(),
		},
		PlatformLinkedIn: {
			Name: "LinkedIn",
			AdTypes: map[string]AdType{
				"single_image": {
					Name:        "Single Image Ad",
					Description: "Intro text is the main body copy above the image",
					Fields: map[string]FieldLimit{
						"introText":   linkedinIntroText,
						"headline":    linkedinHeadline,
						"description": linkedinDescription,
					},
				},
				"text_ad": {
					Name:        "Text Ad",
					Description: "Small sidebar ads",
					Fields: map[string]FieldLimit{
						"headline":    linkedinTextAdTitle,
						"description": linkedinTextAdBody,
					},
				},
				"sponsored_content": {
					Name:        "Sponsored Content",
					Description: "Native feed content format",
					Fields: map[string]FieldLimit{
						"introText": linkedinIntroText,
						"headline":  linkedinHeadline,
					},
				},
			},
			CTAOptions: []CTAOption{
				{Value: "subscribe", Label: "Subscribe"},
				{Value: "learn_more", Label: "Learn More"},
				{Value: "sign_up", Label: "Sign Up"},
				{Value: "download", Label: "Download"},
				{Value: "get_quote", Label: "Get Quote"},
				{Value: "apply_now", Label: "Apply Now"},
				{Value: "register", Label: "Register"},
			},
			Tone: "professional, authoritative, thought-leadership",
			BestPractices: []string{
				"Lead with a strong insight or statistic",
				"Speak to professional aspirations",
				"Use industry-specific language",
				"Mention credentials or social proof",
				"Avoid casual language and emojis",
			},
			SystemPrompt: linkedinSystemPrompt(),
		},
		PlatformSEO: {
			Name: "SEO Landing Page",
			Fields: map[string]FieldLimit{
				"pageTitle":       seoPageTitle,
				"metaDescription": seoMetaDescription,
				"h1Headline":      seoH1Headline,
				"bodyContent":     seoBodyContent,
			},
			BestPractices: []string{
				"Include target keyword in title and H1",
				"Write meta description as a compelling CTA",
				"Use keyword naturally, avoid stuffing",
				"Focus on user intent, not just keywords",
				"Include clear value proposition",
			},
			SystemPrompt: seoSystemPrompt(),
		},
	}
}

// The system prompts interpolate the limit table above so the prompt
// text can never drift from the published limits.

func twitterSystemPrompt() string {
	return fmt.Sprintf(`You are an expert Twitter/X advertising copywriter specializing in newsletter growth.

TWITTER AD SPECIFICATIONS:
- Tweet copy: %d characters max (%d if including a link)
- Headline (for cards): %d characters max, %d recommended to avoid truncation
- Keep tweets punchy, scannable, and direct

TWITTER VOICE & STYLE:
- Casual, conversational tone
- Use "you" and speak directly to the reader
- Numbers and specific stats perform well
- Questions drive engagement
- Emojis can boost engagement (use 1-2 max, if appropriate)
- Hashtags: 1-2 max, only if highly relevant
- Avoid corporate speak

EFFECTIVE TWITTER AD PATTERNS:
- "I spent X hours/years doing Y. Here's what I learned:"
- "X people already know this secret about Y"
- Controversial take + value promise
- Specific number + benefit

Generate ad copy that feels native to Twitter, not like an ad.`,
		twitterTweetCopy.Max, twitterTweetCopy.WithLink,
		twitterHeadline.Max, twitterHeadline.Recommended)
}

func linkedinSystemPrompt() string {
	return fmt.Sprintf(`You are an expert LinkedIn advertising copywriter specializing in professional newsletter growth.

LINKEDIN AD SPECIFICATIONS:
- Introductory text (main copy): %d characters max, %d recommended to avoid truncation
- Headline: %d characters max, %d recommended for full visibility
- Professional tone is mandatory

LINKEDIN VOICE & STYLE:
- Professional, authoritative, thought-leadership tone
- Lead with insights, data, or industry trends
- Speak to professional aspirations and career growth
- Use industry-specific terminology appropriately
- NO emojis, NO casual language
- Credentials and social proof are highly effective
- First-person professional voice works well

EFFECTIVE LINKEDIN AD PATTERNS:
- "After [X years/experience], I discovered..."
- "The top [X%%] of [professionals] know this..."
- Industry insight + exclusive access
- Problem in industry + your solution

Generate ad copy that positions the newsletter as essential professional reading.`,
		linkedinIntroText.Max, linkedinIntroText.Recommended,
		linkedinHeadline.Max, linkedinHeadline.Recommended)
}

func seoSystemPrompt() string {
	return fmt.Sprintf(`You are an expert SEO copywriter specializing in high-converting landing pages for newsletter signups.

SEO PAGE SPECIFICATIONS:
- Page title: %d characters max (%d recommended) - appears in Google results
- Meta description: %d characters max (%d recommended) - appears below title in Google
- H1 headline: %d characters max - main visible heading on page

SEO BEST PRACTICES:
- Include target keyword naturally in title and H1
- Write meta description as a compelling call-to-action
- Focus on search intent - what is the user trying to accomplish?
- Use power words that drive clicks: "free", "exclusive", "proven", "essential"
- Include numbers when relevant (e.g., "Join 10,000+ subscribers")
- Avoid keyword stuffing - write for humans first

EFFECTIVE SEO PATTERNS:
- Title: "[Keyword] - [Benefit] | [Brand]"
- Meta: Compelling reason to click + what they'll get
- H1: Clear value proposition with keyword

Generate SEO content optimized for both search engines AND conversions.`,
		seoPageTitle.Max, seoPageTitle.Recommended,
		seoMetaDescription.Max, seoMetaDescription.Recommended,
		seoH1Headline.Max)
}
