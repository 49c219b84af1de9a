package adcopy

// Typed variation shapes, one per platform. Live-mode responses are
// passed through as raw JSON; these types back the demo tables and the
// character-count validator.

type TwitterVariation struct {
	TweetCopy string   `json:"tweetCopy"`
	Headline  string   `json:"headline"`
	CTAText   string   `json:"ctaText"`
	Hashtags  []string `json:"hashtags,omitempty"`
	Reasoning string   `json:"reasoning"`
}

type LinkedInVariation struct {
	IntroText string `json:"introText"`
	Headline  string `json:"headline"`
	CTAText   string `json:"ctaText"`
	Reasoning string `json:"reasoning"`
}

type SEOVariation struct {
	PageTitle       string `json:"pageTitle"`
	MetaDescription string `json:"metaDescription"`
	H1Headline      string `json:"h1Headline"`
	Reasoning       string `json:"reasoning"`
}
