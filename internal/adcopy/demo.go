package adcopy

import "fmt"

// Canned variations returned when no generation credential is
// configured. Shared by the dispatcher and the tests so the demo data
// cannot drift between the two.

func demoVariations(platform Platform, newsletterName string, count int) interface{} {
	switch platform {
	case PlatformTwitter:
		return capTwitter(demoTwitter(newsletterName), count)
	case PlatformLinkedIn:
		return capLinkedIn(demoLinkedIn(newsletterName), count)
	case PlatformSEO:
		return capSEO(demoSEO(newsletterName), count)
	}
	return []TwitterVariation{}
}

func demoTwitter(name string) []TwitterVariation {
	return []TwitterVariation{
		{
			TweetCopy: fmt.Sprintf("Stop doom-scrolling. Start learning. %s delivers the insights you need in 5 min/day.", name),
			Headline:  "Get smarter in 5 minutes",
			CTAText:   "Subscribe",
			Hashtags:  []string{"newsletter", "productivity"},
			Reasoning: "Uses pattern interrupt + clear time investment benefit",
		},
		{
			TweetCopy: fmt.Sprintf("10,000+ professionals read %s every morning. Here's why they won't start their day without it:", name),
			Headline:  "Join 10k+ subscribers",
			CTAText:   "Learn More",
			Hashtags:  []string{"morningroutine"},
			Reasoning: "Social proof + curiosity gap creates engagement",
		},
		{
			TweetCopy: fmt.Sprintf("I used to waste hours researching. Now I get everything I need from %s. Free. Every week.", name),
			Headline:  "Save hours every week",
			CTAText:   "Sign Up",
			Hashtags:  []string{"timesaver", "newsletter"},
			Reasoning: "Personal testimonial style + clear value proposition",
		},
	}
}

func demoLinkedIn(name string) []LinkedInVariation {
	return []LinkedInVariation{
		{
			IntroText: fmt.Sprintf("The most successful professionals don't have more time. They have better information. %s delivers it.", name),
			Headline:  "Level up your expertise",
			CTAText:   "Subscribe",
			Reasoning: "Appeals to professional growth mindset",
		},
		{
			IntroText: fmt.Sprintf("Every week, I curate the most important insights so you don't have to. Join %s.", name),
			Headline:  "Curated insights, weekly",
			CTAText:   "Learn More",
			Reasoning: "Emphasizes curation value and time savings",
		},
		{
			IntroText: fmt.Sprintf("Your competitors are reading %s. The question is: are you?", name),
			Headline:  "Stay ahead of the curve",
			CTAText:   "Sign Up",
			Reasoning: "Creates competitive urgency without being pushy",
		},
	}
}

func demoSEO(name string) []SEOVariation {
	return []SEOVariation{
		{
			PageTitle:       fmt.Sprintf("%s - Free Weekly Newsletter", name),
			MetaDescription: fmt.Sprintf("Join thousands of professionals getting curated insights delivered free. Subscribe to %s today.", name),
			H1Headline:      fmt.Sprintf("Subscribe to %s", name),
			Reasoning:       "Clean, keyword-focused with clear CTA",
		},
		{
			PageTitle:       fmt.Sprintf("%s | Expert Insights Weekly", name),
			MetaDescription: fmt.Sprintf("Get the best industry insights in 5 minutes. %s is the newsletter trusted by 10k+ readers.", name),
			H1Headline:      fmt.Sprintf("Get Smarter with %s", name),
			Reasoning:       "Benefit-focused with social proof element",
		},
		{
			PageTitle:       fmt.Sprintf("Subscribe to %s - Free", name),
			MetaDescription: fmt.Sprintf("Stop missing out on key insights. %s curates the best content and delivers it to your inbox free.", name),
			H1Headline:      "Never Miss an Update",
			Reasoning:       "FOMO approach with clear free value",
		},
	}
}

func capTwitter(v []TwitterVariation, count int) []TwitterVariation {
	if count > 0 && count < len(v) {
		return v[:count]
	}
	return v
}

func capLinkedIn(v []LinkedInVariation, count int) []LinkedInVariation {
	if count > 0 && count < len(v) {
		return v[:count]
	}
	return v
}

func capSEO(v []SEOVariation, count int) []SEOVariation {
	if count > 0 && count < len(v) {
		return v[:count]
	}
	return v
}
