package promokit

import "fmt"

func demoKit(newsletterName, niche string) Kit {
	nicheText := niche
	if nicheText == "" {
		nicheText = "your industry"
	}

	return Kit{
		TwitterPosts: []TwitterPost{
			{
				Content: fmt.Sprintf("I've been writing %s for a while now, and I'm still amazed by the responses I get.\n\nIf you want %s insights that actually help you, link in bio.", newsletterName, nicheText),
				Type:    "Personal story",
			},
			{
				Content: fmt.Sprintf("Most %s newsletters are boring.\n\n%s isn't.\n\nWe keep it short, useful, and actually worth reading.\n\nSubscribe free: [link]", nicheText, newsletterName),
				Type:    "Value proposition",
			},
			{
				Content: fmt.Sprintf("New issue of %s just dropped 🔥\n\nThis week:\n• Trend everyone's missing\n• 3 actionable tips\n• 1 tool that changed my workflow\n\nRead it here: [link]", newsletterName),
				Type:    "Issue teaser",
			},
		},
		LinkedInPost: LinkedInPost{
			Content: fmt.Sprintf("I started %s because I was tired of sifting through noise to find signal in %s.\n\nEvery week, I spend hours researching so you don't have to.\n\nThe result? A 5-minute read that gives you:\n→ The most important %s updates\n→ Actionable insights you can use immediately\n→ Trends to watch (before everyone else catches on)\n\nIt's free. No spam. Unsubscribe anytime.\n\nJoin 1,000+ readers who start their week smarter.\n\n🔗 Link in comments", newsletterName, nicheText, nicheText),
		},
		CrossPromoPitch: CrossPromoPitch{
			Subject: fmt.Sprintf("Cross-promo? %s x Your Newsletter", newsletterName),
			Body:    fmt.Sprintf("Hey!\n\nI run %s, a newsletter about %s. I've been reading your newsletter and love what you're doing.\n\nWould you be interested in a cross-promotion? Here's what I'm thinking:\n\n• We each mention the other's newsletter once\n• No cost, just mutual exposure\n• I can write a custom blurb about your newsletter\n\nMy newsletter has [X] subscribers who would genuinely be interested in your content.\n\nLet me know if you're interested!\n\nBest,\n[Your name]", newsletterName, nicheText),
		},
		TwitterAd: &TwitterAd{
			Tweet:    fmt.Sprintf("Stop wasting time on %s news that doesn't matter.\n\n%s cuts through the noise.\n\n5 minutes. Once a week. Actually useful.", nicheText, newsletterName),
			Headline: fmt.Sprintf("Get smarter about %s", nicheText),
		},
	}
}
