package detect

// TechSignature maps a technology name to the substrings that betray it.
type TechSignature struct {
	Name       string
	Signatures []string
}

// Vocabulary holds the fixed lookup tables the detectors consult. Tables are
// built once at startup and injected; detectors only read them.
type Vocabulary struct {
	ChatWidgetMarkers []string
	ChatPhrases       []string
	ContactFormWords  []string
	TechSignatures    []TechSignature
	EmailDenylist     []string
}

// DefaultVocabulary returns the canonical detection tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		// Matched as class/id substrings, so "intercom" catches
		// class="intercom-launcher" as well as class="intercom".
		ChatWidgetMarkers: []string{
			"chat", "intercom", "drift", "livechat", "tawk",
			"olark", "purechat", "zendesk", "helpcrunch", "crisp",
			"hubspot",
		},
		ChatPhrases: []string{
			"live chat", "chat now", "online chat", "start chatting",
		},
		ContactFormWords: []string{
			"contact", "email", "phone", "name", "consult",
			"appointment", "message", "submit", "quote",
		},
		TechSignatures: []TechSignature{
			{Name: "WordPress", Signatures: []string{"wp-content", "wp-includes", "wordpress"}},
			{Name: "Shopify", Signatures: []string{"shopify.com", "cdn.shopify"}},
			{Name: "Wix", Signatures: []string{"wix.com"}},
			{Name: "Squarespace", Signatures: []string{"squarespace"}},
			{Name: "React", Signatures: []string{"react", "react-dom"}},
			{Name: "jQuery", Signatures: []string{"jquery"}},
			{Name: "Google Analytics", Signatures: []string{"google-analytics", "ga.js", "gtag"}},
			{Name: "Facebook Pixel", Signatures: []string{"facebook-pixel", "fbq(", "connect.facebook"}},
			{Name: "HubSpot", Signatures: []string{"hubspot"}},
		},
		EmailDenylist: []string{
			"noreply", "no-reply", "spam", "example", "test", "email.com",
			"mailinator", "tempmail", "guerrillamail", "10minutemail",
		},
	}
}
