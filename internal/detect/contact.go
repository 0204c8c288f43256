package detect

import (
	"regexp"
	"strings"
)

var (
	phoneRe = regexp.MustCompile(`\+?1?[-.\s]?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// extractPhones finds North-American-style numbers in the page text and
// normalizes each to its 10-digit form. Results are deduplicated, capped,
// and kept in document order.
func (d *Detector) extractPhones(text string) []string {
	var phones []string
	seen := make(map[string]bool)

	for _, m := range phoneRe.FindAllString(text, -1) {
		digits := stripNonDigits(m)
		// Accept the +1 national prefix; everything else must be ten digits.
		if len(digits) == 11 && digits[0] == '1' {
			digits = digits[1:]
		}
		if len(digits) != 10 {
			continue
		}
		if seen[digits] {
			continue
		}
		seen[digits] = true
		phones = append(phones, digits)
		if len(phones) >= maxContacts {
			break
		}
	}
	return phones
}

// extractEmails finds address-shaped strings in the page text, rejecting
// anything that matches the placeholder denylist. Deduplicated by exact
// string, capped, document order.
func (d *Detector) extractEmails(text string) []string {
	var emails []string
	seen := make(map[string]bool)

	for _, m := range emailRe.FindAllString(text, -1) {
		if d.denylisted(m) {
			continue
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		emails = append(emails, m)
		if len(emails) >= maxContacts {
			break
		}
	}
	return emails
}

// denylisted matches denylist entries at token granularity: an entry hits
// when it equals the local part, one of its dot/plus-separated segments, or
// a domain label. Dotted entries match the domain itself or a parent domain.
// "noreply@x.com" and "user@mailinator.com" are rejected;
// "contact@example-co.com" is not, because "example" is only part of a label.
func (d *Detector) denylisted(email string) bool {
	lower := strings.ToLower(email)
	at := strings.LastIndex(lower, "@")
	if at <= 0 || at == len(lower)-1 {
		return true
	}
	local, domain := lower[:at], lower[at+1:]

	localTokens := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '+'
	})
	domainLabels := strings.Split(domain, ".")

	for _, bad := range d.vocab.EmailDenylist {
		if strings.Contains(bad, ".") {
			if domain == bad || strings.HasSuffix(domain, "."+bad) {
				return true
			}
			continue
		}
		if local == bad {
			return true
		}
		for _, tok := range localTokens {
			if tok == bad {
				return true
			}
		}
		for _, label := range domainLabels {
			if label == bad {
				return true
			}
		}
	}
	return false
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
