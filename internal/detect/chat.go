package detect

import (
	"fmt"
	"strings"

	"github.com/leadforge/leadscan-cli/internal/page"
)

// detectChat reports whether the page carries a live-chat widget. Three
// independent checks are unioned: known vendor markers in class/id
// attributes, free-text chat phrases, and script references containing
// "chat".
func (d *Detector) detectChat(doc *page.Document, text string) bool {
	for _, marker := range d.vocab.ChatWidgetMarkers {
		if doc.MatchCount(fmt.Sprintf(`[class*=%q]`, marker)) > 0 ||
			doc.MatchCount(fmt.Sprintf(`[id*=%q]`, marker)) > 0 {
			return true
		}
	}

	for _, phrase := range d.vocab.ChatPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}

	for _, s := range doc.Scripts() {
		if strings.Contains(strings.ToLower(s.Src), "chat") ||
			strings.Contains(strings.ToLower(s.Inline), "chat") {
			return true
		}
	}

	return false
}
