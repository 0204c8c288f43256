package detect

import (
	"strings"

	"github.com/leadforge/leadscan-cli/internal/page"
)

// detectTechnologies matches the signature table against the raw HTML and
// against script src / link href attributes. Results keep table order and
// are capped; there is no relevance ranking beyond that.
func (d *Detector) detectTechnologies(doc *page.Document) []string {
	rawLower := strings.ToLower(doc.Raw())

	var refs []string
	for _, s := range doc.Scripts() {
		if s.Src != "" {
			refs = append(refs, strings.ToLower(s.Src))
		}
	}
	for _, href := range doc.LinkHrefs() {
		refs = append(refs, strings.ToLower(href))
	}

	var detected []string
	for _, tech := range d.vocab.TechSignatures {
		if len(detected) >= maxTechnologies {
			break
		}
		for _, sig := range tech.Signatures {
			if strings.Contains(rawLower, sig) || refContains(refs, sig) {
				detected = append(detected, tech.Name)
				break
			}
		}
	}
	return detected
}

func refContains(refs []string, sig string) bool {
	for _, r := range refs {
		if strings.Contains(r, sig) {
			return true
		}
	}
	return false
}
