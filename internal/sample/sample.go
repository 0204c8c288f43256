// Package sample generates plausible placeholder leads used to pad demo
// scan results when few real candidates are reachable.
package sample

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/leadforge/leadscan-cli/internal/industry"
	"github.com/leadforge/leadscan-cli/internal/model"
	"github.com/leadforge/leadscan-cli/internal/score"
)

var areaCodes = []string{"212", "310", "415", "312", "305", "702", "773", "347", "917", "646"}

// Generator produces demo leads with a deterministic signal distribution.
// The random source feeds only cosmetic phone digits; tests seed it.
type Generator struct {
	rng     *rand.Rand
	profile score.Profile
	now     func() time.Time
}

// New creates a Generator scoring demo leads with the given profile.
func New(rng *rand.Rand, profile score.Profile) *Generator {
	return &Generator{rng: rng, profile: profile, now: time.Now}
}

// Generate builds count demo leads for an industry/location pair. Signal
// presence follows a fixed distribution over the batch: roughly a third
// have chat, two thirds have a form, most have a phone, over half an email.
func (g *Generator) Generate(industryKey, location string, count int) []model.Lead {
	cfg, ok := industry.Lookup(industryKey)
	if !ok {
		cfg, _ = industry.Lookup("dental")
	}

	leads := make([]model.Lead, 0, count)
	for i := range count {
		baseName := cfg.NameTemplates[i%len(cfg.NameTemplates)]
		name := baseName + " - " + location
		domain := domainFor(name)

		signals := model.PageSignals{
			HasChat:    i < count/3,
			HasForm:    i < count*2/3,
			HasAnyForm: i < count*2/3,
		}
		if signals.HasForm {
			signals.FormsCount = 1
			signals.ContactFormsCount = 1
		}
		if i < count*5/6 {
			signals.Phones = []string{g.phone(i)}
		}
		if i < count*7/12 {
			signals.Emails = []string{"contact@" + domain + ".com"}
		}

		leads = append(leads, model.Lead{
			Name:        name,
			Website:     "https://www." + domain + ".com",
			Location:    location,
			Industry:    industryKey,
			Score:       g.profile.Score(signals),
			Description: fmt.Sprintf("Professional %s services in %s", industryKey, location),
			PageSignals: signals,
			AnalyzedAt:  g.now().UTC(),
		})
	}
	return leads
}

// phone builds a realistic-looking, non-dialable number (555 exchange).
func (g *Generator) phone(i int) string {
	area := areaCodes[g.rng.IntN(len(areaCodes))]
	line := 1000 + (i*37)%9000
	return fmt.Sprintf("%s555%04d", area, line)
}

// domainFor lowercases a business name and strips everything outside
// [a-z0-9].
func domainFor(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
