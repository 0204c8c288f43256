// Package rank assigns position-based badges to a score-sorted lead batch.
package rank

import (
	"math/rand/v2"

	"github.com/leadforge/leadscan-cli/internal/model"
)

// Annotator attaches ranking annotations. The random source only feeds the
// cosmetic mapPresence signal; scores are never touched.
type Annotator struct {
	rng *rand.Rand
}

// New creates an Annotator with the given random source. Tests inject a
// seeded source for deterministic output.
func New(rng *rand.Rand) *Annotator {
	return &Annotator{rng: rng}
}

// Annotate attaches a RankingAnnotation to each lead in place. The input
// must already be stably sorted descending by score; position is 1-based
// slice order.
func (a *Annotator) Annotate(leads []model.Lead) {
	for i := range leads {
		pos := i + 1
		sponsored := pos <= 2

		leads[i].Ranking = &model.RankingAnnotation{
			GooglePosition:    pos,
			IsSponsored:       sponsored,
			RankingSource:     source(pos, sponsored),
			RankingBadge:      badge(pos, sponsored),
			RankingScore:      rankingScore(pos, sponsored),
			MapPresence:       a.mapPresence(pos),
			AdSpendLikelihood: adSpendLikelihood(&leads[i], pos, sponsored),
		}
	}
}

func source(pos int, sponsored bool) model.RankingSource {
	switch {
	case sponsored:
		return model.RankGoogleAds
	case pos == 3:
		return model.RankOrganicTop
	case pos <= 8:
		return model.RankOrganicFirstPage
	case pos <= 15:
		return model.RankOrganicSecondPage
	default:
		return model.RankOrganicLower
	}
}

func badge(pos int, sponsored bool) string {
	switch {
	case sponsored:
		return "Sponsored Ad"
	case pos <= 3:
		return "Top Organic"
	case pos <= 8:
		return "First Page"
	case pos <= 15:
		return "Second Page"
	default:
		return "Lower Ranking"
	}
}

// rankingScore is a coarse display score keyed to tier; it is never the
// sort key.
func rankingScore(pos int, sponsored bool) int {
	switch {
	case sponsored:
		return 25
	case pos <= 3:
		return 20
	case pos <= 8:
		return 15
	case pos <= 15:
		return 10
	default:
		return 5
	}
}

// mapPresence draws a Bernoulli trial whose probability decays with rank:
// p = max(0.7 - 0.05*(pos-1), 0.2).
func (a *Annotator) mapPresence(pos int) bool {
	p := 0.7 - 0.05*float64(pos-1)
	if p < 0.2 {
		p = 0.2
	}
	return a.rng.Float64() < p
}

func adSpendLikelihood(lead *model.Lead, pos int, sponsored bool) string {
	switch {
	case sponsored:
		return "Very High"
	case pos <= 3:
		return "High"
	case pos <= 8 && lead.HasChat:
		return "Medium-High"
	case pos <= 8:
		return "Medium"
	case lead.HasChat || lead.HasForm:
		return "Low-Medium"
	default:
		return "Low"
	}
}
