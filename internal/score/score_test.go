package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leadforge/leadscan-cli/internal/model"
)

func TestStandardProfile_BaseOnly(t *testing.T) {
	assert.Equal(t, 5, StandardProfile().Score(model.PageSignals{}))
}

func TestStandardProfile_FullSignalsClamped(t *testing.T) {
	s := model.PageSignals{
		HasChat:    true,
		HasForm:    true,
		HasAnyForm: true,
		Phones:     []string{"2125550134"},
		Emails:     []string{"contact@example-co.com"},
	}
	// 5 + 8 + 7 + 3 + 2 = 25, clamped to 20.
	assert.Equal(t, 20, StandardProfile().Score(s))
}

func TestStandardProfile_AnyFormBonusIsExclusive(t *testing.T) {
	p := StandardProfile()

	searchOnly := model.PageSignals{HasAnyForm: true}
	assert.Equal(t, 7, p.Score(searchOnly)) // 5 + 2

	contactForm := model.PageSignals{HasForm: true, HasAnyForm: true}
	assert.Equal(t, 12, p.Score(contactForm)) // 5 + 7, no stacking
}

func TestDeepScanProfile_Stacks(t *testing.T) {
	p := DeepScanProfile()

	contactForm := model.PageSignals{HasForm: true, HasAnyForm: true}
	assert.Equal(t, 14, p.Score(contactForm)) // 5 + 7 + 2

	full := model.PageSignals{
		HasChat:      true,
		HasForm:      true,
		HasAnyForm:   true,
		Phones:       []string{"2125550134"},
		Emails:       []string{"a@b.io"},
		Technologies: []string{"WordPress"},
	}
	// 5 + 8 + 7 + 2 + 3 + 2 + 1 = 28, clamped to 25.
	assert.Equal(t, 25, p.Score(full))
}

func TestScore_Bounds(t *testing.T) {
	for _, p := range []Profile{StandardProfile(), DeepScanProfile()} {
		for _, s := range allSignalCombos() {
			v := p.Score(s)
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, p.Clamp)
		}
	}
}

func TestScore_Monotonic(t *testing.T) {
	for _, p := range []Profile{StandardProfile(), DeepScanProfile()} {
		for _, s := range allSignalCombos() {
			base := p.Score(s)

			flips := []func(model.PageSignals) model.PageSignals{
				func(s model.PageSignals) model.PageSignals { s.HasChat = true; return s },
				func(s model.PageSignals) model.PageSignals { s.HasForm = true; s.HasAnyForm = true; return s },
				func(s model.PageSignals) model.PageSignals {
					s.Phones = append(s.Phones, "2125550134")
					return s
				},
				func(s model.PageSignals) model.PageSignals {
					s.Emails = append(s.Emails, "x@y.io")
					return s
				},
				func(s model.PageSignals) model.PageSignals {
					s.Technologies = append(s.Technologies, "React")
					return s
				},
			}
			for i, flip := range flips {
				assert.GreaterOrEqual(t, p.Score(flip(s)), base,
					"profile %s flip %d from %+v", p.Name, i, s)
			}
		}
	}
}

func TestByName(t *testing.T) {
	assert.Equal(t, "deep", ByName("deep").Name)
	assert.Equal(t, "standard", ByName("standard").Name)
	assert.Equal(t, "standard", ByName("").Name)
	assert.Equal(t, "standard", ByName("unknown").Name)
}

// allSignalCombos enumerates every boolean/presence combination.
func allSignalCombos() []model.PageSignals {
	var combos []model.PageSignals
	for mask := range 64 {
		s := model.PageSignals{}
		if mask&1 != 0 {
			s.HasChat = true
		}
		if mask&2 != 0 {
			s.HasForm = true
			s.HasAnyForm = true
		}
		if mask&4 != 0 {
			s.HasAnyForm = true
		}
		if mask&8 != 0 {
			s.Phones = []string{"2125550134"}
		}
		if mask&16 != 0 {
			s.Emails = []string{"a@b.io"}
		}
		if mask&32 != 0 {
			s.Technologies = []string{"Wix"}
		}
		combos = append(combos, s)
	}
	return combos
}
