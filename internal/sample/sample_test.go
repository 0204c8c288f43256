package sample

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadforge/leadscan-cli/internal/score"
)

func fixedNow() time.Time {
	return time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
}

func newGenerator() *Generator {
	g := New(rand.New(rand.NewPCG(1, 1)), score.StandardProfile())
	g.now = fixedNow
	return g
}

func TestGenerate_CountAndIdentity(t *testing.T) {
	leads := newGenerator().Generate("dental", "Austin, TX", 12)
	require.Len(t, leads, 12)

	for _, l := range leads {
		assert.Contains(t, l.Name, "Austin, TX")
		assert.Contains(t, l.Website, "https://www.")
		assert.Equal(t, "Austin, TX", l.Location)
		assert.Equal(t, "dental", l.Industry)
		assert.NotEmpty(t, l.Description)
	}
}

func TestGenerate_SignalDistribution(t *testing.T) {
	leads := newGenerator().Generate("lawyer", "Chicago, IL", 12)

	var chat, form, phone, email int
	for _, l := range leads {
		if l.HasChat {
			chat++
		}
		if l.HasForm {
			form++
		}
		if len(l.Phones) > 0 {
			phone++
		}
		if len(l.Emails) > 0 {
			email++
		}
	}
	assert.Equal(t, 4, chat)
	assert.Equal(t, 8, form)
	assert.Equal(t, 10, phone)
	assert.Equal(t, 7, email)
}

func TestGenerate_ScoresMatchProfile(t *testing.T) {
	profile := score.StandardProfile()
	leads := New(rand.New(rand.NewPCG(2, 2)), profile).Generate("insurance", "Miami, FL", 12)

	for _, l := range leads {
		assert.Equal(t, profile.Score(l.PageSignals), l.Score)
		assert.LessOrEqual(t, l.Score, profile.Clamp)
	}
}

func TestGenerate_PhonesAreTenDigits(t *testing.T) {
	leads := newGenerator().Generate("mortgage", "Denver, CO", 12)
	for _, l := range leads {
		for _, p := range l.Phones {
			assert.Len(t, p, 10)
		}
	}
}

func TestGenerate_UnknownIndustryFallsBack(t *testing.T) {
	leads := newGenerator().Generate("plumbing", "Boise, ID", 3)
	require.Len(t, leads, 3)
	assert.Equal(t, "plumbing", leads[0].Industry)
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	ga := New(rand.New(rand.NewPCG(9, 9)), score.StandardProfile())
	gb := New(rand.New(rand.NewPCG(9, 9)), score.StandardProfile())
	ga.now, gb.now = fixedNow, fixedNow

	assert.Equal(t, ga.Generate("dental", "NY", 6), gb.Generate("dental", "NY", 6))
}
