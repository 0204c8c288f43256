package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	leads := []Lead{
		{
			PageSignals: PageSignals{HasChat: true, HasForm: true, Phones: []string{"2125550134"}},
			Ranking:     &RankingAnnotation{GooglePosition: 1, IsSponsored: true},
		},
		{
			PageSignals: PageSignals{HasForm: true, Emails: []string{"contact@acme.com"}},
			Ranking:     &RankingAnnotation{GooglePosition: 2, IsSponsored: true},
		},
		{
			PageSignals: PageSignals{HasChat: true},
			Ranking:     &RankingAnnotation{GooglePosition: 3},
		},
		{
			Ranking: &RankingAnnotation{GooglePosition: 9},
		},
	}

	s := ComputeStats(leads)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.WithChat)
	assert.Equal(t, 2, s.WithForm)
	assert.Equal(t, 2, s.WithContact)
	assert.Equal(t, 2, s.Sponsored)
	assert.Equal(t, 3, s.FirstPage)
	assert.Equal(t, 3, s.Top3)
}

func TestComputeStats_Empty(t *testing.T) {
	s := ComputeStats(nil)
	assert.Equal(t, Stats{}, s)
}

func TestComputeStats_UnrankedLeads(t *testing.T) {
	// Leads without a ranking annotation still count toward signal stats.
	leads := []Lead{
		{PageSignals: PageSignals{HasChat: true, Emails: []string{"a@b.com"}}},
	}
	s := ComputeStats(leads)
	assert.Equal(t, 1, s.WithChat)
	assert.Equal(t, 1, s.WithContact)
	assert.Equal(t, 0, s.FirstPage)
	assert.Equal(t, 0, s.Sponsored)
}
