// Package model defines the data types shared across the scan pipeline.
package model

import "time"

// Candidate is one URL (plus optional metadata) submitted for analysis.
type Candidate struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Location string `json:"location,omitempty"`
	Industry string `json:"industry,omitempty"`
}

// FetchResult is the outcome of retrieving a Candidate's page.
type FetchResult struct {
	RawHTML    string `json:"-"`
	FinalURL   string `json:"finalUrl"`
	StatusCode int    `json:"statusCode"`
}

// PageSignals holds the detector findings for one fetched page.
type PageSignals struct {
	HasChat           bool     `json:"hasChat"`
	HasForm           bool     `json:"hasForm"`
	HasAnyForm        bool     `json:"hasAnyForm"`
	Phones            []string `json:"phones"`
	Emails            []string `json:"emails"`
	Technologies      []string `json:"technologies"`
	FormsCount        int      `json:"formsCount"`
	ContactFormsCount int      `json:"contactFormsCount"`
}

// RankingSource identifies the rank tier a lead falls into.
type RankingSource string

const (
	RankGoogleAds         RankingSource = "google_ads"
	RankOrganicTop        RankingSource = "organic_top"
	RankOrganicFirstPage  RankingSource = "organic_first_page"
	RankOrganicSecondPage RankingSource = "organic_second_page"
	RankOrganicLower      RankingSource = "organic_lower"
)

// RankingAnnotation is a read-only view derived from a lead's position in a
// score-sorted batch. It never feeds back into the score that produced the
// ranking.
type RankingAnnotation struct {
	GooglePosition    int           `json:"googlePosition"`
	IsSponsored       bool          `json:"isSponsored"`
	RankingSource     RankingSource `json:"rankingSource"`
	RankingBadge      string        `json:"rankingBadge"`
	RankingScore      int           `json:"rankingScore"`
	MapPresence       bool          `json:"mapPresence"`
	AdSpendLikelihood string        `json:"adSpendLikelihood"`
}

// Lead is the externally visible record produced for one Candidate.
type Lead struct {
	Name        string `json:"name"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Industry    string `json:"industry,omitempty"`
	Score       int    `json:"score"`
	Description string `json:"description"`

	PageSignals

	// FetchError carries the failure note for candidates whose page could
	// not be retrieved. Such leads score 0 with empty signals.
	FetchError string `json:"fetchError,omitempty"`

	Ranking *RankingAnnotation `json:"ranking,omitempty"`

	AnalyzedAt time.Time `json:"analyzedAt"`
}

// Stats summarizes a ranked lead batch.
type Stats struct {
	Total       int `json:"total"`
	WithChat    int `json:"withChat"`
	WithForm    int `json:"withForm"`
	WithContact int `json:"withContact"`
	Sponsored   int `json:"sponsored"`
	FirstPage   int `json:"firstPage"`
	Top3        int `json:"top3"`
}

// ComputeStats derives batch statistics from a final lead list.
func ComputeStats(leads []Lead) Stats {
	s := Stats{Total: len(leads)}
	for _, l := range leads {
		if l.HasChat {
			s.WithChat++
		}
		if l.HasForm {
			s.WithForm++
		}
		if len(l.Phones) > 0 || len(l.Emails) > 0 {
			s.WithContact++
		}
		if l.Ranking == nil {
			continue
		}
		if l.Ranking.IsSponsored {
			s.Sponsored++
		}
		if l.Ranking.GooglePosition <= 8 {
			s.FirstPage++
		}
		if l.Ranking.GooglePosition <= 3 {
			s.Top3++
		}
	}
	return s
}
