// Package pipeline orchestrates the per-candidate scan: fetch, parse,
// detect, score, then batch-level sort and ranking annotation.
package pipeline

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/leadforge/leadscan-cli/internal/detect"
	"github.com/leadforge/leadscan-cli/internal/fetch"
	"github.com/leadforge/leadscan-cli/internal/model"
	"github.com/leadforge/leadscan-cli/internal/page"
	"github.com/leadforge/leadscan-cli/internal/rank"
	"github.com/leadforge/leadscan-cli/internal/score"
)

// Options configures a pipeline run.
type Options struct {
	// Concurrency bounds simultaneous fetches. Zero or one means sequential,
	// preserving politeness spacing within a single host.
	Concurrency int

	// MaxLeads truncates the final ranked batch. Zero means unlimited.
	MaxLeads int
}

// Pipeline runs candidates through the scan stages with per-candidate
// isolation: one unreachable site never aborts the batch.
type Pipeline struct {
	fetcher   *fetch.Fetcher
	detector  *detect.Detector
	profile   score.Profile
	annotator *rank.Annotator
	opts      Options
}

// New assembles a Pipeline from its stages.
func New(fetcher *fetch.Fetcher, detector *detect.Detector, profile score.Profile, annotator *rank.Annotator, opts Options) *Pipeline {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Pipeline{
		fetcher:   fetcher,
		detector:  detector,
		profile:   profile,
		annotator: annotator,
		opts:      opts,
	}
}

// Run scans every candidate and returns the ranked batch: stably sorted
// descending by score, annotated with ranking badges, truncated to
// MaxLeads. Cancelling the context stops new fetches; candidates not yet
// processed come back as fetch-failed leads.
func (p *Pipeline) Run(ctx context.Context, candidates []model.Candidate) []model.Lead {
	return p.Finalize(p.Scan(ctx, candidates), 0)
}

// Scan analyzes every candidate and returns unranked leads in input order.
// Callers that merge in leads from other sources finish with Finalize.
func (p *Pipeline) Scan(ctx context.Context, candidates []model.Candidate) []model.Lead {
	leads := make([]model.Lead, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)
	for i, c := range candidates {
		g.Go(func() error {
			leads[i] = p.scanOne(ctx, c)
			return nil
		})
	}
	_ = g.Wait()
	return leads
}

// Finalize sorts a batch stably by descending score, annotates rankings,
// and truncates to maxLeads (zero falls back to the configured cap).
func (p *Pipeline) Finalize(leads []model.Lead, maxLeads int) []model.Lead {
	// Stable keeps input order for equal scores.
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].Score > leads[j].Score
	})
	p.annotator.Annotate(leads)

	if maxLeads <= 0 {
		maxLeads = p.opts.MaxLeads
	}
	if maxLeads > 0 && len(leads) > maxLeads {
		leads = leads[:maxLeads]
	}
	return leads
}

// ScanOne analyzes a single candidate without batch ranking.
func (p *Pipeline) ScanOne(ctx context.Context, c model.Candidate) model.Lead {
	return p.scanOne(ctx, c)
}

func (p *Pipeline) scanOne(ctx context.Context, c model.Candidate) model.Lead {
	lead := model.Lead{
		Name:       c.Name,
		Website:    c.URL,
		Location:   c.Location,
		Industry:   c.Industry,
		AnalyzedAt: time.Now().UTC(),
	}

	res, err := p.fetcher.Fetch(ctx, c.URL)
	if err != nil {
		zap.L().Warn("pipeline: fetch failed",
			zap.String("name", c.Name),
			zap.String("url", c.URL),
			zap.Error(err))
		lead.FetchError = err.Error()
		return lead
	}
	lead.Website = res.FinalURL

	doc := page.Parse(res.RawHTML)
	lead.PageSignals = p.detector.Analyze(doc)
	lead.Score = p.profile.Score(lead.PageSignals)
	if title := doc.Title(); title != "" && lead.Name == "" {
		lead.Name = title
	}

	zap.L().Debug("pipeline: candidate analyzed",
		zap.String("name", lead.Name),
		zap.Int("score", lead.Score),
		zap.Bool("hasChat", lead.HasChat),
		zap.Bool("hasForm", lead.HasForm))
	return lead
}
