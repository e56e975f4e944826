package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
	"github.com/ressKim-io/question-prism/internal/domain/service"
	"github.com/ressKim-io/question-prism/internal/infrastructure/metrics"
)

// PipelineOptions tunes the classification and synthesis steps
type PipelineOptions struct {
	EnforceOverrides bool
	Temperature      float64
	MaxTokens        int
}

// Pipeline runs classify, search and synthesize for a single question
type Pipeline struct {
	classifier service.Classifier
	searchers  []service.Searcher
	generator  service.TextGenerator
	rules      []KeywordRule
	opts       PipelineOptions
	logger     *zap.Logger
}

// NewPipeline creates a new Pipeline. Searchers run in parallel but their
// reports keep the order given here.
func NewPipeline(
	classifier service.Classifier,
	searchers []service.Searcher,
	generator service.TextGenerator,
	opts PipelineOptions,
	logger *zap.Logger,
) *Pipeline {
	return &Pipeline{
		classifier: classifier,
		searchers:  searchers,
		generator:  generator,
		rules:      DefaultRules,
		opts:       opts,
		logger:     logger,
	}
}

// Classify runs the classification step. Backend failures are recorded on
// the returned classification rather than returned.
func (p *Pipeline) Classify(ctx context.Context, question, path string) *entity.Classification {
	start := time.Now()
	defer func() {
		metrics.StageDuration.WithLabelValues("classify").Observe(time.Since(start).Seconds())
	}()

	result, err := p.classifier.Classify(ctx, question)
	if err != nil {
		p.logger.Warn("classification failed",
			zap.String("question", question),
			zap.Error(err),
		)
		result = &entity.Classification{Question: question, Error: err.Error()}
	} else if result == nil {
		result = &entity.Classification{Question: question, Error: "empty classification result"}
	}
	result.Question = question

	if p.opts.EnforceOverrides && ApplyOverrides(p.rules, result) {
		metrics.KeywordOverridesTotal.WithLabelValues(result.Override).Inc()
	}

	category := string(result.Category)
	if !result.Valid {
		category = "invalid"
	}
	metrics.ClassificationsTotal.WithLabelValues(category, path).Inc()

	return result
}

// Search queries every provider concurrently and returns one report per
// provider. Provider failures are turned into report summaries.
func (p *Pipeline) Search(ctx context.Context, question string) []*entity.SearchReport {
	start := time.Now()
	defer func() {
		metrics.StageDuration.WithLabelValues("search").Observe(time.Since(start).Seconds())
	}()

	reports := make([]*entity.SearchReport, len(p.searchers))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range p.searchers {
		g.Go(func() error {
			reports[i] = p.searchOne(gctx, s, question)
			return nil
		})
	}
	_ = g.Wait()

	return reports
}

func (p *Pipeline) searchOne(ctx context.Context, s service.Searcher, question string) *entity.SearchReport {
	provider := strings.ToLower(s.Name())

	results, err := s.Search(ctx, question)
	if err != nil {
		var notConfigured *service.NotConfiguredError
		if errors.As(err, &notConfigured) {
			metrics.SearchRequestsTotal.WithLabelValues(provider, "not_configured").Inc()
			return entity.NewFailedSearchReport(s.Name(), question, notConfigured.Message)
		}

		p.logger.Warn("search failed",
			zap.String("provider", s.Name()),
			zap.Error(err),
		)
		metrics.SearchRequestsTotal.WithLabelValues(provider, "error").Inc()
		return entity.NewFailedSearchReport(s.Name(), question,
			fmt.Sprintf("Error performing %s search: %v", s.Name(), err))
	}

	outcome := "ok"
	if len(results) == 0 {
		outcome = "empty"
	}
	metrics.SearchRequestsTotal.WithLabelValues(provider, outcome).Inc()
	return entity.NewSearchReport(s.Name(), question, results)
}

// Synthesize combines the earlier steps into an answer. It always returns
// text; when the model is unavailable the answer is assembled locally and
// marked degraded.
func (p *Pipeline) Synthesize(ctx context.Context, question string, classification *entity.Classification, reports []*entity.SearchReport) *entity.Answer {
	start := time.Now()
	defer func() {
		metrics.StageDuration.WithLabelValues("synthesize").Observe(time.Since(start).Seconds())
	}()

	text, err := p.generator.Generate(ctx, synthesisMessages(question, classification, reports), service.GenerateOptions{
		Temperature: p.opts.Temperature,
		MaxTokens:   p.opts.MaxTokens,
	})
	if err == nil && strings.TrimSpace(text) != "" {
		return entity.NewAnswer(question, classification, reports, text)
	}

	if err != nil {
		p.logger.Warn("synthesis failed, returning degraded answer", zap.Error(err))
	} else {
		p.logger.Warn("synthesis returned empty text, returning degraded answer")
	}
	answer := entity.NewAnswer(question, classification, reports, degradedAnswer(classification, reports))
	answer.Degraded = true
	return answer
}

// Run executes the full pipeline
func (p *Pipeline) Run(ctx context.Context, question string) *entity.Answer {
	classification := p.Classify(ctx, question, "interactive")
	reports := p.Search(ctx, question)
	answer := p.Synthesize(ctx, question, classification, reports)

	p.logger.Info("question answered",
		zap.String("answer_id", answer.ID.String()),
		zap.String("category", classification.Label()),
		zap.String("override", classification.Override),
		zap.Bool("degraded", answer.Degraded),
	)
	return answer
}
