package application

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/docsgov/docsgov/internal/domain"
)

// GapsService fans out over the gap-signal collectors and reduces their
// candidate gaps into one deduplicated, scored backlog.
type GapsService struct {
	collectors []domain.GapCollector
	logger     *log.Logger
}

func NewGapsService(collectors []domain.GapCollector, logger *log.Logger) *GapsService {
	return &GapsService{collectors: collectors, logger: logger}
}

// Analyze runs every collector concurrently and joins the results. A failed
// collector contributes nothing and is recorded as a caveat on the report;
// the run only aborts when the context itself is done.
func (s *GapsService) Analyze(ctx context.Context, now time.Time) (domain.GapReport, error) {
	batches := make([][]domain.Gap, len(s.collectors))
	errs := make([]error, len(s.collectors))

	var wg sync.WaitGroup
	for i, c := range s.collectors {
		wg.Add(1)
		go func(i int, c domain.GapCollector) {
			defer wg.Done()
			gaps, err := c.Collect(ctx)
			if err != nil {
				errs[i] = &domain.CollectionFailure{Collector: c.Name(), Source: c.Source(), Err: err}
				return
			}
			batches[i] = gaps
		}(i, c)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return domain.GapReport{}, err
	}

	var sources, failures []string
	for i, c := range s.collectors {
		sources = append(sources, c.Name())
		if errs[i] != nil {
			s.logger.Warn("collector failed, continuing without it",
				"collector", c.Name(), "error", errs[i])
			failures = append(failures, errs[i].Error())
			continue
		}
		s.logger.Debug("collector finished", "collector", c.Name(), "gaps", len(batches[i]))
	}

	gaps := domain.Aggregate(now, batches...)
	return domain.NewGapReport(now, gaps, sources, failures), nil
}
