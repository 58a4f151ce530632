package match

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/avasiliev/jobtailor/internal/jobboard"
)

// DefaultWorkers bounds the scoring concurrency when the config leaves it unset.
const DefaultWorkers = 4

// ScoreAll scores every posting concurrently and returns the reports ordered
// by score, highest first. Postings that cannot be scored still yield a report
// (see Calculate), so the result always has one report per posting. The only
// error source is context cancellation.
func (m *Matcher) ScoreAll(ctx context.Context, postings *jobboard.Postings, workers int) ([]*Report, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	reports := make([]*Report, postings.Len())

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, posting := range postings.Items {
		i, posting := i, posting
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = m.Calculate(posting)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	// Stable sort keeps the input order among equal scores.
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Score > reports[j].Score
	})

	m.logger.Info("scored postings",
		zap.Int("count", len(reports)),
		zap.Int("workers", workers),
	)

	return reports, nil
}
