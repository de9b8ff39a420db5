// Aggregate statistics for the professor dashboard: totals, a recent-activity
// count, per-category and per-sentiment breakdowns, and the mean classifier
// confidence. All figures come from single SQL aggregates; nothing is cached,
// so every call reflects the store at that instant.
package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-feedback-backend/internal/repo"
)

// RecentWindow is the look-back horizon for the "recent" counter.
const RecentWindow = time.Hour

// AggregateStats is the JSON payload of GET /feedback/stats. Breakdown maps
// contain only observed values; absent enum members are omitted, not zeroed.
type AggregateStats struct {
	Total         int64            `json:"total"`
	Recent        int64            `json:"recent"`
	ByCategory    map[string]int64 `json:"byCategory"`
	BySentiment   map[string]int64 `json:"bySentiment"`
	AvgConfidence float64          `json:"avgConfidence"`
}

// StatsService computes aggregate views over stored feedback.
type StatsService struct {
	DB *gorm.DB
}

// Compute assembles the full aggregate snapshot, optionally scoped by filter.
// An empty store yields zero counts, empty maps, and zero confidence rather
// than an error.
func (s *StatsService) Compute(ctx context.Context, filter repo.FeedbackFilter) (*AggregateStats, error) {
	tr := otel.Tracer("services/StatsService")
	ctx, span := tr.Start(ctx, "Compute",
		trace.WithAttributes(
			attribute.String("session.id", filter.SessionID),
		),
	)
	defer span.End()

	total, err := repo.CountFeedback(ctx, s.DB, filter)
	if err != nil {
		return nil, err
	}
	recent, err := repo.CountFeedbackSince(ctx, s.DB, filter, time.Now().UTC().Add(-RecentWindow))
	if err != nil {
		return nil, err
	}
	byCategory, err := repo.GroupCountFeedback(ctx, s.DB, repo.GroupByCategory, filter)
	if err != nil {
		return nil, err
	}
	bySentiment, err := repo.GroupCountFeedback(ctx, s.DB, repo.GroupBySentiment, filter)
	if err != nil {
		return nil, err
	}
	avg, err := repo.AverageConfidence(ctx, s.DB, filter)
	if err != nil {
		return nil, err
	}

	return &AggregateStats{
		Total:         total,
		Recent:        recent,
		ByCategory:    byCategory,
		BySentiment:   bySentiment,
		AvgConfidence: avg,
	}, nil
}
