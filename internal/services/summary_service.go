// Produces the AI digest for GET /feedback/summary: fetch the most recent
// records, hand them to the summarizer oldest-first, and pass its report
// through. Summarizer degradation is surfaced in the report itself, never as
// an error, so the endpoint stays available when the AI backend is not.
package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-feedback-backend/internal/ai"
	"github.com/tbourn/go-feedback-backend/internal/domain"
	"github.com/tbourn/go-feedback-backend/internal/repo"
)

// Summarizer condenses a batch of records into a report. Implementations
// must degrade internally instead of returning errors.
type Summarizer interface {
	Summarize(ctx context.Context, records []domain.Feedback) ai.SummaryReport
}

// SummaryService builds the summary view over recent feedback.
type SummaryService struct {
	DB         *gorm.DB
	Summarizer Summarizer

	// Window is the number of most-recent records summarized. Zero or
	// negative falls back to the repository default page size.
	Window int
}

// Summarize fetches the summary window (optionally scoped by filter) and
// returns the summarizer's report. Records reach the summarizer in
// chronological order so the digest reads oldest to newest.
//
// Errors are storage errors only; AI failures surface as a degraded report.
func (s *SummaryService) Summarize(ctx context.Context, filter repo.FeedbackFilter) (*ai.SummaryReport, error) {
	tr := otel.Tracer("services/SummaryService")
	ctx, span := tr.Start(ctx, "Summarize",
		trace.WithAttributes(
			attribute.String("session.id", filter.SessionID),
			attribute.Int("window", s.Window),
		),
	)
	defer span.End()

	window := s.Window
	if window <= 0 {
		window = repo.DefaultListLimit
	}

	// ListFeedback returns newest-first; reverse into prompt order.
	records, err := repo.ListFeedback(ctx, s.DB, filter, window)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	report := s.Summarizer.Summarize(ctx, records)
	return &report, nil
}
