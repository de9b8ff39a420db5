// This file implements the FeedbackService, which governs the lifecycle of
// feedback records: intake (validate, classify, persist, broadcast), listing,
// and deletion. Classification is delegated to an injected Classifier whose
// failures degrade rather than abort a submission; live dashboards are
// notified through an injected Broadcaster after each successful write.
// Service-level errors (ErrEmptyMessage, ErrMessageTooLong,
// ErrFeedbackNotFound) are returned for predictable cases so handlers can map
// them to HTTP results consistently.
//
// Observability: public methods are OpenTelemetry-instrumented; spans carry
// the session tag and record identifiers.
package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-feedback-backend/internal/ai"
	"github.com/tbourn/go-feedback-backend/internal/domain"
	"github.com/tbourn/go-feedback-backend/internal/repo"
)

// Classifier produces sentiment/category/confidence for a feedback message.
// Implementations must degrade internally instead of returning errors.
type Classifier interface {
	Classify(ctx context.Context, message string, hint domain.Category) ai.Classification
}

// Broadcaster pushes lifecycle events to connected dashboard streams.
type Broadcaster interface {
	PublishCreated(fb *domain.Feedback)
	PublishDeleted(id string)
}

// FeedbackService implements the use-cases around feedback records. The
// service is context-aware; all persistence goes through the provided GORM
// handle.
type FeedbackService struct {
	// DB is the database handle used for all feedback operations.
	DB *gorm.DB

	// Classifier analyzes submissions. Required.
	Classifier Classifier

	// Broadcaster receives created/deleted events. Optional; nil disables
	// live notifications.
	Broadcaster Broadcaster

	// MaxMessageRunes caps the accepted message length. Zero means no cap.
	MaxMessageRunes int
}

// Submit validates and stores a new feedback record.
//
// Semantics:
//   - message must be non-blank after trimming; otherwise ErrEmptyMessage.
//   - category is lenient: unknown or empty values default to "other"
//     instead of rejecting the submission.
//   - sessionID defaults to the shared classroom session when blank.
//   - The classifier runs before the write; its sentiment, AI category and
//     confidence are stored on the record. Classifier degradation never
//     fails the submission.
//   - On successful persistence the created event is broadcast. Broadcast is
//     best-effort and does not affect the returned record.
//
// Errors: ErrEmptyMessage, ErrMessageTooLong, or the underlying DB error.
func (s *FeedbackService) Submit(ctx context.Context, message, category, sessionID string) (*domain.Feedback, error) {
	tr := otel.Tracer("services/FeedbackService")
	ctx, span := tr.Start(ctx, "Submit",
		trace.WithAttributes(
			attribute.String("session.id", sessionID),
		),
	)
	defer span.End()

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if s.MaxMessageRunes > 0 && utf8.RuneCountInString(message) > s.MaxMessageRunes {
		return nil, ErrMessageTooLong
	}

	cat := domain.ParseCategory(category)
	if sessionID = strings.TrimSpace(sessionID); sessionID == "" {
		sessionID = domain.DefaultSessionID
	}

	cls := s.Classifier.Classify(ctx, message, cat)

	fb := &domain.Feedback{
		Message:    message,
		Category:   cat,
		SessionID:  sessionID,
		Sentiment:  cls.Sentiment,
		AICategory: string(cls.Category),
		Confidence: cls.Confidence,
	}
	if err := repo.CreateFeedback(ctx, s.DB, fb); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("feedback.id", fb.ID))

	if s.Broadcaster != nil {
		s.Broadcaster.PublishCreated(fb)
	}
	return fb, nil
}

// List returns records newest-first, optionally filtered by session,
// category, and sentiment. limit <= 0 selects the repository default.
func (s *FeedbackService) List(ctx context.Context, filter repo.FeedbackFilter, limit int) ([]domain.Feedback, error) {
	tr := otel.Tracer("services/FeedbackService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(
			attribute.String("session.id", filter.SessionID),
			attribute.Int("limit", limit),
		),
	)
	defer span.End()

	return repo.ListFeedback(ctx, s.DB, filter, limit)
}

// Get returns a single record by ID, or ErrFeedbackNotFound.
func (s *FeedbackService) Get(ctx context.Context, id string) (*domain.Feedback, error) {
	fb, err := repo.GetFeedback(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrFeedbackNotFound
	}
	return fb, err
}

// Delete removes a record by ID and broadcasts a deleted event.
//
// Semantics:
//   - An unknown id yields ErrFeedbackNotFound; nothing is broadcast.
//   - The deleted event is published only after the row is gone, so
//     dashboards never drop a record that still exists.
func (s *FeedbackService) Delete(ctx context.Context, id string) (*domain.Feedback, error) {
	tr := otel.Tracer("services/FeedbackService")
	ctx, span := tr.Start(ctx, "Delete",
		trace.WithAttributes(
			attribute.String("feedback.id", id),
		),
	)
	defer span.End()

	fb, err := repo.DeleteFeedback(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}

	if s.Broadcaster != nil {
		s.Broadcaster.PublishDeleted(fb.ID)
	}
	return fb, nil
}
