// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Feedback
// model.
//
// The repository follows a "thin" approach: it performs persistence and simple
// query composition, leaving orchestration (classification, broadcasting) to
// the services package.
//
// Error semantics:
//   - When a record is not found, functions return ErrNotFound (an alias of
//     gorm.ErrRecordNotFound).
//   - On other DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Functions:
//
//   - CreateFeedback(ctx, db, fb) -> error
//     Inserts a feedback row; assigns ID and CreatedAt.
//
//   - GetFeedback(ctx, db, id) -> *domain.Feedback, error
//     Fetches a single record by ID, or ErrNotFound.
//
//   - ListFeedback(ctx, db, filter, limit) -> []domain.Feedback, error
//     Returns matching records newest-first, capped at MaxListLimit.
//
//   - DeleteFeedback(ctx, db, id) -> *domain.Feedback, error
//     Removes a record and returns it; ErrNotFound when absent.
//
// Aggregate queries (counts, group counts, average confidence) live in
// stats.go.
package repo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-feedback-backend/internal/domain"
	"github.com/tbourn/go-feedback-backend/internal/utils"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// MaxListLimit is the hard cap on the number of records a list query returns.
const MaxListLimit = 100

// DefaultListLimit is applied when the caller does not request a limit.
const DefaultListLimit = 50

// FeedbackFilter narrows feedback queries. Zero-valued fields match any
// value; set fields combine with AND.
type FeedbackFilter struct {
	SessionID string
	Category  domain.Category
	Sentiment domain.Sentiment
}

// scope applies the filter's conjunctive conditions to a query.
func (f FeedbackFilter) scope(q *gorm.DB) *gorm.DB {
	if f.SessionID != "" {
		q = q.Where("session_id = ?", f.SessionID)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Sentiment != "" {
		q = q.Where("sentiment = ?", f.Sentiment)
	}
	return q
}

// CreateFeedback inserts fb, assigning a UUID primary key and a UTC creation
// timestamp. The caller composes all other fields; the message must be
// non-empty and category/sentiment members of their closed sets (enforced by
// DB check constraints as a last line of defense).
//
// On success fb is updated in place with the assigned ID and CreatedAt.
func CreateFeedback(ctx context.Context, db *gorm.DB, fb *domain.Feedback) error {
	if strings.TrimSpace(fb.Message) == "" {
		return gorm.ErrInvalidData
	}
	if !fb.Category.Valid() || !fb.Sentiment.Valid() {
		return gorm.ErrInvalidData
	}
	fb.ID = uuid.NewString()
	fb.CreatedAt = time.Now().UTC()
	return db.WithContext(ctx).Create(fb).Error
}

// GetFeedback fetches a single record by its ID. If the record does not
// exist, it returns ErrNotFound. On other DB errors, the raw error is
// returned.
func GetFeedback(ctx context.Context, db *gorm.DB, id string) (*domain.Feedback, error) {
	var fb domain.Feedback
	if err := db.WithContext(ctx).Where("id = ?", id).First(&fb).Error; err != nil {
		return nil, err
	}
	return &fb, nil
}

// ListFeedback returns records matching filter, ordered by creation time
// descending (most recent first). limit values <= 0 fall back to
// DefaultListLimit and are clamped to MaxListLimit. It returns an empty slice
// when nothing matches.
func ListFeedback(ctx context.Context, db *gorm.DB, filter FeedbackFilter, limit int) ([]domain.Feedback, error) {
	limit = utils.ClampLimit(limit, DefaultListLimit, MaxListLimit)
	var out []domain.Feedback
	err := filter.scope(db.WithContext(ctx)).
		Order("created_at desc").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// DeleteFeedback removes the record with the given ID and returns it. If no
// such record exists, it returns ErrNotFound so callers can distinguish
// "nothing happened" from a store failure.
func DeleteFeedback(ctx context.Context, db *gorm.DB, id string) (*domain.Feedback, error) {
	var fb domain.Feedback
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&fb).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Feedback{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &fb, nil
}
