// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the aggregate queries behind the
// dashboard statistics: totals, trailing-window counts, group counts, and
// average classifier confidence. Each function is context-aware and safe to
// call from services or handlers; every call re-reads the store, so results
// always reflect current state at call time.
package repo

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-feedback-backend/internal/domain"
)

// GroupField names a column that GroupCountFeedback may aggregate on. Only
// the closed-enumeration columns are legal grouping targets.
type GroupField string

// Legal grouping columns.
const (
	GroupByCategory  GroupField = "category"
	GroupBySentiment GroupField = "sentiment"
)

// CountFeedback returns the number of records matching filter.
func CountFeedback(ctx context.Context, db *gorm.DB, filter FeedbackFilter) (int64, error) {
	var total int64
	err := filter.scope(db.WithContext(ctx).Model(&domain.Feedback{})).
		Count(&total).Error
	return total, err
}

// CountFeedbackSince returns the number of matching records created at or
// after cutoff. Used for the dashboard's trailing-window "recent" figure.
func CountFeedbackSince(ctx context.Context, db *gorm.DB, filter FeedbackFilter, cutoff time.Time) (int64, error) {
	var total int64
	err := filter.scope(db.WithContext(ctx).Model(&domain.Feedback{})).
		Where("created_at >= ?", cutoff).
		Count(&total).Error
	return total, err
}

// GroupCountFeedback tallies matching records grouped by field. Only values
// actually present in the filtered set appear as keys; callers must treat
// absent keys as zero. field is restricted to the closed-enumeration columns
// so it can be interpolated into SQL safely.
func GroupCountFeedback(ctx context.Context, db *gorm.DB, field GroupField, filter FeedbackFilter) (map[string]int64, error) {
	switch field {
	case GroupByCategory, GroupBySentiment:
	default:
		return nil, fmt.Errorf("repo: unsupported group field %q", field)
	}

	var rows []struct {
		Value string
		N     int64
	}
	err := filter.scope(db.WithContext(ctx).Model(&domain.Feedback{})).
		Select(string(field) + " AS value, COUNT(*) AS n").
		Group(string(field)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Value] = r.N
	}
	return out, nil
}

// AverageConfidence returns the mean classifier confidence across matching
// records, or 0 when the filtered set is empty.
func AverageConfidence(ctx context.Context, db *gorm.DB, filter FeedbackFilter) (float64, error) {
	var avg float64
	err := filter.scope(db.WithContext(ctx).Model(&domain.Feedback{})).
		Select("COALESCE(AVG(confidence), 0)").
		Scan(&avg).Error
	return avg, err
}
