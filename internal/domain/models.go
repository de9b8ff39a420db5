// Package domain defines the persistence model for student feedback and the
// closed category/sentiment enumerations attached to it. The Feedback type is
// mapped with GORM and forms the core data layer of the dashboard backend.
package domain

import (
	"time"
)

// Category is the closed set of labels a submitter (or the classifier) can
// attach to a feedback item. Values outside the set are never stored; callers
// normalize free-form input through ParseCategory.
type Category string

// The six valid feedback categories.
const (
	CategoryConfused Category = "confused"
	CategoryTooFast  Category = "too-fast"
	CategoryTooSlow  Category = "too-slow"
	CategoryGreat    Category = "great"
	CategoryQuestion Category = "question"
	CategoryOther    Category = "other"
)

// Categories returns the full enumeration in a stable order. Useful for
// building classifier prompts and validation messages.
func Categories() []Category {
	return []Category{
		CategoryConfused, CategoryTooFast, CategoryTooSlow,
		CategoryGreat, CategoryQuestion, CategoryOther,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryConfused, CategoryTooFast, CategoryTooSlow,
		CategoryGreat, CategoryQuestion, CategoryOther:
		return true
	}
	return false
}

// ParseCategory normalizes a raw string into a Category. Unknown or empty
// input maps to CategoryOther; submissions are never rejected over a bad
// category label.
func ParseCategory(s string) Category {
	c := Category(s)
	if c.Valid() {
		return c
	}
	return CategoryOther
}

// Sentiment is the three-value polarity assigned by the classifier.
type Sentiment string

// The valid sentiment values.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Sentiments returns the full enumeration in a stable order.
func Sentiments() []Sentiment {
	return []Sentiment{SentimentPositive, SentimentNegative, SentimentNeutral}
}

// Valid reports whether s is a member of the closed sentiment set.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// ParseSentiment normalizes a raw string into a Sentiment, defaulting to
// SentimentNeutral for unknown or empty input.
func ParseSentiment(s string) Sentiment {
	v := Sentiment(s)
	if v.Valid() {
		return v
	}
	return SentimentNeutral
}

// DefaultSessionID groups feedback submitted without an explicit session tag.
const DefaultSessionID = "default-session"

// Feedback represents one anonymous student submission enriched by the
// classifier. Records are write-once: created via the submission service,
// read by lists and aggregates, and removed only by explicit deletion.
//
// Fields:
//   - ID: stable UUID primary key (char(36)), assigned at insertion.
//   - Message: trimmed free-text feedback; never empty.
//   - Category: submitter-chosen label from the closed six-value set.
//   - SessionID: opaque grouping tag; defaults to DefaultSessionID.
//   - Sentiment: classifier-assigned polarity; defaults to neutral.
//   - AICategory: the classifier's independent category guess. It may differ
//     from the submitter's Category and is empty when classification was
//     unavailable.
//   - Confidence: classifier confidence in [0,1]; 0 when never classified,
//     0.5 when classification degraded.
//   - CreatedAt: insertion timestamp; drives newest-first listing.
type Feedback struct {
	ID         string    `json:"id"          gorm:"type:char(36);primaryKey"`
	Message    string    `json:"message"     gorm:"type:text;not null"`
	Category   Category  `json:"category"    gorm:"type:varchar(16);not null;index;check:category IN ('confused','too-fast','too-slow','great','question','other')"`
	SessionID  string    `json:"session_id"  gorm:"type:varchar(64);not null;index;default:'default-session'"`
	Sentiment  Sentiment `json:"sentiment"   gorm:"type:varchar(16);not null;index;check:sentiment IN ('positive','negative','neutral')"`
	AICategory string    `json:"ai_category" gorm:"type:varchar(32);not null;default:''"`
	Confidence float64   `json:"confidence"  gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"  gorm:"index"`
}

// TableName returns the database table name for Feedback.
func (Feedback) TableName() string { return "feedback" }
