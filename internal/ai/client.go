// Package ai wraps the OpenAI chat-completion API behind a small Client
// used by the service layer. It provides two operations: Classify, which
// derives sentiment, category and confidence for a single feedback message,
// and Summarize, which condenses a window of recent records into a report
// for the professor dashboard.
//
// Both operations degrade instead of failing: when no API key is configured,
// the upstream call errors, or the model returns something unparseable, the
// Client falls back to deterministic defaults and marks the result Degraded.
// Callers therefore never need an error path for AI unavailability.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/tbourn/go-feedback-backend/internal/config"
	"github.com/tbourn/go-feedback-backend/internal/domain"
)

const (
	classifyTemperature = 0.3
	classifyMaxTokens   = 150
	summaryTemperature  = 0.5
	summaryMaxTokens    = 300
)

// Models sometimes wrap JSON in code fences or prose; extract the outermost
// object before giving up.
var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// chatCompleter is the slice of the OpenAI client the Client depends on.
// Tests substitute a stub; production code passes *openai.Client.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Classification is the outcome of analyzing one feedback message.
// Degraded reports that the values are fallbacks rather than model output.
type Classification struct {
	Sentiment  domain.Sentiment
	Category   domain.Category
	Confidence float64
	Degraded   bool
}

// SummaryReport is the aggregate digest returned by Summarize. Field names
// follow the JSON contract of GET /feedback/summary.
type SummaryReport struct {
	Summary         string   `json:"summary"`
	KeyPoints       []string `json:"keyPoints"`
	Recommendations []string `json:"recommendations"`
	Degraded        bool     `json:"degraded"`
}

// Client talks to an OpenAI-compatible chat-completion endpoint. The zero
// value is unusable; construct with NewClient. A Client built without an API
// key is valid and permanently degraded.
type Client struct {
	chat  chatCompleter
	model string
}

// NewClient builds a Client from cfg. An empty APIKey yields a degraded-only
// client rather than an error so the server can run without AI configured.
// BaseURL overrides the default endpoint for OpenAI-compatible gateways.
func NewClient(cfg config.OpenAIConfig) *Client {
	c := &Client{model: cfg.Model}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return c
	}
	cc := openai.DefaultConfig(cfg.APIKey)
	if strings.TrimSpace(cfg.BaseURL) != "" {
		cc.BaseURL = cfg.BaseURL
	}
	c.chat = openai.NewClientWithConfig(cc)
	return c
}

// classifyPayload mirrors the JSON shape the classification prompt requests.
type classifyPayload struct {
	Sentiment      string  `json:"sentiment"`
	Classification string  `json:"classification"`
	Confidence     float64 `json:"confidence"`
}

// Classify analyzes a single feedback message.
//
// Semantics:
//   - hint is the student-declared category; it seeds the fallback so a
//     degraded result still carries the student's own signal.
//   - Unknown sentiment or category strings from the model map to their
//     neutral defaults rather than erroring.
//   - Confidence is clamped to [0, 1]; a missing or zero confidence becomes
//     the fallback value 0.5.
//
// Classify never returns an error: any upstream failure produces the
// fallback triple (neutral sentiment, hint or "other", confidence 0.5) with
// Degraded set.
func (c *Client) Classify(ctx context.Context, message string, hint domain.Category) Classification {
	fallback := Classification{
		Sentiment:  domain.SentimentNeutral,
		Category:   hint,
		Confidence: 0.5,
		Degraded:   true,
	}
	if !fallback.Category.Valid() || fallback.Category == "" {
		fallback.Category = domain.CategoryOther
	}
	if c.chat == nil {
		return fallback
	}

	prompt := fmt.Sprintf(`Analyze the following student feedback and provide:
1. Sentiment: positive, negative, or neutral
2. Classification: one of these categories - confused, too-fast, too-slow, great, question, or other
3. Confidence: a number between 0 and 1

Feedback: %q

Respond in JSON format: {"sentiment": "positive|negative|neutral", "classification": "category", "confidence": 0.0-1.0}`, message)

	resp, err := c.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an AI assistant that analyzes student feedback. Always respond with valid JSON only.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: classifyTemperature,
		MaxTokens:   classifyMaxTokens,
	})
	if err != nil || len(resp.Choices) == 0 {
		return fallback
	}

	var payload classifyPayload
	if err := decodeModelJSON(resp.Choices[0].Message.Content, &payload); err != nil {
		return fallback
	}

	out := Classification{
		Sentiment:  domain.ParseSentiment(payload.Sentiment),
		Category:   domain.ParseCategory(payload.Classification),
		Confidence: payload.Confidence,
	}
	if payload.Classification == "" {
		out.Category = fallback.Category
	}
	if out.Confidence <= 0 {
		out.Confidence = 0.5
	} else if out.Confidence > 1 {
		out.Confidence = 1
	}
	return out
}

// Summarize condenses records into a SummaryReport for the dashboard.
//
// Semantics:
//   - records are rendered oldest-first, one "[category] message" line each;
//     the caller controls the window size.
//   - An empty records slice short-circuits to a "no feedback" report
//     without calling the API; this is not a degraded outcome.
//   - Upstream or parse failures yield a degraded placeholder report.
func (c *Client) Summarize(ctx context.Context, records []domain.Feedback) SummaryReport {
	if len(records) == 0 {
		return SummaryReport{
			Summary:         "No feedback available for summary.",
			KeyPoints:       []string{},
			Recommendations: []string{},
		}
	}
	degraded := SummaryReport{
		Summary:         "Unable to generate summary at this time.",
		KeyPoints:       []string{},
		Recommendations: []string{},
		Degraded:        true,
	}
	if c.chat == nil {
		return degraded
	}

	lines := make([]string, 0, len(records))
	for _, fb := range records {
		lines = append(lines, fmt.Sprintf("[%s] %s", fb.Category, fb.Message))
	}

	prompt := fmt.Sprintf(`Analyze the following student feedback and provide:
1. A brief summary (2-3 sentences)
2. Key points (3-5 bullet points)
3. Recommendations for the professor (2-3 actionable items)

Feedback:
%s

Respond in JSON format:
{
  "summary": "brief summary text",
  "keyPoints": ["point1", "point2", ...],
  "recommendations": ["rec1", "rec2", ...]
}`, strings.Join(lines, "\n"))

	resp, err := c.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an AI assistant that helps professors understand student feedback. Always respond with valid JSON only.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: summaryTemperature,
		MaxTokens:   summaryMaxTokens,
	})
	if err != nil || len(resp.Choices) == 0 {
		return degraded
	}

	var report SummaryReport
	if err := decodeModelJSON(resp.Choices[0].Message.Content, &report); err != nil {
		return degraded
	}
	if strings.TrimSpace(report.Summary) == "" {
		report.Summary = "Summary generation failed."
	}
	if report.KeyPoints == nil {
		report.KeyPoints = []string{}
	}
	if report.Recommendations == nil {
		report.Recommendations = []string{}
	}
	report.Degraded = false
	return report
}

// decodeModelJSON parses a chat-completion body into v. It first tries the
// trimmed body verbatim, then the outermost {...} fragment for responses
// wrapped in code fences.
func decodeModelJSON(body string, v any) error {
	body = strings.TrimSpace(body)
	if err := json.Unmarshal([]byte(body), v); err == nil {
		return nil
	}
	frag := jsonObjectRe.FindString(body)
	if frag == "" {
		return fmt.Errorf("no JSON object in model response")
	}
	return json.Unmarshal([]byte(frag), v)
}
