// Feedback HTTP handlers.
//
// This file exposes the REST endpoints of the classroom feedback API:
//   - POST   /feedback          (submit feedback)
//   - GET    /feedback          (list feedback)
//   - GET    /feedback/stats    (aggregate statistics)
//   - GET    /feedback/summary  (AI-generated summary)
//   - DELETE /feedback/{id}     (delete feedback)
//
// Handlers in this file are transport-thin: they validate input, delegate to
// application services, and translate service errors into HTTP results. The
// session tag is resolved from the request body (submit) or the sessionId
// query parameter (reads), with the X-Session-ID header as a fallback.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-feedback-backend/internal/ai"
	"github.com/tbourn/go-feedback-backend/internal/domain"
	"github.com/tbourn/go-feedback-backend/internal/http/middleware"
	"github.com/tbourn/go-feedback-backend/internal/realtime"
	"github.com/tbourn/go-feedback-backend/internal/repo"
	"github.com/tbourn/go-feedback-backend/internal/services"
	"github.com/tbourn/go-feedback-backend/internal/sysutil"
	"github.com/tbourn/go-feedback-backend/internal/utils"
)

// FeedbackService abstracts feedback lifecycle use-cases for the handlers.
type FeedbackService interface {
	Submit(ctx context.Context, message, category, sessionID string) (*domain.Feedback, error)
	List(ctx context.Context, filter repo.FeedbackFilter, limit int) ([]domain.Feedback, error)
	Get(ctx context.Context, id string) (*domain.Feedback, error)
	Delete(ctx context.Context, id string) (*domain.Feedback, error)
}

// StatsService abstracts aggregate computation.
type StatsService interface {
	Compute(ctx context.Context, filter repo.FeedbackFilter) (*services.AggregateStats, error)
}

// SummaryService abstracts the AI digest.
type SummaryService interface {
	Summarize(ctx context.Context, filter repo.FeedbackFilter) (*ai.SummaryReport, error)
}

// Handlers bundles the HTTP endpoints with their injected services.
type Handlers struct {
	fbSvc    FeedbackService
	statsSvc StatsService
	sumSvc   SummaryService
	stream   *realtime.Hub

	// idemTTL is the retention window for stored idempotency records.
	idemTTL time.Duration
}

// New constructs and returns a Handlers instance bound to the given services.
func New(fbSvc FeedbackService, statsSvc StatsService, sumSvc SummaryService, stream *realtime.Hub, idemTTL time.Duration) *Handlers {
	return &Handlers{fbSvc: fbSvc, statsSvc: statsSvc, sumSvc: sumSvc, stream: stream, idemTTL: idemTTL}
}

// sessionID resolves the session tag for read endpoints: sessionId query
// parameter first, then the X-Session-ID header. Empty means "all sessions"
// for reads and the shared default for writes.
func sessionID(c *gin.Context) string {
	if s := strings.TrimSpace(c.Query("sessionId")); s != "" {
		return s
	}
	if h := strings.TrimSpace(c.GetHeader(middleware.HeaderSessionID)); h != "" {
		return h
	}
	return ""
}

//
// DTOs
//

// SubmitFeedbackRequest is the JSON payload for submitting feedback.
type SubmitFeedbackRequest struct {
	// Message is the free-form feedback text. Required.
	Message string `json:"message" binding:"required" example:"Lost after the recursion slide"`
	// Type is the student-declared category; unknown values default to "other".
	Type string `json:"type" example:"confused"`
	// SessionID tags the submission with a classroom session.
	SessionID string `json:"session_id" example:"cs101-lecture-04"`
}

// SubmitFeedbackResponse wraps the stored record returned on submission.
type SubmitFeedbackResponse struct {
	Feedback *domain.Feedback `json:"feedback"`
}

// ListFeedbackResponse is the payload of GET /feedback.
type ListFeedbackResponse struct {
	Count     int               `json:"count" example:"2"`
	Feedbacks []domain.Feedback `json:"feedbacks"`
}

// StatsResponse wraps the aggregate view of GET /feedback/stats.
type StatsResponse struct {
	Stats *services.AggregateStats `json:"stats"`
}

// SummaryResponse wraps the AI digest of GET /feedback/summary.
type SummaryResponse struct {
	Summary *ai.SummaryReport `json:"summary"`
}

// DeleteFeedbackResponse confirms a deletion.
type DeleteFeedbackResponse struct {
	Message string `json:"message" example:"Feedback deleted successfully"`
}

// SubmitFeedback godoc
// @ID          submitFeedback
// @Summary     Submit feedback
// @Description Stores a feedback message, classifies it (sentiment, category, confidence), and notifies connected dashboards.
// @Tags        Feedback
// @Accept      json
// @Produce     json
//
// @Param       X-Session-ID     header  string  false "Session tag (fallback when body omits session_id)" example(cs101-lecture-04)
// @Param       Idempotency-Key  header  string  false "Safe-retry key; repeated submissions with the same key replay the first result"
// @Param       body             body    handlers.SubmitFeedbackRequest true "Feedback payload"
//
// @Success     201  {object} handlers.SubmitFeedbackResponse
// @Success     200  {object} handlers.SubmitFeedbackResponse "Idempotent replay of a previous submission"
// @Failure     400  {object} handlers.ErrorResponse "Message missing or too long"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /feedback [post]
func (h *Handlers) SubmitFeedback(c *gin.Context) {
	ctx := c.Request.Context()

	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message is required")
		return
	}

	header := c.GetHeader(middleware.HeaderSessionID)
	session := strings.TrimSpace(sysutil.FirstNonEmpty(req.SessionID, header))
	// Same scope resolution as the idempotency middleware, so replay detection
	// and replay serving agree on which session a key belongs to.
	idemScope := middleware.ResolveSessionScope(req.SessionID, header)

	// Idempotency replay path: read the validated key if present.
	idemKey, _ := middleware.GetIdempotencyKey(c)
	if idemKey != "" {
		if svc, okSvc := h.fbSvc.(*services.FeedbackService); okSvc && svc.DB != nil {
			if rec, err := repo.GetIdempotency(ctx, svc.DB, idemScope, idemKey, time.Now().UTC()); err == nil && rec != nil {
				if prev, err2 := repo.GetFeedback(ctx, svc.DB, rec.FeedbackID); err2 == nil {
					c.Header("Idempotency-Replayed", "true")
					ok(c, http.StatusOK, SubmitFeedbackResponse{Feedback: prev})
					return
				}
			}
		}
	}

	fb, err := h.fbSvc.Submit(ctx, req.Message, req.Type, session)
	if err != nil {
		switch err {
		case services.ErrEmptyMessage:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message is required")
		case services.ErrMessageTooLong:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message too long")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeSubmitFailed, err.Error())
		}
		return
	}

	middleware.ObserveFeedbackSubmission(string(fb.Category), string(fb.Sentiment))

	// Idempotency store path, best effort.
	if idemKey != "" {
		if svc, okSvc := h.fbSvc.(*services.FeedbackService); okSvc && svc.DB != nil {
			ttl := h.idemTTL
			if ttl <= 0 {
				ttl = 24 * time.Hour
			}
			_, _ = repo.CreateIdempotency(ctx, svc.DB, idemScope, idemKey, fb.ID, http.StatusCreated, ttl)
		}
	}

	ok(c, http.StatusCreated, SubmitFeedbackResponse{Feedback: fb})
}

// ListFeedback godoc
// @ID          listFeedback
// @Summary     List feedback
// @Description Returns stored feedback newest-first, optionally filtered by session, category, and sentiment.
// @Tags        Feedback
// @Produce     json
//
// @Param       sessionId  query  string  false "Session tag"            example(cs101-lecture-04)
// @Param       category   query  string  false "Category filter"        Enums(confused, too-fast, too-slow, great, question, other)
// @Param       sentiment  query  string  false "Sentiment filter"       Enums(positive, negative, neutral)
// @Param       limit      query  int     false "Maximum records"        minimum(1) maximum(100) default(50)
//
// @Success     200  {object} handlers.ListFeedbackResponse
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /feedback [get]
func (h *Handlers) ListFeedback(c *gin.Context) {
	filter := repo.FeedbackFilter{
		SessionID: sessionID(c),
		Category:  domain.Category(strings.TrimSpace(c.Query("category"))),
		Sentiment: domain.Sentiment(strings.TrimSpace(c.Query("sentiment"))),
	}
	limit := utils.AtoiDefault(c.Query("limit"), repo.DefaultListLimit)

	items, err := h.fbSvc.List(c.Request.Context(), filter, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	if items == nil {
		items = []domain.Feedback{}
	}
	ok(c, http.StatusOK, ListFeedbackResponse{Count: len(items), Feedbacks: items})
}

// FeedbackStats godoc
// @ID          feedbackStats
// @Summary     Aggregate feedback statistics
// @Description Returns total and recent counts, per-category and per-sentiment breakdowns, and mean classifier confidence.
// @Tags        Feedback
// @Produce     json
//
// @Param       sessionId  query  string  false "Session tag" example(cs101-lecture-04)
//
// @Success     200  {object} handlers.StatsResponse
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /feedback/stats [get]
func (h *Handlers) FeedbackStats(c *gin.Context) {
	stats, err := h.statsSvc.Compute(c.Request.Context(), repo.FeedbackFilter{SessionID: sessionID(c)})
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeStatsFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, StatsResponse{Stats: stats})
}

// FeedbackSummary godoc
// @ID          feedbackSummary
// @Summary     AI summary of recent feedback
// @Description Returns an AI-generated digest of the most recent feedback. When the AI backend is unavailable the report is a marked fallback, never an error.
// @Tags        Feedback
// @Produce     json
//
// @Param       sessionId  query  string  false "Session tag" example(cs101-lecture-04)
//
// @Success     200  {object} handlers.SummaryResponse
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /feedback/summary [get]
func (h *Handlers) FeedbackSummary(c *gin.Context) {
	report, err := h.sumSvc.Summarize(c.Request.Context(), repo.FeedbackFilter{SessionID: sessionID(c)})
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSummaryFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, SummaryResponse{Summary: report})
}

// DeleteFeedback godoc
// @ID          deleteFeedback
// @Summary     Delete feedback
// @Description Removes a feedback record and notifies connected dashboards.
// @Tags        Feedback
// @Produce     json
//
// @Param       id  path  string  true "Feedback ID (UUID)" format(uuid) example(fa4dfbe0-c3bf-47bd-b32f-d7de221cf43b)
//
// @Success     200  {object} handlers.DeleteFeedbackResponse
// @Failure     404  {object} handlers.ErrorResponse "Feedback not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /feedback/{id} [delete]
func (h *Handlers) DeleteFeedback(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.fbSvc.Delete(c.Request.Context(), id); err != nil {
		switch err {
		case services.ErrFeedbackNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "feedback not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, DeleteFeedbackResponse{Message: "Feedback deleted successfully"})
}
