// Package api exposes the guide over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/threerivers/guide/internal/domain"
	"github.com/threerivers/guide/internal/guide"
	"github.com/threerivers/guide/internal/intent"
	"github.com/threerivers/guide/internal/logger"
	"github.com/threerivers/guide/internal/telemetry"
)

// Enhancer is the optional external-model override. Implementations return
// the replacement answer text or an error; any error means the rule-based
// answer is kept.
type Enhancer interface {
	Enhance(ctx context.Context, question string, history []domain.Message) (string, error)
}

// Handler handles HTTP requests for the guide API.
type Handler struct {
	classifier *intent.Classifier
	guide      *guide.Guide
	enhancer   Enhancer // nil when no API credential is configured
	telemetry  *telemetry.Provider
	logger     logger.Logger
}

// NewHandler creates a new API handler. enhancer may be nil; telemetry may be
// nil in tests.
func NewHandler(
	classifier *intent.Classifier,
	guideService *guide.Guide,
	enhancer Enhancer,
	tel *telemetry.Provider,
	log logger.Logger,
) *Handler {
	return &Handler{
		classifier: classifier,
		guide:      guideService,
		enhancer:   enhancer,
		telemetry:  tel,
		logger:     log,
	}
}

// Ask handles POST /api/ai-guide.
func (h *Handler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		if h.telemetry != nil {
			h.telemetry.IncrementInvalidQuestions()
		}
		h.logger.Warn("Rejected question", logger.String("reason", "missing or non-string question"))
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidQuestion})
		return
	}

	start := time.Now()
	answer, classified, err := h.answer(c.Request.Context(), req)
	if err != nil {
		if h.telemetry != nil {
			h.telemetry.IncrementInternalErrors()
		}
		h.logger.Error("Failed to answer question", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  errServer,
			"answer": apologyAnswer,
		})
		return
	}

	if h.telemetry != nil {
		h.telemetry.RecordQuestion(c.Request.Context(), string(classified), time.Since(start))
	}
	c.JSON(http.StatusOK, toAskResponse(answer))
}

// answer runs classify -> compose -> optional enhance. A panic anywhere in
// the pipeline (a data provider included) is converted to an error so the
// caller can produce the generic 500 body.
func (h *Handler) answer(ctx context.Context, req AskRequest) (ans domain.Answer, in intent.Intent, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("answering question: %v", r)
		}
	}()

	result := h.classifier.Classify(req.Question)
	in = result.Intent
	ans = h.guide.Answer(result.Intent, req.Question)

	if h.enhancer == nil {
		return ans, in, nil
	}

	enhanceStart := time.Now()
	text, enhanceErr := h.enhancer.Enhance(ctx, req.Question, req.ConversationHistory)
	if h.telemetry != nil {
		h.telemetry.RecordEnhancerAttempt(ctx, time.Since(enhanceStart))
	}
	if enhanceErr != nil {
		// Best effort: keep the rule-based answer, never surface the failure.
		if h.telemetry != nil {
			h.telemetry.RecordEnhancerFailure(ctx, "unavailable")
		}
		h.logger.Warn("Enhancement failed, keeping rule-based answer",
			logger.String("intent", string(in)),
			logger.Error(enhanceErr))
		return ans, in, nil
	}

	ans.Text = text
	return ans, in, nil
}
