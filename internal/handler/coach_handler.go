package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"lifecoach/internal/coach"
	"lifecoach/internal/model"

	"github.com/gin-gonic/gin"
)

const (
	analyzeFailedMessage   = "Failed to analyze problems. Please try again later."
	recommendFailedMessage = "Failed to generate recommendations. Please try again later."
)

type Coach interface {
	Analyze(ctx context.Context, feeling, troubles, changes string) ([]model.Problem, error)
	Recommend(ctx context.Context, problems []model.Problem) ([]model.Recommendation, error)
}

type CoachHandler struct {
	coach Coach
}

func NewCoachHandler(coach Coach) *CoachHandler {
	return &CoachHandler{coach: coach}
}

func (h *CoachHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid analyze request", "error", err)
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: err.Error()})
		return
	}

	slog.Info("analyzing problems for user input")

	problems, err := h.coach.Analyze(c.Request.Context(), *req.Feeling, *req.Troubles, *req.Changes)
	if err != nil {
		h.fail(c, "analysis", err, analyzeFailedMessage)
		return
	}

	c.JSON(http.StatusOK, AnalyzeResponse{Problems: problems})
}

func (h *CoachHandler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid recommend request", "error", err)
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: err.Error()})
		return
	}

	slog.Info("getting recommendations", "problem_count", len(req.Problems))

	recommendations, err := h.coach.Recommend(c.Request.Context(), req.toProblems())
	if err != nil {
		h.fail(c, "recommendation", err, recommendFailedMessage)
		return
	}

	if recommendations == nil {
		recommendations = []model.Recommendation{}
	}

	c.JSON(http.StatusOK, RecommendResponse{Recommendations: recommendations})
}

func (h *CoachHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// fail is the only place core errors become status codes: validation failures are the
// caller's to see, everything else is logged and hidden behind a fixed message.
func (h *CoachHandler) fail(c *gin.Context, operation string, err error, message string) {
	var validationErr *coach.ValidationError
	if errors.As(err, &validationErr) {
		slog.Error("validation error", "operation", operation, "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: validationErr.Message})
		return
	}

	slog.Error("coach operation failed", "operation", operation, "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: message})
}
