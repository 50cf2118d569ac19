package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the coaching endpoints at the root and again under /api,
// the prefix the web frontend calls.
func RegisterRoutes(r *gin.Engine, h *CoachHandler) {
	r.GET("/health", h.GetHealth)

	r.POST("/analyze", h.Analyze)
	r.POST("/recommend", h.Recommend)

	api := r.Group("/api")
	api.POST("/analyze", h.Analyze)
	api.POST("/recommend", h.Recommend)
}
