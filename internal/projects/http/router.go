package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(projects, plots *gin.RouterGroup) {
	projects.POST("", h.synthesize)
	plots.POST("/analyze", h.analyzePlot)
}
