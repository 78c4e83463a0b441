package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/zerobuild-ai/zerobuild-backend/internal/api/http"
	"github.com/zerobuild-ai/zerobuild-backend/internal/auth"
	"github.com/zerobuild-ai/zerobuild-backend/internal/projects/domain"
	"github.com/zerobuild-ai/zerobuild-backend/internal/validation"
)

func (h *Handler) synthesize(c *gin.Context) {
	var req synthesizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if !req.BaseImage.Empty() && !req.BaseImage.Valid() {
		httpapi.WriteError(c, "synthesize_project", validation.Fail("base_image", validation.CodeInvalid))
		return
	}

	draft, err := domain.NewProjectDraft(req.ProjectInput)
	if err != nil {
		httpapi.WriteError(c, "synthesize_project", err)
		return
	}

	rec, err := h.synth.Synthesize(c.Request.Context(), draft, req.BaseImage, auth.CurrentUser(c))
	if err != nil {
		httpapi.WriteError(c, "synthesize_project", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": rec})
}

func (h *Handler) analyzePlot(c *gin.Context) {
	var req analyzePlotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	dims, err := h.plots.AnalyzePlot(c.Request.Context(), req.Image, req.Dimensions)
	if err != nil {
		httpapi.WriteError(c, "analyze_plot", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "dimensions": dims})
}
