package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/zerobuild-ai/zerobuild-backend/internal/api/http"
	"github.com/zerobuild-ai/zerobuild-backend/internal/auth"
	authdomain "github.com/zerobuild-ai/zerobuild-backend/internal/auth/domain"
	"github.com/zerobuild-ai/zerobuild-backend/internal/media"
	"github.com/zerobuild-ai/zerobuild-backend/internal/rooms/domain"
	"github.com/zerobuild-ai/zerobuild-backend/internal/validation"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, draft domain.RoomDraft, base media.Image, requester *authdomain.User) (*domain.RoomRecord, error)
}

type Handler struct {
	synth Synthesizer
}

func New(synth Synthesizer) *Handler {
	return &Handler{synth: synth}
}

// Register attaches room routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.synthesize)
}

type synthesizeReq struct {
	domain.RoomInput
	BaseImage media.Image `json:"base_image"`
}

func (h *Handler) synthesize(c *gin.Context) {
	var req synthesizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if !req.BaseImage.Empty() && !req.BaseImage.Valid() {
		httpapi.WriteError(c, "synthesize_room", validation.Fail("base_image", validation.CodeInvalid))
		return
	}

	draft, err := domain.NewRoomDraft(req.RoomInput)
	if err != nil {
		httpapi.WriteError(c, "synthesize_room", err)
		return
	}

	rec, err := h.synth.Synthesize(c.Request.Context(), draft, req.BaseImage, auth.CurrentUser(c))
	if err != nil {
		httpapi.WriteError(c, "synthesize_room", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "room": rec})
}
