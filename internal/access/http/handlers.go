package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zerobuild-ai/zerobuild-backend/internal/access"
	httpapi "github.com/zerobuild-ai/zerobuild-backend/internal/api/http"
	"github.com/zerobuild-ai/zerobuild-backend/internal/auth"
	authdomain "github.com/zerobuild-ai/zerobuild-backend/internal/auth/domain"
)

type Querier interface {
	Query(ctx context.Context, requester *authdomain.User, targetClientID string) (*access.LookupResult, error)
}

type Handler struct {
	scope Querier
}

func New(scope Querier) *Handler {
	return &Handler{scope: scope}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.lookup)
}

// lookup serves GET /records?client_id=. Clients get their own records
// whatever client_id says.
func (h *Handler) lookup(c *gin.Context) {
	res, err := h.scope.Query(c.Request.Context(), auth.CurrentUser(c), c.Query("client_id"))
	if err != nil {
		httpapi.WriteError(c, "lookup_records", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "client_id": res.ClientID, "projects": res.Projects, "rooms": res.Rooms})
}
