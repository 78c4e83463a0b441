package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zerobuild-ai/zerobuild-backend/internal/geometry"
)

type reconcileReq struct {
	Dimensions geometry.Dimensions `json:"dimensions"`
	Field      string              `json:"field"`
	Value      float64             `json:"value"`
}

// Register attaches the reconcile route. It needs no authentication.
func Register(rg *gin.RouterGroup) {
	rg.POST("/reconcile", reconcile)
}

func reconcile(c *gin.Context) {
	var req reconcileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	field, err := geometry.ParseField(req.Field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "dimensions": geometry.Reconcile(req.Dimensions, field, req.Value)})
}
