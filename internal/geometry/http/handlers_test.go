package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerobuild-ai/zerobuild-backend/internal/geometry"
)

func call(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r.Group("/geometry"))

	req := httptest.NewRequest(http.MethodPost, "/geometry/reconcile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReconcileHandler(t *testing.T) {
	w := call(t, `{"dimensions":{"length":10,"breadth":0,"area":0},"field":"area","value":250}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK         bool                `json:"ok"`
		Dimensions geometry.Dimensions `json:"dimensions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, geometry.Dimensions{Length: 10, Breadth: 25, Area: 250}, resp.Dimensions)
}

func TestReconcileHandler_ShortField(t *testing.T) {
	w := call(t, `{"dimensions":{"length":4,"breadth":5,"area":20},"field":"b","value":6}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"area":24`)
}

func TestReconcileHandler_BadField(t *testing.T) {
	w := call(t, `{"field":"height","value":3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
