package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/zerobuild-ai/zerobuild-backend/internal/auth/domain"
	"github.com/zerobuild-ai/zerobuild-backend/internal/auth/middleware"
	"github.com/zerobuild-ai/zerobuild-backend/internal/auth/repository"
	"github.com/zerobuild-ai/zerobuild-backend/internal/auth/service"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h, err := bcrypt.GenerateFromPassword([]byte("villa123"), bcrypt.MinCost)
	require.NoError(t, err)
	accounts := repository.NewAccountRepository()
	require.NoError(t, accounts.Add(repository.Account{
		User:         domain.User{ID: "u-1", Username: "asha", Role: domain.RoleClient, DisplayName: "Asha Rao"},
		PasswordHash: string(h),
	}))

	svc := service.NewAuthService(accounts, repository.NewMemorySessionRepository(), time.Hour)
	r := gin.New()
	public := r.Group("/auth")
	protected := r.Group("/auth", middleware.RequireUser(svc))
	New(svc).Register(public, protected)
	return r
}

func do(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginMeLogout(t *testing.T) {
	r := setupRouter(t)

	w := do(r, http.MethodPost, "/auth/login", `{"role":"CLIENT","username":"asha","password":"villa123"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		OK    bool        `json:"ok"`
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.True(t, login.OK)
	assert.Equal(t, "u-1", login.User.ID)

	w = do(r, http.MethodGet, "/auth/me", "", login.Token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"display_name":"Asha Rao"`)

	w = do(r, http.MethodPost, "/auth/logout", "", login.Token)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/auth/me", "", login.Token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_Failures(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"bad json", `{`, http.StatusBadRequest},
		{"bad role", `{"role":"GUEST","username":"asha","password":"villa123"}`, http.StatusBadRequest},
		{"wrong password", `{"username":"asha","password":"nope"}`, http.StatusUnauthorized},
		{"role mismatch", `{"role":"ADMIN","username":"asha","password":"villa123"}`, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/auth/login", tt.body, "")
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestMe_MissingToken(t *testing.T) {
	r := setupRouter(t)
	w := do(r, http.MethodGet, "/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing authorization token")
}

type staticResolver struct{ u *domain.User }

func (s staticResolver) Resolve(context.Context, string) (*domain.User, error) { return s.u, nil }

func TestRegister_WithoutSessions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(nil).Register(r.Group("/auth"), r.Group("/auth", middleware.RequireUser(staticResolver{&domain.User{ID: "fb-1"}})))

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/auth/login", `{}`, "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/auth/me", "", "tok").Code)
}
