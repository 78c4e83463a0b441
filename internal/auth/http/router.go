package http

import "github.com/gin-gonic/gin"

// Register mounts the session routes. protected must already run
// RequireUser. Without a session service (Firebase mode) only /me is served.
func (h *Handler) Register(public, protected *gin.RouterGroup) {
	if h.sessions != nil {
		public.POST("/login", h.Login)
		protected.POST("/logout", h.Logout)
	}
	protected.GET("/me", h.Me)
}
