package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zerobuild-ai/zerobuild-backend/internal/access"
	accesshttp "github.com/zerobuild-ai/zerobuild-backend/internal/access/http"
	authhttp "github.com/zerobuild-ai/zerobuild-backend/internal/auth/http"
	"github.com/zerobuild-ai/zerobuild-backend/internal/auth/middleware"
	geometryhttp "github.com/zerobuild-ai/zerobuild-backend/internal/geometry/http"
	projecthttp "github.com/zerobuild-ai/zerobuild-backend/internal/projects/http"
	projectservice "github.com/zerobuild-ai/zerobuild-backend/internal/projects/service"
	"github.com/zerobuild-ai/zerobuild-backend/internal/records"
	roomhttp "github.com/zerobuild-ai/zerobuild-backend/internal/rooms/http"
	roomservice "github.com/zerobuild-ai/zerobuild-backend/internal/rooms/service"
)

type V1Deps struct {
	Records  records.Store
	Projects *projectservice.SynthesisService
	Plots    *projectservice.PlotService
	Rooms    *roomservice.SynthesisService
	Resolver middleware.Resolver
	// Sessions is nil when tokens are issued elsewhere (Firebase).
	Sessions authhttp.Sessions
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")

	geometryhttp.Register(api.Group("/geometry"))

	protected := api.Group("")
	protected.Use(middleware.RequireUser(dep.Resolver))

	authhttp.New(dep.Sessions).Register(api.Group("/auth"), protected.Group("/auth"))

	projecthttp.New(dep.Projects, dep.Plots).Register(protected.Group("/projects"), protected.Group("/plots"))
	roomhttp.New(dep.Rooms).Register(protected.Group("/rooms"))
	accesshttp.New(access.NewScope(dep.Records)).Register(protected.Group("/records"))
}
