package http

import (
	"context"

	authdomain "github.com/zerobuild-ai/zerobuild-backend/internal/auth/domain"
	"github.com/zerobuild-ai/zerobuild-backend/internal/geometry"
	"github.com/zerobuild-ai/zerobuild-backend/internal/media"
	"github.com/zerobuild-ai/zerobuild-backend/internal/projects/domain"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, draft domain.ProjectDraft, base media.Image, requester *authdomain.User) (*domain.ProjectRecord, error)
}

type PlotAnalyzer interface {
	AnalyzePlot(ctx context.Context, img media.Image, current geometry.Dimensions) (geometry.Dimensions, error)
}

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	synth Synthesizer
	plots PlotAnalyzer
}

func New(synth Synthesizer, plots PlotAnalyzer) *Handler {
	return &Handler{synth: synth, plots: plots}
}

type synthesizeReq struct {
	domain.ProjectInput
	BaseImage media.Image `json:"base_image"`
}

type analyzePlotReq struct {
	Image      media.Image         `json:"image"`
	Dimensions geometry.Dimensions `json:"dimensions"`
}
