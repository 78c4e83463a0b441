// Package gateway is the boundary to the external image and text generation
// services. The synthesis orchestrators depend only on the interfaces here.
package gateway

import (
	"context"

	"github.com/zerobuild-ai/zerobuild-backend/internal/media"
	projdomain "github.com/zerobuild-ai/zerobuild-backend/internal/projects/domain"
	roomdomain "github.com/zerobuild-ai/zerobuild-backend/internal/rooms/domain"
)

// Perspective selects the camera angle of an exterior render.
type Perspective string

const (
	PerspectiveFront Perspective = "front"
	PerspectiveSide  Perspective = "side"
)

// PlotAnalysis holds dimensions read off a site photo. Zero means the
// analysis could not determine that value.
type PlotAnalysis struct {
	Length    float64 `json:"length"`
	Breadth   float64 `json:"breadth"`
	TotalArea float64 `json:"total_area"`
}

// BuildingRenders is the exterior render set. After is always present.
type BuildingRenders struct {
	Before    media.Image `json:"before,omitempty"`
	After     media.Image `json:"after"`
	AfterSide media.Image `json:"after_side,omitempty"`
}

type PlotAnalyzer interface {
	// AnalyzePlotImage returns nil, nil when nothing could be read from the image.
	AnalyzePlotImage(ctx context.Context, img media.Image) (*PlotAnalysis, error)
}

type BuildingGenerator interface {
	GenerateBuildingRenders(ctx context.Context, draft projdomain.ProjectDraft, base media.Image, perspective Perspective) (*BuildingRenders, error)
	GetArchitecturalAnalysis(ctx context.Context, draft projdomain.ProjectDraft, lang projdomain.Language) (string, error)
	GenerateInteriorRender(ctx context.Context, draft projdomain.ProjectDraft) (media.Image, error)
	GetBudgetBreakdown(ctx context.Context, draft projdomain.ProjectDraft) ([]projdomain.BudgetLineItem, error)
}

type RoomGenerator interface {
	GenerateCustomRoomRender(ctx context.Context, draft roomdomain.RoomDraft, base media.Image) (media.Image, error)
	GetInteriorItemizedBudget(ctx context.Context, draft roomdomain.RoomDraft) ([]roomdomain.InteriorItem, error)
}

// Gateway is the full set of generation operations.
type Gateway interface {
	PlotAnalyzer
	BuildingGenerator
	RoomGenerator
}

// Operation names, used for routing, metrics and error tags.
const (
	OpAnalyzePlot     = "analyze_plot_image"
	OpBuildingRenders = "generate_building_renders"
	OpArchAnalysis    = "get_architectural_analysis"
	OpInteriorRender  = "generate_interior_render"
	OpBudgetBreakdown = "get_budget_breakdown"
	OpRoomRender      = "generate_custom_room_render"
	OpInteriorBudget  = "get_interior_itemized_budget"
)
