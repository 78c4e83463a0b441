package service

import (
	"context"

	"github.com/zerobuild-ai/zerobuild-backend/internal/gateway"
	"github.com/zerobuild-ai/zerobuild-backend/internal/geometry"
	"github.com/zerobuild-ai/zerobuild-backend/internal/media"
	"github.com/zerobuild-ai/zerobuild-backend/internal/synthesis"
	"github.com/zerobuild-ai/zerobuild-backend/internal/validation"
)

// PlotService reads plot dimensions off a site photo.
type PlotService struct {
	analyzer gateway.PlotAnalyzer
}

func NewPlotService(analyzer gateway.PlotAnalyzer) *PlotService {
	return &PlotService{analyzer: analyzer}
}

// AnalyzePlot merges the analysed dimensions into current. Values the
// analysis could not determine keep their current value.
func (s *PlotService) AnalyzePlot(ctx context.Context, img media.Image, current geometry.Dimensions) (geometry.Dimensions, error) {
	if !img.Valid() {
		return current, validation.Fail("image", validation.CodeInvalid)
	}

	pa, err := s.analyzer.AnalyzePlotImage(ctx, img)
	if err != nil {
		return current, &synthesis.GatewayError{Op: gateway.OpAnalyzePlot, Err: err}
	}
	if pa == nil {
		return current, nil
	}

	out := current
	if pa.Length > 0 {
		out.Length = geometry.Round2(pa.Length)
	}
	if pa.Breadth > 0 {
		out.Breadth = geometry.Round2(pa.Breadth)
	}
	if pa.TotalArea > 0 {
		out.Area = geometry.Round2(pa.TotalArea)
	}
	return out, nil
}
