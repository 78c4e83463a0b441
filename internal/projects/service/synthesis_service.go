package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	authdomain "github.com/zerobuild-ai/zerobuild-backend/internal/auth/domain"
	"github.com/zerobuild-ai/zerobuild-backend/internal/gateway"
	"github.com/zerobuild-ai/zerobuild-backend/internal/logging"
	"github.com/zerobuild-ai/zerobuild-backend/internal/media"
	"github.com/zerobuild-ai/zerobuild-backend/internal/projects/domain"
	"github.com/zerobuild-ai/zerobuild-backend/internal/synthesis"
	"github.com/zerobuild-ai/zerobuild-backend/internal/validation"
)

var errNoRenders = errors.New("no renders returned")

// ProjectAppender is the slice of the record store the orchestrator writes to.
type ProjectAppender interface {
	AppendProject(ctx context.Context, rec domain.ProjectRecord) error
}

// SynthesisService turns a validated draft into a stored ProjectRecord by
// running the four building generation calls concurrently.
type SynthesisService struct {
	gw       gateway.BuildingGenerator
	store    ProjectAppender
	timeout  time.Duration
	inflight synthesis.Inflight[*domain.ProjectRecord]

	now   func() time.Time
	newID func() (string, error)
}

// NewSynthesisService creates a new building synthesis service. timeout
// bounds one synthesis; zero means no bound beyond the caller's context.
func NewSynthesisService(gw gateway.BuildingGenerator, store ProjectAppender, timeout time.Duration) *SynthesisService {
	return &SynthesisService{
		gw:      gw,
		store:   store,
		timeout: timeout,
		now:     time.Now,
		newID: func() (string, error) {
			return synthesis.NewShortID(synthesis.ProjectIDPrefix)
		},
	}
}

// Synthesize validates its input, then either joins an identical synthesis
// already in flight or starts one. On success exactly one record is
// appended; on any failure none is.
func (s *SynthesisService) Synthesize(ctx context.Context, draft domain.ProjectDraft, base media.Image, requester *authdomain.User) (*domain.ProjectRecord, error) {
	if requester == nil || requester.ID == "" {
		return nil, validation.Fail("requester", validation.CodeUnauthenticated)
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	key, err := synthesis.Key("project", requester.ID, draft, base)
	if err != nil {
		return nil, fmt.Errorf("synthesis key: %w", err)
	}

	rec, shared, err := s.inflight.Do(ctx, key, func(ctx context.Context) (*domain.ProjectRecord, error) {
		return s.run(ctx, draft, base, requester)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logging.New(ctx).LogInfof("synthesize_project", "joined in-flight synthesis id=%s", rec.ID)
	}

	out := rec.Clone()
	return &out, nil
}

func (s *SynthesisService) run(ctx context.Context, draft domain.ProjectDraft, base media.Image, requester *authdomain.User) (*domain.ProjectRecord, error) {
	logger := logging.New(ctx)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	g := synthesis.NewGroup(ctx)
	renders := synthesis.Spawn(g, gateway.OpBuildingRenders, func(ctx context.Context) (*gateway.BuildingRenders, error) {
		r, err := s.gw.GenerateBuildingRenders(ctx, draft, base, gateway.PerspectiveFront)
		if err == nil && r == nil {
			err = errNoRenders
		}
		return r, err
	})
	narrative := synthesis.Spawn(g, gateway.OpArchAnalysis, func(ctx context.Context) (string, error) {
		return s.gw.GetArchitecturalAnalysis(ctx, draft, draft.Language)
	})
	interior := synthesis.Spawn(g, gateway.OpInteriorRender, func(ctx context.Context) (media.Image, error) {
		return s.gw.GenerateInteriorRender(ctx, draft)
	})
	budget := synthesis.Spawn(g, gateway.OpBudgetBreakdown, func(ctx context.Context) ([]domain.BudgetLineItem, error) {
		return s.gw.GetBudgetBreakdown(ctx, draft)
	})

	if err := g.Wait(); err != nil {
		logger.LogError("synthesize_project", err)
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate project id: %w", err)
	}

	r := renders.Get()
	rec := &domain.ProjectRecord{
		ID:              id,
		ClientID:        requester.ID,
		ClientName:      requester.DisplayName,
		Title:           draft.Title,
		BuildingType:    draft.BuildingType,
		Location:        draft.Location,
		Style:           draft.Style,
		Floors:          draft.Floors,
		RoomsPerFloor:   draft.RoomsPerFloor,
		Budget:          draft.Budget,
		PrimaryColor:    draft.PrimaryColor,
		Dimensions:      draft.Dimensions,
		BeforeImage:     base.Or(r.Before),
		AfterImage:      r.After,
		AfterImageSide:  r.AfterSide,
		InteriorImage:   interior.Get(),
		Narrative:       narrative.Get(),
		BudgetBreakdown: budget.Get(),
		CreatedAt:       s.now().UTC(),
	}

	// all waiters gone or deadline passed: the result has nowhere to go
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.store.AppendProject(ctx, *rec); err != nil {
		logger.LogError("synthesize_project", err)
		return nil, fmt.Errorf("append project: %w", err)
	}

	logger.LogInfof("synthesize_project", "stored project id=%s client_id=%s", rec.ID, rec.ClientID)
	return rec, nil
}
