package service

import (
	"context"
	"fmt"
	"time"

	authdomain "github.com/zerobuild-ai/zerobuild-backend/internal/auth/domain"
	"github.com/zerobuild-ai/zerobuild-backend/internal/gateway"
	"github.com/zerobuild-ai/zerobuild-backend/internal/logging"
	"github.com/zerobuild-ai/zerobuild-backend/internal/media"
	"github.com/zerobuild-ai/zerobuild-backend/internal/rooms/domain"
	"github.com/zerobuild-ai/zerobuild-backend/internal/synthesis"
	"github.com/zerobuild-ai/zerobuild-backend/internal/validation"
)

type RoomAppender interface {
	AppendRoom(ctx context.Context, rec domain.RoomRecord) error
}

// SynthesisService renders a room and prices its furnishings, then stores
// the joined result.
type SynthesisService struct {
	gw       gateway.RoomGenerator
	store    RoomAppender
	timeout  time.Duration
	inflight synthesis.Inflight[*domain.RoomRecord]

	now   func() time.Time
	newID func() (string, error)
}

func NewSynthesisService(gw gateway.RoomGenerator, store RoomAppender, timeout time.Duration) *SynthesisService {
	return &SynthesisService{
		gw:      gw,
		store:   store,
		timeout: timeout,
		now:     time.Now,
		newID: func() (string, error) {
			return synthesis.NewShortID(synthesis.RoomIDPrefix)
		},
	}
}

// Synthesize has the same all-or-nothing contract as the building
// orchestrator: one append on success, none on failure or cancellation.
func (s *SynthesisService) Synthesize(ctx context.Context, draft domain.RoomDraft, base media.Image, requester *authdomain.User) (*domain.RoomRecord, error) {
	if requester == nil || requester.ID == "" {
		return nil, validation.Fail("requester", validation.CodeUnauthenticated)
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	key, err := synthesis.Key("room", requester.ID, draft, base)
	if err != nil {
		return nil, fmt.Errorf("synthesis key: %w", err)
	}

	rec, _, err := s.inflight.Do(ctx, key, func(ctx context.Context) (*domain.RoomRecord, error) {
		return s.run(ctx, draft, base, requester)
	})
	if err != nil {
		return nil, err
	}

	out := rec.Clone()
	return &out, nil
}

func (s *SynthesisService) run(ctx context.Context, draft domain.RoomDraft, base media.Image, requester *authdomain.User) (*domain.RoomRecord, error) {
	logger := logging.New(ctx)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	g := synthesis.NewGroup(ctx)
	render := synthesis.Spawn(g, gateway.OpRoomRender, func(ctx context.Context) (media.Image, error) {
		return s.gw.GenerateCustomRoomRender(ctx, draft, base)
	})
	items := synthesis.Spawn(g, gateway.OpInteriorBudget, func(ctx context.Context) ([]domain.InteriorItem, error) {
		return s.gw.GetInteriorItemizedBudget(ctx, draft)
	})

	if err := g.Wait(); err != nil {
		logger.LogError("synthesize_room", err)
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate room id: %w", err)
	}

	rec := &domain.RoomRecord{
		ID:           id,
		ClientID:     requester.ID,
		Type:         draft.Type,
		Dimensions:   draft.Dimensions,
		Budget:       draft.Budget,
		PrimaryColor: draft.PrimaryColor,
		ColorRange:   draft.ColorRange,
		BeforeImage:  base,
		AfterImage:   render.Get(),
		Items:        items.Get(),
		CreatedAt:    s.now().UTC(),
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.store.AppendRoom(ctx, *rec); err != nil {
		logger.LogError("synthesize_room", err)
		return nil, fmt.Errorf("append room: %w", err)
	}

	logger.LogInfof("synthesize_room", "stored room id=%s client_id=%s", rec.ID, rec.ClientID)
	return rec, nil
}
