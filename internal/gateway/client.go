package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"

	"github.com/zerobuild-ai/zerobuild-backend/internal/logging"
	"github.com/zerobuild-ai/zerobuild-backend/internal/media"
	projdomain "github.com/zerobuild-ai/zerobuild-backend/internal/projects/domain"
	roomdomain "github.com/zerobuild-ai/zerobuild-backend/internal/rooms/domain"
)

const (
	DefaultTimeout = 90 * time.Second
	cloudScope     = "https://www.googleapis.com/auth/cloud-platform"
)

var errEmptyResult = errors.New("empty result")

// StatusError is returned when the generation service answers with a
// non-2xx status or ok=false.
type StatusError struct {
	Op      string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gateway %s: status %d", e.Op, e.Code)
	}
	return fmt.Sprintf("gateway %s: status %d: %s", e.Op, e.Code, e.Message)
}

// Options configures a Client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 disables limiting
	Burst     int
	// TokenSource, when set, adds an OAuth2 bearer token to every request.
	TokenSource oauth2.TokenSource
}

// Client talks JSON over HTTP to the generation service.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	metrics *Metrics
}

var _ Gateway = (*Client)(nil)

// NewClient creates a new gateway client
func NewClient(opt Options) *Client {
	if opt.Timeout == 0 {
		opt.Timeout = DefaultTimeout
	}

	hc := &http.Client{Timeout: opt.Timeout}
	if opt.TokenSource != nil {
		hc = oauth2.NewClient(context.Background(), opt.TokenSource)
		hc.Timeout = opt.Timeout
	}

	var limiter *rate.Limiter
	if opt.RateLimit > 0 {
		burst := opt.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opt.RateLimit), burst)
	}

	return &Client{
		baseURL: strings.TrimRight(opt.BaseURL, "/"),
		http:    hc,
		limiter: limiter,
		metrics: &Metrics{},
	}
}

// GoogleTokenSource returns application-default credentials for services
// fronted by Google Cloud IAM.
func GoogleTokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	ts, err := google.DefaultTokenSource(ctx, cloudScope)
	if err != nil {
		return nil, fmt.Errorf("google token source: %w", err)
	}
	return ts, nil
}

// Metrics exposes the client's call counters.
func (c *Client) Metrics() *Metrics {
	return c.metrics
}

type envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func (e envelope) status() envelope { return e }

type enveloped interface {
	status() envelope
}

type draftRequest struct {
	Draft       any         `json:"draft"`
	BaseImage   media.Image `json:"base_image,omitempty"`
	Perspective Perspective `json:"perspective,omitempty"`
	Language    string      `json:"language,omitempty"`
}

type plotRequest struct {
	Image media.Image `json:"image"`
}

type plotResponse struct {
	envelope
	Analysis *PlotAnalysis `json:"analysis"`
}

type rendersResponse struct {
	envelope
	BuildingRenders
}

type textResponse struct {
	envelope
	Text string `json:"text"`
}

type imageResponse struct {
	envelope
	Image media.Image `json:"image"`
}

type budgetResponse struct {
	envelope
	Items []projdomain.BudgetLineItem `json:"items"`
}

type interiorItemsResponse struct {
	envelope
	Items []roomdomain.InteriorItem `json:"items"`
}

func (c *Client) AnalyzePlotImage(ctx context.Context, img media.Image) (*PlotAnalysis, error) {
	var out plotResponse
	if err := c.post(ctx, OpAnalyzePlot, "/v1/plots/analyze", plotRequest{Image: img}, &out); err != nil {
		return nil, err
	}
	return out.Analysis, nil
}

func (c *Client) GenerateBuildingRenders(ctx context.Context, draft projdomain.ProjectDraft, base media.Image, perspective Perspective) (*BuildingRenders, error) {
	var out rendersResponse
	req := draftRequest{Draft: draft, BaseImage: base, Perspective: perspective}
	if err := c.post(ctx, OpBuildingRenders, "/v1/buildings/renders", req, &out); err != nil {
		return nil, err
	}
	if out.After.Empty() {
		return nil, fmt.Errorf("gateway %s: %w", OpBuildingRenders, errEmptyResult)
	}
	r := out.BuildingRenders
	if perspective == PerspectiveFront && r.AfterSide.Empty() {
		r.AfterSide = c.sideRender(ctx, draft, base)
	}
	return &r, nil
}

// sideRender asks for the side elevation when the front render came back
// without one. The side view is optional, so failures only log.
func (c *Client) sideRender(ctx context.Context, draft projdomain.ProjectDraft, base media.Image) media.Image {
	var out rendersResponse
	req := draftRequest{Draft: draft, BaseImage: base, Perspective: PerspectiveSide}
	if err := c.post(ctx, OpBuildingRenders, "/v1/buildings/renders", req, &out); err != nil {
		logging.New(ctx).LogWarnf(OpBuildingRenders, "side render skipped: %v", err)
		return ""
	}
	return out.After
}

func (c *Client) GetArchitecturalAnalysis(ctx context.Context, draft projdomain.ProjectDraft, lang projdomain.Language) (string, error) {
	var out textResponse
	req := draftRequest{Draft: draft, Language: string(lang)}
	if err := c.post(ctx, OpArchAnalysis, "/v1/buildings/analysis", req, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

func (c *Client) GenerateInteriorRender(ctx context.Context, draft projdomain.ProjectDraft) (media.Image, error) {
	var out imageResponse
	if err := c.post(ctx, OpInteriorRender, "/v1/buildings/interior", draftRequest{Draft: draft}, &out); err != nil {
		return "", err
	}
	if out.Image.Empty() {
		return "", fmt.Errorf("gateway %s: %w", OpInteriorRender, errEmptyResult)
	}
	return out.Image, nil
}

func (c *Client) GetBudgetBreakdown(ctx context.Context, draft projdomain.ProjectDraft) ([]projdomain.BudgetLineItem, error) {
	var out budgetResponse
	if err := c.post(ctx, OpBudgetBreakdown, "/v1/buildings/budget", draftRequest{Draft: draft}, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) GenerateCustomRoomRender(ctx context.Context, draft roomdomain.RoomDraft, base media.Image) (media.Image, error) {
	var out imageResponse
	req := draftRequest{Draft: draft, BaseImage: base}
	if err := c.post(ctx, OpRoomRender, "/v1/rooms/render", req, &out); err != nil {
		return "", err
	}
	if out.Image.Empty() {
		return "", fmt.Errorf("gateway %s: %w", OpRoomRender, errEmptyResult)
	}
	return out.Image, nil
}

func (c *Client) GetInteriorItemizedBudget(ctx context.Context, draft roomdomain.RoomDraft) ([]roomdomain.InteriorItem, error) {
	var out interiorItemsResponse
	if err := c.post(ctx, OpInteriorBudget, "/v1/rooms/budget", draftRequest{Draft: draft}, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) post(ctx context.Context, op, path string, in any, out enveloped) error {
	logger := logging.New(ctx)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("gateway %s: rate limit: %w", op, err)
		}
	}

	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("gateway %s: encode: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("gateway %s: create request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if rid := logging.RequestID(ctx); rid != "" {
		req.Header.Set("X-Request-Id", rid)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.record(time.Since(start), err)
		logger.LogError(op, err)
		return fmt.Errorf("gateway %s: %w", op, err)
	}
	defer resp.Body.Close()

	decodeErr := json.NewDecoder(resp.Body).Decode(out)
	env := out.status()

	switch {
	case resp.StatusCode >= 400:
		err = &StatusError{Op: op, Code: resp.StatusCode, Message: env.Error}
	case decodeErr != nil:
		err = fmt.Errorf("gateway %s: decode: %w", op, decodeErr)
	case !env.OK:
		err = &StatusError{Op: op, Code: resp.StatusCode, Message: env.Error}
	}

	duration := time.Since(start)
	c.metrics.record(duration, err)
	if err != nil {
		logger.LogWarnf(op, "gateway call failed status=%d error=%v", resp.StatusCode, err)
		return err
	}
	logger.LogDebugf(op, "gateway call ok latency=%s", duration)
	return nil
}
