package domain

import (
	"time"

	"github.com/zerobuild-ai/zerobuild-backend/internal/geometry"
	"github.com/zerobuild-ai/zerobuild-backend/internal/media"
)

// LocationType is the site category used to steer renders and estimates.
type LocationType string

const (
	LocationUrban   LocationType = "URBAN"
	LocationRural   LocationType = "RURAL"
	LocationCoastal LocationType = "COASTAL"
)

// Language tags the narrative analysis.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
	LanguageTelugu  Language = "te"
)

// BudgetLineItem is one row of a generated construction estimate.
type BudgetLineItem struct {
	Category string `json:"category"`
	Item     string `json:"item"`
	Estimate string `json:"estimate"`
	Source   string `json:"source"`
}

// ProjectRecord is the finalized result of a building synthesis. Records are
// write-once; a new synthesis produces a new record rather than editing one.
// IDs are short and random, so two records may share one.
type ProjectRecord struct {
	ID            string              `json:"id"`
	ClientID      string              `json:"client_id"`
	ClientName    string              `json:"client_name"`
	Title         string              `json:"title"`
	BuildingType  string              `json:"building_type"`
	Location      LocationType        `json:"location"`
	Style         string              `json:"style"`
	Floors        int                 `json:"floors"`
	RoomsPerFloor int                 `json:"rooms_per_floor"`
	Budget        string              `json:"budget"`
	PrimaryColor  string              `json:"primary_color"`
	Dimensions    geometry.Dimensions `json:"dimensions"`

	BeforeImage     media.Image      `json:"before_image,omitempty"`
	AfterImage      media.Image      `json:"after_image,omitempty"`
	AfterImageSide  media.Image      `json:"after_image_side,omitempty"`
	InteriorImage   media.Image      `json:"interior_image,omitempty"`
	Narrative       string           `json:"narrative,omitempty"`
	BudgetBreakdown []BudgetLineItem `json:"budget_breakdown,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a copy that shares no slices with r.
func (r ProjectRecord) Clone() ProjectRecord {
	if r.BudgetBreakdown != nil {
		items := make([]BudgetLineItem, len(r.BudgetBreakdown))
		copy(items, r.BudgetBreakdown)
		r.BudgetBreakdown = items
	}
	return r
}

// OwnerID is the client the record is filed under in every store.
func (r ProjectRecord) OwnerID() string { return r.ClientID }
