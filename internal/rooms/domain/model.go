package domain

import (
	"time"

	"github.com/zerobuild-ai/zerobuild-backend/internal/geometry"
	"github.com/zerobuild-ai/zerobuild-backend/internal/media"
)

// ColorRange is the palette temperature requested for a room.
type ColorRange string

const (
	ColorWarm    ColorRange = "warm"
	ColorCool    ColorRange = "cool"
	ColorNeutral ColorRange = "neutral"
	ColorVibrant ColorRange = "vibrant"
)

// InteriorItem is a purchasable piece suggested for a room.
type InteriorItem struct {
	Name    string `json:"name"`
	Price   string `json:"price"`
	BuyLink string `json:"buy_link"`
}

// RoomRecord is the finalized result of a room synthesis. Write-once; IDs
// are not guaranteed unique.
type RoomRecord struct {
	ID           string              `json:"id"`
	ClientID     string              `json:"client_id"`
	Type         string              `json:"type"`
	Dimensions   geometry.Dimensions `json:"dimensions"`
	Budget       string              `json:"budget"`
	PrimaryColor string              `json:"primary_color"`
	ColorRange   ColorRange          `json:"color_range"`
	BeforeImage  media.Image         `json:"before_image,omitempty"`
	AfterImage   media.Image         `json:"after_image,omitempty"`
	Items        []InteriorItem      `json:"items,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

// Clone returns a copy that shares no slices with r.
func (r RoomRecord) Clone() RoomRecord {
	if r.Items != nil {
		items := make([]InteriorItem, len(r.Items))
		copy(items, r.Items)
		r.Items = items
	}
	return r
}

// OwnerID is the client the record is filed under in every store.
func (r RoomRecord) OwnerID() string { return r.ClientID }
