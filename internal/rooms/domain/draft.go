package domain

import (
	"strings"

	"github.com/zerobuild-ai/zerobuild-backend/internal/geometry"
	"github.com/zerobuild-ai/zerobuild-backend/internal/validation"
)

const (
	DefaultPrimaryColor = "Slate Grey"
	DefaultBudget       = "0"
)

var colorRanges = []string{string(ColorWarm), string(ColorCool), string(ColorNeutral), string(ColorVibrant)}

// RoomInput is the loosely filled room form.
type RoomInput struct {
	Type         string              `json:"type"`
	Dimensions   geometry.Dimensions `json:"dimensions"`
	Budget       string              `json:"budget"`
	PrimaryColor string              `json:"primary_color"`
	ColorRange   ColorRange          `json:"color_range"`
}

// RoomDraft is a validated room description ready for synthesis.
type RoomDraft struct {
	Type         string              `json:"type"`
	Dimensions   geometry.Dimensions `json:"dimensions"`
	Budget       string              `json:"budget"`
	PrimaryColor string              `json:"primary_color"`
	ColorRange   ColorRange          `json:"color_range"`
}

func NewRoomDraft(in RoomInput) (RoomDraft, error) {
	d := RoomDraft{
		Type:         strings.TrimSpace(in.Type),
		Dimensions:   in.Dimensions,
		Budget:       strings.TrimSpace(in.Budget),
		PrimaryColor: strings.TrimSpace(in.PrimaryColor),
		ColorRange:   ColorRange(strings.ToLower(strings.TrimSpace(string(in.ColorRange)))),
	}
	if d.Budget == "" {
		d.Budget = DefaultBudget
	}
	if d.PrimaryColor == "" {
		d.PrimaryColor = DefaultPrimaryColor
	}
	if d.ColorRange == "" {
		d.ColorRange = ColorNeutral
	}

	if err := d.Validate(); err != nil {
		return RoomDraft{}, err
	}
	return d, nil
}

func (d RoomDraft) Validate() error {
	v := validation.Violations{}
	validation.Required("type", d.Type, v)
	validation.PositiveFloat("dimensions.area", d.Dimensions.Area, v)
	validation.NonNegativeFloat("dimensions.length", d.Dimensions.Length, v)
	validation.NonNegativeFloat("dimensions.breadth", d.Dimensions.Breadth, v)
	validation.OneOf("color_range", string(d.ColorRange), colorRanges, v)
	return v.Err()
}
