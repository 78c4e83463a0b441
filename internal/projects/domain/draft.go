package domain

import (
	"strings"

	"github.com/zerobuild-ai/zerobuild-backend/internal/geometry"
	"github.com/zerobuild-ai/zerobuild-backend/internal/validation"
)

// Defaults applied to unset input fields.
const (
	DefaultBuildingType  = "Luxury Villa"
	DefaultStyle         = "contemporary"
	DefaultPrimaryColor  = "#475569"
	DefaultFloors        = 1
	DefaultRoomsPerFloor = 2
	MaxFloors            = 200
	MaxRoomsPerFloor     = 500
)

var (
	BuildingTypes = []string{
		"Luxury Villa",
		"Sustainable Office",
		"Urban Apartment",
		"Retail Complex",
		"Modern School",
		"Healthcare Center",
		"Eco-Friendly Cottage",
		"Industrial Warehouse",
	}

	Styles = []string{"contemporary", "vastu", "european", "zen", "heritage"}

	locations = []string{string(LocationUrban), string(LocationRural), string(LocationCoastal)}
	languages = []string{string(LanguageEnglish), string(LanguageHindi), string(LanguageTelugu)}
)

// ProjectInput is the loosely filled form a client submits. Any field may be
// missing; NewProjectDraft turns it into a ProjectDraft or explains why not.
type ProjectInput struct {
	Title         string              `json:"title"`
	BuildingType  string              `json:"building_type"`
	Location      LocationType        `json:"location"`
	Style         string              `json:"style"`
	Floors        int                 `json:"floors"`
	RoomsPerFloor int                 `json:"rooms_per_floor"`
	Budget        string              `json:"budget"`
	PrimaryColor  string              `json:"primary_color"`
	Dimensions    geometry.Dimensions `json:"dimensions"`
	Language      Language            `json:"language"`
}

// ProjectDraft is a validated building description ready for synthesis.
type ProjectDraft struct {
	Title         string              `json:"title"`
	BuildingType  string              `json:"building_type"`
	Location      LocationType        `json:"location"`
	Style         string              `json:"style"`
	Floors        int                 `json:"floors"`
	RoomsPerFloor int                 `json:"rooms_per_floor"`
	Budget        string              `json:"budget"`
	PrimaryColor  string              `json:"primary_color"`
	Dimensions    geometry.Dimensions `json:"dimensions"`
	Language      Language            `json:"language"`
}

// NewProjectDraft fills defaults and validates. The returned error is a
// *validation.Error listing every violated field.
func NewProjectDraft(in ProjectInput) (ProjectDraft, error) {
	d := ProjectDraft{
		Title:         strings.TrimSpace(in.Title),
		BuildingType:  strings.TrimSpace(in.BuildingType),
		Location:      LocationType(strings.ToUpper(strings.TrimSpace(string(in.Location)))),
		Style:         strings.ToLower(strings.TrimSpace(in.Style)),
		Floors:        in.Floors,
		RoomsPerFloor: in.RoomsPerFloor,
		Budget:        strings.TrimSpace(in.Budget),
		PrimaryColor:  strings.TrimSpace(in.PrimaryColor),
		Dimensions:    in.Dimensions,
		Language:      Language(strings.ToLower(strings.TrimSpace(string(in.Language)))),
	}

	if d.BuildingType == "" {
		d.BuildingType = DefaultBuildingType
	}
	if d.Location == "" {
		d.Location = LocationUrban
	}
	if d.Style == "" {
		d.Style = DefaultStyle
	}
	if d.Floors == 0 {
		d.Floors = DefaultFloors
	}
	if d.RoomsPerFloor == 0 {
		d.RoomsPerFloor = DefaultRoomsPerFloor
	}
	if d.PrimaryColor == "" {
		d.PrimaryColor = DefaultPrimaryColor
	}
	if d.Language == "" {
		d.Language = LanguageEnglish
	}

	if err := d.Validate(); err != nil {
		return ProjectDraft{}, err
	}
	return d, nil
}

// Validate checks the fields synthesis depends on.
func (d ProjectDraft) Validate() error {
	v := validation.Violations{}
	validation.Required("title", d.Title, v)
	validation.PositiveFloat("dimensions.area", d.Dimensions.Area, v)
	validation.NonNegativeFloat("dimensions.length", d.Dimensions.Length, v)
	validation.NonNegativeFloat("dimensions.breadth", d.Dimensions.Breadth, v)
	validation.OneOf("location", string(d.Location), locations, v)
	validation.OneOf("language", string(d.Language), languages, v)
	validation.RangeInt("floors", d.Floors, 1, MaxFloors, v)
	validation.RangeInt("rooms_per_floor", d.RoomsPerFloor, 1, MaxRoomsPerFloor, v)
	return v.Err()
}
