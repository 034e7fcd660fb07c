package scene

import (
	"fmt"
	"time"

	"github.com/nandaprasetyo/jelajah/pkg/date"
)

// Buildings form a closed set; the viewer groups the gallery by them.
const (
	BuildingUtama  = "Gedung Utama"
	BuildingMBZCFS = "Gedung MBZ CFS"
)

// Buildings returns the allowed building names.
func Buildings() []string {
	return []string{BuildingUtama, BuildingMBZCFS}
}

// Scene represents one 360° panorama location on the campus tour.
//
// A scene is placed inside a building, optionally on a floor (nil floor
// means an outdoor area), and ordered within its building+floor group.
// Panorama and Thumbnail hold stored media paths; public URLs are resolved
// at the presentation boundary.
type Scene struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`

	Title       string `json:"title"`
	Description string `json:"description"`

	Building         string `json:"building"`
	Floor            *int   `json:"floor"`
	FloorDescription string `json:"floor_description"`
	SortOrder        int    `json:"order"`

	Location      string    `json:"location"`
	PublishedDate date.Date `json:"published_date"`

	PanoramaImage string `json:"-"`
	Thumbnail     string `json:"-"`

	Author string `json:"author"`

	IsActive   bool `json:"is_active"`
	IsFeatured bool `json:"is_featured"`

	// Initial camera orientation when the scene loads.
	InitialPitch float64 `json:"initial_pitch"`
	InitialYaw   float64 `json:"initial_yaw"`
	InitialFov   float64 `json:"initial_fov"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// LocationLabel returns a human-readable placement string for display,
// e.g. "Gedung Utama, Lantai 2" or "Gedung Utama (Area Outdoor)".
func (s *Scene) LocationLabel() string {
	if s.Floor != nil {
		return fmt.Sprintf("%s, Lantai %d", s.Building, *s.Floor)
	}
	return fmt.Sprintf("%s (Area Outdoor)", s.Building)
}

// Filter holds the parameters for a catalog listing.
type Filter struct {
	// ActiveOnly restricts results to publicly visible scenes.
	// The public gallery always sets it; admin tooling may list everything.
	ActiveOnly bool
	// Building filters to a single building when non-empty.
	Building string
	// Floor filters to a single floor when non-nil.
	Floor *int
}

// FloorSummary is one row of the floors overview: a distinct
// (floor, floor_description) pair among active scenes plus its scene count.
type FloorSummary struct {
	Floor            int    `json:"floor"`
	FloorDescription string `json:"floor_description"`
	SceneCount       int    `json:"scene_count"`
}

// BuildingSummary is one row of the buildings overview.
type BuildingSummary struct {
	Building   string `json:"building"`
	SceneCount int    `json:"scene_count"`
}

// JSON field identifiers used in validation errors.
const (
	FieldTitle         = "title"
	FieldSlug          = "slug"
	FieldBuilding      = "building"
	FieldFloor         = "floor"
	FieldPublishedDate = "published_date"
	FieldPanorama      = "panorama_image"
	FieldThumbnail     = "thumbnail"
	FieldInitialPitch  = "initial_pitch"
	FieldInitialYaw    = "initial_yaw"
	FieldInitialFov    = "initial_fov"
)
