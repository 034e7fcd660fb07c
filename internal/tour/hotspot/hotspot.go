// Package hotspot implements the navigation graph between tour scenes.
//
// Hotspots are directed edges anchored at a camera direction inside the
// origin panorama. Scene and floor hotspots point at another scene; info
// hotspots carry a text popup and no destination.
package hotspot

import "time"

// Hotspot types.
const (
	TypeScene = "scene"
	TypeInfo  = "info"
	TypeFloor = "floor"
)

// Types returns the allowed hotspot type identifiers.
func Types() []string {
	return []string{TypeScene, TypeInfo, TypeFloor}
}

// RequiresDestination reports whether a hotspot type must link to a scene.
func RequiresDestination(hotspotType string) bool {
	return hotspotType == TypeScene || hotspotType == TypeFloor
}

// Hotspot is a directed, annotated edge in the navigation graph.
//
// Pitch and yaw place the marker inside the origin panorama. ToSceneSlug
// and ToSceneTitle are read-side denormalizations joined from the
// destination scene; they are never written.
type Hotspot struct {
	ID          int64  `json:"id"`
	FromSceneID int64  `json:"from_scene"`
	ToSceneID   *int64 `json:"to_scene,omitempty"`

	Type string `json:"hotspot_type"`

	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`

	Text            string `json:"text"`
	InfoDescription string `json:"info_description,omitempty"`

	ToSceneSlug  *string `json:"to_scene_slug,omitempty"`
	ToSceneTitle *string `json:"to_scene_title,omitempty"`

	CreatedAt time.Time `json:"-"`
}

// Filter holds the parameters for a hotspot listing.
type Filter struct {
	// FromSceneID restricts results to edges leaving one scene.
	FromSceneID *int64
	// Type restricts results to one hotspot type when non-empty.
	Type string
}

// JSON field identifiers used in validation errors.
const (
	FieldFromScene = "from_scene"
	FieldToScene   = "to_scene"
	FieldType      = "hotspot_type"
	FieldText      = "text"
	FieldPitch     = "pitch"
	FieldYaw       = "yaw"
)
