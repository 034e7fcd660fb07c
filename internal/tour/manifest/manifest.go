// Package manifest builds the navigation manifest, the single JSON
// document a panorama viewer needs to render the whole tour.
//
// The document shape is dictated by the Pannellum viewer configuration
// format, so it bypasses the API's usual response envelope.
package manifest

// Manifest is the complete tour document.
//
// An empty catalog produces the zero value, which marshals to {}.
type Manifest struct {
	Default *Defaults            `json:"default,omitempty"`
	Scenes  map[string]SceneNode `json:"scenes,omitempty"`
}

// Defaults holds the viewer-level settings, including the entry scene.
type Defaults struct {
	FirstScene        string `json:"firstScene"`
	SceneFadeDuration int    `json:"sceneFadeDuration"`
	AutoLoad          bool   `json:"autoLoad"`
	ShowControls      bool   `json:"showControls"`
	Compass           bool   `json:"compass"`
	NorthOffset       int    `json:"northOffset"`
}

// SceneNode is one renderable scene, keyed by slug in Manifest.Scenes.
type SceneNode struct {
	Title    string        `json:"title"`
	Author   string        `json:"author"`
	Panorama string        `json:"panorama"`
	Pitch    float64       `json:"pitch"`
	Yaw      float64       `json:"yaw"`
	Hfov     float64       `json:"hfov"`
	HotSpots []HotSpotNode `json:"hotSpots"`
}

// HotSpotNode is one marker inside a scene's panorama.
//
// Type is what the viewer acts on: floor hotspots render as "scene" so
// clicking them navigates. HotspotType preserves the catalog's original
// type for client-side styling.
type HotSpotNode struct {
	Pitch       float64 `json:"pitch"`
	Yaw         float64 `json:"yaw"`
	Type        string  `json:"type"`
	HotspotType string  `json:"hotspotType"`
	Text        string  `json:"text"`
	SceneID     string  `json:"sceneId,omitempty"`
}
