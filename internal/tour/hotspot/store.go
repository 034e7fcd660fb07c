package hotspot

import "context"

// Repository is the persistence contract for the navigation graph.
type Repository interface {
	ListHotspots(context context.Context, f Filter, limit, offset int) ([]*Hotspot, int, error)
	// ListOutgoing returns all edges leaving a scene, destination slug and
	// title joined in, ordered by type then id for stable rendering.
	ListOutgoing(context context.Context, sceneID int64) ([]*Hotspot, error)
	GetHotspot(context context.Context, id int64) (*Hotspot, error)
	CreateHotspot(context context.Context, h *Hotspot) error
	UpdateHotspot(context context.Context, h *Hotspot) error
	DeleteHotspot(context context.Context, id int64) error
}

// SceneResolver answers existence checks against the scene catalog.
//
// The graph layer never reads scene rows itself; it only needs to know
// whether an endpoint id is valid before accepting an edge.
type SceneResolver interface {
	SceneExists(context context.Context, id int64) (bool, error)
}
