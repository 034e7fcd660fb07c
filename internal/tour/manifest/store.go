package manifest

import (
	"context"

	"github.com/nandaprasetyo/jelajah/internal/tour/hotspot"
	"github.com/nandaprasetyo/jelajah/internal/tour/scene"
)

// Source supplies the catalog state the builder consumes.
//
// Both reads are bulk: the manifest is assembled from two queries no
// matter how many scenes the tour has.
type Source interface {
	// ActiveScenes returns all active scenes in catalog order.
	ActiveScenes(context context.Context) ([]*scene.Scene, error)
	// OutgoingHotspots returns the outgoing edges of every active scene,
	// grouped by origin scene id. Edges pointing at inactive scenes carry
	// a nil destination slug.
	OutgoingHotspots(context context.Context) (map[int64][]*hotspot.Hotspot, error)
}
