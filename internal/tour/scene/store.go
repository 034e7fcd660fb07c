package scene

import "context"

// Repository is the persistence contract for the scene catalog.
//
// Implementations must guarantee per-operation atomicity: UpdateScene clears
// competing featured flags in the same transaction as the row update, and
// DeleteScene removes dependent hotspots and the scene as one unit.
type Repository interface {
	ListScenes(context context.Context, f Filter, limit, offset int) ([]*Scene, int, error)
	GetSceneByID(context context.Context, id int64) (*Scene, error)
	// GetSceneBySlug resolves an ACTIVE scene only; inactive scenes are
	// invisible on the public surface.
	GetSceneBySlug(context context.Context, slug string) (*Scene, error)
	// GetFeaturedScene returns the featured active scene, falling back to
	// the first active scene in catalog order.
	GetFeaturedScene(context context.Context) (*Scene, error)
	SceneExists(context context.Context, id int64) (bool, error)
	SlugExists(context context.Context, slug string, excludeID int64) (bool, error)
	CreateScene(context context.Context, s *Scene) error
	UpdateScene(context context.Context, s *Scene) error
	DeleteScene(context context.Context, id int64) error
	FloorsSummary(context context.Context, building string) ([]FloorSummary, error)
	BuildingsSummary(context context.Context) ([]BuildingSummary, error)
}
