package scene

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nandaprasetyo/jelajah/internal/platform/media"
	"github.com/nandaprasetyo/jelajah/internal/platform/middleware"
	requestutil "github.com/nandaprasetyo/jelajah/internal/platform/request"
	"github.com/nandaprasetyo/jelajah/internal/platform/respond"
	"github.com/nandaprasetyo/jelajah/internal/platform/sec"
	"github.com/nandaprasetyo/jelajah/internal/tour/hotspot"
	"github.com/nandaprasetyo/jelajah/pkg/date"
	"github.com/nandaprasetyo/jelajah/pkg/pagination"
)

// HotspotLister supplies the outgoing hotspots for a scene detail response.
type HotspotLister interface {
	ListOutgoing(context context.Context, sceneID int64) ([]*hotspot.Hotspot, error)
}

type Handler struct {
	service  *Service
	hotspots HotspotLister
	media    *media.Resolver
}

func NewHandler(service *Service, hotspots HotspotLister, resolver *media.Resolver) *Handler {
	return &Handler{
		service:  service,
		hotspots: hotspots,
		media:    resolver,
	}
}

// RegisterRoutes mounts the scene catalog endpoints onto the given router.
//
// Reads are public. Creates and updates need the editor role; deletes need
// admin because they cascade into the hotspot graph.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.List)
	router.Get("/featured", handler.Featured)
	router.Get("/floors", handler.Floors)
	router.Get("/buildings", handler.Buildings)
	router.Get("/{slug}", handler.GetBySlug)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleEditor))
		admin.Post("/", handler.Create)
		admin.Patch("/{id}", handler.Update)
		admin.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.Delete)
	})
}

// listItem is the compact gallery card representation.
type listItem struct {
	ID            int64     `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Thumbnail     string    `json:"thumbnail"`
	Building      string    `json:"building"`
	Floor         *int      `json:"floor"`
	Location      string    `json:"location"`
	LocationLabel string    `json:"location_label"`
	PublishedDate date.Date `json:"published_date"`
	IsFeatured    bool      `json:"is_featured"`
}

// detail is the full public scene representation, including the resolved
// media URLs and the outgoing hotspots.
type detail struct {
	*Scene
	PanoramaURL   string             `json:"panorama_url"`
	ThumbnailURL  string             `json:"thumbnail_url"`
	LocationLabel string             `json:"location_label"`
	Hotspots      []*hotspot.Hotspot `json:"hotspots"`
}

func (handler *Handler) newListItem(s *Scene) listItem {
	return listItem{
		ID:            s.ID,
		Slug:          s.Slug,
		Title:         s.Title,
		Thumbnail:     handler.media.Resolve(s.Thumbnail),
		Building:      s.Building,
		Floor:         s.Floor,
		Location:      s.Location,
		LocationLabel: s.LocationLabel(),
		PublishedDate: s.PublishedDate,
		IsFeatured:    s.IsFeatured,
	}
}

func (handler *Handler) newDetail(s *Scene, hotspots []*hotspot.Hotspot) detail {
	if hotspots == nil {
		hotspots = []*hotspot.Hotspot{}
	}
	return detail{
		Scene:         s,
		PanoramaURL:   handler.media.Resolve(s.PanoramaImage),
		ThumbnailURL:  handler.media.Resolve(s.Thumbnail),
		LocationLabel: s.LocationLabel(),
		Hotspots:      hotspots,
	}
}

// List handles GET /api/v1/scenes.
//
// Optional filters: ?building=<name> and ?floor=<n>. Results are ordered
// building, floor (outdoor areas last), order, title.
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	filter := Filter{
		ActiveOnly: true,
		Building:   request.URL.Query().Get("building"),
	}
	if floor, ok := requestutil.QueryInt(request, "floor"); ok {
		filter.Floor = &floor
	}

	scenes, total, err := handler.service.ListScenes(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items := make([]listItem, 0, len(scenes))
	for _, s := range scenes {
		items = append(items, handler.newListItem(s))
	}
	respond.Paginated(writer, items, pagination.NewMeta(params.Page, params.Limit, total))
}

// Featured handles GET /api/v1/scenes/featured.
func (handler *Handler) Featured(writer http.ResponseWriter, request *http.Request) {
	s, err := handler.service.GetFeaturedScene(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	hotspots, err := handler.hotspots.ListOutgoing(request.Context(), s.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.newDetail(s, hotspots))
}

// Floors handles GET /api/v1/scenes/floors, optionally scoped by ?building=.
func (handler *Handler) Floors(writer http.ResponseWriter, request *http.Request) {
	floors, err := handler.service.FloorsSummary(request.Context(), request.URL.Query().Get("building"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, floors)
}

// Buildings handles GET /api/v1/scenes/buildings.
func (handler *Handler) Buildings(writer http.ResponseWriter, request *http.Request) {
	buildings, err := handler.service.BuildingsSummary(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, buildings)
}

// GetBySlug handles GET /api/v1/scenes/{slug}.
func (handler *Handler) GetBySlug(writer http.ResponseWriter, request *http.Request) {
	s, err := handler.service.GetSceneBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	hotspots, err := handler.hotspots.ListOutgoing(request.Context(), s.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.newDetail(s, hotspots))
}

// Create handles POST /api/v1/scenes. Requires the editor role.
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	s, err := handler.service.CreateScene(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, handler.newDetail(s, nil))
}

// Update handles PATCH /api/v1/scenes/{id}. Requires the editor role.
func (handler *Handler) Update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	s, err := handler.service.UpdateScene(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	hotspots, err := handler.hotspots.ListOutgoing(request.Context(), s.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.newDetail(s, hotspots))
}

// Delete handles DELETE /api/v1/scenes/{id}. Requires the admin role.
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteScene(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
