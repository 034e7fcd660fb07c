package hotspot

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nandaprasetyo/jelajah/internal/platform/middleware"
	requestutil "github.com/nandaprasetyo/jelajah/internal/platform/request"
	"github.com/nandaprasetyo/jelajah/internal/platform/respond"
	"github.com/nandaprasetyo/jelajah/internal/platform/sec"
	"github.com/nandaprasetyo/jelajah/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the hotspot endpoints. Listing and reads are
// public; creates and updates need the editor role, deletes need admin.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.List)
	router.Get("/{id}", handler.Get)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleEditor))
		admin.Post("/", handler.Create)
		admin.Patch("/{id}", handler.Update)
		admin.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.Delete)
	})
}

// List handles GET /api/v1/hotspots.
//
// Optional filters: ?from_scene=<id> and ?type=<scene|info|floor>.
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	filter := Filter{Type: request.URL.Query().Get("type")}
	if fromScene, ok := requestutil.QueryInt(request, "from_scene"); ok {
		id := int64(fromScene)
		filter.FromSceneID = &id
	}

	hotspots, total, err := handler.service.ListHotspots(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, hotspots, pagination.NewMeta(params.Page, params.Limit, total))
}

// Get handles GET /api/v1/hotspots/{id}.
func (handler *Handler) Get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	h, err := handler.service.GetHotspot(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, h)
}

// Create handles POST /api/v1/hotspots. Requires the editor role.
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	h, err := handler.service.CreateHotspot(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, h)
}

// Update handles PATCH /api/v1/hotspots/{id}. Requires the editor role.
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

	h, err := handler.service.UpdateHotspot(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, h)
}

// Delete handles DELETE /api/v1/hotspots/{id}. Requires the admin role.
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteHotspot(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
