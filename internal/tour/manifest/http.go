package manifest

import (
	"net/http"

	"github.com/nandaprasetyo/jelajah/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get handles GET /api/v1/scenes/manifest.
//
// The manifest is the top-level response document; it is not wrapped in
// the API envelope because the viewer consumes it directly.
func (handler *Handler) Get(writer http.ResponseWriter, request *http.Request) {
	document, err := handler.service.BuildManifest(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Raw(writer, document)
}
