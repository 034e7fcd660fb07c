package hotspot

import (
	"context"
	"log/slog"

	"github.com/nandaprasetyo/jelajah/internal/platform/validate"
)

type Service struct {
	repo   Repository
	scenes SceneResolver
	logger *slog.Logger
}

func NewService(repo Repository, scenes SceneResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		scenes: scenes,
		logger: logger,
	}
}

// CreateInput carries the attributes for a new hotspot.
type CreateInput struct {
	FromSceneID     int64   `json:"from_scene"`
	ToSceneID       *int64  `json:"to_scene"`
	Type            string  `json:"hotspot_type"`
	Pitch           float64 `json:"pitch"`
	Yaw             float64 `json:"yaw"`
	Text            string  `json:"text"`
	InfoDescription string  `json:"info_description"`
}

// UpdateInput carries a partial update; nil fields keep their stored value.
type UpdateInput struct {
	FromSceneID     *int64   `json:"from_scene"`
	ToSceneID       *int64   `json:"to_scene"`
	ClearToScene    bool     `json:"clear_to_scene"`
	Type            *string  `json:"hotspot_type"`
	Pitch           *float64 `json:"pitch"`
	Yaw             *float64 `json:"yaw"`
	Text            *string  `json:"text"`
	InfoDescription *string  `json:"info_description"`
}

// CreateHotspot validates the edge and persists it. Nothing is written
// when validation fails, including endpoint existence checks.
func (service *Service) CreateHotspot(context context.Context, input CreateInput) (*Hotspot, error) {
	h := &Hotspot{
		FromSceneID:     input.FromSceneID,
		ToSceneID:       input.ToSceneID,
		Type:            input.Type,
		Pitch:           input.Pitch,
		Yaw:             input.Yaw,
		Text:            input.Text,
		InfoDescription: input.InfoDescription,
	}

	if err := service.validateHotspot(context, h); err != nil {
		return nil, err
	}

	if err := service.repo.CreateHotspot(context, h); err != nil {
		return nil, err
	}

	service.logger.Info("hotspot_created",
		slog.Int64("hotspot_id", h.ID),
		slog.Int64("from_scene", h.FromSceneID),
		slog.String("type", h.Type),
	)
	return h, nil
}

// UpdateHotspot applies a partial update to an existing hotspot.
func (service *Service) UpdateHotspot(context context.Context, id int64, input UpdateInput) (*Hotspot, error) {
	h, err := service.repo.GetHotspot(context, id)
	if err != nil {
		return nil, err
	}

	if input.FromSceneID != nil {
		h.FromSceneID = *input.FromSceneID
	}
	if input.ToSceneID != nil {
		h.ToSceneID = input.ToSceneID
	}
	if input.ClearToScene {
		h.ToSceneID = nil
	}
	if input.Type != nil {
		h.Type = *input.Type
	}
	if input.Pitch != nil {
		h.Pitch = *input.Pitch
	}
	if input.Yaw != nil {
		h.Yaw = *input.Yaw
	}
	if input.Text != nil {
		h.Text = *input.Text
	}
	if input.InfoDescription != nil {
		h.InfoDescription = *input.InfoDescription
	}

	if err := service.validateHotspot(context, h); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateHotspot(context, h); err != nil {
		return nil, err
	}

	// Re-read so the denormalized destination slug and title are current.
	return service.repo.GetHotspot(context, h.ID)
}

func (service *Service) DeleteHotspot(context context.Context, id int64) error {
	if err := service.repo.DeleteHotspot(context, id); err != nil {
		return err
	}

	service.logger.Warn("hotspot_deleted", slog.Int64("hotspot_id", id))
	return nil
}

func (service *Service) ListHotspots(context context.Context, filter Filter, limit, offset int) ([]*Hotspot, int, error) {
	return service.repo.ListHotspots(context, filter, limit, offset)
}

func (service *Service) ListOutgoing(context context.Context, sceneID int64) ([]*Hotspot, error) {
	return service.repo.ListOutgoing(context, sceneID)
}

func (service *Service) GetHotspot(context context.Context, id int64) (*Hotspot, error) {
	return service.repo.GetHotspot(context, id)
}

// validateHotspot enforces the graph rules: a valid type, a label, an
// existing origin, and a destination exactly when the type requires one.
// Pitch and yaw outside the viewer's usual range are logged, not rejected.
func (service *Service) validateHotspot(context context.Context, h *Hotspot) error {
	validator := &validate.Validator{}
	validator.
		OneOf(FieldType, h.Type, Types()...).
		Required(FieldText, h.Text).
		MaxLen(FieldText, h.Text, 100)

	if err := validator.Err(); err != nil {
		return err
	}

	exists, err := service.scenes.SceneExists(context, h.FromSceneID)
	if err != nil {
		return err
	}
	if !exists {
		return validate.RequiredError(FieldFromScene, "Origin scene does not exist")
	}

	if RequiresDestination(h.Type) {
		if h.ToSceneID == nil {
			return validate.RequiredError(FieldToScene, "Scene link hotspot must have a destination scene")
		}
		exists, err := service.scenes.SceneExists(context, *h.ToSceneID)
		if err != nil {
			return err
		}
		if !exists {
			return validate.RequiredError(FieldToScene, "Destination scene does not exist")
		}
	} else if h.ToSceneID != nil {
		// Info hotspots never carry a destination; drop it silently.
		h.ToSceneID = nil
	}

	soft := &validate.Validator{}
	soft.
		FloatRange(FieldPitch, h.Pitch, -90, 90).
		FloatRange(FieldYaw, h.Yaw, -180, 180)
	if soft.HasErrors() {
		service.logger.Warn("hotspot_angles_out_of_range",
			slog.Int64("from_scene", h.FromSceneID),
			slog.Float64("pitch", h.Pitch),
			slog.Float64("yaw", h.Yaw),
		)
	}

	return nil
}
