package scene

import (
	"context"
	"log/slog"

	"github.com/nandaprasetyo/jelajah/internal/platform/validate"
	"github.com/nandaprasetyo/jelajah/pkg/date"
	"github.com/nandaprasetyo/jelajah/pkg/pointer"
	"github.com/nandaprasetyo/jelajah/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateInput carries the attributes for a new scene. Zero values fall back
// to the catalog defaults (active, order 0, camera straight ahead, fov 90).
type CreateInput struct {
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	Building         string    `json:"building"`
	Floor            *int      `json:"floor"`
	FloorDescription string    `json:"floor_description"`
	SortOrder        int       `json:"order"`
	Location         string    `json:"location"`
	PublishedDate    date.Date `json:"published_date"`
	PanoramaImage    string    `json:"panorama_image"`
	Thumbnail        string    `json:"thumbnail"`
	Author           string    `json:"author"`
	IsActive         *bool     `json:"is_active"`
	IsFeatured       bool      `json:"is_featured"`
	InitialPitch     *float64  `json:"initial_pitch"`
	InitialYaw       *float64  `json:"initial_yaw"`
	InitialFov       *float64  `json:"initial_fov"`
}

// UpdateInput carries a partial update; nil fields keep their stored value.
type UpdateInput struct {
	Title            *string    `json:"title"`
	Slug             *string    `json:"slug"`
	Description      *string    `json:"description"`
	Building         *string    `json:"building"`
	Floor            *int       `json:"floor"`
	ClearFloor       bool       `json:"clear_floor"`
	FloorDescription *string    `json:"floor_description"`
	SortOrder        *int       `json:"order"`
	Location         *string    `json:"location"`
	PublishedDate    *date.Date `json:"published_date"`
	PanoramaImage    *string    `json:"panorama_image"`
	Thumbnail        *string    `json:"thumbnail"`
	Author           *string    `json:"author"`
	IsActive         *bool      `json:"is_active"`
	IsFeatured       *bool      `json:"is_featured"`
	InitialPitch     *float64   `json:"initial_pitch"`
	InitialYaw       *float64   `json:"initial_yaw"`
	InitialFov       *float64   `json:"initial_fov"`
}

// CreateScene validates the input, derives the slug when absent, enforces
// slug uniqueness, and persists the new scene.
func (service *Service) CreateScene(context context.Context, input CreateInput) (*Scene, error) {
	s := &Scene{
		Title:            input.Title,
		Slug:             input.Slug,
		Description:      input.Description,
		Building:         input.Building,
		Floor:            input.Floor,
		FloorDescription: input.FloorDescription,
		SortOrder:        input.SortOrder,
		Location:         input.Location,
		PublishedDate:    input.PublishedDate,
		PanoramaImage:    input.PanoramaImage,
		Thumbnail:        input.Thumbnail,
		Author:           input.Author,
		IsActive:         pointer.Fallback(input.IsActive, true),
		IsFeatured:       input.IsFeatured,
		InitialPitch:     pointer.Val(input.InitialPitch),
		InitialYaw:       pointer.Val(input.InitialYaw),
		InitialFov:       pointer.Fallback(input.InitialFov, 90),
	}

	if s.Building == "" {
		s.Building = BuildingUtama
	}
	if s.Slug == "" {
		s.Slug = slug.From(s.Title)
	}

	if err := service.validateScene(s); err != nil {
		return nil, err
	}

	taken, err := service.repo.SlugExists(context, s.Slug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, validate.RequiredError(FieldSlug, "A scene with this slug already exists")
	}

	if err := service.repo.CreateScene(context, s); err != nil {
		return nil, err
	}

	service.logger.Info("scene_created",
		slog.Int64("scene_id", s.ID),
		slog.String("slug", s.Slug),
	)
	return s, nil
}

// UpdateScene applies a partial update to an existing scene.
//
// Marking a scene featured demotes the current featured scene; the
// repository performs both writes in one transaction so concurrent
// "set featured" calls cannot leave two winners.
func (service *Service) UpdateScene(context context.Context, id int64, input UpdateInput) (*Scene, error) {
	s, err := service.repo.GetSceneByID(context, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		s.Title = *input.Title
	}
	if input.Slug != nil {
		s.Slug = *input.Slug
	}
	if input.Description != nil {
		s.Description = *input.Description
	}
	if input.Building != nil {
		s.Building = *input.Building
	}
	if input.Floor != nil {
		s.Floor = input.Floor
	}
	if input.ClearFloor {
		s.Floor = nil
	}
	if input.FloorDescription != nil {
		s.FloorDescription = *input.FloorDescription
	}
	if input.SortOrder != nil {
		s.SortOrder = *input.SortOrder
	}
	if input.Location != nil {
		s.Location = *input.Location
	}
	if input.PublishedDate != nil {
		s.PublishedDate = *input.PublishedDate
	}
	if input.PanoramaImage != nil {
		s.PanoramaImage = *input.PanoramaImage
	}
	if input.Thumbnail != nil {
		s.Thumbnail = *input.Thumbnail
	}
	if input.Author != nil {
		s.Author = *input.Author
	}
	if input.IsActive != nil {
		s.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		s.IsFeatured = *input.IsFeatured
	}
	if input.InitialPitch != nil {
		s.InitialPitch = *input.InitialPitch
	}
	if input.InitialYaw != nil {
		s.InitialYaw = *input.InitialYaw
	}
	if input.InitialFov != nil {
		s.InitialFov = *input.InitialFov
	}

	if err := service.validateScene(s); err != nil {
		return nil, err
	}

	taken, err := service.repo.SlugExists(context, s.Slug, s.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, validate.RequiredError(FieldSlug, "A scene with this slug already exists")
	}

	if err := service.repo.UpdateScene(context, s); err != nil {
		return nil, err
	}

	service.logger.Info("scene_updated",
		slog.Int64("scene_id", s.ID),
		slog.Bool("is_featured", s.IsFeatured),
	)
	return s, nil
}

// DeleteScene removes a scene and cascades to all hotspots referencing it.
func (service *Service) DeleteScene(context context.Context, id int64) error {
	if err := service.repo.DeleteScene(context, id); err != nil {
		return err
	}

	service.logger.Warn("scene_deleted", slog.Int64("scene_id", id))
	return nil
}

func (service *Service) ListScenes(context context.Context, filter Filter, limit, offset int) ([]*Scene, int, error) {
	return service.repo.ListScenes(context, filter, limit, offset)
}

func (service *Service) GetSceneBySlug(context context.Context, slug string) (*Scene, error) {
	return service.repo.GetSceneBySlug(context, slug)
}

func (service *Service) GetFeaturedScene(context context.Context) (*Scene, error) {
	return service.repo.GetFeaturedScene(context)
}

func (service *Service) FloorsSummary(context context.Context, building string) ([]FloorSummary, error) {
	return service.repo.FloorsSummary(context, building)
}

func (service *Service) BuildingsSummary(context context.Context) ([]BuildingSummary, error) {
	return service.repo.BuildingsSummary(context)
}

// validateScene enforces the catalog's hard rules and logs soft camera
// range violations without rejecting them, matching the admin tooling's
// advisory-only behavior for camera defaults.
func (service *Service) validateScene(s *Scene) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, s.Title).
		MaxLen(FieldTitle, s.Title, 200).
		Slug(FieldSlug, s.Slug).
		MaxLen(FieldSlug, s.Slug, 250).
		OneOf(FieldBuilding, s.Building, Buildings()...).
		Required(FieldPanorama, s.PanoramaImage).
		Required(FieldThumbnail, s.Thumbnail).
		Custom(FieldPublishedDate, s.PublishedDate.IsZero(), "This field is required")

	if s.Floor != nil {
		validator.Range(FieldFloor, *s.Floor, 1, 9)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	softValidator := &validate.Validator{}
	softValidator.
		FloatRange(FieldInitialPitch, s.InitialPitch, -90, 90).
		FloatRange(FieldInitialYaw, s.InitialYaw, -180, 180).
		FloatRange(FieldInitialFov, s.InitialFov, 50, 120)
	if softValidator.HasErrors() {
		service.logger.Warn("scene_camera_defaults_out_of_range",
			slog.String("slug", s.Slug),
			slog.Float64("pitch", s.InitialPitch),
			slog.Float64("yaw", s.InitialYaw),
			slog.Float64("fov", s.InitialFov),
		)
	}

	return nil
}
