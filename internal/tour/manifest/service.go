package manifest

import (
	"context"
	"log/slog"

	"github.com/nandaprasetyo/jelajah/internal/platform/media"
)

type Service struct {
	source Source
	media  *media.Resolver
	logger *slog.Logger
}

func NewService(source Source, resolver *media.Resolver, logger *slog.Logger) *Service {
	return &Service{
		source: source,
		media:  resolver,
		logger: logger,
	}
}

// BuildManifest assembles the tour document from the current catalog state.
func (service *Service) BuildManifest(context context.Context) (Manifest, error) {
	scenes, err := service.source.ActiveScenes(context)
	if err != nil {
		return Manifest{}, err
	}

	outgoing, err := service.source.OutgoingHotspots(context)
	if err != nil {
		return Manifest{}, err
	}

	document := Build(scenes, outgoing, service.media.Resolve)

	service.logger.Debug("manifest_built", slog.Int("scene_count", len(scenes)))
	return document, nil
}
