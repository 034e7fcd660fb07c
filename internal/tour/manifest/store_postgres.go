package manifest

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nandaprasetyo/jelajah/internal/platform/database/schema"
	"github.com/nandaprasetyo/jelajah/internal/platform/dberr"
	"github.com/nandaprasetyo/jelajah/internal/tour/hotspot"
	"github.com/nandaprasetyo/jelajah/internal/tour/scene"
)

type PostgresSource struct {
	db *pgxpool.Pool
}

func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

func (source *PostgresSource) ActiveScenes(context context.Context) ([]*scene.Scene, error) {
	t := schema.RefScene
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = TRUE
		ORDER BY %s ASC, %s ASC NULLS LAST, %s ASC, %s ASC
	`,
		t.ID, t.Slug, t.Title, t.Author, t.PanoramaImage,
		t.InitialPitch, t.InitialYaw, t.InitialFov,
		t.Table, t.IsActive,
		t.Building, t.Floor, t.SortOrder, t.Title,
	)

	rows, err := source.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "manifest_active_scenes")
	}
	defer rows.Close()

	scenes := make([]*scene.Scene, 0)
	for rows.Next() {
		s := &scene.Scene{IsActive: true}
		err := rows.Scan(&s.ID, &s.Slug, &s.Title, &s.Author, &s.PanoramaImage,
			&s.InitialPitch, &s.InitialYaw, &s.InitialFov)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_manifest_scene")
		}
		scenes = append(scenes, s)
	}

	return scenes, nil
}

func (source *PostgresSource) OutgoingHotspots(context context.Context) (map[int64][]*hotspot.Hotspot, error) {
	h := schema.RefHotspot
	s := schema.RefScene

	// The destination slug is surfaced only for active destinations so the
	// builder can drop edges leading to hidden scenes.
	query := fmt.Sprintf(`
		SELECT h.%s, h.%s, h.%s, h.%s, h.%s, h.%s, h.%s, h.%s,
		       CASE WHEN dest.%s THEN dest.%s END
		FROM %s h
		JOIN %s origin ON origin.%s = h.%s
		LEFT JOIN %s dest ON dest.%s = h.%s
		WHERE origin.%s = TRUE
		ORDER BY h.%s ASC, h.%s ASC, h.%s ASC
	`,
		h.ID, h.FromSceneID, h.ToSceneID, h.HotspotType, h.Pitch, h.Yaw, h.Text, h.InfoDescription,
		s.IsActive, s.Slug,
		h.Table,
		s.Table, s.ID, h.FromSceneID,
		s.Table, s.ID, h.ToSceneID,
		s.IsActive,
		h.FromSceneID, h.HotspotType, h.ID,
	)

	rows, err := source.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "manifest_outgoing_hotspots")
	}
	defer rows.Close()

	outgoing := map[int64][]*hotspot.Hotspot{}
	for rows.Next() {
		hs := &hotspot.Hotspot{}
		err := rows.Scan(&hs.ID, &hs.FromSceneID, &hs.ToSceneID, &hs.Type,
			&hs.Pitch, &hs.Yaw, &hs.Text, &hs.InfoDescription, &hs.ToSceneSlug)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_manifest_hotspot")
		}
		outgoing[hs.FromSceneID] = append(outgoing[hs.FromSceneID], hs)
	}

	return outgoing, nil
}
