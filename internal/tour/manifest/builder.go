package manifest

import (
	"github.com/nandaprasetyo/jelajah/internal/tour/hotspot"
	"github.com/nandaprasetyo/jelajah/internal/tour/scene"
)

// Build assembles the manifest from active scenes and their outgoing
// hotspots. It is a pure function of its inputs: the same catalog state
// always yields the same document.
//
// scenes must already be in catalog order; the first featured scene (or
// the first scene when none is featured) becomes the entry point. resolve
// turns stored media paths into public URLs.
func Build(scenes []*scene.Scene, outgoing map[int64][]*hotspot.Hotspot, resolve func(string) string) Manifest {
	if len(scenes) == 0 {
		return Manifest{}
	}

	entry := scenes[0]
	for _, s := range scenes {
		if s.IsFeatured {
			entry = s
			break
		}
	}

	nodes := make(map[string]SceneNode, len(scenes))
	for _, s := range scenes {
		nodes[s.Slug] = SceneNode{
			Title:    s.Title,
			Author:   s.Author,
			Panorama: resolve(s.PanoramaImage),
			Pitch:    s.InitialPitch,
			Yaw:      s.InitialYaw,
			Hfov:     s.InitialFov,
			HotSpots: buildHotSpots(outgoing[s.ID]),
		}
	}

	return Manifest{
		Default: &Defaults{
			FirstScene:        entry.Slug,
			SceneFadeDuration: 1000,
			AutoLoad:          true,
			ShowControls:      true,
			Compass:           true,
			NorthOffset:       0,
		},
		Scenes: nodes,
	}
}

func buildHotSpots(hotspots []*hotspot.Hotspot) []HotSpotNode {
	nodes := make([]HotSpotNode, 0, len(hotspots))
	for _, h := range hotspots {
		node := HotSpotNode{
			Pitch:       h.Pitch,
			Yaw:         h.Yaw,
			Type:        h.Type,
			HotspotType: h.Type,
			Text:        h.Text,
		}

		switch h.Type {
		case hotspot.TypeScene, hotspot.TypeFloor:
			// The destination may be inactive or missing; such edges are
			// dropped rather than rendered as dead links.
			if h.ToSceneSlug == nil {
				continue
			}
			node.Type = hotspot.TypeScene
			node.SceneID = *h.ToSceneSlug
		case hotspot.TypeInfo:
			if h.InfoDescription != "" {
				node.Text = h.InfoDescription
			}
		}

		nodes = append(nodes, node)
	}
	return nodes
}
