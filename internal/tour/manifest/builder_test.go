package manifest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandaprasetyo/jelajah/internal/tour/hotspot"
	"github.com/nandaprasetyo/jelajah/internal/tour/scene"
	"github.com/nandaprasetyo/jelajah/pkg/pointer"
)

func resolveNoop(path string) string { return path }

func resolveCDN(path string) string {
	if path == "" {
		return ""
	}
	return "https://cdn.jelajah.id/" + path
}

func testScene(id int64, slug, title string, featured bool) *scene.Scene {
	return &scene.Scene{
		ID:            id,
		Slug:          slug,
		Title:         title,
		Author:        "Tim Humas",
		PanoramaImage: "panoramas/" + slug + ".jpg",
		IsActive:      true,
		IsFeatured:    featured,
		InitialFov:    90,
	}
}

func TestBuildEmptyCatalog(t *testing.T) {
	document := Build(nil, nil, resolveNoop)

	raw, err := json.Marshal(document)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}

func TestBuildTwoSceneTour(t *testing.T) {
	scenes := []*scene.Scene{
		testScene(1, "gedung-utama", "Gedung Utama", true),
		testScene(2, "gedung-mbz-cfs", "Gedung MBZ CFS", false),
	}
	outgoing := map[int64][]*hotspot.Hotspot{
		1: {{
			ID:          10,
			FromSceneID: 1,
			ToSceneID:   pointer.To(int64(2)),
			Type:        hotspot.TypeScene,
			Yaw:         45,
			Text:        "Ke Gedung MBZ CFS",
			ToSceneSlug: pointer.To("gedung-mbz-cfs"),
		}},
		2: {{
			ID:          11,
			FromSceneID: 2,
			ToSceneID:   pointer.To(int64(1)),
			Type:        hotspot.TypeScene,
			Yaw:         -45,
			Text:        "Kembali ke Gedung Utama",
			ToSceneSlug: pointer.To("gedung-utama"),
		}},
	}

	document := Build(scenes, outgoing, resolveCDN)

	require.NotNil(t, document.Default)
	assert.Equal(t, "gedung-utama", document.Default.FirstScene)
	assert.Equal(t, 1000, document.Default.SceneFadeDuration)
	assert.True(t, document.Default.AutoLoad)
	assert.True(t, document.Default.ShowControls)
	assert.True(t, document.Default.Compass)
	assert.Equal(t, 0, document.Default.NorthOffset)

	require.Len(t, document.Scenes, 2)

	utama, ok := document.Scenes["gedung-utama"]
	require.True(t, ok)
	assert.Equal(t, "https://cdn.jelajah.id/panoramas/gedung-utama.jpg", utama.Panorama)
	require.Len(t, utama.HotSpots, 1)

	edge := utama.HotSpots[0]
	assert.Equal(t, "scene", edge.Type)
	assert.Equal(t, "gedung-mbz-cfs", edge.SceneID)
	assert.InDelta(t, 45.0, edge.Yaw, 0.001)
	assert.Equal(t, "Ke Gedung MBZ CFS", edge.Text)

	mbz, ok := document.Scenes["gedung-mbz-cfs"]
	require.True(t, ok)
	require.Len(t, mbz.HotSpots, 1)
	assert.Equal(t, "gedung-utama", mbz.HotSpots[0].SceneID)
	assert.InDelta(t, -45.0, mbz.HotSpots[0].Yaw, 0.001)
}

func TestBuildEntryFallsBackToFirstScene(t *testing.T) {
	scenes := []*scene.Scene{
		testScene(1, "lobi", "Lobi", false),
		testScene(2, "aula", "Aula", false),
	}

	document := Build(scenes, nil, resolveNoop)

	require.NotNil(t, document.Default)
	assert.Equal(t, "lobi", document.Default.FirstScene)
}

func TestBuildFeaturedWinsOverOrder(t *testing.T) {
	scenes := []*scene.Scene{
		testScene(1, "lobi", "Lobi", false),
		testScene(2, "aula", "Aula", true),
	}

	document := Build(scenes, nil, resolveNoop)

	require.NotNil(t, document.Default)
	assert.Equal(t, "aula", document.Default.FirstScene)
}

func TestBuildFloorHotspotRendersAsScene(t *testing.T) {
	scenes := []*scene.Scene{
		testScene(1, "lantai-1", "Lantai 1", false),
		testScene(2, "lantai-2", "Lantai 2", false),
	}
	outgoing := map[int64][]*hotspot.Hotspot{
		1: {{
			ID:          20,
			FromSceneID: 1,
			ToSceneID:   pointer.To(int64(2)),
			Type:        hotspot.TypeFloor,
			Text:        "Naik ke Lantai 2",
			ToSceneSlug: pointer.To("lantai-2"),
		}},
	}

	document := Build(scenes, outgoing, resolveNoop)

	spots := document.Scenes["lantai-1"].HotSpots
	require.Len(t, spots, 1)
	assert.Equal(t, "scene", spots[0].Type)
	assert.Equal(t, "floor", spots[0].HotspotType)
	assert.Equal(t, "lantai-2", spots[0].SceneID)
}

func TestBuildInfoHotspotPrefersDescription(t *testing.T) {
	scenes := []*scene.Scene{testScene(1, "loket", "Loket", false)}
	outgoing := map[int64][]*hotspot.Hotspot{
		1: {
			{
				ID:              30,
				FromSceneID:     1,
				Type:            hotspot.TypeInfo,
				Text:            "Loket",
				InfoDescription: "Loket layanan mahasiswa, buka 08.00-16.00.",
			},
			{
				ID:          31,
				FromSceneID: 1,
				Type:        hotspot.TypeInfo,
				Text:        "Mading",
			},
		},
	}

	document := Build(scenes, outgoing, resolveNoop)

	spots := document.Scenes["loket"].HotSpots
	require.Len(t, spots, 2)
	assert.Equal(t, "Loket layanan mahasiswa, buka 08.00-16.00.", spots[0].Text)
	assert.Empty(t, spots[0].SceneID)
	assert.Equal(t, "Mading", spots[1].Text)
}

func TestBuildDropsEdgesToHiddenScenes(t *testing.T) {
	scenes := []*scene.Scene{testScene(1, "lobi", "Lobi", false)}
	outgoing := map[int64][]*hotspot.Hotspot{
		1: {{
			ID:          40,
			FromSceneID: 1,
			ToSceneID:   pointer.To(int64(9)),
			Type:        hotspot.TypeScene,
			Text:        "Ke Ruang Tertutup",
			ToSceneSlug: nil,
		}},
	}

	document := Build(scenes, outgoing, resolveNoop)

	assert.Empty(t, document.Scenes["lobi"].HotSpots)
}

func TestBuildIsDeterministic(t *testing.T) {
	scenes := []*scene.Scene{
		testScene(1, "gedung-utama", "Gedung Utama", true),
		testScene(2, "gedung-mbz-cfs", "Gedung MBZ CFS", false),
		testScene(3, "taman", "Taman", false),
	}
	outgoing := map[int64][]*hotspot.Hotspot{
		1: {{
			ID: 1, FromSceneID: 1, ToSceneID: pointer.To(int64(2)),
			Type: hotspot.TypeScene, Text: "A", ToSceneSlug: pointer.To("gedung-mbz-cfs"),
		}},
		2: {{
			ID: 2, FromSceneID: 2, ToSceneID: pointer.To(int64(3)),
			Type: hotspot.TypeScene, Text: "B", ToSceneSlug: pointer.To("taman"),
		}},
	}

	first, err := json.Marshal(Build(scenes, outgoing, resolveCDN))
	require.NoError(t, err)
	second, err := json.Marshal(Build(scenes, outgoing, resolveCDN))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}
