package hotspot

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandaprasetyo/jelajah/internal/platform/apperr"
	"github.com/nandaprasetyo/jelajah/internal/platform/dberr"
	"github.com/nandaprasetyo/jelajah/pkg/pointer"
)

type fakeRepository struct {
	nextID   int64
	hotspots map[int64]*Hotspot
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1, hotspots: map[int64]*Hotspot{}}
}

func (r *fakeRepository) ListHotspots(_ context.Context, f Filter, limit, offset int) ([]*Hotspot, int, error) {
	var out []*Hotspot
	for _, h := range r.hotspots {
		if f.FromSceneID != nil && h.FromSceneID != *f.FromSceneID {
			continue
		}
		if f.Type != "" && h.Type != f.Type {
			continue
		}
		out = append(out, h)
	}
	total := len(out)
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *fakeRepository) ListOutgoing(_ context.Context, sceneID int64) ([]*Hotspot, error) {
	var out []*Hotspot
	for _, h := range r.hotspots {
		if h.FromSceneID == sceneID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeRepository) GetHotspot(_ context.Context, id int64) (*Hotspot, error) {
	h, ok := r.hotspots[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	clone := *h
	return &clone, nil
}

func (r *fakeRepository) CreateHotspot(_ context.Context, h *Hotspot) error {
	h.ID = r.nextID
	r.nextID++
	h.CreatedAt = time.Now()
	clone := *h
	r.hotspots[h.ID] = &clone
	return nil
}

func (r *fakeRepository) UpdateHotspot(_ context.Context, h *Hotspot) error {
	if _, ok := r.hotspots[h.ID]; !ok {
		return dberr.ErrNotFound
	}
	clone := *h
	r.hotspots[h.ID] = &clone
	return nil
}

func (r *fakeRepository) DeleteHotspot(_ context.Context, id int64) error {
	if _, ok := r.hotspots[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.hotspots, id)
	return nil
}

// fakeSceneResolver answers existence from a fixed id set.
type fakeSceneResolver struct {
	ids map[int64]bool
}

func (r *fakeSceneResolver) SceneExists(_ context.Context, id int64) (bool, error) {
	return r.ids[id], nil
}

func newTestService(sceneIDs ...int64) (*Service, *fakeRepository) {
	repo := newFakeRepository()
	resolver := &fakeSceneResolver{ids: map[int64]bool{}}
	for _, id := range sceneIDs {
		resolver.ids[id] = true
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, resolver, logger), repo
}

func TestCreateSceneHotspot(t *testing.T) {
	service, _ := newTestService(1, 2)

	h, err := service.CreateHotspot(context.Background(), CreateInput{
		FromSceneID: 1,
		ToSceneID:   pointer.To(int64(2)),
		Type:        TypeScene,
		Yaw:         45,
		Text:        "Ke Perpustakaan",
	})
	require.NoError(t, err)

	assert.NotZero(t, h.ID)
	require.NotNil(t, h.ToSceneID)
	assert.Equal(t, int64(2), *h.ToSceneID)
}

func TestCreateSceneHotspotRequiresDestination(t *testing.T) {
	service, repo := newTestService(1)

	for _, hotspotType := range []string{TypeScene, TypeFloor} {
		_, err := service.CreateHotspot(context.Background(), CreateInput{
			FromSceneID: 1,
			Type:        hotspotType,
			Text:        "Pindah",
		})
		require.Error(t, err, "type %s without destination must be rejected", hotspotType)

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, "VALIDATION_ERROR", appError.Code)
		require.Len(t, appError.Details, 1)
		assert.Equal(t, FieldToScene, appError.Details[0].Field)
	}

	assert.Empty(t, repo.hotspots, "nothing may be persisted on validation failure")
}

func TestCreateInfoHotspotWithoutDestination(t *testing.T) {
	service, _ := newTestService(1)

	h, err := service.CreateHotspot(context.Background(), CreateInput{
		FromSceneID:     1,
		Type:            TypeInfo,
		Text:            "Loket",
		InfoDescription: "Loket layanan mahasiswa, buka 08.00-16.00.",
	})
	require.NoError(t, err)
	assert.Nil(t, h.ToSceneID)
}

func TestCreateInfoHotspotDropsDestination(t *testing.T) {
	service, _ := newTestService(1, 2)

	h, err := service.CreateHotspot(context.Background(), CreateInput{
		FromSceneID: 1,
		ToSceneID:   pointer.To(int64(2)),
		Type:        TypeInfo,
		Text:        "Papan Informasi",
	})
	require.NoError(t, err)
	assert.Nil(t, h.ToSceneID)
}

func TestCreateHotspotRejectsMissingOrigin(t *testing.T) {
	service, _ := newTestService(2)

	_, err := service.CreateHotspot(context.Background(), CreateInput{
		FromSceneID: 99,
		ToSceneID:   pointer.To(int64(2)),
		Type:        TypeScene,
		Text:        "Ke Aula",
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Len(t, appError.Details, 1)
	assert.Equal(t, FieldFromScene, appError.Details[0].Field)
}

func TestCreateHotspotRejectsMissingDestination(t *testing.T) {
	service, _ := newTestService(1)

	_, err := service.CreateHotspot(context.Background(), CreateInput{
		FromSceneID: 1,
		ToSceneID:   pointer.To(int64(42)),
		Type:        TypeScene,
		Text:        "Ke Mana-mana",
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Len(t, appError.Details, 1)
	assert.Equal(t, FieldToScene, appError.Details[0].Field)
}

func TestCreateHotspotRejectsUnknownType(t *testing.T) {
	service, _ := newTestService(1)

	_, err := service.CreateHotspot(context.Background(), CreateInput{
		FromSceneID: 1,
		Type:        "portal",
		Text:        "Teleport",
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}

func TestCreateHotspotAllowsSelfLoop(t *testing.T) {
	service, _ := newTestService(1)

	h, err := service.CreateHotspot(context.Background(), CreateInput{
		FromSceneID: 1,
		ToSceneID:   pointer.To(int64(1)),
		Type:        TypeScene,
		Text:        "Putar Balik",
	})
	require.NoError(t, err)
	require.NotNil(t, h.ToSceneID)
	assert.Equal(t, h.FromSceneID, *h.ToSceneID)
}

func TestCreateHotspotAcceptsOutOfRangeAngles(t *testing.T) {
	service, _ := newTestService(1, 2)

	h, err := service.CreateHotspot(context.Background(), CreateInput{
		FromSceneID: 1,
		ToSceneID:   pointer.To(int64(2)),
		Type:        TypeScene,
		Pitch:       -120,
		Yaw:         540,
		Text:        "Langit",
	})
	require.NoError(t, err)
	assert.InDelta(t, 540.0, h.Yaw, 0.001)
}

func TestUpdateHotspotChangeType(t *testing.T) {
	service, repo := newTestService(1, 2)
	ctx := context.Background()

	h, err := service.CreateHotspot(ctx, CreateInput{
		FromSceneID: 1,
		ToSceneID:   pointer.To(int64(2)),
		Type:        TypeScene,
		Text:        "Ke Lantai 2",
	})
	require.NoError(t, err)

	updated, err := service.UpdateHotspot(ctx, h.ID, UpdateInput{
		Type: pointer.To(TypeInfo),
	})
	require.NoError(t, err)
	assert.Equal(t, TypeInfo, updated.Type)
	assert.Nil(t, updated.ToSceneID)
	assert.Nil(t, repo.hotspots[h.ID].ToSceneID)
}

func TestUpdateHotspotToSceneTypeNeedsDestination(t *testing.T) {
	service, _ := newTestService(1)
	ctx := context.Background()

	h, err := service.CreateHotspot(ctx, CreateInput{
		FromSceneID: 1,
		Type:        TypeInfo,
		Text:        "Info",
	})
	require.NoError(t, err)

	_, err = service.UpdateHotspot(ctx, h.ID, UpdateInput{Type: pointer.To(TypeScene)})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Len(t, appError.Details, 1)
	assert.Equal(t, FieldToScene, appError.Details[0].Field)
}

func TestDeleteHotspotMissing(t *testing.T) {
	service, _ := newTestService()

	err := service.DeleteHotspot(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
