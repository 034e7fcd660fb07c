package scene

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
	"github.com/nandaprasetyo/jelajah/pkg/date"
	"github.com/nandaprasetyo/jelajah/pkg/pointer"
)

// fakeRepository is an in-memory Repository for service tests. It mirrors
// the transactional guarantees of the real store: setting featured demotes
// all other scenes and delete removes the scene in one step.
type fakeRepository struct {
	nextID  int64
	scenes  map[int64]*Scene
	deleted []int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1, scenes: map[int64]*Scene{}}
}

func (r *fakeRepository) ListScenes(_ context.Context, f Filter, limit, offset int) ([]*Scene, int, error) {
	var out []*Scene
	for _, s := range r.scenes {
		if f.ActiveOnly && !s.IsActive {
			continue
		}
		if f.Building != "" && s.Building != f.Building {
			continue
		}
		if f.Floor != nil && (s.Floor == nil || *s.Floor != *f.Floor) {
			continue
		}
		out = append(out, s)
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

func (r *fakeRepository) GetSceneByID(_ context.Context, id int64) (*Scene, error) {
	s, ok := r.scenes[id]
	if !ok {
		return nil, apperr.NotFound("Scene")
	}
	clone := *s
	return &clone, nil
}

func (r *fakeRepository) GetSceneBySlug(_ context.Context, slug string) (*Scene, error) {
	for _, s := range r.scenes {
		if s.Slug == slug && s.IsActive {
			clone := *s
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("Scene")
}

func (r *fakeRepository) GetFeaturedScene(_ context.Context) (*Scene, error) {
	var first *Scene
	for _, s := range r.scenes {
		if !s.IsActive {
			continue
		}
		if s.IsFeatured {
			clone := *s
			return &clone, nil
		}
		if first == nil || s.ID < first.ID {
			first = s
		}
	}
	if first == nil {
		return nil, apperr.NotFound("Scene")
	}
	clone := *first
	return &clone, nil
}

func (r *fakeRepository) SceneExists(_ context.Context, id int64) (bool, error) {
	_, ok := r.scenes[id]
	return ok, nil
}

func (r *fakeRepository) SlugExists(_ context.Context, slug string, excludeID int64) (bool, error) {
	for _, s := range r.scenes {
		if s.Slug == slug && s.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepository) CreateScene(_ context.Context, s *Scene) error {
	if s.IsFeatured {
		for _, other := range r.scenes {
			other.IsFeatured = false
		}
	}
	s.ID = r.nextID
	r.nextID++
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	clone := *s
	r.scenes[s.ID] = &clone
	return nil
}

func (r *fakeRepository) UpdateScene(_ context.Context, s *Scene) error {
	if _, ok := r.scenes[s.ID]; !ok {
		return apperr.NotFound("Scene")
	}
	if s.IsFeatured {
		for id, other := range r.scenes {
			if id != s.ID {
				other.IsFeatured = false
			}
		}
	}
	s.UpdatedAt = time.Now()
	clone := *s
	r.scenes[s.ID] = &clone
	return nil
}

func (r *fakeRepository) DeleteScene(_ context.Context, id int64) error {
	if _, ok := r.scenes[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.scenes, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeRepository) FloorsSummary(_ context.Context, building string) ([]FloorSummary, error) {
	counts := map[int]*FloorSummary{}
	for _, s := range r.scenes {
		if !s.IsActive || s.Floor == nil {
			continue
		}
		if building != "" && s.Building != building {
			continue
		}
		summary, ok := counts[*s.Floor]
		if !ok {
			summary = &FloorSummary{Floor: *s.Floor, FloorDescription: s.FloorDescription}
			counts[*s.Floor] = summary
		}
		summary.SceneCount++
	}
	out := make([]FloorSummary, 0, len(counts))
	for _, summary := range counts {
		out = append(out, *summary)
	}
	return out, nil
}

func (r *fakeRepository) BuildingsSummary(_ context.Context) ([]BuildingSummary, error) {
	counts := map[string]int{}
	for _, s := range r.scenes {
		if s.IsActive {
			counts[s.Building]++
		}
	}
	out := make([]BuildingSummary, 0, len(counts))
	for building, n := range counts {
		out = append(out, BuildingSummary{Building: building, SceneCount: n})
	}
	return out, nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, logger), repo
}

func validCreateInput(title string) CreateInput {
	return CreateInput{
		Title:         title,
		PublishedDate: date.New(2026, time.March, 14),
		PanoramaImage: "panoramas/lobby.jpg",
		Thumbnail:     "thumbnails/lobby.jpg",
		Author:        "Tim Humas",
	}
}

func TestCreateSceneDerivesSlugFromTitle(t *testing.T) {
	service, _ := newTestService()

	s, err := service.CreateScene(context.Background(), validCreateInput("Lobi Gedung Utama"))
	require.NoError(t, err)

	assert.Equal(t, "lobi-gedung-utama", s.Slug)
	assert.Equal(t, BuildingUtama, s.Building)
	assert.True(t, s.IsActive)
	assert.InDelta(t, 90.0, s.InitialFov, 0.001)
}

func TestCreateSceneRejectsDuplicateSlug(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CreateScene(context.Background(), validCreateInput("Ruang Baca"))
	require.NoError(t, err)

	_, err = service.CreateScene(context.Background(), validCreateInput("Ruang Baca"))
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	require.Len(t, appError.Details, 1)
	assert.Equal(t, FieldSlug, appError.Details[0].Field)
}

func TestCreateSceneRejectsUnknownBuilding(t *testing.T) {
	service, _ := newTestService()

	input := validCreateInput("Aula")
	input.Building = "Gedung Rahasia"

	_, err := service.CreateScene(context.Background(), input)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}

func TestCreateSceneRejectsFloorOutOfRange(t *testing.T) {
	service, _ := newTestService()

	for _, floor := range []int{0, 10, -3} {
		input := validCreateInput("Koridor")
		input.Slug = "koridor"
		input.Floor = pointer.To(floor)

		_, err := service.CreateScene(context.Background(), input)
		require.Error(t, err, "floor %d must be rejected", floor)

		appError := apperr.As(err)
		require.NotNil(t, appError)
		require.Len(t, appError.Details, 1)
		assert.Equal(t, FieldFloor, appError.Details[0].Field)
	}
}

func TestCreateSceneAcceptsOutOfRangeCamera(t *testing.T) {
	service, _ := newTestService()

	input := validCreateInput("Atap")
	input.InitialYaw = pointer.To(400.0)
	input.InitialPitch = pointer.To(-120.0)

	s, err := service.CreateScene(context.Background(), input)
	require.NoError(t, err)
	assert.InDelta(t, 400.0, s.InitialYaw, 0.001)
}

func TestFeaturedSceneStaysUnique(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	first := validCreateInput("Lobi")
	first.IsFeatured = true
	a, err := service.CreateScene(ctx, first)
	require.NoError(t, err)

	b, err := service.CreateScene(ctx, validCreateInput("Perpustakaan"))
	require.NoError(t, err)

	_, err = service.UpdateScene(ctx, b.ID, UpdateInput{IsFeatured: pointer.To(true)})
	require.NoError(t, err)

	featured := 0
	for _, s := range repo.scenes {
		if s.IsFeatured {
			featured++
			assert.Equal(t, b.ID, s.ID)
		}
	}
	assert.Equal(t, 1, featured)

	demoted, err := repo.GetSceneByID(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, demoted.IsFeatured)
}

func TestUpdateSceneRejectsSlugCollision(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.CreateScene(ctx, validCreateInput("Lobi"))
	require.NoError(t, err)

	b, err := service.CreateScene(ctx, validCreateInput("Kantin"))
	require.NoError(t, err)

	_, err = service.UpdateScene(ctx, b.ID, UpdateInput{Slug: pointer.To("lobi")})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}

func TestUpdateSceneKeepsOwnSlug(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	s, err := service.CreateScene(ctx, validCreateInput("Lobi"))
	require.NoError(t, err)

	updated, err := service.UpdateScene(ctx, s.ID, UpdateInput{Title: pointer.To("Lobi Utama")})
	require.NoError(t, err)
	assert.Equal(t, "lobi", updated.Slug)
	assert.Equal(t, "Lobi Utama", updated.Title)
}

func TestUpdateSceneClearFloor(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	input := validCreateInput("Taman")
	input.Floor = pointer.To(2)
	s, err := service.CreateScene(ctx, input)
	require.NoError(t, err)

	updated, err := service.UpdateScene(ctx, s.ID, UpdateInput{ClearFloor: true})
	require.NoError(t, err)
	assert.Nil(t, updated.Floor)
}

func TestDeleteSceneMissing(t *testing.T) {
	service, _ := newTestService()

	err := service.DeleteScene(context.Background(), 999)
	require.Error(t, err)
}

func TestGetFeaturedFallsBackToFirstScene(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	a, err := service.CreateScene(ctx, validCreateInput("Lobi"))
	require.NoError(t, err)
	_, err = service.CreateScene(ctx, validCreateInput("Kantin"))
	require.NoError(t, err)

	got, err := service.GetFeaturedScene(ctx)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}
