package scene

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nandaprasetyo/jelajah/internal/platform/database/schema"
	"github.com/nandaprasetyo/jelajah/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// sceneColumns is the canonical SELECT column list, kept in one place so
// every read path scans identically.
func sceneColumns() string {
	t := schema.RefScene
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Slug, t.Title, t.Description, t.Building, t.Floor, t.FloorDescription,
		t.SortOrder, t.Location, t.PublishedDate, t.PanoramaImage, t.Thumbnail, t.Author,
		t.IsActive, t.IsFeatured, t.InitialPitch, t.InitialYaw, t.InitialFov,
		t.CreatedAt, t.UpdatedAt)
}

// catalogOrder is the default catalog ordering. Scenes without a floor
// (outdoor areas) sort after all numbered floors, consistent with the
// floors overview excluding them.
func catalogOrder() string {
	t := schema.RefScene
	return fmt.Sprintf("%s ASC, %s ASC NULLS LAST, %s ASC, %s ASC",
		t.Building, t.Floor, t.SortOrder, t.Title)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScene(row rowScanner, s *Scene) error {
	return row.Scan(
		&s.ID, &s.Slug, &s.Title, &s.Description, &s.Building, &s.Floor, &s.FloorDescription,
		&s.SortOrder, &s.Location, &s.PublishedDate.Time, &s.PanoramaImage, &s.Thumbnail, &s.Author,
		&s.IsActive, &s.IsFeatured, &s.InitialPitch, &s.InitialYaw, &s.InitialFov,
		&s.CreatedAt, &s.UpdatedAt,
	)
}

func (repository *PostgresRepository) ListScenes(context context.Context, f Filter, limit, offset int) ([]*Scene, int, error) {
	t := schema.RefScene

	where := " WHERE TRUE"
	args := []any{}

	if f.ActiveOnly {
		where += fmt.Sprintf(" AND %s = TRUE", t.IsActive)
	}
	if f.Building != "" {
		args = append(args, f.Building)
		where += fmt.Sprintf(" AND %s = $%d", t.Building, len(args))
	}
	if f.Floor != nil {
		args = append(args, *f.Floor)
		where += fmt.Sprintf(" AND %s = $%d", t.Floor, len(args))
	}

	countQuery := fmt.Sprintf("SELECT count(*) FROM %s%s", t.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_scenes")
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT $%s OFFSET $%s",
		sceneColumns(), t.Table, where, catalogOrder(),
		itos(len(args)+1), itos(len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_scenes")
	}
	defer rows.Close()

	scenes := make([]*Scene, 0)
	for rows.Next() {
		s := &Scene{}
		if err := scanScene(rows, s); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_scene")
		}
		scenes = append(scenes, s)
	}

	return scenes, total, nil
}

func (repository *PostgresRepository) GetSceneByID(context context.Context, id int64) (*Scene, error) {
	t := schema.RefScene
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", sceneColumns(), t.Table, t.ID)

	s := &Scene{}
	if err := scanScene(repository.db.QueryRow(context, query, id), s); err != nil {
		return nil, dberr.Wrap(err, "get_scene_by_id")
	}
	return s, nil
}

func (repository *PostgresRepository) GetSceneBySlug(context context.Context, slug string) (*Scene, error) {
	t := schema.RefScene
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 AND %s = TRUE",
		sceneColumns(), t.Table, t.Slug, t.IsActive)

	s := &Scene{}
	if err := scanScene(repository.db.QueryRow(context, query, slug), s); err != nil {
		return nil, dberr.Wrap(err, "get_scene_by_slug")
	}
	return s, nil
}

func (repository *PostgresRepository) GetFeaturedScene(context context.Context) (*Scene, error) {
	t := schema.RefScene

	// The featured scene wins; otherwise the first scene in catalog order.
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = TRUE ORDER BY %s DESC, %s LIMIT 1",
		sceneColumns(), t.Table, t.IsActive, t.IsFeatured, catalogOrder())

	s := &Scene{}
	if err := scanScene(repository.db.QueryRow(context, query), s); err != nil {
		return nil, dberr.Wrap(err, "get_featured_scene")
	}
	return s, nil
}

func (repository *PostgresRepository) SceneExists(context context.Context, id int64) (bool, error) {
	t := schema.RefScene
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", t.Table, t.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "scene_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) SlugExists(context context.Context, slug string, excludeID int64) (bool, error) {
	t := schema.RefScene
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s <> $2)",
		t.Table, t.Slug, t.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, slug, excludeID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "slug_exists")
	}
	return exists, nil
}

// CreateScene inserts a new scene. A scene born featured clears every
// other featured flag inside the same transaction, so the single-winner
// invariant holds from the first commit.
func (repository *PostgresRepository) CreateScene(context context.Context, s *Scene) error {
	t := schema.RefScene

	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_scene")
	}
	defer transaction.Rollback(context)

	if s.IsFeatured {
		clearQuery := fmt.Sprintf("UPDATE %s SET %s = FALSE WHERE %s = TRUE",
			t.Table, t.IsFeatured, t.IsFeatured)
		if _, err := transaction.Exec(context, clearQuery); err != nil {
			return dberr.Wrap(err, "clear_featured_flags")
		}
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING %s, %s, %s
	`,
		t.Table,
		t.Slug, t.Title, t.Description, t.Building, t.Floor, t.FloorDescription,
		t.SortOrder, t.Location, t.PublishedDate, t.PanoramaImage, t.Thumbnail, t.Author,
		t.IsActive, t.IsFeatured, t.InitialPitch, t.InitialYaw, t.InitialFov,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err = transaction.QueryRow(context, query,
		s.Slug, s.Title, s.Description, s.Building, s.Floor, s.FloorDescription,
		s.SortOrder, s.Location, s.PublishedDate.Time, s.PanoramaImage, s.Thumbnail, s.Author,
		s.IsActive, s.IsFeatured, s.InitialPitch, s.InitialYaw, s.InitialFov,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_scene")
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_create_scene")
	}
	return nil
}

// UpdateScene persists the full merged entity.
//
// When the scene is being marked featured, all other featured flags are
// cleared inside the same transaction. Two concurrent "set featured" calls
// serialize on the row locks, so at most one scene stays featured.
func (repository *PostgresRepository) UpdateScene(context context.Context, s *Scene) error {
	t := schema.RefScene

	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_scene")
	}
	defer transaction.Rollback(context)

	if s.IsFeatured {
		clearQuery := fmt.Sprintf("UPDATE %s SET %s = FALSE WHERE %s = TRUE AND %s <> $1",
			t.Table, t.IsFeatured, t.IsFeatured, t.ID)
		if _, err := transaction.Exec(context, clearQuery, s.ID); err != nil {
			return dberr.Wrap(err, "clear_featured_flags")
		}
	}

	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
			%s = $9, %s = $10, %s = $11, %s = $12, %s = $13, %s = $14, %s = $15,
			%s = $16, %s = $17, %s = $18, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table,
		t.Slug, t.Title, t.Description, t.Building, t.Floor, t.FloorDescription, t.SortOrder,
		t.Location, t.PublishedDate, t.PanoramaImage, t.Thumbnail, t.Author, t.IsActive, t.IsFeatured,
		t.InitialPitch, t.InitialYaw, t.InitialFov, t.UpdatedAt,
		t.ID,
		t.UpdatedAt,
	)

	err = transaction.QueryRow(context, query,
		s.ID,
		s.Slug, s.Title, s.Description, s.Building, s.Floor, s.FloorDescription, s.SortOrder,
		s.Location, s.PublishedDate.Time, s.PanoramaImage, s.Thumbnail, s.Author, s.IsActive, s.IsFeatured,
		s.InitialPitch, s.InitialYaw, s.InitialFov,
	).Scan(&s.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_scene")
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_update_scene")
	}
	return nil
}

// DeleteScene removes the scene and every hotspot referencing it from
// either end, as one transaction. The dependent edges go first so the
// graph never holds a dangling reference, even mid-delete.
func (repository *PostgresRepository) DeleteScene(context context.Context, id int64) error {
	sceneT := schema.RefScene
	hotspotT := schema.RefHotspot

	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_scene")
	}
	defer transaction.Rollback(context)

	cascadeQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 OR %s = $1",
		hotspotT.Table, hotspotT.FromSceneID, hotspotT.ToSceneID)
	if _, err := transaction.Exec(context, cascadeQuery, id); err != nil {
		return dberr.Wrap(err, "cascade_delete_hotspots")
	}

	deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", sceneT.Table, sceneT.ID)
	cmd, err := transaction.Exec(context, deleteQuery, id)
	if err != nil {
		return dberr.Wrap(err, "delete_scene")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_delete_scene")
	}
	return nil
}

func (repository *PostgresRepository) FloorsSummary(context context.Context, building string) ([]FloorSummary, error) {
	t := schema.RefScene

	// Outdoor scenes (NULL floor) are deliberately excluded: they belong to
	// no floor group, not to a synthetic one.
	query := fmt.Sprintf(`
		SELECT %s, %s, count(*)
		FROM %s
		WHERE %s = TRUE AND %s IS NOT NULL
	`, t.Floor, t.FloorDescription, t.Table, t.IsActive, t.Floor)

	args := []any{}
	if building != "" {
		args = append(args, building)
		query += fmt.Sprintf(" AND %s = $1", t.Building)
	}
	query += fmt.Sprintf(" GROUP BY %s, %s ORDER BY %s ASC", t.Floor, t.FloorDescription, t.Floor)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "floors_summary")
	}
	defer rows.Close()

	summaries := make([]FloorSummary, 0)
	for rows.Next() {
		var fs FloorSummary
		if err := rows.Scan(&fs.Floor, &fs.FloorDescription, &fs.SceneCount); err != nil {
			return nil, dberr.Wrap(err, "scan_floor_summary")
		}
		summaries = append(summaries, fs)
	}

	return summaries, nil
}

func (repository *PostgresRepository) BuildingsSummary(context context.Context) ([]BuildingSummary, error) {
	t := schema.RefScene
	query := fmt.Sprintf(`
		SELECT %s, count(*)
		FROM %s
		WHERE %s = TRUE
		GROUP BY %s
		ORDER BY %s ASC
	`, t.Building, t.Table, t.IsActive, t.Building, t.Building)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "buildings_summary")
	}
	defer rows.Close()

	summaries := make([]BuildingSummary, 0)
	for rows.Next() {
		var bs BuildingSummary
		if err := rows.Scan(&bs.Building, &bs.SceneCount); err != nil {
			return nil, dberr.Wrap(err, "scan_building_summary")
		}
		summaries = append(summaries, bs)
	}

	return summaries, nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
