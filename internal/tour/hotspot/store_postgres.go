package hotspot

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

// hotspotColumns is the canonical SELECT list. Every read joins the
// destination scene for its slug and title; the join is LEFT because info
// hotspots have no destination.
func hotspotColumns() string {
	h := schema.RefHotspot
	s := schema.RefScene
	return fmt.Sprintf("h.%s, h.%s, h.%s, h.%s, h.%s, h.%s, h.%s, h.%s, h.%s, dest.%s, dest.%s",
		h.ID, h.FromSceneID, h.ToSceneID, h.HotspotType, h.Pitch, h.Yaw,
		h.Text, h.InfoDescription, h.CreatedAt, s.Slug, s.Title)
}

func hotspotFrom() string {
	h := schema.RefHotspot
	s := schema.RefScene
	return fmt.Sprintf("%s h LEFT JOIN %s dest ON dest.%s = h.%s",
		h.Table, s.Table, s.ID, h.ToSceneID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHotspot(row rowScanner, h *Hotspot) error {
	return row.Scan(
		&h.ID, &h.FromSceneID, &h.ToSceneID, &h.Type, &h.Pitch, &h.Yaw,
		&h.Text, &h.InfoDescription, &h.CreatedAt, &h.ToSceneSlug, &h.ToSceneTitle,
	)
}

func (repository *PostgresRepository) ListHotspots(context context.Context, f Filter, limit, offset int) ([]*Hotspot, int, error) {
	h := schema.RefHotspot

	where := " WHERE TRUE"
	args := []any{}

	if f.FromSceneID != nil {
		args = append(args, *f.FromSceneID)
		where += fmt.Sprintf(" AND h.%s = $%d", h.FromSceneID, len(args))
	}
	if f.Type != "" {
		args = append(args, f.Type)
		where += fmt.Sprintf(" AND h.%s = $%d", h.HotspotType, len(args))
	}

	countQuery := fmt.Sprintf("SELECT count(*) FROM %s h%s", h.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_hotspots")
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY h.%s ASC, h.%s ASC, h.%s ASC LIMIT $%s OFFSET $%s",
		hotspotColumns(), hotspotFrom(), where,
		h.FromSceneID, h.HotspotType, h.ID,
		strconv.Itoa(len(args)+1), strconv.Itoa(len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_hotspots")
	}
	defer rows.Close()

	hotspots := make([]*Hotspot, 0)
	for rows.Next() {
		hs := &Hotspot{}
		if err := scanHotspot(rows, hs); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_hotspot")
		}
		hotspots = append(hotspots, hs)
	}

	return hotspots, total, nil
}

func (repository *PostgresRepository) ListOutgoing(context context.Context, sceneID int64) ([]*Hotspot, error) {
	h := schema.RefHotspot
	query := fmt.Sprintf("SELECT %s FROM %s WHERE h.%s = $1 ORDER BY h.%s ASC, h.%s ASC",
		hotspotColumns(), hotspotFrom(), h.FromSceneID, h.HotspotType, h.ID)

	rows, err := repository.db.Query(context, query, sceneID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_outgoing_hotspots")
	}
	defer rows.Close()

	hotspots := make([]*Hotspot, 0)
	for rows.Next() {
		hs := &Hotspot{}
		if err := scanHotspot(rows, hs); err != nil {
			return nil, dberr.Wrap(err, "scan_hotspot")
		}
		hotspots = append(hotspots, hs)
	}

	return hotspots, nil
}

func (repository *PostgresRepository) GetHotspot(context context.Context, id int64) (*Hotspot, error) {
	h := schema.RefHotspot
	query := fmt.Sprintf("SELECT %s FROM %s WHERE h.%s = $1", hotspotColumns(), hotspotFrom(), h.ID)

	hs := &Hotspot{}
	if err := scanHotspot(repository.db.QueryRow(context, query, id), hs); err != nil {
		return nil, dberr.Wrap(err, "get_hotspot")
	}
	return hs, nil
}

func (repository *PostgresRepository) CreateHotspot(context context.Context, h *Hotspot) error {
	t := schema.RefHotspot
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s, %s
	`,
		t.Table,
		t.FromSceneID, t.ToSceneID, t.HotspotType, t.Pitch, t.Yaw, t.Text, t.InfoDescription,
		t.ID, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		h.FromSceneID, h.ToSceneID, h.Type, h.Pitch, h.Yaw, h.Text, h.InfoDescription,
	).Scan(&h.ID, &h.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_hotspot")
	}
	return nil
}

func (repository *PostgresRepository) UpdateHotspot(context context.Context, h *Hotspot) error {
	t := schema.RefHotspot
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table,
		t.FromSceneID, t.ToSceneID, t.HotspotType, t.Pitch, t.Yaw, t.Text, t.InfoDescription,
		t.ID,
		t.ID,
	)

	var id int64
	err := repository.db.QueryRow(context, query,
		h.ID,
		h.FromSceneID, h.ToSceneID, h.Type, h.Pitch, h.Yaw, h.Text, h.InfoDescription,
	).Scan(&id)
	if err != nil {
		return dberr.Wrap(err, "update_hotspot")
	}
	return nil
}

func (repository *PostgresRepository) DeleteHotspot(context context.Context, id int64) error {
	t := schema.RefHotspot
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_hotspot")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
