package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/draftlab/nbadraft/internal/domain/draft"
	qb "github.com/draftlab/nbadraft/internal/platform/querybuilder"
)

// insertChunkRows keeps each multi-row INSERT at 9 bind variables per row
// safely under SQLite's classic 999-variable limit.
const insertChunkRows = 100

const playersTable = "players"

const createPlayersTableSQL = `
CREATE TABLE IF NOT EXISTS players (
	name       TEXT,
	year       INTEGER,
	first_year INTEGER,
	team       TEXT,
	college    TEXT,
	active     INTEGER,
	games      INTEGER,
	avg_min    REAL,
	avg_points REAL
)`

var playerInsertColumns = []string{
	"name",
	"year",
	"first_year",
	"team",
	"college",
	"active",
	"games",
	"avg_min",
	"avg_points",
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+playersTable); err != nil {
		return fmt.Errorf("drop players table: %w", err)
	}
	return nil
}

func (r *PlayerRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createPlayersTableSQL); err != nil {
		return fmt.Errorf("create players table: %w", err)
	}
	return nil
}

// BulkInsert streams the sequence into the table inside one transaction.
// Rows go in insertion order, so rowid doubles as the deterministic
// tie-break order for MaxPointsPlayer.
func (r *PlayerRepository) BulkInsert(ctx context.Context, records *draft.Records) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin bulk insert: %w", err)
	}

	inserted := 0
	chunk := make([]draft.Player, 0, insertChunkRows)
	flush := func() error {
		if len(chunk) == 0 {
			return nil
		}
		builder := qb.InsertInto(playersTable).Columns(playerInsertColumns...)
		for _, p := range chunk {
			builder.Values(p.Name, p.Year, p.FirstYear, p.Team, p.College, p.Active, p.Games, p.AvgMinutes, p.AvgPoints)
		}
		query, args, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build players insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert players chunk: %w", err)
		}
		inserted += len(chunk)
		chunk = chunk[:0]
		return nil
	}

	for records.Next() {
		chunk = append(chunk, records.Player())
		if len(chunk) == insertChunkRows {
			if err := flush(); err != nil {
				_ = tx.Rollback()
				return 0, err
			}
		}
	}
	if err := records.Err(); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("read records: %w", err)
	}
	if err := flush(); err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit bulk insert: %w", err)
	}
	return inserted, nil
}

func (r *PlayerRepository) CountPlayers(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From(playersTable).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count players query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return count, nil
}

// MaxPointsPlayer sorts explicitly instead of relying on SQLite's
// MAX-with-bare-column behavior. Ties on avg_points go to the earliest
// inserted row (smallest rowid).
func (r *PlayerRepository) MaxPointsPlayer(ctx context.Context) (string, error) {
	query, args, err := qb.Select("name").From(playersTable).
		Where(qb.IsNotNull("avg_points")).
		OrderBy("avg_points DESC", "rowid ASC").
		Limit(1).
		ToSQL()
	if err != nil {
		return "", fmt.Errorf("build max points query: %w", err)
	}

	var name string
	if err := r.db.GetContext(ctx, &name, query, args...); err != nil {
		if isNotFound(err) {
			return "", fmt.Errorf("max points player: no rows: %w", err)
		}
		return "", fmt.Errorf("select max points player: %w", err)
	}
	return name, nil
}

func (r *PlayerRepository) CountByCollege(ctx context.Context, college string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From(playersTable).
		Where(qb.Eq("college", college)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count by college query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count players by college: %w", err)
	}
	return count, nil
}

func (r *PlayerRepository) PercentageFirstYear(ctx context.Context) (float64, error) {
	query, args, err := qb.Select("100.0 * SUM(CASE WHEN first_year = 1 THEN 1 ELSE 0 END) / COUNT(first_year)").
		From(playersTable).
		Where(qb.IsNotNull("first_year")).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build first year percentage query: %w", err)
	}

	var pct sql.NullFloat64
	if err := r.db.GetContext(ctx, &pct, query, args...); err != nil {
		return 0, fmt.Errorf("select first year percentage: %w", err)
	}
	if !pct.Valid {
		return 0, fmt.Errorf("first year percentage: no rows with first_year: %w", sql.ErrNoRows)
	}
	return pct.Float64, nil
}

func (r *PlayerRepository) AvgActiveForCollege(ctx context.Context, college string) (float64, error) {
	query, args, err := qb.Select("AVG(active)").From(playersTable).
		Where(qb.Eq("college", college)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build avg active query: %w", err)
	}

	var avg sql.NullFloat64
	if err := r.db.GetContext(ctx, &avg, query, args...); err != nil {
		return 0, fmt.Errorf("select avg active for college: %w", err)
	}
	if !avg.Valid {
		return 0, fmt.Errorf("avg active for college %q: no matching rows: %w", college, sql.ErrNoRows)
	}
	return avg.Float64, nil
}

func (r *PlayerRepository) YearWithMostDrafts(ctx context.Context) (int, error) {
	query, args, err := qb.Select("year").From(playersTable).
		Where(qb.IsNotNull("year")).
		GroupBy("year").
		OrderBy("COUNT(*) DESC", "year ASC").
		Limit(1).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build year with most drafts query: %w", err)
	}

	var year int
	if err := r.db.GetContext(ctx, &year, query, args...); err != nil {
		if isNotFound(err) {
			return 0, fmt.Errorf("year with most drafts: no rows: %w", err)
		}
		return 0, fmt.Errorf("select year with most drafts: %w", err)
	}
	return year, nil
}

// TopVeteransByGamesPerYear ranks by real-division games/active so partial
// seasons are not rounded away, then returns the picked names alphabetically.
func (r *PlayerRepository) TopVeteransByGamesPerYear(ctx context.Context, minActive, topN int) ([]string, error) {
	query, args, err := qb.Select("name").From(playersTable).
		Where(
			qb.Gt("active", minActive),
			qb.IsNotNull("games"),
		).
		OrderBy("CAST(games AS REAL) / active DESC", "name ASC").
		Limit(topN).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build top veterans query: %w", err)
	}

	var names []string
	if err := r.db.SelectContext(ctx, &names, query, args...); err != nil {
		return nil, fmt.Errorf("select top veterans: %w", err)
	}

	sort.Strings(names)
	return names, nil
}

// ListAll returns every stored row in insertion order, mainly for
// round-trip checks and debugging.
func (r *PlayerRepository) ListAll(ctx context.Context) ([]draft.Player, error) {
	query, args, err := qb.Select(playerInsertColumns...).From(playersTable).
		OrderBy("rowid ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]draft.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
