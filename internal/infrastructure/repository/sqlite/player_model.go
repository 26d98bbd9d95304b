package sqlite

import (
	"database/sql"

	"github.com/draftlab/nbadraft/internal/domain/draft"
)

type playerTableModel struct {
	Name       string          `db:"name"`
	Year       sql.NullInt64   `db:"year"`
	FirstYear  sql.NullInt64   `db:"first_year"`
	Team       string          `db:"team"`
	College    string          `db:"college"`
	Active     sql.NullInt64   `db:"active"`
	Games      sql.NullInt64   `db:"games"`
	AvgMinutes sql.NullFloat64 `db:"avg_min"`
	AvgPoints  sql.NullFloat64 `db:"avg_points"`
}

func (m playerTableModel) toDomain() draft.Player {
	return draft.Player{
		Name:       m.Name,
		Year:       nullInt64ToPtr(m.Year),
		FirstYear:  nullInt64ToPtr(m.FirstYear),
		Team:       m.Team,
		College:    m.College,
		Active:     nullInt64ToPtr(m.Active),
		Games:      nullInt64ToPtr(m.Games),
		AvgMinutes: nullFloat64ToPtr(m.AvgMinutes),
		AvgPoints:  nullFloat64ToPtr(m.AvgPoints),
	}
}

func nullInt64ToPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	value := v.Int64
	return &value
}

func nullFloat64ToPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	value := v.Float64
	return &value
}
