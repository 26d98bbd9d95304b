package draft

import "context"

// Repository describes player persistence and the fixed analytical queries
// use cases run against the players table.
type Repository interface {
	// Reset drops the players table if it exists.
	Reset(ctx context.Context) error
	// EnsureSchema creates the players table when missing. Safe to call twice.
	EnsureSchema(ctx context.Context) error
	// BulkInsert consumes the whole sequence inside a single transaction.
	// Any failure rolls back every row. Returns the number of rows inserted.
	BulkInsert(ctx context.Context, records *Records) (int, error)

	CountPlayers(ctx context.Context) (int, error)
	// MaxPointsPlayer returns the name with the highest avg_points; ties go
	// to the earliest inserted row.
	MaxPointsPlayer(ctx context.Context) (string, error)
	// CountByCollege counts exact, case-sensitive college matches. A college
	// with no rows yields 0, not an error.
	CountByCollege(ctx context.Context, college string) (int, error)
	// PercentageFirstYear returns 100 * rookies / rows-with-first_year,
	// unrounded.
	PercentageFirstYear(ctx context.Context) (float64, error)
	// AvgActiveForCollege averages active years over matching rows and fails
	// when no row matches.
	AvgActiveForCollege(ctx context.Context, college string) (float64, error)
	// YearWithMostDrafts returns the most frequent draft year; ties go to the
	// smallest year.
	YearWithMostDrafts(ctx context.Context) (int, error)
	// TopVeteransByGamesPerYear ranks players with active > minActive by
	// games/active (real division, descending, name ASC on ties), keeps the
	// top n and returns their names sorted alphabetically.
	TopVeteransByGamesPerYear(ctx context.Context, minActive, topN int) ([]string, error)
}
