package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/draftlab/nbadraft/internal/domain/draft"
)

// Source column names, as exported by data.world.
const (
	colPlayer    = "Player"
	colDraftYear = "Draft_Yr"
	colFirstYear = "first_year"
	colTeam      = "Team"
	colCollege   = "College"
	colYears     = "Yrs"
	colGames     = "Games"
	colAvgMin    = "Minutes.per.Game"
	colAvgPoints = "Points.per.Game"
)

var requiredColumns = []string{
	colPlayer,
	colDraftYear,
	colFirstYear,
	colTeam,
	colCollege,
	colYears,
	colGames,
	colAvgMin,
	colAvgPoints,
}

// Parse reads the header eagerly and returns a lazy record sequence over the
// data rows in file order. A row with the wrong field count or an invariant
// violation stops the sequence with an error naming the 1-based data row.
//
// Coercion policy: numeric cells are trimmed; a blank or unparsable cell
// becomes nil (SQL NULL) rather than aborting the load. Text cells are kept
// verbatim, including the empty college string.
func (c *Client) Parse(raw string) (*draft.Records, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, crerr.Wrap(err, "read csv header")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, crerr.Newf("csv header is missing column %q", name)
		}
	}

	validate := validator.New()
	row := 0
	return draft.NewRecords(func() (draft.Player, bool, error) {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return draft.Player{}, false, nil
		}
		row++
		if err != nil {
			return draft.Player{}, false, crerr.Wrapf(err, "parse row %d", row)
		}

		player := draft.Player{
			Name:       fields[index[colPlayer]],
			Year:       parseNullableInt(fields[index[colDraftYear]]),
			FirstYear:  parseNullableInt(fields[index[colFirstYear]]),
			Team:       fields[index[colTeam]],
			College:    fields[index[colCollege]],
			Active:     parseNullableInt(fields[index[colYears]]),
			Games:      parseNullableInt(fields[index[colGames]]),
			AvgMinutes: parseNullableFloat(fields[index[colAvgMin]]),
			AvgPoints:  parseNullableFloat(fields[index[colAvgPoints]]),
		}
		if err := validate.Struct(player); err != nil {
			return draft.Player{}, false, crerr.Wrapf(err, "invalid record at row %d", row)
		}

		return player, true, nil
	}), nil
}

func parseNullableInt(raw string) *int64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return nil
	}
	return &value
}

func parseNullableFloat(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &value
}
