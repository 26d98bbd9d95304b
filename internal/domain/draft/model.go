package draft

// Player is one normalized row of the historical draft dataset. Numeric
// fields are pointers: nil means the source cell was blank or unusable and
// is persisted as SQL NULL.
type Player struct {
	Name       string `validate:"required"`
	Year       *int64 `validate:"omitempty,gte=1900"`
	FirstYear  *int64 `validate:"omitempty,oneof=0 1"`
	Team       string
	College    string
	Active     *int64 `validate:"omitempty,gte=0"`
	Games      *int64 `validate:"omitempty,gte=0"`
	AvgMinutes *float64
	AvgPoints  *float64
}

// Int64 and Float64 build the pointer fields inline, mostly in fixtures.
func Int64(v int64) *int64 { return &v }

func Float64(v float64) *float64 { return &v }
