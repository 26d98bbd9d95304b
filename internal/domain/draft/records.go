package draft

// Records is a lazy, one-shot sequence of players in dataset file order.
// It is not restartable: once Next returns false the sequence is exhausted
// and every later call returns false. Callers must check Err after the loop.
type Records struct {
	next    func() (Player, bool, error)
	current Player
	err     error
	count   int
	done    bool
}

// NewRecords wraps a pull function. The function returns the next player,
// whether one was produced, and a terminal error. After the first false or
// error it is never called again.
func NewRecords(next func() (Player, bool, error)) *Records {
	return &Records{next: next}
}

// RecordsFromSlice is a convenience for tests and in-memory fixtures.
func RecordsFromSlice(players []Player) *Records {
	idx := 0
	return NewRecords(func() (Player, bool, error) {
		if idx >= len(players) {
			return Player{}, false, nil
		}
		p := players[idx]
		idx++
		return p, true, nil
	})
}

func (r *Records) Next() bool {
	if r.done || r.err != nil {
		return false
	}

	player, ok, err := r.next()
	if err != nil {
		r.err = err
		r.done = true
		return false
	}
	if !ok {
		r.done = true
		return false
	}

	r.current = player
	r.count++
	return true
}

// Player returns the record produced by the last successful Next call.
func (r *Records) Player() Player {
	return r.current
}

func (r *Records) Err() error {
	return r.err
}

// Count reports how many records have been consumed so far.
func (r *Records) Count() int {
	return r.count
}
