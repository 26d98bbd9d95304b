package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/draftlab/nbadraft/internal/domain/draft"
)

type stubSource struct {
	raw      string
	fetchErr error
	parseErr error
	records  *draft.Records
}

func (s *stubSource) FetchRaw(context.Context) (string, error) {
	if s.fetchErr != nil {
		return "", s.fetchErr
	}
	return s.raw, nil
}

func (s *stubSource) Parse(string) (*draft.Records, error) {
	if s.parseErr != nil {
		return nil, s.parseErr
	}
	return s.records, nil
}

type stubRepository struct {
	draft.Repository

	resetCalls  int
	schemaCalls int
	inserted    int
	insertErr   error
	steps       []string
}

func (s *stubRepository) Reset(context.Context) error {
	s.resetCalls++
	s.steps = append(s.steps, "reset")
	return nil
}

func (s *stubRepository) EnsureSchema(context.Context) error {
	s.schemaCalls++
	s.steps = append(s.steps, "schema")
	return nil
}

func (s *stubRepository) BulkInsert(_ context.Context, records *draft.Records) (int, error) {
	s.steps = append(s.steps, "insert")
	for records.Next() {
		s.inserted++
	}
	if err := records.Err(); err != nil {
		return 0, err
	}
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	return s.inserted, nil
}

func TestIngest_RunsStagesInOrder(t *testing.T) {
	t.Parallel()

	source := &stubSource{
		raw: "header\nrow\n",
		records: draft.RecordsFromSlice([]draft.Player{
			{Name: "Michael Jordan"},
			{Name: "John Stockton"},
		}),
	}
	repo := &stubRepository{}

	service := NewIngestService(source, repo, nil)
	inserted, err := service.Ingest(context.Background())
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("expected 2 rows inserted, got %d", inserted)
	}
	if got := strings.Join(repo.steps, ","); got != "reset,schema,insert" {
		t.Fatalf("unexpected stage order: %s", got)
	}
}

func TestIngest_FetchFailureIsFetchStage(t *testing.T) {
	t.Parallel()

	source := &stubSource{fetchErr: errors.New("connection refused")}
	service := NewIngestService(source, &stubRepository{}, nil)

	_, err := service.Ingest(context.Background())
	if !errors.Is(err, ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
}

func TestIngest_HeaderFailureIsParseStage(t *testing.T) {
	t.Parallel()

	source := &stubSource{raw: "x", parseErr: errors.New("csv header is missing column")}
	service := NewIngestService(source, &stubRepository{}, nil)

	_, err := service.Ingest(context.Background())
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestIngest_LazyRowFailureIsParseStage(t *testing.T) {
	t.Parallel()

	rowErr := errors.New("parse row 7: wrong number of fields")
	calls := 0
	source := &stubSource{
		raw: "x",
		records: draft.NewRecords(func() (draft.Player, bool, error) {
			calls++
			if calls == 1 {
				return draft.Player{Name: "ok"}, true, nil
			}
			return draft.Player{}, false, rowErr
		}),
	}
	service := NewIngestService(source, &stubRepository{}, nil)

	_, err := service.Ingest(context.Background())
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse for lazy row failure, got %v", err)
	}
	if !strings.Contains(err.Error(), "row 7") {
		t.Fatalf("expected row index in error, got %v", err)
	}
}

func TestIngest_InsertFailureIsInsertStage(t *testing.T) {
	t.Parallel()

	source := &stubSource{
		raw:     "x",
		records: draft.RecordsFromSlice([]draft.Player{{Name: "Michael Jordan"}}),
	}
	repo := &stubRepository{insertErr: errors.New("disk full")}
	service := NewIngestService(source, repo, nil)

	_, err := service.Ingest(context.Background())
	if !errors.Is(err, ErrInsert) {
		t.Fatalf("expected ErrInsert, got %v", err)
	}
}
