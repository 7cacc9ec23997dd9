package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"job-routing/internal/data"
	"job-routing/internal/database"
	"job-routing/internal/domain/job"
)

func TestEmbeddedJobRepository_LoadsBundledData(t *testing.T) {
	jobs, err := NewEmbeddedJobRepository(data.JobsJSON).LoadJobs(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(jobs) == 0 {
		t.Fatalf("expected bundled jobs")
	}
	if _, err := job.NewCatalog(jobs); err != nil {
		t.Fatalf("bundled data must have unique ids: %v", err)
	}
}

func TestJSONJobRepository_Invalid(t *testing.T) {
	cases := map[string]string{
		"not json":   `{`,
		"not array":  `null`,
		"missing id": `[{"title":"x","description":"y","skills":[]}]`,
	}
	for name, raw := range cases {
		_, err := NewEmbeddedJobRepository([]byte(raw)).LoadJobs(context.Background())
		if !errors.Is(err, ErrInvalidJobsData) {
			t.Fatalf("%s: expected ErrInvalidJobsData, got %v", name, err)
		}
	}
}

func TestFileJobRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	raw := `[{"id":1,"title":"Go Dev","description":"d","skills":null}]`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	jobs, err := NewFileJobRepository(path).LoadJobs(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "1" {
		t.Fatalf("unexpected jobs: %+v", jobs)
	}
	if jobs[0].Skills == nil {
		t.Fatalf("expected non-nil skills")
	}

	_, err = NewFileJobRepository(filepath.Join(t.TempDir(), "missing.json")).LoadJobs(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

type fakeRows struct {
	data [][]any
	i    int
	err  error
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return r.err }
func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}
func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	*(dest[0].(*string)) = row[0].(string)
	*(dest[1].(*string)) = row[1].(string)
	*(dest[2].(*string)) = row[2].(string)
	if row[3] != nil {
		*(dest[3].(*[]string)) = row[3].([]string)
	}
	return nil
}

type fakeDB struct {
	rows     *fakeRows
	queryErr error
	query    *string
}

func (f fakeDB) Close() error { return nil }
func (f fakeDB) Query(_ context.Context, query string, _ ...any) (database.Rows, error) {
	if f.query != nil {
		*f.query = query
	}
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func TestPostgresJobRepository_LoadJobs(t *testing.T) {
	db := fakeDB{rows: &fakeRows{data: [][]any{
		{"10", "SRE", "on-call", []string{"Linux"}},
		{"11", "Writer", "docs", nil},
	}}}

	jobs, err := NewPostgresJobRepository(db).LoadJobs(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].ID != "10" || jobs[0].Skills[0] != "Linux" {
		t.Fatalf("unexpected first job: %+v", jobs[0])
	}
	if jobs[1].Skills == nil {
		t.Fatalf("expected empty skills, got nil")
	}
}

func TestPostgresJobRepository_ReadsJobsInPositionOrder(t *testing.T) {
	var query string
	db := fakeDB{rows: &fakeRows{}, query: &query}

	if _, err := NewPostgresJobRepository(db).LoadJobs(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(query, "FROM jobs") || !strings.Contains(query, "ORDER BY position ASC, id ASC") {
		t.Fatalf("unexpected query: %s", query)
	}
}

func TestPostgresJobRepository_QueryError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewPostgresJobRepository(fakeDB{queryErr: boom}).LoadJobs(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
