package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"job-routing/internal/domain/job"
)

var ErrInvalidJobsData = errors.New("invalid jobs data")

// JSONJobRepository reads postings from a JSON array of
// {id, title, description, skills} objects.
type JSONJobRepository struct {
	read func() ([]byte, error)
	name string
}

func NewEmbeddedJobRepository(raw []byte) *JSONJobRepository {
	return &JSONJobRepository{
		read: func() ([]byte, error) { return raw, nil },
		name: "embedded",
	}
}

func NewFileJobRepository(path string) *JSONJobRepository {
	return &JSONJobRepository{
		read: func() ([]byte, error) { return os.ReadFile(path) },
		name: path,
	}
}

func (r *JSONJobRepository) LoadJobs(ctx context.Context) ([]job.Posting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := r.read()
	if err != nil {
		return nil, fmt.Errorf("read jobs %s: %w", r.name, err)
	}

	var out []job.Posting
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJobsData, r.name, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: %s: expected a JSON array", ErrInvalidJobsData, r.name)
	}
	for i := range out {
		if out[i].ID == "" {
			return nil, fmt.Errorf("%w: %s: record %d has no id", ErrInvalidJobsData, r.name, i)
		}
		if out[i].Skills == nil {
			out[i].Skills = []string{}
		}
	}
	return out, nil
}
