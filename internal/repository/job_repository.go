package repository

import (
	"context"

	"job-routing/internal/database"
	"job-routing/internal/domain/job"
)

// JobSource yields the full ordered record set. It is called once, at start-up.
type JobSource interface {
	LoadJobs(ctx context.Context) ([]job.Posting, error)
}

// PostgresJobRepository reads the board from an existing table:
//
//	CREATE TABLE jobs (
//	    id          text PRIMARY KEY,
//	    position    integer NOT NULL,
//	    title       text,
//	    description text,
//	    skills      text[]
//	);
//
// position fixes display order; ties fall back to id.
type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) LoadJobs(ctx context.Context) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id::text, COALESCE(title, ''), COALESCE(description, ''), COALESCE(skills, '{}')
		 FROM jobs
		 ORDER BY position ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		var (
			id string
			p  job.Posting
		)
		if err := rows.Scan(&id, &p.Title, &p.Description, &p.Skills); err != nil {
			return nil, err
		}
		p.ID = job.ID(id)
		if p.Skills == nil {
			p.Skills = []string{}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
