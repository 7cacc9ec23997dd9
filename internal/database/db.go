package database

import "context"

// DB is the read side of a SQL connection pool. The board never writes.
type DB interface {
	Close() error
	Query(ctx context.Context, query string, args ...any) (Rows, error)
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}
