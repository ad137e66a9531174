package service

import (
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

func NewPostgresClient() *SQLClient {
	return NewSQLClient(Postgres)
}

// NewPgxClient talks to Postgres through pgx instead of lib/pq.
func NewPgxClient() *SQLClient {
	return NewSQLClient(Pgx)
}
