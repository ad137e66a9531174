package service

import (
	_ "modernc.org/sqlite"
)

func NewSQLiteClient() *SQLClient {
	return NewSQLClient(SQLite)
}
