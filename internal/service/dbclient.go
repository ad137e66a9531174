package service

import (
	"vindtables/backend/internal/datatables"
	"vindtables/backend/internal/model"
)

type DBClient interface {
	Connect(dsn string) error
	Disconnect() error
	ListSchemas() ([]string, error)
	ListTables(schema string) ([]string, error)
	ListColumns(schema, table string) ([]model.Column, error)
	Table(schema, table string) datatables.Store
	DefaultSchema() string
}
