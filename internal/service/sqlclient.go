package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"vindtables/backend/internal/datatables"
	"vindtables/backend/internal/model"
)

// SQLClient is a DBClient over database/sql. The dialect decides the driver,
// the catalog queries and how predicates are rendered.
type SQLClient struct {
	db      *sql.DB
	dialect Dialect
}

func NewSQLClient(d Dialect) *SQLClient {
	return &SQLClient{dialect: d}
}

// NewSQLClientWithDB wraps an already opened database.
func NewSQLClientWithDB(db *sql.DB, d Dialect) *SQLClient {
	return &SQLClient{db: db, dialect: d}
}

func (c *SQLClient) DefaultSchema() string { return c.dialect.DefaultSchema }

func (c *SQLClient) Connect(dsn string) error {
	db, err := sql.Open(c.dialect.Driver, dsn)
	if err != nil {
		return err
	}
	if c.dialect.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.dialect.MaxOpenConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	c.db = db
	return nil
}

func (c *SQLClient) Disconnect() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func (c *SQLClient) ListSchemas() ([]string, error) {
	return c.queryStrings(c.dialect.ListSchemasSQL)
}

func (c *SQLClient) ListTables(schema string) ([]string, error) {
	if schema == "" {
		schema = c.dialect.DefaultSchema
	}
	return c.queryStrings(c.dialect.ListTablesSQL, schema)
}

func (c *SQLClient) ListColumns(schema, table string) ([]model.Column, error) {
	if c.db == nil {
		return nil, errNotConnected
	}
	if schema == "" {
		schema = c.dialect.DefaultSchema
	}

	rows, err := c.db.Query(c.dialect.ListColumnsSQL, schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []model.Column
	for rows.Next() {
		var col model.Column
		var nullable string
		if err := rows.Scan(&col.Name, &col.Type, &nullable); err != nil {
			return nil, err
		}
		col.Nullable = nullable == "YES"
		columns = append(columns, col)
	}

	return columns, rows.Err()
}

// Table returns the DataTables store of one table.
func (c *SQLClient) Table(schema, table string) datatables.Store {
	if schema == "" {
		schema = c.dialect.DefaultSchema
	}
	return &tableStore{client: c, ref: c.dialect.TableRef(schema, table)}
}

var errNotConnected = errors.New("not connected to any database")

func (c *SQLClient) queryStrings(query string, args ...any) ([]string, error) {
	if c.db == nil {
		return nil, errNotConnected
	}
	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

type tableStore struct {
	client *SQLClient
	ref    string
}

func (s *tableStore) FetchPage(ctx context.Context, pred datatables.Predicate, page datatables.PageRequest) (datatables.Page, error) {
	db := s.client.db
	if db == nil {
		return datatables.Page{}, errNotConnected
	}

	rowsQ, countQ, err := selectPage(s.client.dialect, s.ref, pred, page)
	if err != nil {
		return datatables.Page{}, err
	}

	rows, err := queryRows(ctx, db, rowsQ.String(), rowsQ.args...)
	if err != nil {
		return datatables.Page{}, fmt.Errorf("fetch %s: %w", s.ref, err)
	}

	// A short page tells us the total without a second query.
	if !page.Paged() || (len(rows) > 0 && len(rows) < page.Size) || (page.Offset() == 0 && len(rows) < page.Size) {
		return datatables.Page{Rows: rows, Total: int64(page.Offset() + len(rows))}, nil
	}

	var total int64
	if err := db.QueryRowContext(ctx, countQ.String(), countQ.args...).Scan(&total); err != nil {
		return datatables.Page{}, fmt.Errorf("count filtered %s: %w", s.ref, err)
	}
	return datatables.Page{Rows: rows, Total: total}, nil
}

func (s *tableStore) CountAll(ctx context.Context) (int64, error) {
	db := s.client.db
	if db == nil {
		return 0, errNotConnected
	}
	var total int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+s.ref).Scan(&total); err != nil {
		return 0, fmt.Errorf("count %s: %w", s.ref, err)
	}
	return total, nil
}

func queryRows(ctx context.Context, db *sql.DB, query string, args ...any) ([]datatables.Row, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	results := []datatables.Row{}
	for rows.Next() {
		columns := make([]any, len(cols))
		columnPointers := make([]any, len(cols))

		for i := range columns {
			columnPointers[i] = &columns[i]
		}

		if err := rows.Scan(columnPointers...); err != nil {
			return nil, err
		}

		rowMap := datatables.Row{}
		for i, colName := range cols {
			val := *(columnPointers[i].(*any))
			// drivers hand text back as []byte
			if b, ok := val.([]byte); ok {
				val = string(b)
			}
			rowMap[colName] = val
		}

		results = append(results, rowMap)
	}

	return results, rows.Err()
}
