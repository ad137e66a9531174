package service

import (
	"strconv"
	"strings"
)

// Dialect captures what differs between the SQL databases we can browse.
type Dialect struct {
	Name          string
	Driver        string // database/sql driver name
	DefaultSchema string
	TextType      string // target type when casting a column to text
	ILike         bool   // supports ILIKE for case-insensitive matching
	Placeholder   func(n int) string
	QuoteIdent    func(ident string) string

	ListSchemasSQL string
	ListTablesSQL  string // args: schema
	ListColumnsSQL string // args: schema, table; yields name, type, is_nullable
	MaxOpenConns   int
}

var Postgres = Dialect{
	Name:          "postgres",
	Driver:        "postgres",
	DefaultSchema: "public",
	TextType:      "TEXT",
	ILike:         true,
	Placeholder:   dollarPlaceholder,
	QuoteIdent:    doubleQuote,

	ListSchemasSQL: `SELECT schema_name FROM information_schema.schemata ORDER BY schema_name`,
	ListTablesSQL:  `SELECT table_name FROM information_schema.tables WHERE table_schema = $1 ORDER BY table_name`,
	ListColumnsSQL: `
		SELECT column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position`,
}

// Pgx is Postgres reached through the pgx database/sql driver.
var Pgx = func() Dialect {
	d := Postgres
	d.Name = "pgx"
	d.Driver = "pgx"
	return d
}()

var MySQL = Dialect{
	Name:        "mysql",
	Driver:      "mysql",
	TextType:    "CHAR",
	Placeholder: questionPlaceholder,
	QuoteIdent:  backtickQuote,

	ListSchemasSQL: `SELECT schema_name FROM information_schema.schemata ORDER BY schema_name`,
	ListTablesSQL: `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = COALESCE(NULLIF(?, ''), DATABASE())
		ORDER BY table_name`,
	ListColumnsSQL: `
		SELECT column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = COALESCE(NULLIF(?, ''), DATABASE()) AND table_name = ?
		ORDER BY ordinal_position`,
}

var SQLite = Dialect{
	Name:          "sqlite",
	Driver:        "sqlite",
	DefaultSchema: "main",
	TextType:      "TEXT",
	Placeholder:   questionPlaceholder,
	QuoteIdent:    doubleQuote,
	// every connection to :memory: opens a fresh database
	MaxOpenConns: 1,

	ListSchemasSQL: `SELECT name FROM pragma_database_list ORDER BY seq`,
	ListTablesSQL: `
		SELECT name FROM pragma_table_list
		WHERE schema = ? AND type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name`,
	ListColumnsSQL: `
		SELECT name, type, CASE WHEN "notnull" = 0 THEN 'YES' ELSE 'NO' END
		FROM pragma_table_info(?2, ?1)
		ORDER BY cid`,
}

// TableRef renders a schema-qualified table name. An empty schema leaves
// the table unqualified.
func (d Dialect) TableRef(schema, table string) string {
	if schema == "" {
		return d.QuoteIdent(table)
	}
	return d.QuoteIdent(schema) + "." + d.QuoteIdent(table)
}

func dollarPlaceholder(n int) string { return "$" + strconv.Itoa(n) }

func questionPlaceholder(int) string { return "?" }

func doubleQuote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func backtickQuote(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
}
