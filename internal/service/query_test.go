package service

import (
	"testing"

	"vindtables/backend/internal/datatables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	idAttr   = datatables.Attribute{Name: "id", Type: "integer"}
	nameAttr = datatables.Attribute{Name: "name", Type: "text", Text: true}
)

func searchPredicate() datatables.Predicate {
	return datatables.AllOf(
		datatables.AnyOf(
			datatables.ContainsText(idAttr, "An"),
			datatables.ContainsText(nameAttr, "An"),
		),
		datatables.ContainsText(nameAttr, "x"),
	)
}

func TestSelectPage(t *testing.T) {
	page := datatables.PageRequest{
		Page: 2,
		Size: 10,
		Sort: datatables.Sort{
			{Attribute: nameAttr, Direction: datatables.Desc},
			{Attribute: idAttr, Direction: datatables.Asc},
		},
	}

	tests := []struct {
		name      string
		dialect   Dialect
		table     string
		wantRows  string
		wantCount string
		wantArgs  []any
	}{
		{
			name:    "postgres",
			dialect: Postgres,
			table:   Postgres.TableRef("public", "users"),
			wantRows: `SELECT * FROM "public"."users" WHERE ((CAST("id" AS TEXT) ILIKE $1 ESCAPE '~' OR "name" ILIKE $2 ESCAPE '~') AND "name" ILIKE $3 ESCAPE '~')` +
				` ORDER BY "name" DESC, "id" ASC LIMIT $4 OFFSET $5`,
			wantCount: `SELECT COUNT(*) FROM "public"."users" WHERE ((CAST("id" AS TEXT) ILIKE $1 ESCAPE '~' OR "name" ILIKE $2 ESCAPE '~') AND "name" ILIKE $3 ESCAPE '~')`,
			wantArgs:  []any{"%An%", "%An%", "%x%"},
		},
		{
			name:    "mysql",
			dialect: MySQL,
			table:   MySQL.TableRef("", "users"),
			wantRows: "SELECT * FROM `users` WHERE ((LOWER(CAST(`id` AS CHAR)) LIKE LOWER(?) ESCAPE '~' OR LOWER(`name`) LIKE LOWER(?) ESCAPE '~') AND LOWER(`name`) LIKE LOWER(?) ESCAPE '~')" +
				" ORDER BY `name` DESC, `id` ASC LIMIT ? OFFSET ?",
			wantCount: "SELECT COUNT(*) FROM `users` WHERE ((LOWER(CAST(`id` AS CHAR)) LIKE LOWER(?) ESCAPE '~' OR LOWER(`name`) LIKE LOWER(?) ESCAPE '~') AND LOWER(`name`) LIKE LOWER(?) ESCAPE '~')",
			wantArgs:  []any{"%An%", "%An%", "%x%"},
		},
		{
			name:    "sqlite",
			dialect: SQLite,
			table:   SQLite.TableRef("main", "users"),
			wantRows: `SELECT * FROM "main"."users" WHERE ((LOWER(CAST("id" AS TEXT)) LIKE LOWER(?) ESCAPE '~' OR LOWER("name") LIKE LOWER(?) ESCAPE '~') AND LOWER("name") LIKE LOWER(?) ESCAPE '~')` +
				` ORDER BY "name" DESC, "id" ASC LIMIT ? OFFSET ?`,
			wantCount: `SELECT COUNT(*) FROM "main"."users" WHERE ((LOWER(CAST("id" AS TEXT)) LIKE LOWER(?) ESCAPE '~' OR LOWER("name") LIKE LOWER(?) ESCAPE '~') AND LOWER("name") LIKE LOWER(?) ESCAPE '~')`,
			wantArgs:  []any{"%An%", "%An%", "%x%"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rowsQ, countQ, err := selectPage(tc.dialect, tc.table, searchPredicate(), page)
			require.NoError(t, err)

			assert.Equal(t, tc.wantRows, rowsQ.String())
			assert.Equal(t, append(append([]any{}, tc.wantArgs...), 10, 20), rowsQ.args)
			assert.Equal(t, tc.wantCount, countQ.String())
			assert.Equal(t, tc.wantArgs, countQ.args)
		})
	}
}

func TestSelectPageMatchAllUnpaged(t *testing.T) {
	rowsQ, countQ, err := selectPage(Postgres, `"users"`, datatables.MatchAll{}, datatables.PageRequest{})
	require.NoError(t, err)

	assert.Equal(t, `SELECT * FROM "users"`, rowsQ.String())
	assert.Empty(t, rowsQ.args)
	assert.Equal(t, `SELECT COUNT(*) FROM "users"`, countQ.String())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "plain", escapeLike("plain"))
	assert.Equal(t, "50~% ~_off~~", escapeLike("50% _off~"))
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"we""ird"`, doubleQuote(`we"ird`))
	assert.Equal(t, "`we``ird`", backtickQuote("we`ird"))
	assert.Equal(t, `"s"."t"`, Postgres.TableRef("s", "t"))
	assert.Equal(t, "`t`", MySQL.TableRef("", "t"))
}
