package service

import (
	"fmt"
	"strings"

	"vindtables/backend/internal/datatables"
)

// likeEscape is the LIKE escape character in every dialect.
const likeEscape = '~'

// queryBuilder accumulates SQL text and its positional arguments.
type queryBuilder struct {
	dialect Dialect
	sb      strings.Builder
	args    []any
}

func (q *queryBuilder) write(s string) { q.sb.WriteString(s) }

func (q *queryBuilder) bind(v any) {
	q.args = append(q.args, v)
	q.sb.WriteString(q.dialect.Placeholder(len(q.args)))
}

func (q *queryBuilder) String() string { return q.sb.String() }

// where appends a WHERE clause for pred. MatchAll appends nothing.
func (q *queryBuilder) where(pred datatables.Predicate) error {
	if pred == nil || datatables.IsMatchAll(pred) {
		return nil
	}
	q.write(" WHERE ")
	return q.predicate(pred)
}

func (q *queryBuilder) predicate(pred datatables.Predicate) error {
	switch p := pred.(type) {
	case datatables.MatchAll:
		q.write("1 = 1")
	case datatables.Contains:
		q.contains(p)
	case datatables.Conjunction:
		return q.group(p.Predicates, " AND ")
	case datatables.Disjunction:
		return q.group(p.Predicates, " OR ")
	default:
		return fmt.Errorf("unsupported predicate %T", pred)
	}
	return nil
}

func (q *queryBuilder) group(preds []datatables.Predicate, op string) error {
	q.write("(")
	for i, sub := range preds {
		if i > 0 {
			q.write(op)
		}
		if err := q.predicate(sub); err != nil {
			return err
		}
	}
	q.write(")")
	return nil
}

func (q *queryBuilder) contains(p datatables.Contains) {
	expr := q.dialect.QuoteIdent(p.Attribute.Name)
	if !p.Attribute.Text {
		expr = fmt.Sprintf("CAST(%s AS %s)", expr, q.dialect.TextType)
	}
	pattern := "%" + escapeLike(p.Term) + "%"
	// Both sides fold in SQL so the column and the term see the same LOWER.
	if q.dialect.ILike {
		q.write(expr + " ILIKE ")
		q.bind(pattern)
	} else {
		q.write("LOWER(" + expr + ") LIKE LOWER(")
		q.bind(pattern)
		q.write(")")
	}
	q.write(fmt.Sprintf(" ESCAPE '%c'", likeEscape))
}

// orderBy appends an ORDER BY clause. An empty sort appends nothing.
func (q *queryBuilder) orderBy(sort datatables.Sort) {
	if len(sort) == 0 {
		return
	}
	q.write(" ORDER BY ")
	for i, o := range sort {
		if i > 0 {
			q.write(", ")
		}
		q.write(q.dialect.QuoteIdent(o.Attribute.Name) + " " + o.Direction.String())
	}
}

func (q *queryBuilder) limit(page datatables.PageRequest) {
	if !page.Paged() {
		return
	}
	q.write(" LIMIT ")
	q.bind(page.Size)
	q.write(" OFFSET ")
	q.bind(page.Offset())
}

func escapeLike(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == likeEscape || r == '%' || r == '_' {
			b.WriteRune(likeEscape)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// selectPage builds the page query and the matching count query for a
// table.
func selectPage(d Dialect, table string, pred datatables.Predicate, page datatables.PageRequest) (rowsQ *queryBuilder, countQ *queryBuilder, err error) {
	rowsQ = &queryBuilder{dialect: d}
	rowsQ.write("SELECT * FROM " + table)
	if err := rowsQ.where(pred); err != nil {
		return nil, nil, err
	}
	rowsQ.orderBy(page.Sort)
	rowsQ.limit(page)

	countQ = &queryBuilder{dialect: d}
	countQ.write("SELECT COUNT(*) FROM " + table)
	if err := countQ.where(pred); err != nil {
		return nil, nil, err
	}
	return rowsQ, countQ, nil
}
