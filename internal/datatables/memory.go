package datatables

import (
	"context"
	"sort"
	"strings"
	"time"
)

// MemoryStore is a Store over a fixed slice of rows. Without a sort the rows
// keep their insertion order.
type MemoryStore struct {
	rows []Row
}

func NewMemoryStore(rows []Row) *MemoryStore {
	cp := make([]Row, len(rows))
	copy(cp, rows)
	return &MemoryStore{rows: cp}
}

func (s *MemoryStore) FetchPage(ctx context.Context, pred Predicate, page PageRequest) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	if pred == nil {
		pred = MatchAll{}
	}

	matched := make([]Row, 0, len(s.rows))
	for _, row := range s.rows {
		if pred.Match(row) {
			matched = append(matched, row)
		}
	}

	if len(page.Sort) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			return lessRows(matched[i], matched[j], page.Sort)
		})
	}

	total := int64(len(matched))
	if page.Paged() {
		from := min(page.Offset(), len(matched))
		to := min(from+page.Size, len(matched))
		matched = matched[from:to]
	}

	return Page{Rows: matched, Total: total}, nil
}

func (s *MemoryStore) CountAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int64(len(s.rows)), nil
}

func lessRows(a, b Row, keys Sort) bool {
	for _, o := range keys {
		c := compareValues(a[o.Attribute.Name], b[o.Attribute.Name])
		if c == 0 {
			continue
		}
		if o.Direction == Desc {
			return c > 0
		}
		return c < 0
	}
	return false
}

// compareValues orders nils first, then numbers, times and everything else
// by its text.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}
	return strings.Compare(textOf(a), textOf(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
