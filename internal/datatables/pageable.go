package datatables

import (
	"strings"

	"vindtables/backend/internal/model"
)

type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// ParseDirection accepts "asc" and "desc" in any case. An empty direction
// means ascending.
func ParseDirection(dir string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(dir)) {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return Asc, &ValidationError{Field: "dir", Msg: "invalid sort direction " + dir}
}

type Order struct {
	Attribute Attribute
	Direction Direction
}

// Sort lists sort keys, primary key first. An empty Sort leaves the row
// order to the store, which makes it unspecified.
type Sort []Order

// PageRequest selects one page of a result. Size 0 means unpaged: every
// matching row is returned.
type PageRequest struct {
	Page int
	Size int
	Sort Sort
}

func (p PageRequest) Paged() bool { return p.Size > 0 }

func (p PageRequest) Offset() int { return p.Page * p.Size }

// BuildPageRequest translates the ordering and paging of a request.
//
// Order entries pointing at columns that are not orderable, or at no column
// at all, are skipped. The page number is start/length rounded down, so a
// start that is not a multiple of length lands on the page containing it.
func BuildPageRequest(input model.DataTablesInput, attrs Attributes) (PageRequest, error) {
	if input.Start < 0 {
		return PageRequest{}, &ValidationError{Field: "start", Msg: "must not be negative"}
	}

	var sort Sort
	for _, o := range input.Order {
		if o.Column < 0 || o.Column >= len(input.Columns) {
			continue
		}
		col := input.Columns[o.Column]
		if !col.Orderable || col.Data == "" {
			continue
		}
		dir, err := ParseDirection(o.Dir)
		if err != nil {
			return PageRequest{}, err
		}
		attr, err := attrs.Lookup(col.Data)
		if err != nil {
			return PageRequest{}, err
		}
		sort = append(sort, Order{Attribute: attr, Direction: dir})
	}

	switch {
	case input.Length == -1:
		return PageRequest{Sort: sort}, nil
	case input.Length <= 0:
		return PageRequest{}, &ValidationError{Field: "length", Msg: "must be positive"}
	}

	return PageRequest{
		Page: input.Start / input.Length,
		Size: input.Length,
		Sort: sort,
	}, nil
}
