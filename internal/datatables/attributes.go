package datatables

import (
	"strings"

	"vindtables/backend/internal/model"
)

// Attribute is a queryable field of the entity behind a table.
type Attribute struct {
	Name string
	Type string
	Text bool // stored as character data, no cast needed for text matching
}

// Attributes is the set of attributes a request may filter or sort on.
// The zero value contains no attributes.
type Attributes struct {
	byName map[string]Attribute
}

// NewAttributes builds the attribute set from column metadata, as returned
// by information_schema or declared by hand.
func NewAttributes(columns []model.Column) Attributes {
	a := Attributes{byName: make(map[string]Attribute, len(columns))}
	for _, col := range columns {
		a.byName[col.Name] = Attribute{
			Name: col.Name,
			Type: col.Type,
			Text: isTextType(col.Type),
		}
	}
	return a
}

// TextAttributes declares every name as a text attribute.
func TextAttributes(names ...string) Attributes {
	cols := make([]model.Column, 0, len(names))
	for _, n := range names {
		cols = append(cols, model.Column{Name: n, Type: "text"})
	}
	return NewAttributes(cols)
}

// Lookup resolves a column's data field to an attribute.
func (a Attributes) Lookup(field string) (Attribute, error) {
	attr, ok := a.byName[field]
	if !ok {
		return Attribute{}, &MappingError{Field: field}
	}
	return attr, nil
}

func (a Attributes) Len() int {
	return len(a.byName)
}

func isTextType(t string) bool {
	t = strings.ToLower(strings.TrimSpace(t))
	switch {
	case t == "string", t == "citext", t == "name":
		return true
	case strings.Contains(t, "char"), strings.Contains(t, "text"), strings.Contains(t, "clob"):
		return true
	}
	return false
}
