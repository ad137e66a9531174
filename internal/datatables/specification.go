package datatables

import (
	"strings"

	"vindtables/backend/internal/model"
)

// BuildPredicate turns the search criteria of a request into one predicate:
// the global term must be found in at least one searchable column, and every
// non-empty column term must be found in its own column. Columns that are not
// searchable never contribute, whatever their search value.
func BuildPredicate(input model.DataTablesInput, attrs Attributes) (Predicate, error) {
	global := strings.TrimSpace(input.Search.Value)

	var anyOf, allOf []Predicate
	for _, col := range input.Columns {
		if !col.Searchable || col.Data == "" {
			continue
		}
		term := strings.TrimSpace(col.Search.Value)
		if global == "" && term == "" {
			continue
		}

		attr, err := attrs.Lookup(col.Data)
		if err != nil {
			return nil, err
		}
		if global != "" {
			anyOf = append(anyOf, ContainsText(attr, global))
		}
		if term != "" {
			allOf = append(allOf, ContainsText(attr, term))
		}
	}

	return AllOf(AnyOf(anyOf...), AllOf(allOf...)), nil
}
