package model

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
)

// maxFormIndex bounds columns[n] and order[n] so a hostile query string
// cannot make us allocate huge slices.
const maxFormIndex = 512

var indexedKeyRegex = regexp.MustCompile(`^(columns|order)\[(\d+)\]\[([a-zA-Z]+)\](?:\[([a-zA-Z]+)\])?$`)

// ParseDataTablesForm decodes the bracket notation DataTables uses for GET
// requests and form posts, e.g. columns[0][search][value]=foo.
// Keys that are not part of the protocol are ignored.
func ParseDataTablesForm(values url.Values) (DataTablesInput, error) {
	in := NewDataTablesInput()

	var err error
	if in.Draw, err = formInt(values, "draw", in.Draw); err != nil {
		return in, err
	}
	if in.Start, err = formInt(values, "start", in.Start); err != nil {
		return in, err
	}
	if in.Length, err = formInt(values, "length", in.Length); err != nil {
		return in, err
	}
	in.Search.Value = values.Get("search[value]")
	in.Search.Regex = formBool(values.Get("search[regex]"))

	columns := map[int]*ColumnParameter{}
	orders := map[int]*OrderParameter{}
	maxColumn, maxOrder := -1, -1

	for key, vals := range values {
		m := indexedKeyRegex.FindStringSubmatch(key)
		if m == nil || len(vals) == 0 {
			continue
		}
		idx, err := strconv.Atoi(m[2])
		if err != nil || idx > maxFormIndex {
			return in, fmt.Errorf("invalid index in %q", key)
		}
		val := vals[0]

		switch m[1] {
		case "columns":
			col, ok := columns[idx]
			if !ok {
				col = &ColumnParameter{}
				columns[idx] = col
			}
			maxColumn = max(maxColumn, idx)
			switch {
			case m[3] == "data" && m[4] == "":
				col.Data = val
			case m[3] == "name" && m[4] == "":
				col.Name = val
			case m[3] == "searchable" && m[4] == "":
				col.Searchable = formBool(val)
			case m[3] == "orderable" && m[4] == "":
				col.Orderable = formBool(val)
			case m[3] == "search" && m[4] == "value":
				col.Search.Value = val
			case m[3] == "search" && m[4] == "regex":
				col.Search.Regex = formBool(val)
			}
		case "order":
			ord, ok := orders[idx]
			if !ok {
				ord = &OrderParameter{}
				orders[idx] = ord
			}
			maxOrder = max(maxOrder, idx)
			switch m[3] {
			case "column":
				n, err := strconv.Atoi(val)
				if err != nil {
					return in, fmt.Errorf("invalid %s: %q", key, val)
				}
				ord.Column = n
			case "dir":
				ord.Dir = val
			}
		}
	}

	if maxColumn >= 0 {
		in.Columns = make([]ColumnParameter, maxColumn+1)
		for i, col := range columns {
			in.Columns[i] = *col
		}
	}
	for i := 0; i <= maxOrder; i++ {
		if ord, ok := orders[i]; ok {
			in.Order = append(in.Order, *ord)
		}
	}

	return in, nil
}

func formInt(values url.Values, key string, def int) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return n, nil
}

func formBool(raw string) bool {
	b, err := strconv.ParseBool(raw)
	return err == nil && b
}
