package model

// DataTablesInput is the server-side processing request sent by a DataTables
// client. Field names follow the DataTables wire protocol.
type DataTablesInput struct {
	Draw    int               `json:"draw"`
	Start   int               `json:"start"`
	Length  int               `json:"length"` // -1 requests every row
	Search  SearchParameter   `json:"search"`
	Order   []OrderParameter  `json:"order"`
	Columns []ColumnParameter `json:"columns"`
}

// ColumnParameter describes one column of the client table.
type ColumnParameter struct {
	Data       string          `json:"data"` // attribute the column is bound to
	Name       string          `json:"name"`
	Searchable bool            `json:"searchable"`
	Orderable  bool            `json:"orderable"`
	Search     SearchParameter `json:"search"`
}

type SearchParameter struct {
	Value string `json:"value"`
	Regex bool   `json:"regex"`
}

type OrderParameter struct {
	Column int    `json:"column"`
	Dir    string `json:"dir"` // "asc" or "desc"
}

// DataTablesOutput is the response envelope. Error is set only when the
// request could not be served, in which case Data is empty and both counts
// are zero.
type DataTablesOutput struct {
	Draw            int              `json:"draw"`
	RecordsTotal    int64            `json:"recordsTotal"`
	RecordsFiltered int64            `json:"recordsFiltered"`
	Data            []map[string]any `json:"data"`
	Error           string           `json:"error,omitempty"`
}

// NewDataTablesInput returns an input carrying the protocol defaults
// (first draw, first page of ten rows).
func NewDataTablesInput() DataTablesInput {
	return DataTablesInput{
		Draw:   1,
		Start:  0,
		Length: 10,
	}
}

// AddColumn appends a searchable and orderable column bound to data.
func (in *DataTablesInput) AddColumn(data, searchValue string) {
	in.Columns = append(in.Columns, ColumnParameter{
		Data:       data,
		Searchable: true,
		Orderable:  true,
		Search:     SearchParameter{Value: searchValue},
	})
}

// AddOrder sorts by the column bound to data. It does nothing when no such
// column exists.
func (in *DataTablesInput) AddOrder(data string, ascending bool) {
	for i, col := range in.Columns {
		if col.Data != data {
			continue
		}
		dir := "asc"
		if !ascending {
			dir = "desc"
		}
		in.Order = append(in.Order, OrderParameter{Column: i, Dir: dir})
		return
	}
}
