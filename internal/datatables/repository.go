package datatables

import (
	"context"
	"fmt"
	"log"

	"vindtables/backend/internal/model"
)

// Repository serves DataTables requests for one table.
type Repository struct {
	executor *Executor
	attrs    Attributes
}

func NewRepository(store Store, attrs Attributes) *Repository {
	return &Repository{
		executor: NewExecutor(store),
		attrs:    attrs,
	}
}

// FindAll answers a DataTables request. It never fails: any error is
// reported in the Error field of the output, with empty data and zero
// counts, and the draw counter is always echoed.
func (r *Repository) FindAll(ctx context.Context, input model.DataTablesInput) model.DataTablesOutput {
	return r.FindAllWith(ctx, input, nil)
}

// FindAllWith is FindAll restricted further by extra, which may be nil.
// recordsTotal still counts the whole table.
func (r *Repository) FindAllWith(ctx context.Context, input model.DataTablesInput, extra Predicate) model.DataTablesOutput {
	res, err := r.find(ctx, input, extra)
	if err != nil {
		log.Printf("[DATATABLES] draw=%d error=%v", input.Draw, err)
		return model.DataTablesOutput{
			Draw:  input.Draw,
			Data:  []map[string]any{},
			Error: err.Error(),
		}
	}

	data := res.Rows
	if data == nil {
		data = []map[string]any{}
	}
	return model.DataTablesOutput{
		Draw:            input.Draw,
		RecordsTotal:    res.Total,
		RecordsFiltered: res.Filtered,
		Data:            data,
	}
}

func (r *Repository) find(ctx context.Context, input model.DataTablesInput, extra Predicate) (res Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("find: panic: %v", rec)
		}
	}()

	pred, err := BuildPredicate(input, r.attrs)
	if err != nil {
		return Result{}, err
	}
	page, err := BuildPageRequest(input, r.attrs)
	if err != nil {
		return Result{}, err
	}
	return r.executor.Execute(ctx, AllOf(pred, extra), page)
}
