package datatables

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Page is one page of rows plus the number of rows matching the predicate
// across all pages.
type Page struct {
	Rows  []Row
	Total int64
}

// Store is the storage backing a table.
//
// FetchPage must apply the predicate before paging, and Page.Total must count
// every row matching the predicate regardless of the page size. CountAll
// counts every row, ignoring any predicate.
type Store interface {
	FetchPage(ctx context.Context, pred Predicate, page PageRequest) (Page, error)
	CountAll(ctx context.Context) (int64, error)
}

type Result struct {
	Rows     []Row
	Filtered int64
	Total    int64
}

// Executor runs the paged fetch and the unfiltered count of a request.
type Executor struct {
	store Store
}

func NewExecutor(store Store) *Executor {
	return &Executor{store: store}
}

// Execute issues both reads concurrently. The first error is returned as is
// and cancels the other read.
func (e *Executor) Execute(ctx context.Context, pred Predicate, page PageRequest) (Result, error) {
	var res Result

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return guard("fetch page", func() error {
			p, err := e.store.FetchPage(gctx, pred, page)
			if err != nil {
				return err
			}
			res.Rows = p.Rows
			res.Filtered = p.Total
			return nil
		})
	})
	g.Go(func() error {
		return guard("count all", func() error {
			n, err := e.store.CountAll(gctx)
			if err != nil {
				return err
			}
			res.Total = n
			return nil
		})
	})

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return res, nil
}

// guard converts a panic in a store call into an error; a panic on an
// errgroup goroutine would otherwise take down the process.
func guard(op string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic: %v", op, r)
		}
	}()
	return fn()
}
