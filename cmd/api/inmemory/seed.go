package inmemory

import (
	"context"
	"fmt"

	"github.com/kiwi-kloset/cmd/api/costume"
)

// Rows that already exist are left untouched, same as the postgres store.

func (store *InMemoryStore) AddBranch(ctx context.Context, b costume.Branch) error {
	return store.insertOnce(ctx, "branch", b.ID, b)
}

func (store *InMemoryStore) AddCustomer(ctx context.Context, c costume.Customer) error {
	return store.insertOnce(ctx, "customer", c.ID, c)
}

func (store *InMemoryStore) AddCostume(ctx context.Context, c costume.Costume) error {
	return store.insertOnce(ctx, "costume", c.ID, c)
}

func (store *InMemoryStore) AddRental(ctx context.Context, r costume.Rental) error {
	return store.insertOnce(ctx, "rental", r.ID, r)
}

func (store *InMemoryStore) insertOnce(ctx context.Context, table string, id int, obj any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("storing %s on memdb: %w", table, err)
	}
	txn, end := store.txn(true)
	defer end()

	existing, err := txn.First(table, "id", id)
	if err != nil {
		return fmt.Errorf("storing %s on memdb: %w", table, err)
	}
	if existing != nil {
		return nil
	}

	err = txn.Insert(table, obj)
	if err != nil {
		return fmt.Errorf("storing %s on memdb: %w", table, err)
	}
	return nil
}
