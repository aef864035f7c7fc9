package database

import (
	"context"
	"fmt"

	"github.com/kiwi-kloset/cmd/api/costume"
)

// Rows that already exist are left untouched, so seeding twice is harmless.

func (store *Store) AddBranch(ctx context.Context, b costume.Branch) error {
	sqlStatement := `
	INSERT INTO branches (id, name, location)
	VALUES ($1, $2, $3)
	ON CONFLICT (id) DO NOTHING`
	_, err := store.exc.ExecContext(ctx, sqlStatement, b.ID, b.Name, b.Location)
	if err != nil {
		return fmt.Errorf("storing branch on db: %w", err)
	}
	return nil
}

func (store *Store) AddCustomer(ctx context.Context, c costume.Customer) error {
	sqlStatement := `
	INSERT INTO customers (id, first_name, last_name, email, phone)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO NOTHING`
	_, err := store.exc.ExecContext(ctx, sqlStatement, c.ID, c.FirstName, c.LastName, c.Email, c.Phone)
	if err != nil {
		return fmt.Errorf("storing customer on db: %w", err)
	}
	return nil
}

func (store *Store) AddCostume(ctx context.Context, c costume.Costume) error {
	sqlStatement := `
	INSERT INTO costumes (id, name, size, category, daily_rate, branch_id, is_available)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO NOTHING`
	_, err := store.exc.ExecContext(ctx, sqlStatement, c.ID, c.Name, c.Size, c.Category, c.DailyRate, c.BranchID, availability(c.IsAvailable))
	if err != nil {
		return fmt.Errorf("seeding costume on db: %w", err)
	}
	return nil
}

func (store *Store) AddRental(ctx context.Context, r costume.Rental) error {
	sqlStatement := `
	INSERT INTO rentals (id, costume_id, customer_id, start_datetime, end_datetime)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO NOTHING`
	_, err := store.exc.ExecContext(ctx, sqlStatement, r.ID, r.CostumeID, r.CustomerID, r.Start.UTC(), r.End.UTC())
	if err != nil {
		return fmt.Errorf("storing rental on db: %w", err)
	}
	return nil
}
