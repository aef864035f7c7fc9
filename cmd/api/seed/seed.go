package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/kiwi-kloset/cmd/api/costume"
	"github.com/shopspring/decimal"
)

/* Write side of a store used only to load reference and demo data. */
type Seeder interface {
	AddBranch(ctx context.Context, b costume.Branch) error
	AddCustomer(ctx context.Context, c costume.Customer) error
	AddCostume(ctx context.Context, c costume.Costume) error
	AddRental(ctx context.Context, r costume.Rental) error
}

var Branches = []costume.Branch{
	{ID: 1, Name: "Auckland Central", Location: "Queen Street, Auckland"},
	{ID: 2, Name: "Wellington", Location: "Cuba Street, Wellington"},
	{ID: 3, Name: "Christchurch", Location: "Riccarton Road, Christchurch"},
}

var Customers = []costume.Customer{
	{ID: 1, FirstName: "Aroha", LastName: "Ngata", Email: "aroha.ngata@example.co.nz", Phone: "021 555 0101"},
	{ID: 2, FirstName: "Liam", LastName: "Smith", Email: "liam.smith@example.co.nz", Phone: "022 555 0102"},
	{ID: 3, FirstName: "Mere", LastName: "Parata", Email: "mere.parata@example.co.nz", Phone: "027 555 0103"},
	{ID: 4, FirstName: "Oliver", LastName: "Chen", Email: "oliver.chen@example.co.nz", Phone: "021 555 0104"},
}

var Costumes = []costume.Costume{
	{ID: 1, Name: "Pirate Captain", Size: "M", Category: "Pirates", DailyRate: decimal.RequireFromString("25.00"), BranchID: 1, IsAvailable: true},
	{ID: 2, Name: "Pirate Captain", Size: "L", Category: "Pirates", DailyRate: decimal.RequireFromString("25.00"), BranchID: 2, IsAvailable: false},
	{ID: 3, Name: "Kiwi Bird", Size: "S", Category: "Animals", DailyRate: decimal.RequireFromString("18.50"), BranchID: 1, IsAvailable: true},
	{ID: 4, Name: "Astronaut", Size: "L", Category: "Space", DailyRate: decimal.RequireFromString("40.00"), BranchID: 3, IsAvailable: true},
	{ID: 5, Name: "Victorian Lady", Size: "M", Category: "Historical", DailyRate: decimal.RequireFromString("55.90"), BranchID: 2, IsAvailable: true},
	{ID: 6, Name: "Zombie Chef", Size: "XL", Category: "Halloween", DailyRate: decimal.RequireFromString("15.00"), BranchID: 3, IsAvailable: false},
}

func Rentals() []costume.Rental {
	at := func(day, hour int) time.Time {
		return time.Date(2024, time.October, day, hour, 0, 0, 0, time.UTC)
	}
	return []costume.Rental{
		{ID: 1, CostumeID: 1, CustomerID: 1, Start: at(1, 9), End: at(1, 17)},
		{ID: 2, CostumeID: 1, CustomerID: 2, Start: at(5, 10), End: at(7, 16)},
		{ID: 3, CostumeID: 1, CustomerID: 3, Start: at(25, 12), End: at(31, 12)},
		{ID: 4, CostumeID: 2, CustomerID: 4, Start: at(29, 18), End: at(31, 18)},
		{ID: 5, CostumeID: 4, CustomerID: 2, Start: at(12, 8), End: at(13, 9)},
		{ID: 6, CostumeID: 6, CustomerID: 1, Start: at(30, 15), End: at(31, 23)},
	}
}

/*
Loads the demo branches, customers, costumes and rentals. Costume 3 and 5
are left without rentals.
*/
func Demo(ctx context.Context, s Seeder) error {
	for _, b := range Branches {
		if err := s.AddBranch(ctx, b); err != nil {
			return fmt.Errorf("seeding branch %d: %w", b.ID, err)
		}
	}
	for _, c := range Customers {
		if err := s.AddCustomer(ctx, c); err != nil {
			return fmt.Errorf("seeding customer %d: %w", c.ID, err)
		}
	}
	for _, c := range Costumes {
		if err := s.AddCostume(ctx, c); err != nil {
			return fmt.Errorf("seeding costume %d: %w", c.ID, err)
		}
	}
	for _, r := range Rentals() {
		if err := s.AddRental(ctx, r); err != nil {
			return fmt.Errorf("seeding rental %d: %w", r.ID, err)
		}
	}
	return nil
}
