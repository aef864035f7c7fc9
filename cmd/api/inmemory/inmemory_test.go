package inmemory_test

import (
	"context"
	"errors"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/kiwi-kloset/cmd/api/costume"
	"github.com/kiwi-kloset/cmd/api/inmemory"
	"github.com/kiwi-kloset/cmd/api/seed"
	"github.com/matryer/is"
	"github.com/shopspring/decimal"
)

var ctx context.Context = context.Background()

func newSeededStore() *inmemory.InMemoryStore {
	store, err := inmemory.NewInMemoryStore()
	if err != nil {
		log.Fatalln(err)
	}
	err = seed.Demo(ctx, store)
	if err != nil {
		log.Fatalln(err)
	}
	return store
}

func TestListCostumes(t *testing.T) {
	t.Run("lists costumes ordered by name then size", func(t *testing.T) {
		is := is.New(t)
		store := newSeededStore()

		costumes, err := store.ListCostumes(ctx)
		is.NoErr(err)

		got := make([][2]string, 0, len(costumes))
		for _, c := range costumes {
			got = append(got, [2]string{c.Name, c.Size})
		}
		is.Equal(got, [][2]string{
			{"Astronaut", "L"},
			{"Kiwi Bird", "S"},
			{"Pirate Captain", "L"},
			{"Pirate Captain", "M"},
			{"Victorian Lady", "M"},
			{"Zombie Chef", "XL"},
		})
		is.Equal(costumes[0].BranchName, "Christchurch")
	})

	t.Run("empty inventory is an empty list", func(t *testing.T) {
		is := is.New(t)
		store, err := inmemory.NewInMemoryStore()
		is.NoErr(err)

		costumes, err := store.ListCostumes(ctx)
		is.NoErr(err)
		is.Equal(costumes, []costume.CostumeView{})
	})

	t.Run("costume of an unknown branch is left out", func(t *testing.T) {
		is := is.New(t)
		store := newSeededStore()
		is.NoErr(store.AddCostume(ctx, costume.Costume{ID: 50, Name: "Orphan", Size: "M", BranchID: 99}))

		costumes, err := store.ListCostumes(ctx)
		is.NoErr(err)
		is.Equal(len(costumes), len(seed.Costumes))
	})

	t.Run("expected context error", func(t *testing.T) {
		is := is.New(t)
		store := newSeededStore()
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.ListCostumes(canceled)
		is.True(errors.Is(err, context.Canceled))
	})
}

func TestListBranches(t *testing.T) {
	is := is.New(t)
	store := newSeededStore()

	branches, err := store.ListBranches(ctx)
	is.NoErr(err)
	is.Equal(branches, []costume.Branch{seed.Branches[0], seed.Branches[2], seed.Branches[1]})
}

func TestGetBranchByID(t *testing.T) {
	store := newSeededStore()

	t.Run("finds a branch", func(t *testing.T) {
		is := is.New(t)

		b, err := store.GetBranchByID(ctx, 3)
		is.NoErr(err)
		is.Equal(b, seed.Branches[2])
	})

	t.Run("expected branch not found error", func(t *testing.T) {
		is := is.New(t)

		_, err := store.GetBranchByID(ctx, 7)
		is.True(errors.Is(err, costume.ErrResponseBranchNotFound))
	})
}

func TestGetCostumeByID(t *testing.T) {
	store := newSeededStore()

	t.Run("finds a costume joined with its branch", func(t *testing.T) {
		is := is.New(t)

		c, err := store.GetCostumeByID(ctx, 5)
		is.NoErr(err)
		is.Equal(c.Name, "Victorian Lady")
		is.True(c.DailyRate.Equal(decimal.RequireFromString("55.90")))
		is.Equal(c.BranchName, "Wellington")
		is.Equal(c.BranchLocation, "Cuba Street, Wellington")
	})

	t.Run("expected costume not found error", func(t *testing.T) {
		is := is.New(t)

		_, err := store.GetCostumeByID(ctx, 404)
		is.True(errors.Is(err, costume.ErrResponseCostumeNotFound))
	})
}

func TestListRentalsByCostume(t *testing.T) {
	store := newSeededStore()

	t.Run("lists rentals newest first with their customer", func(t *testing.T) {
		is := is.New(t)

		rentals, err := store.ListRentalsByCostume(ctx, 1)
		is.NoErr(err)
		is.Equal(len(rentals), 3)
		is.Equal(rentals[0].ID, 3)
		is.Equal(rentals[1].ID, 2)
		is.Equal(rentals[2].ID, 1)
		is.Equal(rentals[1].Customer.FullName(), "Liam Smith")
		is.Equal(rentals[1].Customer.Phone, "022 555 0102")
	})

	t.Run("same start is ordered by newest id", func(t *testing.T) {
		is := is.New(t)
		start := time.Date(2024, time.November, 1, 9, 0, 0, 0, time.UTC)
		is.NoErr(store.AddRental(ctx, costume.Rental{ID: 20, CostumeID: 3, CustomerID: 1, Start: start, End: start.Add(time.Hour)}))
		is.NoErr(store.AddRental(ctx, costume.Rental{ID: 21, CostumeID: 3, CustomerID: 2, Start: start, End: start.Add(time.Hour)}))

		rentals, err := store.ListRentalsByCostume(ctx, 3)
		is.NoErr(err)
		is.Equal(len(rentals), 2)
		is.Equal(rentals[0].ID, 21)
	})

	t.Run("costume without rentals has an empty list", func(t *testing.T) {
		is := is.New(t)

		rentals, err := store.ListRentalsByCostume(ctx, 5)
		is.NoErr(err)
		is.Equal(rentals, []costume.RentalRecord{})
	})
}

func TestTransactions(t *testing.T) {
	t.Run("rolled back costume is not stored", func(t *testing.T) {
		is := is.New(t)
		store := newSeededStore()

		txRepo, tx, err := store.BeginTx(ctx, nil)
		is.NoErr(err)
		is.NoErr(txRepo.CreateCostume(ctx, costume.Costume{ID: 7, Name: "Ghost", Size: "M", BranchID: 1}))
		is.NoErr(tx.Rollback())

		_, err = store.GetCostumeByID(ctx, 7)
		is.True(errors.Is(err, costume.ErrResponseCostumeNotFound))
	})

	t.Run("committed costume is visible and its id taken", func(t *testing.T) {
		is := is.New(t)
		store := newSeededStore()

		txRepo, tx, err := store.BeginTx(ctx, nil)
		is.NoErr(err)
		is.NoErr(txRepo.CreateCostume(ctx, costume.Costume{ID: 7, Name: "Ghost", Size: "M", BranchID: 1}))
		is.NoErr(tx.Commit())

		c, err := store.GetCostumeByID(ctx, 7)
		is.NoErr(err)
		is.Equal(c.Name, "Ghost")

		err = store.CreateCostume(ctx, costume.Costume{ID: 7, Name: "Other", BranchID: 1})
		is.True(err != nil)
	})

	t.Run("waiting for the writer stops at the deadline", func(t *testing.T) {
		is := is.New(t)
		store := newSeededStore()

		_, holder, err := store.BeginTx(ctx, nil)
		is.NoErr(err)

		waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		_, _, err = store.BeginTx(waitCtx, nil)
		is.True(errors.Is(err, context.DeadlineExceeded))

		is.NoErr(holder.Rollback())

		// the abandoned writer must not keep the lock
		nextCtx, cancelNext := context.WithTimeout(ctx, time.Second)
		defer cancelNext()
		txRepo, tx, err := store.BeginTx(nextCtx, nil)
		is.NoErr(err)
		is.NoErr(txRepo.CreateCostume(ctx, costume.Costume{ID: 7, Name: "Ghost", Size: "M", BranchID: 1}))
		is.NoErr(tx.Commit())
	})
}

func TestServiceWithInMemoryStore(t *testing.T) {
	req := costume.CreateCostumeRequest{Name: "Ghost", Size: "M", Category: "Halloween", DailyRate: "12.5", BranchID: "1", IsAvailable: "0"}

	t.Run("first costume of an empty inventory gets id 1", func(t *testing.T) {
		is := is.New(t)
		store, err := inmemory.NewInMemoryStore()
		is.NoErr(err)
		is.NoErr(store.AddBranch(ctx, seed.Branches[0]))
		s := costume.NewService(store, nil, time.Second)

		created, err := s.CreateCostume(ctx, req)
		is.NoErr(err)
		is.Equal(created.ID, 1)
		is.Equal(created.IsAvailable, false)
		is.Equal(created.BranchName, seed.Branches[0].Name)
	})

	t.Run("concurrent creations get distinct consecutive ids", func(t *testing.T) {
		is := is.New(t)
		store := newSeededStore()
		s := costume.NewService(store, nil, time.Second)

		const workers = 10
		ids := make(chan int, workers)
		errs := make(chan error, workers)
		wg := sync.WaitGroup{}
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				created, err := s.CreateCostume(ctx, req)
				if err != nil {
					errs <- err
					return
				}
				ids <- created.ID
			}()
		}
		wg.Wait()
		close(ids)
		close(errs)

		is.Equal(len(errs), 0)
		seen := map[int]bool{}
		for id := range ids {
			is.True(!seen[id])
			seen[id] = true
		}
		for id := len(seed.Costumes) + 1; id <= len(seed.Costumes)+workers; id++ {
			is.True(seen[id])
		}
	})

	t.Run("rental history of a seeded costume", func(t *testing.T) {
		is := is.New(t)
		store := newSeededStore()
		s := costume.NewService(store, nil, time.Second)

		history, err := s.GetRentalHistory(ctx, "1")
		is.NoErr(err)
		is.Equal(history.TotalCount, 3)
		is.Equal(history.Rentals[0].Duration, "6 days")
		is.Equal(history.Rentals[1].Duration, "2 days 6h")
		is.Equal(history.Rentals[2].Duration, "8 hours")
		//6 + 3 + 1 billable days at 25.00.
		is.True(history.TotalRevenue.Equal(decimal.NewFromInt(250)))
	})

	t.Run("branch not found leaves the inventory untouched", func(t *testing.T) {
		is := is.New(t)
		store := newSeededStore()
		s := costume.NewService(store, nil, time.Second)

		missing := req
		missing.BranchID = "99"
		_, err := s.CreateCostume(ctx, missing)
		is.Equal(err, costume.ErrResponseBranchNotFound)

		maxID, err := store.MaxCostumeID(ctx)
		is.NoErr(err)
		is.Equal(maxID, len(seed.Costumes))
	})
}
