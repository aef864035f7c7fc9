package database_test

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/kiwi-kloset/cmd/api/config"
	"github.com/kiwi-kloset/cmd/api/costume"
	"github.com/kiwi-kloset/cmd/api/database"
	"github.com/kiwi-kloset/cmd/api/seed"
	"github.com/matryer/is"
	"github.com/shopspring/decimal"

	_ "github.com/golang-migrate/migrate/v4/source/file"

	_ "github.com/lib/pq"
)

var store *database.Store
var sqlDB *sql.DB
var ctx context.Context = context.Background()

// TestMain is called before all the tests run.
// These tests need a postgres database, given by DATABASE_URL.
func TestMain(m *testing.M) {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		log.Println("DATABASE_URL not set, skipping database tests")
		os.Exit(0)
	}

	var err error
	sqlDB, err = database.ConnectDb(config.Database{URL: connStr})
	if err != nil {
		log.Fatalln(err)
	}

	store = database.NewStore(sqlDB)
	path := os.Getenv("DATABASE_MIGRATIONS_PATH")
	if path == "" {
		path = "../../../migrations"
	}
	err = database.MigrationUp(store, path)
	if err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalln(err)
		}
		log.Println(err)
	}

	os.Exit(m.Run())
}

func TestMaxCostumeID(t *testing.T) {
	t.Cleanup(func() {
		teardownDB(t)
	})

	t.Run("empty inventory has max id 0", func(t *testing.T) {
		is := is.New(t)

		maxID, err := store.MaxCostumeID(ctx)
		is.NoErr(err)
		is.Equal(maxID, 0)
	})

	t.Run("max id follows the stored costumes", func(t *testing.T) {
		is := is.New(t)
		err := seed.Demo(ctx, store)
		is.NoErr(err)

		maxID, err := store.MaxCostumeID(ctx)
		is.NoErr(err)
		is.Equal(maxID, len(seed.Costumes))
	})
}

func TestCreateCostume(t *testing.T) {
	t.Cleanup(func() {
		teardownDB(t)
	})
	is := is.New(t)
	is.NoErr(store.AddBranch(ctx, costume.Branch{ID: 1, Name: "Central", Location: "Wellington"}))

	t.Run("creates a costume and finds it joined with its branch", func(t *testing.T) {
		is := is.New(t)

		c := costume.Costume{
			ID:          10,
			Name:        "Pirate <Captain>",
			Size:        "M",
			Category:    "Pirates",
			DailyRate:   decimal.RequireFromString("999.99"),
			BranchID:    1,
			IsAvailable: false,
		}
		err := store.CreateCostume(ctx, c)
		is.NoErr(err)

		found, err := store.GetCostumeByID(ctx, 10)
		is.NoErr(err)
		is.Equal(found.ID, c.ID)
		is.Equal(found.Name, c.Name)
		is.True(found.DailyRate.Equal(c.DailyRate))
		is.Equal(found.IsAvailable, false)
		is.Equal(found.BranchName, "Central")
		is.Equal(found.BranchLocation, "Wellington")
	})

	t.Run("expected error on a duplicated id", func(t *testing.T) {
		is := is.New(t)

		err := store.CreateCostume(ctx, costume.Costume{ID: 10, Name: "Other", Size: "S", Category: "X", DailyRate: decimal.Zero, BranchID: 1})
		is.True(err != nil)
	})

	t.Run("expected not found error", func(t *testing.T) {
		is := is.New(t)

		_, err := store.GetCostumeByID(ctx, 999)
		is.True(errors.Is(err, costume.ErrResponseCostumeNotFound))
	})
}

func TestGetBranchByID(t *testing.T) {
	t.Cleanup(func() {
		teardownDB(t)
	})
	is := is.New(t)
	is.NoErr(seed.Demo(ctx, store))

	t.Run("finds a branch", func(t *testing.T) {
		is := is.New(t)

		b, err := store.GetBranchByID(ctx, 2)
		is.NoErr(err)
		is.Equal(b, seed.Branches[1])
	})

	t.Run("expected branch not found error", func(t *testing.T) {
		is := is.New(t)

		_, err := store.GetBranchByID(ctx, 99)
		is.True(errors.Is(err, costume.ErrResponseBranchNotFound))
	})
}

func TestListings(t *testing.T) {
	t.Cleanup(func() {
		teardownDB(t)
	})
	is := is.New(t)
	is.NoErr(seed.Demo(ctx, store))

	t.Run("lists costumes ordered by name then size", func(t *testing.T) {
		is := is.New(t)

		costumes, err := store.ListCostumes(ctx)
		is.NoErr(err)
		is.Equal(len(costumes), len(seed.Costumes))
		for i := 1; i < len(costumes); i++ {
			prev, cur := costumes[i-1], costumes[i]
			is.True(prev.Name < cur.Name || (prev.Name == cur.Name && prev.Size <= cur.Size))
		}
		is.Equal(costumes[0].Name, "Astronaut")
	})

	t.Run("lists branches ordered by name", func(t *testing.T) {
		is := is.New(t)

		branches, err := store.ListBranches(ctx)
		is.NoErr(err)
		is.Equal(branches, []costume.Branch{seed.Branches[0], seed.Branches[2], seed.Branches[1]})
	})

	t.Run("lists rentals newest first with their customer", func(t *testing.T) {
		is := is.New(t)

		rentals, err := store.ListRentalsByCostume(ctx, 1)
		is.NoErr(err)
		is.Equal(len(rentals), 3)
		is.Equal(rentals[0].ID, 3)
		is.Equal(rentals[1].ID, 2)
		is.Equal(rentals[2].ID, 1)
		is.Equal(rentals[0].Customer.FullName(), "Mere Parata")
		is.Equal(rentals[0].Customer.Email, "mere.parata@example.co.nz")
		is.True(rentals[0].Start.Equal(time.Date(2024, time.October, 25, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("costume without rentals has an empty list", func(t *testing.T) {
		is := is.New(t)

		rentals, err := store.ListRentalsByCostume(ctx, 3)
		is.NoErr(err)
		is.Equal(rentals, []costume.RentalRecord{})
	})
}

func TestAcquire(t *testing.T) {
	t.Cleanup(func() {
		teardownDB(t)
	})

	t.Run("releasing twice is harmless", func(t *testing.T) {
		is := is.New(t)

		conn, release, err := store.Acquire(ctx)
		is.NoErr(err)
		_, err = conn.ListBranches(ctx)
		is.NoErr(err)

		is.NoErr(release.Release())
		is.NoErr(release.Release())
	})

	t.Run("rolled back transaction leaves nothing behind", func(t *testing.T) {
		is := is.New(t)
		is.NoErr(store.AddBranch(ctx, costume.Branch{ID: 1, Name: "Central", Location: "Wellington"}))

		conn, release, err := store.Acquire(ctx)
		is.NoErr(err)
		defer release.Release()

		txRepo, tx, err := conn.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
		is.NoErr(err)
		err = txRepo.CreateCostume(ctx, costume.Costume{ID: 1, Name: "Ghost", Size: "M", Category: "Halloween", DailyRate: decimal.NewFromInt(10), BranchID: 1})
		is.NoErr(err)
		is.NoErr(tx.Rollback())

		_, err = conn.GetCostumeByID(ctx, 1)
		is.True(errors.Is(err, costume.ErrResponseCostumeNotFound))
	})
}

func TestServiceCreateCostume(t *testing.T) {
	t.Cleanup(func() {
		teardownDB(t)
	})
	is := is.New(t)
	is.NoErr(store.AddBranch(ctx, costume.Branch{ID: 1, Name: "Central", Location: "Wellington"}))
	s := costume.NewService(store, nil, time.Second)

	req := costume.CreateCostumeRequest{Name: "Ghost", Size: "M", Category: "Halloween", DailyRate: "10", BranchID: "1", IsAvailable: "1"}

	t.Run("first costume gets id 1, the next one id 2", func(t *testing.T) {
		is := is.New(t)

		first, err := s.CreateCostume(ctx, req)
		is.NoErr(err)
		is.Equal(first.ID, 1)

		second, err := s.CreateCostume(ctx, req)
		is.NoErr(err)
		is.Equal(second.ID, 2)
	})

	t.Run("concurrent creations never share an id", func(t *testing.T) {
		is := is.New(t)

		const workers = 5
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

		for err := range errs {
			is.Equal(err, costume.ErrResponseCostumeNotAdded) //Serialization failure.
		}
		seen := map[int]bool{}
		for id := range ids {
			is.True(!seen[id])
			seen[id] = true
		}
	})

	t.Run("expected branch not found error", func(t *testing.T) {
		is := is.New(t)

		missing := req
		missing.BranchID = "42"
		_, err := s.CreateCostume(ctx, missing)
		is.Equal(err, costume.ErrResponseBranchNotFound)
	})
}

func teardownDB(t *testing.T) {
	is := is.New(t)

	// Truncating every table, cleaning up all the records.
	_, err := sqlDB.Exec(`TRUNCATE TABLE rentals, costumes, customers, branches CASCADE`)
	is.NoErr(err)
}
