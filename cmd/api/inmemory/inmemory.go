package inmemory

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/hashicorp/go-memdb"
	"github.com/kiwi-kloset/cmd/api/costume"
)

var errDuplicatedID = errors.New("duplicated id")

type InMemoryStore struct {
	db  *memdb.MemDB
	exc *memdb.Txn
}

func NewInMemoryStore() (*InMemoryStore, error) {
	// Define the schema
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			"branch": {
				Name: "branch",
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
				},
			},
			"customer": {
				Name: "customer",
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
				},
			},
			"costume": {
				Name: "costume",
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
				},
			},
			"rental": {
				Name: "rental",
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
					"costume_id": {
						Name:    "costume_id",
						Unique:  false,
						Indexer: &memdb.IntFieldIndex{Field: "CostumeID"},
					},
				},
			},
		},
	}

	errV := schema.Validate()
	if errV != nil {
		log.Println("schema validating error: ", errV)
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize in-memory database: %w", err)
	}
	return &InMemoryStore{db: db, exc: nil}, nil
}

/*
Returns the transaction of the store when it is bound to one, otherwise a
fresh transaction and the function that ends it.
*/
func (store *InMemoryStore) txn(write bool) (*memdb.Txn, func()) {
	if store.exc != nil { //It means this method is being called inside a larger transaction.
		return store.exc, func() {}
	}
	txn := store.db.Txn(write)
	if write {
		return txn, txn.Commit
	}
	return txn, txn.Abort
}

// -- Costumes --

func (store *InMemoryStore) ListCostumes(ctx context.Context) ([]costume.CostumeView, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("listing costumes on memdb: %w", err)
	}
	txn, end := store.txn(false)
	defer end()

	it, err := txn.Get("costume", "id")
	if err != nil {
		return nil, fmt.Errorf("listing costumes on memdb: %w", err)
	}

	costumes := []costume.CostumeView{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		view, ok, err := joinBranch(txn, obj.(costume.Costume))
		if err != nil {
			return nil, fmt.Errorf("listing costumes on memdb: %w", err)
		}
		if !ok { //Same as an inner join: costumes without branch are left out.
			continue
		}
		costumes = append(costumes, view)
	}

	sort.SliceStable(costumes, func(i, j int) bool {
		a, b := costumes[i], costumes[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.Size != b.Size {
			return a.Size < b.Size
		}
		return a.ID < b.ID
	})
	return costumes, nil
}

func (store *InMemoryStore) GetCostumeByID(ctx context.Context, id int) (costume.CostumeView, error) {
	if err := ctx.Err(); err != nil {
		return costume.CostumeView{}, fmt.Errorf("searching costume by ID on memdb: %w", err)
	}
	txn, end := store.txn(false)
	defer end()

	raw, err := txn.First("costume", "id", id)
	if err != nil {
		return costume.CostumeView{}, fmt.Errorf("searching costume by ID on memdb: %w", err)
	}
	if raw == nil {
		return costume.CostumeView{}, fmt.Errorf("searching costume by ID on memdb: %w", costume.ErrResponseCostumeNotFound)
	}

	view, ok, err := joinBranch(txn, raw.(costume.Costume))
	if err != nil {
		return costume.CostumeView{}, fmt.Errorf("searching costume by ID on memdb: %w", err)
	}
	if !ok {
		return costume.CostumeView{}, fmt.Errorf("searching costume by ID on memdb: %w", costume.ErrResponseCostumeNotFound)
	}
	return view, nil
}

func joinBranch(txn *memdb.Txn, c costume.Costume) (costume.CostumeView, bool, error) {
	raw, err := txn.First("branch", "id", c.BranchID)
	if err != nil {
		return costume.CostumeView{}, false, err
	}
	if raw == nil {
		return costume.CostumeView{}, false, nil
	}
	b := raw.(costume.Branch)
	return costume.CostumeView{Costume: c, BranchName: b.Name, BranchLocation: b.Location}, true, nil
}

/* Highest costume ID in use, 0 for an empty inventory. */
func (store *InMemoryStore) MaxCostumeID(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("searching max costume ID on memdb: %w", err)
	}
	txn, end := store.txn(false)
	defer end()

	it, err := txn.Get("costume", "id")
	if err != nil {
		return 0, fmt.Errorf("searching max costume ID on memdb: %w", err)
	}
	maxID := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		if id := obj.(costume.Costume).ID; id > maxID {
			maxID = id
		}
	}
	return maxID, nil
}

func (store *InMemoryStore) CreateCostume(ctx context.Context, c costume.Costume) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("storing costume on memdb: %w", err)
	}
	txn, end := store.txn(true)
	defer end()

	existing, err := txn.First("costume", "id", c.ID)
	if err != nil {
		return fmt.Errorf("storing costume on memdb: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("storing costume %d on memdb: %w", c.ID, errDuplicatedID)
	}

	err = txn.Insert("costume", c)
	if err != nil {
		return fmt.Errorf("storing costume on memdb: %w", err)
	}
	return nil
}

// -- Branches --

func (store *InMemoryStore) ListBranches(ctx context.Context) ([]costume.Branch, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("listing branches on memdb: %w", err)
	}
	txn, end := store.txn(false)
	defer end()

	it, err := txn.Get("branch", "id")
	if err != nil {
		return nil, fmt.Errorf("listing branches on memdb: %w", err)
	}
	branches := []costume.Branch{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		branches = append(branches, obj.(costume.Branch))
	}

	sort.SliceStable(branches, func(i, j int) bool {
		if branches[i].Name != branches[j].Name {
			return branches[i].Name < branches[j].Name
		}
		return branches[i].ID < branches[j].ID
	})
	return branches, nil
}

func (store *InMemoryStore) GetBranchByID(ctx context.Context, id int) (costume.Branch, error) {
	if err := ctx.Err(); err != nil {
		return costume.Branch{}, fmt.Errorf("searching branch by ID on memdb: %w", err)
	}
	txn, end := store.txn(false)
	defer end()

	raw, err := txn.First("branch", "id", id)
	if err != nil {
		return costume.Branch{}, fmt.Errorf("searching branch by ID on memdb: %w", err)
	}
	if raw == nil {
		return costume.Branch{}, fmt.Errorf("searching branch by ID on memdb: %w", costume.ErrResponseBranchNotFound)
	}
	return raw.(costume.Branch), nil
}

// -- Rentals --

/* Rentals of a costume joined with their customer, newest first. */
func (store *InMemoryStore) ListRentalsByCostume(ctx context.Context, costumeID int) ([]costume.RentalRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("listing rentals on memdb: %w", err)
	}
	txn, end := store.txn(false)
	defer end()

	it, err := txn.Get("rental", "costume_id", costumeID)
	if err != nil {
		return nil, fmt.Errorf("listing rentals on memdb: %w", err)
	}

	rentals := []costume.RentalRecord{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		r := obj.(costume.Rental)
		raw, err := txn.First("customer", "id", r.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("listing rentals on memdb: %w", err)
		}
		if raw == nil {
			continue
		}
		rentals = append(rentals, costume.RentalRecord{Rental: r, Customer: raw.(costume.Customer)})
	}

	sort.SliceStable(rentals, func(i, j int) bool {
		a, b := rentals[i], rentals[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.After(b.Start)
		}
		return a.ID > b.ID
	})
	return rentals, nil
}

// -- Connections and transactions --

/* The in-memory store has no connection pool, the store itself is handed out. */
func (store *InMemoryStore) Acquire(ctx context.Context) (costume.Repository, costume.Releaser, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("acquiring connection: %w", err)
	}
	return store, noopRelease{}, nil
}

type noopRelease struct{}

func (noopRelease) Release() error {
	return nil
}

/*
Opens a write transaction. memdb allows a single writer at a time, so a
transaction started here serializes with every other one. Waiting for the
writer lock stops when ctx is done; a lock obtained after that is aborted.
*/
func (store *InMemoryStore) BeginTx(ctx context.Context, opts *sql.TxOptions) (costume.Repository, driver.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("beginning transaction: %w", err)
	}

	acquired := make(chan *memdb.Txn, 1)
	go func() {
		acquired <- store.db.Txn(true)
	}()

	var txn *memdb.Txn
	select {
	case txn = <-acquired:
	case <-ctx.Done():
		go func() {
			if late := <-acquired; late != nil {
				late.Abort()
			}
		}()
		return nil, nil, fmt.Errorf("beginning transaction: %w", ctx.Err())
	}
	if txn == nil {
		return nil, nil, fmt.Errorf("failed to create transaction")
	}

	txWrapper := &TxWrapper{txn: txn}
	txStore := &InMemoryStore{
		db:  store.db,
		exc: txWrapper.txn,
	}

	return txStore, txWrapper, nil
}

type TxWrapper struct {
	txn *memdb.Txn
}

func (tx *TxWrapper) Commit() error {
	tx.txn.Commit()
	return nil
}

func (tx *TxWrapper) Rollback() error {
	tx.txn.Abort()
	return nil
}
