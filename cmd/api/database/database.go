package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/kiwi-kloset/cmd/api/config"
	"github.com/kiwi-kloset/cmd/api/costume"

	_ "github.com/golang-migrate/migrate/v4/source/file"

	_ "github.com/lib/pq"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type Store struct {
	db  *sql.DB
	bgn txBeginner
	exc *Exectuor
}

type Exectuor struct {
	DBTX
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:  db,
		bgn: db,
		exc: NewExc(db),
	}
}

func NewExc(dbtx DBTX) *Exectuor {
	return &Exectuor{DBTX: dbtx}
}

/*
Checks out one dedicated connection from the pool. Every query of the
returned repository, transactions included, runs on that connection until
it is released.
*/
func (store *Store) Acquire(ctx context.Context) (costume.Repository, costume.Releaser, error) {
	conn, err := store.db.Conn(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("acquiring connection: %w", err)
	}

	connRepo := &Store{
		db:  store.db,
		bgn: conn,
		exc: NewExc(conn),
	}
	return connRepo, &connRelease{conn: conn}, nil
}

type connRelease struct {
	once sync.Once
	conn *sql.Conn
	err  error
}

/* Gives the connection back to the pool. Safe to call more than once. */
func (r *connRelease) Release() error {
	r.once.Do(func() {
		if r.conn == nil {
			return
		}
		r.err = r.conn.Close()
	})
	return r.err
}

func (store *Store) BeginTx(ctx context.Context, opts *sql.TxOptions) (costume.Repository, driver.Tx, error) {
	tx, err := store.bgn.BeginTx(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("beginning transaction: %w", err)
	}

	txRepo := &Store{
		db:  store.db,
		bgn: store.bgn,
		exc: NewExc(tx),
	}
	return txRepo, tx, nil
}

/* Connects to the database described by cfg and returns a pointer to a valid DB object (*sql.DB). */
func ConnectDb(cfg config.Database) (*sql.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Println("opening database:", err)
		return nil, fmt.Errorf("connecting to db, openning: %w", err)
	}

	err = sqlDB.Ping()
	if err != nil {
		log.Println("pinging database:", err)
		sqlDB.Close()
		return nil, fmt.Errorf("connecting to db, pingging: %w", err)
	}

	log.Println("Successfully connected!")
	return sqlDB, nil
}

func MigrationUp(store *Store, path string) error {
	driver, err := postgres.WithInstance(store.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", path),
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}

	err = m.Up()
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}
	return nil
}

const costumeViewColumns = `c.id, c.name, c.size, c.category, c.daily_rate, c.branch_id, c.is_available,
	b.name, b.location`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCostumeView(row rowScanner) (costume.CostumeView, error) {
	var c costume.CostumeView
	var available int
	err := row.Scan(&c.ID, &c.Name, &c.Size, &c.Category, &c.DailyRate, &c.BranchID, &available, &c.BranchName, &c.BranchLocation)
	if err != nil {
		return costume.CostumeView{}, err
	}
	c.IsAvailable = available == 1
	return c, nil
}

/* Returns every costume joined with its branch, ordered by name and size. */
func (store *Store) ListCostumes(ctx context.Context) ([]costume.CostumeView, error) {
	sqlStatement := `SELECT ` + costumeViewColumns + `
	FROM costumes c
	JOIN branches b ON c.branch_id = b.id
	ORDER BY c.name, c.size, c.id`
	rows, err := store.exc.QueryContext(ctx, sqlStatement)
	if err != nil {
		return nil, fmt.Errorf("listing costumes on db: %w", err)
	}
	defer rows.Close()

	costumes := []costume.CostumeView{}
	for rows.Next() {
		c, err := scanCostumeView(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning costume on db: %w", err)
		}
		costumes = append(costumes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing costumes on db: %w", err)
	}

	return costumes, nil
}

func (store *Store) ListBranches(ctx context.Context) ([]costume.Branch, error) {
	sqlStatement := `SELECT id, name, location FROM branches ORDER BY name, id`
	rows, err := store.exc.QueryContext(ctx, sqlStatement)
	if err != nil {
		return nil, fmt.Errorf("listing branches on db: %w", err)
	}
	defer rows.Close()

	branches := []costume.Branch{}
	for rows.Next() {
		var b costume.Branch
		err := rows.Scan(&b.ID, &b.Name, &b.Location)
		if err != nil {
			return nil, fmt.Errorf("scanning branch on db: %w", err)
		}
		branches = append(branches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing branches on db: %w", err)
	}

	return branches, nil
}

func (store *Store) GetBranchByID(ctx context.Context, id int) (costume.Branch, error) {
	sqlStatement := `SELECT id, name, location FROM branches WHERE id = $1`
	var b costume.Branch
	err := store.exc.QueryRowContext(ctx, sqlStatement, id).Scan(&b.ID, &b.Name, &b.Location)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return costume.Branch{}, fmt.Errorf("searching branch by ID on db: %w", costume.ErrResponseBranchNotFound)
		}
		return costume.Branch{}, fmt.Errorf("searching branch by ID on db: %w", err)
	}

	return b, nil
}

/* Searches a costume, joined with its branch, by ID. */
func (store *Store) GetCostumeByID(ctx context.Context, id int) (costume.CostumeView, error) {
	sqlStatement := `SELECT ` + costumeViewColumns + `
	FROM costumes c
	JOIN branches b ON c.branch_id = b.id
	WHERE c.id = $1`
	c, err := scanCostumeView(store.exc.QueryRowContext(ctx, sqlStatement, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return costume.CostumeView{}, fmt.Errorf("searching costume by ID on db: %w", costume.ErrResponseCostumeNotFound)
		}
		return costume.CostumeView{}, fmt.Errorf("searching costume by ID on db: %w", err)
	}

	return c, nil
}

/* Highest costume ID in use, 0 for an empty inventory. */
func (store *Store) MaxCostumeID(ctx context.Context) (int, error) {
	var maxID int
	err := store.exc.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) FROM costumes`).Scan(&maxID)
	if err != nil {
		return 0, fmt.Errorf("searching max costume ID on db: %w", err)
	}
	return maxID, nil
}

func (store *Store) CreateCostume(ctx context.Context, c costume.Costume) error {
	sqlStatement := `
	INSERT INTO costumes (id, name, size, category, daily_rate, branch_id, is_available)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := store.exc.ExecContext(ctx, sqlStatement, c.ID, c.Name, c.Size, c.Category, c.DailyRate, c.BranchID, availability(c.IsAvailable))
	if err != nil {
		return fmt.Errorf("storing costume on db: %w", err)
	}
	return nil
}

/* Rentals of a costume joined with their customer, newest first. */
func (store *Store) ListRentalsByCostume(ctx context.Context, costumeID int) ([]costume.RentalRecord, error) {
	sqlStatement := `SELECT r.id, r.costume_id, r.customer_id, r.start_datetime, r.end_datetime,
	cu.first_name, cu.last_name, cu.email, cu.phone
	FROM rentals r
	JOIN customers cu ON r.customer_id = cu.id
	WHERE r.costume_id = $1
	ORDER BY r.start_datetime DESC, r.id DESC`
	rows, err := store.exc.QueryContext(ctx, sqlStatement, costumeID)
	if err != nil {
		return nil, fmt.Errorf("listing rentals on db: %w", err)
	}
	defer rows.Close()

	rentals := []costume.RentalRecord{}
	for rows.Next() {
		var r costume.RentalRecord
		err := rows.Scan(&r.ID, &r.CostumeID, &r.CustomerID, &r.Start, &r.End,
			&r.Customer.FirstName, &r.Customer.LastName, &r.Customer.Email, &r.Customer.Phone)
		if err != nil {
			return nil, fmt.Errorf("scanning rental on db: %w", err)
		}
		r.Customer.ID = r.CustomerID
		rentals = append(rentals, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing rentals on db: %w", err)
	}

	return rentals, nil
}

func availability(available bool) int {
	if available {
		return 1
	}
	return 0
}
