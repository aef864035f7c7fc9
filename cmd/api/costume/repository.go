package costume

import (
	"context"
	"database/sql"
	"database/sql/driver"
)

type Repository interface {
	Acquire(ctx context.Context) (Repository, Releaser, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (Repository, driver.Tx, error)
	ListCostumes(ctx context.Context) ([]CostumeView, error)
	ListBranches(ctx context.Context) ([]Branch, error)
	GetBranchByID(ctx context.Context, id int) (Branch, error)
	GetCostumeByID(ctx context.Context, id int) (CostumeView, error)
	MaxCostumeID(ctx context.Context) (int, error)
	CreateCostume(ctx context.Context, c Costume) error
	ListRentalsByCostume(ctx context.Context, costumeID int) ([]RentalRecord, error)
}

// Releaser gives back a connection checked out by Acquire. Release is idempotent.
type Releaser interface {
	Release() error
}

type Notifier interface {
	CostumeCreated(ctx context.Context, c CostumeView) error
}
