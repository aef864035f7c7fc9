package costume

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

type ServiceAPI interface {
	ListCostumes(ctx context.Context) ([]CostumeView, error)
	ListBranches(ctx context.Context) ([]Branch, error)
	CreateCostume(ctx context.Context, req CreateCostumeRequest) (CostumeView, error)
	GetRentalHistory(ctx context.Context, costumeID string) (RentalHistory, error)
}

type Service struct {
	repo                 Repository
	ntfy                 Notifier
	notificationsTimeout time.Duration
}

func NewService(repo Repository, ntfy Notifier, notificationsTimeout time.Duration) *Service {
	return &Service{
		repo:                 repo,
		ntfy:                 ntfy,
		notificationsTimeout: notificationsTimeout,
	}
}

/* Lists every costume joined with its branch, ordered by name and size. */
func (s *Service) ListCostumes(ctx context.Context) ([]CostumeView, error) {
	conn, release, err := s.acquire(ctx, "ListCostumes")
	if err != nil {
		return []CostumeView{}, err
	}
	defer s.release(release)

	costumes, err := conn.ListCostumes(ctx)
	if err != nil {
		return []CostumeView{}, storeFailure("ListCostumes", err, ErrResponseCostumesQuery)
	}
	return costumes, nil
}

/* Lists the branches a new costume can be assigned to. */
func (s *Service) ListBranches(ctx context.Context) ([]Branch, error) {
	conn, release, err := s.acquire(ctx, "ListBranches")
	if err != nil {
		return []Branch{}, err
	}
	defer s.release(release)

	branches, err := conn.ListBranches(ctx)
	if err != nil {
		return []Branch{}, storeFailure("ListBranches", err, ErrResponseBranchesQuery)
	}
	return branches, nil
}

/*
Validates the entry, checks its branch, assigns the next costume ID (current
maximum plus one) and stores it. The ID assignment and the insert share one
transaction, so two concurrent creations can never write the same ID.
*/
func (s *Service) CreateCostume(ctx context.Context, req CreateCostumeRequest) (CostumeView, error) {
	newCostume, err := ValidateCostume(req)
	if err != nil {
		return CostumeView{}, err
	}

	conn, release, err := s.acquire(ctx, "CreateCostume")
	if err != nil {
		return CostumeView{}, err
	}
	defer s.release(release)

	txRepo, tx, err := conn.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return CostumeView{}, storeFailure("CreateCostume", err, ErrResponseCostumeNotAdded)
	}
	committed := false
	defer func() {
		if !committed {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Println("rolling back costume creation:", rollbackErr)
			}
		}
	}()

	_, err = txRepo.GetBranchByID(ctx, newCostume.BranchID)
	if err != nil {
		if errors.Is(err, ErrResponseBranchNotFound) {
			return CostumeView{}, ErrResponseBranchNotFound
		}
		return CostumeView{}, storeFailure("CreateCostume", err, ErrResponseCostumeNotAdded)
	}

	maxID, err := txRepo.MaxCostumeID(ctx)
	if err != nil {
		return CostumeView{}, storeFailure("CreateCostume", err, ErrResponseCostumeNotAdded)
	}
	newCostume.ID = maxID + 1

	err = txRepo.CreateCostume(ctx, newCostume)
	if err != nil {
		return CostumeView{}, storeFailure("CreateCostume", err, ErrResponseCostumeNotAdded)
	}

	err = tx.Commit()
	if err != nil {
		return CostumeView{}, storeFailure("CreateCostume", err, ErrResponseCostumeNotAdded)
	}
	committed = true

	created, err := conn.GetCostumeByID(ctx, newCostume.ID)
	if err != nil {
		return CostumeView{}, storeFailure("CreateCostume", err, ErrResponseCostumeNotRetrieved)
	}

	if s.ntfy != nil {
		go s.notifyCostumeCreated(created)
	}

	return created, nil
}

/* Message shown to staff once a costume is stored. */
func CreatedMessage(c CostumeView) string {
	return fmt.Sprintf("Costume successfully added to the inventory with ID #%d!", c.ID)
}

/*
Looks up a costume and its rentals, newest first, with the duration and
estimated revenue of each rental and the totals over all of them.
*/
func (s *Service) GetRentalHistory(ctx context.Context, costumeID string) (RentalHistory, error) {
	id, err := ParseCostumeID(costumeID)
	if err != nil {
		return RentalHistory{}, err
	}

	conn, release, err := s.acquire(ctx, "GetRentalHistory")
	if err != nil {
		return RentalHistory{}, err
	}
	defer s.release(release)

	costume, err := conn.GetCostumeByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrResponseCostumeNotFound) {
			return RentalHistory{}, NewErrCostumeNotFound(id)
		}
		return RentalHistory{}, storeFailure("GetRentalHistory", err, ErrResponseCostumesQuery)
	}

	records, err := conn.ListRentalsByCostume(ctx, id)
	if err != nil {
		return RentalHistory{}, storeFailure("GetRentalHistory", err, ErrResponseRentalsQuery)
	}

	history := RentalHistory{
		Costume:      costume,
		Rentals:      make([]RentalView, 0, len(records)),
		TotalRevenue: decimal.Zero,
	}
	for _, r := range records {
		view := NewRentalView(r, costume.DailyRate)
		history.Rentals = append(history.Rentals, view)
		history.TotalRevenue = history.TotalRevenue.Add(view.EstimatedRevenue)
	}
	history.TotalCount = len(history.Rentals)

	return history, nil
}

func (s *Service) acquire(ctx context.Context, op string) (Repository, Releaser, error) {
	conn, release, err := s.repo.Acquire(ctx)
	if err != nil {
		return nil, nil, storeFailure(op, err, ErrResponseConnection)
	}
	return conn, release, nil
}

func (s *Service) release(r Releaser) {
	err := r.Release()
	if err != nil {
		log.Println("releasing connection:", err)
	}
}

func (s *Service) notifyCostumeCreated(c CostumeView) {
	ctx, cancel := context.WithTimeout(context.Background(), s.notificationsTimeout)
	defer cancel()

	err := s.ntfy.CostumeCreated(ctx, c)
	if err != nil {
		log.Println("notifying costume creation:", err)
	}
}

/*
Converts a store error into the response shown to staff. The store error
itself is only logged. Context errors keep their chain so the caller can
answer with a timeout.
*/
func storeFailure(op string, err error, response ErrResponse) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("timeout on call to %s: %w", op, err)
	}
	log.Printf("%s: %v", op, err)
	return response
}
