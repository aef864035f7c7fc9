package costume

import (
	"time"

	"github.com/shopspring/decimal"
)

// Branch is a physical rental location. Read-only reference data.
type Branch struct {
	ID       int
	Name     string
	Location string
}

type Costume struct {
	ID          int
	Name        string
	Size        string
	Category    string
	DailyRate   decimal.Decimal
	BranchID    int
	IsAvailable bool
}

/* A costume joined with the name and location of its branch. */
type CostumeView struct {
	Costume
	BranchName     string
	BranchLocation string
}

type Customer struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

type Rental struct {
	ID         int
	CostumeID  int
	CustomerID int
	Start      time.Time
	End        time.Time
}

/* A rental joined with the identity and contact fields of its customer. */
type RentalRecord struct {
	Rental
	Customer Customer
}

type RentalView struct {
	RentalRecord
	DurationHours    float64
	Duration         string
	BillableDays     int
	EstimatedRevenue decimal.Decimal
}

/* Builds the derived duration and revenue values of a rental for the given daily rate. */
func NewRentalView(r RentalRecord, dailyRate decimal.Decimal) RentalView {
	hours := DurationHours(r.Start, r.End)
	return RentalView{
		RentalRecord:     r,
		DurationHours:    hours,
		Duration:         FormatDuration(hours),
		BillableDays:     BillableDays(hours),
		EstimatedRevenue: EstimatedRevenue(hours, dailyRate),
	}
}

const NoHistoryMessage = "Costume found, but no rental history exists for this costume yet."

type RentalHistory struct {
	Costume      CostumeView
	Rentals      []RentalView
	TotalCount   int
	TotalRevenue decimal.Decimal
}

// NoHistory reports an existing costume that was never rented.
func (h RentalHistory) NoHistory() bool {
	return h.TotalCount == 0
}

/* Raw text fields of the add costume form. */
type CreateCostumeRequest struct {
	Name        string
	Size        string
	Category    string
	DailyRate   string
	BranchID    string
	IsAvailable string
}
