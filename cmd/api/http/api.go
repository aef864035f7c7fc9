package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/kiwi-kloset/cmd/api/costume"
)

/*
A form value sent as JSON. Strings are kept as they are, numbers keep their
literal text and booleans become "1" or "0", so the API is validated exactly
like the HTML form.
*/
type formValue string

func (v *formValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
	case bytes.Equal(data, []byte("true")):
		*v = "1"
	case bytes.Equal(data, []byte("false")):
		*v = "0"
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = formValue(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = formValue(n.String())
	}
	return nil
}

type CostumeEntry struct {
	Name        formValue `json:"name"`
	Size        formValue `json:"size"`
	Category    formValue `json:"category"`
	DailyRate   formValue `json:"daily_rate"`
	BranchID    formValue `json:"branch_id"`
	IsAvailable formValue `json:"is_available"`
}

type CostumeResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Size           string `json:"size"`
	Category       string `json:"category"`
	DailyRate      string `json:"daily_rate"`
	BranchID       int    `json:"branch_id"`
	BranchName     string `json:"branch_name"`
	BranchLocation string `json:"branch_location"`
	IsAvailable    bool   `json:"is_available"`
}

type CreatedCostumeResponse struct {
	Message string          `json:"message"`
	Costume CostumeResponse `json:"costume"`
}

type BranchResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type RentalResponse struct {
	ID               int              `json:"id"`
	Customer         CustomerResponse `json:"customer"`
	Start            time.Time        `json:"start"`
	End              time.Time        `json:"end"`
	DurationHours    float64          `json:"duration_hours"`
	Duration         string           `json:"duration"`
	BillableDays     int              `json:"billable_days"`
	EstimatedRevenue string           `json:"estimated_revenue"`
}

type RentalHistoryResponse struct {
	Costume      CostumeResponse  `json:"costume"`
	Rentals      []RentalResponse `json:"rentals"`
	TotalCount   int              `json:"total_count"`
	TotalRevenue string           `json:"total_revenue"`
	Message      string           `json:"message,omitempty"`
}

type ValidationResponse struct {
	costume.ErrResponse
	Errors []string `json:"errors"`
}

/* Addresses a call to "/api/costumes" according to the requested action.  */
func (h *CostumeHandler) apiCostumes(w http.ResponseWriter, r *http.Request) {
	method := r.Method
	switch method {
	case http.MethodGet:
		h.listCostumes(w, r)
		return
	case http.MethodPost:
		h.createCostume(w, r)
		return
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
}

/* Addresses a call to "/api/costumes/(expected id here)/rentals".  */
func (h *CostumeHandler) apiCostumeRentals(w http.ResponseWriter, r *http.Request) {
	id, ok := strings.CutSuffix(strings.TrimPrefix(r.URL.Path, "/api/costumes/"), "/rentals")
	if !ok || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	history, err := h.costumeService.GetRentalHistory(r.Context(), id)
	if err != nil {
		h.responseError(w, r, err)
		return
	}

	responseJSON(w, http.StatusOK, historyToResponse(history))
}

func (h *CostumeHandler) apiBranches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	branches, err := h.costumeService.ListBranches(r.Context())
	if err != nil {
		h.responseError(w, r, err)
		return
	}

	resp := make([]BranchResponse, 0, len(branches))
	for _, b := range branches {
		resp = append(resp, BranchResponse{ID: b.ID, Name: b.Name, Location: b.Location})
	}
	responseJSON(w, http.StatusOK, resp)
}

func (h *CostumeHandler) listCostumes(w http.ResponseWriter, r *http.Request) {
	costumes, err := h.costumeService.ListCostumes(r.Context())
	if err != nil {
		h.responseError(w, r, err)
		return
	}

	resp := make([]CostumeResponse, 0, len(costumes))
	for _, c := range costumes {
		resp = append(resp, costumeToResponse(c))
	}
	responseJSON(w, http.StatusOK, resp)
}

/* Validates the entry, then stores the entry as a new costume. */
func (h *CostumeHandler) createCostume(w http.ResponseWriter, r *http.Request) {
	var entry CostumeEntry
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFormBytes)).Decode(&entry) //Read the Json body and save the entry
	if err != nil {
		log.Println(err)
		errR := costume.ErrResponse{
			Code:    costume.ErrResponseEntryInvalidJSON.Code,
			Message: costume.ErrResponseEntryInvalidJSON.Message + " " + err.Error(),
		}
		responseJSON(w, http.StatusBadRequest, errR)
		return
	}

	created, err := h.costumeService.CreateCostume(r.Context(), entryToCreateReq(entry))
	if err != nil {
		h.responseError(w, r, err)
		return
	}

	responseJSON(w, http.StatusCreated, CreatedCostumeResponse{
		Message: costume.CreatedMessage(created),
		Costume: costumeToResponse(created),
	})
}

func (h *CostumeHandler) responseError(w http.ResponseWriter, r *http.Request, err error) {
	var verr costume.ErrValidation
	if errors.As(err, &verr) {
		responseJSON(w, http.StatusBadRequest, ValidationResponse{
			ErrResponse: costume.ErrResponseValidation,
			Errors:      verr.Messages,
		})
		return
	}

	if kind := costume.KindOf(err); kind != costume.KindInvalidInput && kind != costume.KindReferenceNotFound {
		logRequestError(r, err)
	}
	responseJSON(w, statusFor(err), errorResponse(err))
}

func entryToCreateReq(e CostumeEntry) costume.CreateCostumeRequest {
	return costume.CreateCostumeRequest{
		Name:        string(e.Name),
		Size:        string(e.Size),
		Category:    string(e.Category),
		DailyRate:   string(e.DailyRate),
		BranchID:    string(e.BranchID),
		IsAvailable: string(e.IsAvailable),
	}
}

func costumeToResponse(c costume.CostumeView) CostumeResponse {
	return CostumeResponse{
		ID:             c.ID,
		Name:           c.Name,
		Size:           c.Size,
		Category:       c.Category,
		DailyRate:      c.DailyRate.StringFixed(2),
		BranchID:       c.BranchID,
		BranchName:     c.BranchName,
		BranchLocation: c.BranchLocation,
		IsAvailable:    c.IsAvailable,
	}
}

func historyToResponse(h costume.RentalHistory) RentalHistoryResponse {
	resp := RentalHistoryResponse{
		Costume:      costumeToResponse(h.Costume),
		Rentals:      make([]RentalResponse, 0, len(h.Rentals)),
		TotalCount:   h.TotalCount,
		TotalRevenue: h.TotalRevenue.StringFixed(2),
	}
	for _, r := range h.Rentals {
		resp.Rentals = append(resp.Rentals, RentalResponse{
			ID: r.ID,
			Customer: CustomerResponse{
				Name:  r.Customer.FullName(),
				Email: r.Customer.Email,
				Phone: r.Customer.Phone,
			},
			Start:            r.Start,
			End:              r.End,
			DurationHours:    r.DurationHours,
			Duration:         r.Duration,
			BillableDays:     r.BillableDays,
			EstimatedRevenue: r.EstimatedRevenue.StringFixed(2),
		})
	}
	if h.NoHistory() {
		resp.Message = costume.NoHistoryMessage
	}
	return resp
}

func responseJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Println(err)
		return
	}
}
