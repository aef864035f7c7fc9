package costume

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type ErrResponse struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_message"`
}

func (e ErrResponse) Error() string {
	return e.Message
}

var ErrResponseValidation = ErrResponse{100, "Please correct the following errors:"}
var ErrResponseEntryInvalidJSON = ErrResponse{101, "invalid json request."}
var ErrResponseConnection = ErrResponse{102, "Unable to connect to the database. Please check your connection settings."}
var ErrResponseCostumesQuery = ErrResponse{103, "Failed to retrieve costume information from the database."}
var ErrResponseBranchesQuery = ErrResponse{104, "Failed to retrieve branch information from the database."}
var ErrResponseBranchNotFound = ErrResponse{105, "Selected branch does not exist. Please choose a valid branch."}
var ErrResponseCostumeNotAdded = ErrResponse{106, "Failed to add costume to the database. Please try again."}
var ErrResponseCostumeNotRetrieved = ErrResponse{107, "Costume was added but could not retrieve details."}
var ErrResponseCostumeIDMissing = ErrResponse{108, "No costume ID provided. Please specify a costume ID to view its rental history."}
var ErrResponseRequestTimeout = ErrResponse{109, "error from context:"}
var ErrResponseCostumeIDInvalid = ErrResponse{110, "Invalid costume ID provided. Please enter a valid positive number."}
var ErrResponseCostumeNotFound = ErrResponse{111, "costume not found"}
var ErrResponseRentalsQuery = ErrResponse{112, "Failed to retrieve rental information from the database."}
var ErrResponseNotFormSubmission = ErrResponse{113, "This page should be accessed by submitting the add costume form."}
var ErrResponseUnexpected = ErrResponse{114, "An unexpected error occurred. Please try again."}
var ErrResponseInvalidForm = ErrResponse{115, "The submitted form could not be read. Please check the values and try again."}

/* Collected field level violations of a costume entry, in form order. */
type ErrValidation struct {
	Messages []string
}

func (e ErrValidation) Error() string {
	return ErrResponseValidation.Message + " " + strings.Join(e.Messages, " ")
}

func (e ErrValidation) Is(target error) bool {
	t, ok := target.(ErrResponse)
	return ok && t == ErrResponseValidation
}

/* A requested costume that does not exist. Matches ErrResponseCostumeNotFound. */
type ErrCostumeNotFound struct {
	ID int
}

func (e ErrCostumeNotFound) Error() string {
	return fmt.Sprintf("No costume found with ID: %d. Please check the costume ID and try again.", e.ID)
}

func (e ErrCostumeNotFound) Is(target error) bool {
	t, ok := target.(ErrResponse)
	return ok && t == ErrResponseCostumeNotFound
}

func (e ErrCostumeNotFound) Response() ErrResponse {
	return ErrResponse{Code: ErrResponseCostumeNotFound.Code, Message: e.Error()}
}

func NewErrCostumeNotFound(id int) ErrCostumeNotFound {
	return ErrCostumeNotFound{ID: id}
}

type ErrNotificationFailed struct {
	statusCode int
}

func (e ErrNotificationFailed) Error() string {
	return fmt.Sprintf("ntfy wrong response - want: 200 OK, got: %d", e.statusCode)
}

func NewErrNotificationFailed(statusCode int) ErrNotificationFailed {
	return ErrNotificationFailed{statusCode: statusCode}
}

type ErrKind int

const (
	KindUnknown ErrKind = iota
	KindConnection
	KindValidation
	KindInvalidInput
	KindReferenceNotFound
	KindQuery
	KindOperation
	KindTimeout
)

/* Classifies an error returned by the Service into one of the failure kinds shown to staff. */
func KindOf(err error) ErrKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return KindTimeout
	case errors.Is(err, ErrResponseConnection):
		return KindConnection
	case errors.Is(err, ErrResponseValidation), errors.Is(err, ErrResponseEntryInvalidJSON):
		return KindValidation
	case errors.Is(err, ErrResponseCostumeIDMissing), errors.Is(err, ErrResponseCostumeIDInvalid):
		return KindInvalidInput
	case errors.Is(err, ErrResponseBranchNotFound), errors.Is(err, ErrResponseCostumeNotFound):
		return KindReferenceNotFound
	case errors.Is(err, ErrResponseCostumesQuery), errors.Is(err, ErrResponseBranchesQuery), errors.Is(err, ErrResponseRentalsQuery):
		return KindQuery
	case errors.Is(err, ErrResponseCostumeNotAdded), errors.Is(err, ErrResponseCostumeNotRetrieved):
		return KindOperation
	default:
		return KindUnknown
	}
}
