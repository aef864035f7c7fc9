package costume

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const FieldMaxLength = 255

var DailyRateMax = decimal.RequireFromString("999.99")

var errDailyRateOutOfRange = errors.New("daily rate out of range")

// Exponent window of a parsed daily rate. Anything outside it is rejected
// before the value is compared or rounded.
const (
	dailyRateMinExponent = -20
	dailyRateMaxExponent = 3
)

type costumeEntry struct {
	Name        string `validate:"required,max=255"`
	Size        string `validate:"required,max=255"`
	Category    string `validate:"required,max=255"`
	DailyRate   string `validate:"required,dailyrate"`
	BranchID    string `validate:"required,positiveint"`
	IsAvailable string `validate:"required,oneof=0 1"`
}

// messages by struct field, then by the failing tag.
var validationMessages = map[string]map[string]string{
	"Name": {
		"required": "Costume name is required.",
		"max":      "Costume name must be 255 characters or less.",
	},
	"Size": {
		"required": "Size is required.",
		"max":      "Size must be 255 characters or less.",
	},
	"Category": {
		"required": "Category is required.",
		"max":      "Category must be 255 characters or less.",
	},
	"DailyRate": {
		"required":  "Daily rate is required.",
		"dailyrate": "Daily rate must be a valid number between 0.00 and 999.99.",
	},
	"BranchID": {
		"required":    "Branch selection is required.",
		"positiveint": "Please select a valid branch.",
	},
	"IsAvailable": {
		"required": "Availability status is required.",
		"oneof":    "Please select a valid availability status.",
	},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("dailyrate", func(fl validator.FieldLevel) bool {
		_, err := ParseDailyRate(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("positiveint", func(fl validator.FieldLevel) bool {
		_, err := parsePositiveInt(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

/* Parses a daily rate and checks it is within 0.00 and 999.99, both inclusive. */
func ParseDailyRate(s string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing daily rate: %w", err)
	}
	if exp := rate.Exponent(); exp < dailyRateMinExponent || exp > dailyRateMaxExponent {
		return decimal.Decimal{}, errDailyRateOutOfRange
	}
	if rate.IsNegative() || rate.GreaterThan(DailyRateMax) {
		return decimal.Decimal{}, errDailyRateOutOfRange
	}
	return rate, nil
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%d is not a positive integer", n)
	}
	return n, nil
}

/*
Validates every field of the entry and converts it into a Costume without ID.
All violations are collected into an ErrValidation, none is short-circuited.
*/
func ValidateCostume(req CreateCostumeRequest) (Costume, error) {
	entry := costumeEntry{
		Name:        strings.TrimSpace(req.Name),
		Size:        strings.TrimSpace(req.Size),
		Category:    strings.TrimSpace(req.Category),
		DailyRate:   strings.TrimSpace(req.DailyRate),
		BranchID:    strings.TrimSpace(req.BranchID),
		IsAvailable: strings.TrimSpace(req.IsAvailable),
	}

	err := validate.Struct(entry)
	if err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return Costume{}, fmt.Errorf("validating costume: %w", err)
		}
		messages := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			messages = append(messages, validationMessage(fe.StructField(), fe.Tag()))
		}
		return Costume{}, ErrValidation{Messages: messages}
	}

	rate, _ := ParseDailyRate(entry.DailyRate)
	branchID, _ := parsePositiveInt(entry.BranchID)

	return Costume{
		Name:        entry.Name,
		Size:        entry.Size,
		Category:    entry.Category,
		DailyRate:   rate.Round(2),
		BranchID:    branchID,
		IsAvailable: entry.IsAvailable == "1",
	}, nil
}

func validationMessage(field, tag string) string {
	if msg, ok := validationMessages[field][tag]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid.", field)
}

/*
Parses the costume_id of a rental history lookup. An empty value and an
invalid value are reported with different messages.
*/
func ParseCostumeID(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrResponseCostumeIDMissing
	}
	id, err := parsePositiveInt(raw)
	if err != nil {
		return 0, ErrResponseCostumeIDInvalid
	}
	return id, nil
}
