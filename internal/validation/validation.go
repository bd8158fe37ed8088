// Package validation holds the pure checks behind interactive input and file paths.
// Each check returns the accepted value or a typed error; none of them prompt.
package validation

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/fileutils"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/parsererror"

	"github.com/shopspring/decimal"
)

// CSVExtension is the only file extension accepted for ledger files.
const CSVExtension = ".csv"

// InvalidChoice is returned by ParseMenuChoice for non-numeric input.
const InvalidChoice = -1

// User-facing validation messages
const (
	MsgInvalidDate       = "Invalid date format. Use yyyy-MM-dd."
	MsgInvalidNumber     = "Enter a valid number."
	MsgAmountNotPositive = "Amount must be greater than 0."
	MsgInvalidCategory   = "Invalid category. Please enter valid category."
	MsgEmptyInput        = "Input cannot be empty."
)

// ErrNotPositive is wrapped by amount errors for zero or negative values.
var ErrNotPositive = errors.New("amount is not positive")

// ErrUnknownCategory is wrapped by category errors.
var ErrUnknownCategory = errors.New("unknown category")

// ErrBlank is wrapped by non-blank errors.
var ErrBlank = errors.New("blank input")

// ParseEntryDate accepts a YYYY-MM-DD calendar date.
func ParseEntryDate(input string) (time.Time, error) {
	date, err := dateutils.ParseISODate(input)
	if err != nil {
		return time.Time{}, &parsererror.InvalidInputError{Input: input, Msg: MsgInvalidDate, Err: err}
	}
	return date, nil
}

// ParsePositiveAmount accepts a decimal number strictly greater than zero.
func ParsePositiveAmount(input string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return decimal.Zero, &parsererror.InvalidInputError{Input: input, Msg: MsgInvalidNumber, Err: err}
	}
	if !amount.IsPositive() {
		return decimal.Zero, &parsererror.InvalidInputError{Input: input, Msg: MsgAmountNotPositive, Err: ErrNotPositive}
	}
	return amount, nil
}

// MatchCategory returns the canonical spelling of input within set.
func MatchCategory(set models.CategorySet, input string) (string, error) {
	category, ok := set.Match(input)
	if !ok {
		return "", &parsererror.InvalidInputError{Input: input, Msg: MsgInvalidCategory, Err: ErrUnknownCategory}
	}
	return category, nil
}

// RequireNonBlank returns input trimmed, rejecting whitespace-only values.
func RequireNonBlank(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", &parsererror.InvalidInputError{Input: input, Msg: MsgEmptyInput, Err: ErrBlank}
	}
	return trimmed, nil
}

// ParseMenuChoice parses a menu selection, returning InvalidChoice when the
// input is not an integer.
func ParseMenuChoice(input string) int {
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return InvalidChoice
	}
	return choice
}

// IsConfirmation reports whether input is an explicit "yes".
func IsConfirmation(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "yes")
}

// ValidateSavePath checks that a save destination has the .csv extension.
func ValidateSavePath(path string) error {
	if !fileutils.HasExtension(path, CSVExtension) {
		return &parsererror.ValidationError{FilePath: path, Reason: "file must have .csv extension"}
	}
	return nil
}

// ValidateLoadPath checks that a load source exists, is a regular file and
// has the .csv extension.
func ValidateLoadPath(path string) error {
	if !fileutils.PathExists(path) {
		return &parsererror.ValidationError{FilePath: path, Reason: "file does not exist"}
	}
	if !fileutils.IsRegularFile(path) {
		return &parsererror.ValidationError{FilePath: path, Reason: "not a regular file"}
	}
	if !fileutils.HasExtension(path, CSVExtension) {
		return &parsererror.ValidationError{FilePath: path, Reason: "file must have .csv extension"}
	}
	return nil
}
