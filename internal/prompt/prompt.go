// Package prompt implements the validated input routines of the tracker.
// Each reader asks, validates with the validation package and asks again until
// the answer is acceptable; a rejected answer never reaches the caller.
package prompt

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"fjacquet/expense-tracker/internal/console"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/parsererror"
	"fjacquet/expense-tracker/internal/validation"

	"github.com/shopspring/decimal"
)

// ErrInputClosed is returned once the input stream has no more lines.
// It is the only error a reader returns.
var ErrInputClosed = errors.New("input closed")

// Prompt texts
const (
	DatePrompt   = "Enter date (YYYY-MM-DD): "
	AmountPrompt = "Enter amount: "
)

// Prompter reads answers line by line from an input stream.
type Prompter struct {
	in  *bufio.Reader
	out *console.Printer
}

// NewPrompter creates a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out *console.Printer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine prints text and returns the next line without its line ending.
func (p *Prompter) ReadLine(text string) (string, error) {
	p.out.Prompt(text)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", ErrInputClosed
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readValid asks until parse accepts the answer, reporting each rejection.
func readValid[T any](p *Prompter, text string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := p.ReadLine(text)
		if err != nil {
			var zero T
			return zero, err
		}
		value, err := parse(line)
		if err == nil {
			return value, nil
		}
		p.out.Error("%s", rejection(err))
	}
}

func rejection(err error) string {
	var inputErr *parsererror.InvalidInputError
	if errors.As(err, &inputErr) {
		return inputErr.Msg
	}
	return err.Error()
}

// Date reads a YYYY-MM-DD calendar date.
func (p *Prompter) Date(text string) (time.Time, error) {
	return readValid(p, text, validation.ParseEntryDate)
}

// PositiveAmount reads a number strictly greater than zero.
func (p *Prompter) PositiveAmount(text string) (decimal.Decimal, error) {
	return readValid(p, text, validation.ParsePositiveAmount)
}

// Category reads a member of set, returning its canonical spelling.
func (p *Prompter) Category(set models.CategorySet) (string, error) {
	text := "Enter category (" + set.String() + "): "
	return readValid(p, text, func(s string) (string, error) {
		return validation.MatchCategory(set, s)
	})
}

// NonEmpty reads a line that is not blank, returned trimmed.
func (p *Prompter) NonEmpty(text string) (string, error) {
	return readValid(p, text, validation.RequireNonBlank)
}

// MenuChoice reads one menu selection. Unlike the other readers it does not
// retry: non-numeric input yields validation.InvalidChoice.
func (p *Prompter) MenuChoice(text string) (int, error) {
	line, err := p.ReadLine(text)
	if err != nil {
		return validation.InvalidChoice, err
	}
	return validation.ParseMenuChoice(line), nil
}

// Confirm reads a single answer and reports whether it was "yes".
func (p *Prompter) Confirm(text string) (bool, error) {
	line, err := p.ReadLine(text)
	if err != nil {
		return false, err
	}
	return validation.IsConfirmation(line), nil
}
