// Package csvstore saves the ledger to CSV files and loads it back.
//
// The on-disk format has no header and one transaction per line:
//
//	date,amount,category,isIncome
//
// where date uses the configured layout (ISO by default), amount has exactly
// two decimals and isIncome is "true" or "false". Fields are never quoted or
// escaped: a line is split on the delimiter and nothing else.
package csvstore

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/fileutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/parsererror"
	"fjacquet/expense-tracker/internal/validation"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

const parserName = "csv"

// fieldCount is the number of fields of a well-formed line.
const fieldCount = 4

// Options controls the file format.
type Options struct {
	Delimiter         rune
	DateLayout        string   // used for saving and tried first when loading
	LegacyDateLayouts []string // also accepted when loading
}

// DefaultOptions returns the format written by this release.
func DefaultOptions() Options {
	return Options{
		Delimiter:         ',',
		DateLayout:        dateutils.DateLayoutISO,
		LegacyDateLayouts: []string{dateutils.DateLayoutLegacyCSV},
	}
}

// Appender receives transactions as they are loaded.
type Appender interface {
	Append(tx models.Transaction)
}

// LoadResult reports what a Load call did.
type LoadResult struct {
	Loaded  int // transactions appended
	Skipped int // lines ignored because they did not have four fields
}

// row is the serialized form of one transaction. Field order is the column order.
type row struct {
	Date     string `csv:"date"`
	Amount   string `csv:"amount"`
	Category string `csv:"category"`
	IsIncome string `csv:"is_income"`
}

// Store reads and writes ledger files.
type Store struct {
	opts   Options
	logger logging.Logger
}

// NewStore creates a Store. Zero-valued options fall back to DefaultOptions.
func NewStore(opts Options, logger logging.Logger) *Store {
	defaults := DefaultOptions()
	if opts.Delimiter == 0 {
		opts.Delimiter = defaults.Delimiter
	}
	if opts.DateLayout == "" {
		opts.DateLayout = defaults.DateLayout
	}
	return &Store{
		opts:   opts,
		logger: logger.WithField(logging.FieldComponent, "csvstore"),
	}
}

// Exists reports whether something already occupies path.
func (s *Store) Exists(path string) bool {
	return fileutils.PathExists(path)
}

// Save writes every transaction to path in order, replacing any existing
// content. The path must end in .csv; otherwise nothing is written.
func (s *Store) Save(path string, transactions []models.Transaction) (err error) {
	if err := validation.ValidateSavePath(path); err != nil {
		return err
	}

	log := s.logger.WithFields(
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCount, len(transactions)))
	log.Debug("Writing transactions to CSV file")

	file, err := fileutils.CreateFile(path, models.PermissionDataFile, models.PermissionDirectory)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.WithError(closeErr).Warn("Failed to close file")
			if err == nil {
				err = fmt.Errorf("error closing CSV file: %w", closeErr)
			}
		}
	}()

	rows := make([]row, len(transactions))
	for i, tx := range transactions {
		rows[i] = s.toRow(tx)
	}

	if err := gocsv.MarshalCSVWithoutHeaders(rows, newLineWriter(file, s.opts.Delimiter)); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.Info("Saved transactions to CSV file")
	return nil
}

func (s *Store) toRow(tx models.Transaction) row {
	return row{
		Date:     dateutils.FormatDate(tx.Date, s.opts.DateLayout),
		Amount:   tx.Amount.StringFixed(2),
		Category: tx.Category,
		IsIncome: fmt.Sprintf("%t", tx.IsIncome),
	}
}

// Load reads path and hands each parsed transaction to dst as soon as it is
// parsed. Lines without exactly four fields are skipped. A date or amount
// that cannot be parsed stops the load; transactions handed over before that
// line stay in dst, and the returned result counts them.
func (s *Store) Load(path string, dst Appender) (result LoadResult, err error) {
	if err := validation.ValidateLoadPath(path); err != nil {
		return result, err
	}

	log := s.logger.WithField(logging.FieldFile, path)

	file, err := fileutils.OpenFile(path)
	if err != nil {
		return result, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.WithError(closeErr).Warn("Failed to close file")
		}
	}()

	delimiter := string(s.opts.Delimiter)
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		record := strings.Split(scanner.Text(), delimiter)
		if len(record) != fieldCount {
			result.Skipped++
			log.Debug("Skipping line with unexpected field count",
				logging.F(logging.FieldLine, line),
				logging.F(logging.FieldCount, len(record)))
			continue
		}

		tx, parseErr := s.parseRecord(record, line)
		if parseErr != nil {
			log.WithError(parseErr).Warn("Aborting load",
				logging.F(logging.FieldCount, result.Loaded))
			return result, parseErr
		}

		dst.Append(tx)
		result.Loaded++
	}
	if err := scanner.Err(); err != nil {
		log.WithError(err).Error("Failed to read CSV file")
		return result, fmt.Errorf("error reading CSV file: %w", err)
	}

	log.Info("Loaded transactions from CSV file",
		logging.F(logging.FieldCount, result.Loaded),
		logging.F(logging.FieldSkipped, result.Skipped))
	return result, nil
}

func (s *Store) parseRecord(record []string, line int) (models.Transaction, error) {
	layouts := append([]string{s.opts.DateLayout}, s.opts.LegacyDateLayouts...)
	date, _, err := dateutils.ParseWithLayouts(record[0], layouts...)
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{
			Parser: parserName, Line: line, Field: "date", Value: record[0], Err: err,
		}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record[1]))
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{
			Parser: parserName, Line: line, Field: "amount", Value: record[1], Err: err,
		}
	}

	// Categories and signs are taken as written; only interactive entry validates them.
	return models.NewTransaction(date, amount, record[2], strings.EqualFold(record[3], "true")), nil
}

// lineWriter receives rows from gocsv and writes each one as its fields
// joined by the delimiter, so a saved line splits back into the same fields.
type lineWriter struct {
	w         *bufio.Writer
	delimiter string
	err       error
}

func newLineWriter(w io.Writer, delimiter rune) *lineWriter {
	return &lineWriter{w: bufio.NewWriter(w), delimiter: string(delimiter)}
}

func (lw *lineWriter) Write(row []string) error {
	if lw.err != nil {
		return lw.err
	}
	_, lw.err = lw.w.WriteString(strings.Join(row, lw.delimiter) + "\n")
	return lw.err
}

func (lw *lineWriter) Flush() {
	if lw.err == nil {
		lw.err = lw.w.Flush()
	}
}

func (lw *lineWriter) Error() error {
	return lw.err
}
