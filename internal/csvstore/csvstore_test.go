package csvstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/expense-tracker/internal/ledger"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *logging.MockLogger) {
	t.Helper()
	mock := logging.NewMockLogger()
	return NewStore(DefaultOptions(), mock), mock
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		models.NewTransaction(time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
			decimal.RequireFromString("100"), "Salary", true),
		models.NewTransaction(time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
			decimal.RequireFromString("40.456"), "Food", false),
		models.NewTransaction(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			decimal.RequireFromString("0.5"), "Travel", false),
	}
}

func TestSave_WritesFixedFormat(t *testing.T) {
	store, _ := newTestStore(t)
	path := filepath.Join(t.TempDir(), "ledger.csv")

	require.NoError(t, store.Save(path, sampleTransactions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"2024-01-05,100.00,Salary,true\n"+
			"2024-01-20,40.46,Food,false\n"+
			"2024-02-01,0.50,Travel,false\n",
		string(data))
}

func TestSave_OverwritesExistingContent(t *testing.T) {
	store, _ := newTestStore(t)
	path := writeFile(t, t.TempDir(), "ledger.csv", "old,content,that,is\nmuch,longer,than,new\nline3\n")

	require.NoError(t, store.Save(path, sampleTransactions()[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05,100.00,Salary,true\n", string(data))
}

func TestSave_EmptyLedgerWritesEmptyFile(t *testing.T) {
	store, _ := newTestStore(t)
	path := filepath.Join(t.TempDir(), "empty.csv")

	require.NoError(t, store.Save(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestSave_RejectsNonCSVPath(t *testing.T) {
	store, _ := newTestStore(t)
	dir := t.TempDir()

	missing := filepath.Join(dir, "ledger.txt")
	err := store.Save(missing, sampleTransactions())
	var vErr *parsererror.ValidationError
	require.True(t, errors.As(err, &vErr))
	_, statErr := os.Stat(missing)
	assert.True(t, os.IsNotExist(statErr), "no file is created")

	existing := writeFile(t, dir, "keep.txt", "untouched")
	require.Error(t, store.Save(existing, sampleTransactions()))
	data, readErr := os.ReadFile(existing)
	require.NoError(t, readErr)
	assert.Equal(t, "untouched", string(data))
}

func TestSave_UppercaseExtensionAccepted(t *testing.T) {
	store, _ := newTestStore(t)
	path := filepath.Join(t.TempDir(), "LEDGER.CSV")
	assert.NoError(t, store.Save(path, sampleTransactions()))
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	path := filepath.Join(t.TempDir(), "roundtrip.csv")
	original := sampleTransactions()
	require.NoError(t, store.Save(path, original))

	l := ledger.New()
	result, err := store.Load(path, l)
	require.NoError(t, err)
	assert.Equal(t, LoadResult{Loaded: 3, Skipped: 0}, result)

	loaded := l.All()
	require.Len(t, loaded, len(original))
	for i := range original {
		assert.Equal(t, original[i].Date, loaded[i].Date)
		assert.Equal(t, original[i].Amount.StringFixed(2), loaded[i].Amount.StringFixed(2))
		assert.Equal(t, original[i].Category, loaded[i].Category)
		assert.Equal(t, original[i].IsIncome, loaded[i].IsIncome)
	}
}

func TestLoad_LegacyDayFirstDates(t *testing.T) {
	store, _ := newTestStore(t)
	path := writeFile(t, t.TempDir(), "legacy.csv", "15-03-2023,12.5,Rent,false\n")

	l := ledger.New()
	result, err := store.Load(path, l)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Loaded)
	assert.Equal(t, time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC), l.All()[0].Date)
}

func TestLoad_SkipsLinesWithWrongFieldCount(t *testing.T) {
	store, mock := newTestStore(t)
	path := writeFile(t, t.TempDir(), "mixed.csv",
		"2024-01-05,100.00,Salary,true\n"+
			"2024-01-06,5.00,Food\n"+
			"\n"+
			"2024-01-07,1.00,Food,false,extra\n")

	l := ledger.New()
	result, err := store.Load(path, l)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Loaded)
	assert.Equal(t, 3, result.Skipped, "blank lines split into a single field")
	assert.Equal(t, 1, l.Len())
	assert.Len(t, mock.GetEntriesByLevel("DEBUG"), 3)
}

func TestLoad_QuotesAreOrdinaryCharacters(t *testing.T) {
	store, _ := newTestStore(t)
	path := writeFile(t, t.TempDir(), "quotes.csv",
		"2024-01-01,10,\"Food,true\n"+
			"2024-01-02,20,Rent,false\n"+
			"2024-01-03,30,\"Food,Rent\",true\n"+
			"2024-01-04,30,Travel,false\n")

	l := ledger.New()
	result, err := store.Load(path, l)
	require.NoError(t, err)
	assert.Equal(t, LoadResult{Loaded: 3, Skipped: 1}, result)

	loaded := l.All()
	require.Len(t, loaded, 3)
	assert.Equal(t, `"Food`, loaded[0].Category)
	assert.True(t, loaded[0].IsIncome)
	assert.Equal(t, "Rent", loaded[1].Category)
	assert.Equal(t, "Travel", loaded[2].Category)
}

func TestLoad_WindowsLineEndings(t *testing.T) {
	store, _ := newTestStore(t)
	path := writeFile(t, t.TempDir(), "crlf.csv",
		"2024-01-05,100.00,Salary,true\r\n2024-01-06,5.00,Food,false\r\n")

	l := ledger.New()
	result, err := store.Load(path, l)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Loaded)
	assert.True(t, l.All()[0].IsIncome)
	assert.Equal(t, "Food", l.All()[1].Category)
}

func TestSave_WritesFieldsVerbatim(t *testing.T) {
	store, _ := newTestStore(t)
	path := filepath.Join(t.TempDir(), "verbatim.csv")
	txs := []models.Transaction{
		models.NewTransaction(time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
			decimal.RequireFromString("1"), " Food", false),
		models.NewTransaction(time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC),
			decimal.RequireFromString("2"), `Bob's "Diner"`, false),
	}

	require.NoError(t, store.Save(path, txs))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"2024-01-05,1.00, Food,false\n"+
			"2024-01-06,2.00,Bob's \"Diner\",false\n",
		string(data))

	l := ledger.New()
	_, err = store.Load(path, l)
	require.NoError(t, err)
	require.Equal(t, 2, l.Len())
	assert.Equal(t, " Food", l.All()[0].Category)
	assert.Equal(t, `Bob's "Diner"`, l.All()[1].Category)
}

func TestSave_CategoryWithDelimiterIsSkippedOnLoad(t *testing.T) {
	store, _ := newTestStore(t)
	path := filepath.Join(t.TempDir(), "comma.csv")
	txs := []models.Transaction{
		models.NewTransaction(time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
			decimal.RequireFromString("1"), "Food,Drinks", false),
	}

	require.NoError(t, store.Save(path, txs))

	l := ledger.New()
	result, err := store.Load(path, l)
	require.NoError(t, err)
	assert.Equal(t, LoadResult{Loaded: 0, Skipped: 1}, result)
}

func TestLoad_PartialOnBadAmount(t *testing.T) {
	store, _ := newTestStore(t)
	path := writeFile(t, t.TempDir(), "bad.csv",
		"2024-01-05,100.00,Salary,true\n"+
			"2024-01-06,abc,Food,false\n"+
			"2024-01-07,3.00,Food,false\n")

	l := ledger.New()
	result, err := store.Load(path, l)
	require.Error(t, err)

	var parseErr *parsererror.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "amount", parseErr.Field)
	assert.Equal(t, 2, parseErr.Line)
	assert.Equal(t, 1, result.Loaded)
	require.Equal(t, 1, l.Len(), "first line stays loaded")
	assert.Equal(t, "Salary", l.All()[0].Category)
}

func TestLoad_AbortsOnBadDate(t *testing.T) {
	store, _ := newTestStore(t)
	path := writeFile(t, t.TempDir(), "bad-date.csv", "2024/01/05,1.00,Food,false\n")

	l := ledger.New()
	_, err := store.Load(path, l)

	var parseErr *parsererror.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "date", parseErr.Field)
	assert.Equal(t, 0, l.Len())
}

func TestLoad_PermissiveFields(t *testing.T) {
	store, _ := newTestStore(t)
	path := writeFile(t, t.TempDir(), "loose.csv",
		"2024-01-05,-20,Groceries,TRUE\n"+
			"2024-01-06,0,Food,yes\n"+
			"2024-01-07,7,Rent,False\n")

	l := ledger.New()
	_, err := store.Load(path, l)
	require.NoError(t, err)

	loaded := l.All()
	require.Len(t, loaded, 3)
	assert.Equal(t, "Groceries", loaded[0].Category, "categories are not validated on load")
	assert.True(t, loaded[0].IsIncome)
	assert.True(t, loaded[0].Amount.IsNegative(), "amounts are not validated on load")
	assert.False(t, loaded[1].IsIncome, "anything but true is false")
	assert.False(t, loaded[2].IsIncome)
}

func TestLoad_RejectsInvalidPaths(t *testing.T) {
	store, _ := newTestStore(t)
	dir := t.TempDir()
	txt := writeFile(t, dir, "ledger.txt", "2024-01-05,1.00,Food,false\n")
	csvDir := filepath.Join(dir, "dir.csv")
	require.NoError(t, os.Mkdir(csvDir, 0750))

	for _, path := range []string{txt, csvDir, filepath.Join(dir, "missing.csv")} {
		l := ledger.New()
		result, err := store.Load(path, l)

		var vErr *parsererror.ValidationError
		assert.True(t, errors.As(err, &vErr), path)
		assert.Equal(t, LoadResult{}, result)
		assert.Equal(t, 0, l.Len())
	}
}

func TestStore_CustomDelimiter(t *testing.T) {
	store := NewStore(Options{Delimiter: ';'}, logging.NewMockLogger())
	path := filepath.Join(t.TempDir(), "semi.csv")

	require.NoError(t, store.Save(path, sampleTransactions()[:1]))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05;100.00;Salary;true\n", string(data))

	l := ledger.New()
	result, err := store.Load(path, l)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Loaded)
}

func TestStore_Exists(t *testing.T) {
	store, _ := newTestStore(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "a.csv", "")

	assert.True(t, store.Exists(path))
	assert.False(t, store.Exists(filepath.Join(dir, "b.csv")))
}
