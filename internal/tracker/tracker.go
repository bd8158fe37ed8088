// Package tracker runs the interactive menu loop over a single in-memory ledger.
package tracker

import (
	"errors"
	"io"

	"fjacquet/expense-tracker/internal/console"
	"fjacquet/expense-tracker/internal/csvstore"
	"fjacquet/expense-tracker/internal/ledger"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/prompt"
	"fjacquet/expense-tracker/internal/summary"
	"fjacquet/expense-tracker/internal/validation"
)

// Menu choices
const (
	ChoiceAddIncome = iota + 1
	ChoiceAddExpense
	ChoiceViewSummary
	ChoiceLoad
	ChoiceSave
	ChoiceExit
)

// Console texts
const (
	MenuTitle     = "===== Expense Tracker Menu ====="
	MenuPrompt    = "Select an option (1-6): "
	InvalidChoice = "Invalid choice. Please select between 1 and 6."
	Goodbye       = "Thank you for using Expense Tracker. Goodbye!"

	LoadPrompt      = "Enter path of CSV file to load: "
	SavePrompt      = "Enter file path to save (e.g., data.csv): "
	OverwritePrompt = console.GlyphWarning + " File already exists. Overwrite? (yes/no): "
	InvalidLoadFile = "Invalid file. Ensure it exists and is a valid .csv file."
	InvalidSaveFile = "File must have .csv extension."
	SaveCancelled   = "Save cancelled."
	IncomeAdded     = "Income added successfully!"
	ExpenseAdded    = "Expense added successfully!"
	AddIncomeTitle  = "=== Add Income ==="
	AddExpenseTitle = "=== Add Expense ==="
	SummaryTitle    = "=== Monthly Summary ==="
)

var menuItems = []string{
	"1. Add Income",
	"2. Add Expense",
	"3. View Summary",
	"4. Load from CSV",
	"5. Save to CSV",
	"6. Exit",
}

// Persister saves and loads ledger files.
type Persister interface {
	Save(path string, transactions []models.Transaction) error
	Load(path string, dst csvstore.Appender) (csvstore.LoadResult, error)
	Exists(path string) bool
}

// App is the application state threaded through every menu action.
type App struct {
	ledger     *ledger.Ledger
	prompter   *prompt.Prompter
	out        *console.Printer
	files      Persister
	engine     *summary.Engine
	categories models.Categories
	logger     logging.Logger
}

// NewApp creates an App with an empty ledger, reading answers from in and
// writing the console to out.
func NewApp(in io.Reader, out io.Writer, files Persister, engine *summary.Engine,
	categories models.Categories, logger logging.Logger) *App {
	printer := console.NewPrinter(out)
	return &App{
		ledger:     ledger.New(),
		prompter:   prompt.NewPrompter(in, printer),
		out:        printer,
		files:      files,
		engine:     engine,
		categories: categories,
		logger:     logger.WithField(logging.FieldComponent, "tracker"),
	}
}

// Ledger returns the ledger the App appends to.
func (a *App) Ledger() *ledger.Ledger {
	return a.ledger
}

// Run shows the menu and dispatches choices until the user exits or the
// input is closed. Both end the loop normally.
func (a *App) Run() error {
	a.logger.Debug("Starting interactive session")
	for {
		a.showMenu()
		choice, err := a.prompter.MenuChoice(MenuPrompt)
		if err == nil {
			if choice == ChoiceExit {
				break
			}
			err = a.dispatch(choice)
		}
		if errors.Is(err, prompt.ErrInputClosed) {
			a.logger.Debug("Input closed, leaving")
			break
		}
		if err != nil {
			return err
		}
	}

	a.out.Heading(Goodbye)
	a.logger.Debug("Session ended", logging.F(logging.FieldCount, a.ledger.Len()))
	return nil
}

func (a *App) showMenu() {
	a.out.Heading(MenuTitle)
	for _, item := range menuItems {
		a.out.Println(item)
	}
}

func (a *App) dispatch(choice int) error {
	a.logger.Debug("Menu choice", logging.F(logging.FieldChoice, choice))
	switch choice {
	case ChoiceAddIncome:
		return a.addTransaction(true)
	case ChoiceAddExpense:
		return a.addTransaction(false)
	case ChoiceViewSummary:
		a.showSummary()
		return nil
	case ChoiceLoad:
		return a.load()
	case ChoiceSave:
		return a.save()
	default:
		a.out.Error(InvalidChoice)
		return nil
	}
}

func (a *App) addTransaction(isIncome bool) error {
	title, done := AddExpenseTitle, ExpenseAdded
	if isIncome {
		title, done = AddIncomeTitle, IncomeAdded
	}
	a.out.Heading(title)

	date, err := a.prompter.Date(prompt.DatePrompt)
	if err != nil {
		return err
	}
	amount, err := a.prompter.PositiveAmount(prompt.AmountPrompt)
	if err != nil {
		return err
	}
	category, err := a.prompter.Category(a.categories.For(isIncome))
	if err != nil {
		return err
	}

	tx := models.NewTransaction(date, amount, category, isIncome)
	a.ledger.Append(tx)
	a.logger.Info("Transaction added",
		logging.F(logging.FieldKind, tx.Kind()),
		logging.F(logging.FieldCategory, tx.Category),
		logging.F(logging.FieldEntry, tx.String()))
	a.out.Success("%s", done)
	return nil
}

func (a *App) showSummary() {
	a.out.Heading(SummaryTitle)
	for _, line := range summary.Lines(a.engine.Summarize(a.ledger.All())) {
		a.out.Println(line)
	}
}

func (a *App) load() error {
	path, err := a.prompter.NonEmpty(LoadPrompt)
	if err != nil {
		return err
	}
	log := a.logger.WithFields(
		logging.F(logging.FieldOperation, "load"),
		logging.F(logging.FieldFile, path))

	if err := validation.ValidateLoadPath(path); err != nil {
		log.WithError(err).Debug("Rejected load path")
		a.out.Error(InvalidLoadFile)
		return nil
	}

	result, err := a.files.Load(path, a.ledger)
	if err != nil {
		log.WithError(err).Warn("Load failed",
			logging.F(logging.FieldCount, result.Loaded))
		a.out.Error("Failed to load transactions: %v", err)
		return nil
	}

	a.out.Success("Loaded %d transactions from file.", result.Loaded)
	return nil
}

func (a *App) save() error {
	path, err := a.prompter.NonEmpty(SavePrompt)
	if err != nil {
		return err
	}
	log := a.logger.WithFields(
		logging.F(logging.FieldOperation, "save"),
		logging.F(logging.FieldFile, path))

	if err := validation.ValidateSavePath(path); err != nil {
		log.WithError(err).Debug("Rejected save path")
		a.out.Error(InvalidSaveFile)
		return nil
	}

	if a.files.Exists(path) {
		overwrite, err := a.prompter.Confirm(OverwritePrompt)
		if err != nil {
			return err
		}
		if !overwrite {
			a.out.Warn(SaveCancelled)
			return nil
		}
	}

	if err := a.files.Save(path, a.ledger.All()); err != nil {
		log.WithError(err).Error("Save failed")
		a.out.Error("Error saving file: %v", err)
		return nil
	}

	a.out.Success("Transactions saved to %s", path)
	return nil
}
