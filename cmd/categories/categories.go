// Package categories shows and initializes the category sets
package categories

import (
	"fmt"

	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/console"
	"fjacquet/expense-tracker/internal/fileutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"github.com/spf13/cobra"
)

var (
	initFile bool
	force    bool
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the income and expense categories",
	Long: `Show the categories accepted when adding income and expenses.

With --init, write the built-in categories to the configured categories
file so they can be edited.`,
	Args: cobra.NoArgs,
	RunE: categoriesFunc,
}

func init() {
	Cmd.Flags().BoolVar(&initFile, "init", false, "Write the default categories to the categories file")
	Cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing categories file with --init")
}

func categoriesFunc(cmd *cobra.Command, args []string) error {
	out := console.NewPrinter(cmd.OutOrStdout())

	if initFile {
		return writeDefaults(out)
	}

	categories := root.AppContainer.GetCategories()
	out.Printf("Income:  %s\n", categories.Income)
	out.Printf("Expense: %s\n", categories.Expense)
	return nil
}

func writeDefaults(out *console.Printer) error {
	s := root.AppContainer.GetStore()
	if fileutils.PathExists(s.CategoriesFile) && !force {
		return fmt.Errorf("categories file %s already exists (use --force to overwrite)", s.CategoriesFile)
	}

	if err := s.SaveCategories(models.DefaultCategories()); err != nil {
		return fmt.Errorf("failed to write categories: %w", err)
	}

	root.Log.Debug("Default categories written", logging.F(logging.FieldFile, s.CategoriesFile))
	out.Success("Categories written to %s", s.CategoriesFile)
	return nil
}
