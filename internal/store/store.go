// Package store loads and saves the category sets offered at the prompt.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/expense-tracker/internal/fileutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"gopkg.in/yaml.v3"
)

// DefaultCategoriesFile is looked up when no file is configured.
const DefaultCategoriesFile = "categories.yaml"

// CategoryStore manages the categories YAML file:
//
//	income: [Salary, Business]
//	expense: [Food, Rent, Travel]
type CategoryStore struct {
	CategoriesFile string
	logger         logging.Logger
}

// NewCategoryStore creates a store for the given file name or path.
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	if categoriesFile == "" {
		categoriesFile = DefaultCategoriesFile
	}
	return &CategoryStore{
		CategoriesFile: categoriesFile,
		logger:         logger.WithField(logging.FieldComponent, "store"),
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "expense-tracker", filename))
	}

	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories reads the categories file. A missing file, or a missing or
// empty list inside it, yields the built-in defaults for that list.
func (s *CategoryStore) LoadCategories() (models.Categories, error) {
	defaults := models.DefaultCategories()

	filePath, err := s.FindConfigFile(s.CategoriesFile)
	if err != nil {
		s.logger.Debug("Categories file not found, using defaults",
			logging.F(logging.FieldFile, s.CategoriesFile))
		return defaults, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return models.Categories{}, fmt.Errorf("error reading categories file: %w", err)
	}

	var categories models.Categories
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return models.Categories{}, fmt.Errorf("error parsing categories file %s: %w", filePath, err)
	}

	categories.Income = normalize(categories.Income)
	categories.Expense = normalize(categories.Expense)
	if len(categories.Income) == 0 {
		categories.Income = defaults.Income
	}
	if len(categories.Expense) == 0 {
		categories.Expense = defaults.Expense
	}

	s.logger.Debug("Loaded categories",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldCount, len(categories.Income)+len(categories.Expense)))
	return categories, nil
}

// SaveCategories writes categories to the configured file, creating parent
// directories as needed.
func (s *CategoryStore) SaveCategories(categories models.Categories) error {
	data, err := yaml.Marshal(categories)
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(s.CategoriesFile), models.PermissionDirectory); err != nil {
		return err
	}
	if err := os.WriteFile(s.CategoriesFile, data, models.PermissionDataFile); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}

	s.logger.Info("Saved categories", logging.F(logging.FieldFile, s.CategoriesFile))
	return nil
}

// normalize drops blank entries and case-insensitive duplicates, keeping the
// first spelling.
func normalize(set models.CategorySet) models.CategorySet {
	var out models.CategorySet
	for _, name := range set {
		if name == "" {
			continue
		}
		if _, dup := out.Match(name); dup {
			continue
		}
		out = append(out, name)
	}
	return out
}
