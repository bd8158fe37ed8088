// Package container provides dependency injection for the expense-tracker application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"io"

	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/csvstore"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/store"
	"fjacquet/expense-tracker/internal/summary"
	"fjacquet/expense-tracker/internal/tracker"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	store      *store.CategoryStore
	csvStore   *csvstore.Store
	engine     *summary.Engine
	categories models.Categories
}

// NewContainer creates and wires all application dependencies, logging to
// stderr as configured.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger wires the dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	categoryStore := store.NewCategoryStore(cfg.Categories.File, logger)
	categories, err := categoryStore.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	opts := CSVOptions(cfg)
	csvStore := csvstore.NewStore(opts, logger)

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldDelimiter, string(opts.Delimiter)),
		logging.F(logging.FieldLayout, opts.DateLayout),
		logging.F(logging.FieldCount, len(categories.Income)+len(categories.Expense)))

	return &Container{
		logger:     logger,
		config:     cfg,
		store:      categoryStore,
		csvStore:   csvStore,
		engine:     summary.NewEngine(logger),
		categories: categories,
	}, nil
}

// CSVOptions maps the csv section of the configuration to store options.
func CSVOptions(cfg *config.Config) csvstore.Options {
	return csvstore.Options{
		Delimiter:         cfg.CSV.DelimiterRune(),
		DateLayout:        cfg.CSV.DateFormat,
		LegacyDateLayouts: cfg.CSV.LegacyDateFormats,
	}
}

// NewApp creates an interactive session with an empty ledger.
func (c *Container) NewApp(in io.Reader, out io.Writer) *tracker.App {
	return tracker.NewApp(in, out, c.csvStore, c.engine, c.categories, c.logger)
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the container's category store instance.
func (c *Container) GetStore() *store.CategoryStore {
	return c.store
}

// GetCSVStore returns the ledger file store.
func (c *Container) GetCSVStore() *csvstore.Store {
	return c.csvStore
}

// GetSummaryEngine returns the monthly summary engine.
func (c *Container) GetSummaryEngine() *summary.Engine {
	return c.engine
}

// GetCategories returns the category sets loaded at startup.
func (c *Container) GetCategories() models.Categories {
	return c.categories
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
