package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/viper"

	"github.com/neerajdhurandher/autofill-engine/internal/common"
	"github.com/neerajdhurandher/autofill-engine/internal/engine"
	"github.com/neerajdhurandher/autofill-engine/internal/fill"
	"github.com/neerajdhurandher/autofill-engine/internal/model"
	"github.com/neerajdhurandher/autofill-engine/internal/storage"
	"github.com/neerajdhurandher/autofill-engine/internal/taxonomy"
)

// loadPage parses an HTML file into a document.
func loadPage(path string) (*goquery.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page %s: %w", path, err)
	}
	return doc, nil
}

// loadProfile reads the user profile as an opaque JSON document.
func loadProfile(path string) (model.Profile, error) {
	if path == "" {
		return nil, common.NewUserError(common.ErrMissingConfig, "a profile path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	return model.ParseProfile(data)
}

// writeDocument serializes the (possibly mutated) document back to disk.
func writeDocument(doc *goquery.Document, path string) error {
	html, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// getDatabase opens the learned-pattern store and runs migrations.
func getDatabase(ctx context.Context) (*storage.SQLiteStorage, func(), error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".config", "autofill", "patterns.db")
	}

	db, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, func() { _ = db.Close() }, nil
}

// engineConfig assembles the engine configuration from viper, falling back
// to the built-in defaults for unset keys.
func engineConfig() (engine.Config, error) {
	cfg := engine.DefaultConfig()
	if viper.IsSet("thresholds.aggregation_floor") {
		cfg.AggregationFloor = viper.GetFloat64("thresholds.aggregation_floor")
	}
	if viper.IsSet("thresholds.fill_floor") {
		cfg.FillFloor = viper.GetFloat64("thresholds.fill_floor")
	}
	if viper.IsSet("thresholds.fuzzy_floor") {
		cfg.FuzzyFloor = viper.GetFloat64("thresholds.fuzzy_floor")
	}
	if viper.IsSet("cache.cap") {
		cfg.CacheCap = viper.GetInt("cache.cap")
	}
	if viper.IsSet("detection.debounce") {
		cfg.Debounce = viper.GetDuration("detection.debounce")
	}

	for name, floor := range map[string]float64{
		"thresholds.aggregation_floor": cfg.AggregationFloor,
		"thresholds.fill_floor":        cfg.FillFloor,
		"thresholds.fuzzy_floor":       cfg.FuzzyFloor,
	} {
		if floor < 0 || floor > 1 {
			return cfg, fmt.Errorf("%s must be between 0 and 1, got %v: %w",
				name, floor, common.ErrInvalidConfig)
		}
	}
	if cfg.CacheCap <= 0 {
		return cfg, fmt.Errorf("cache.cap must be positive, got %d: %w",
			cfg.CacheCap, common.ErrInvalidConfig)
	}
	return cfg, nil
}

// newEngine builds an engine backed by the learned-pattern store and a
// recording event sink, hydrating the classifier state from disk.
func newEngine(ctx context.Context, db *storage.SQLiteStorage, richEvents bool) (*engine.Engine, *fill.RecordingSink, error) {
	cfg, err := engineConfig()
	if err != nil {
		return nil, nil, err
	}
	cfg.RichEvents = richEvents

	sink := &fill.RecordingSink{}
	eng := engine.New(taxonomy.Default(), db, sink, cfg)
	if err := eng.Hydrate(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to load learned patterns: %w", err)
	}
	return eng, sink, nil
}
