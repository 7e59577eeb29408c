package dataset

import (
	"context"
	"sync"
	"time"

	"cardiodash/adapters/tabular"
	"cardiodash/domain/cardio"
	"cardiodash/internal"
	"cardiodash/internal/errors"

	"github.com/google/uuid"
)

// Source produces the raw survey table
type Source interface {
	Read(ctx context.Context) (*tabular.RawTable, error)
}

// Loader reads the source at most once per Loader and hands out the same immutable Dataset
// afterwards. Failed loads are not cached.
type Loader struct {
	source Source
	name   string
	logger *internal.Logger

	mu      sync.RWMutex
	dataset *cardio.Dataset
}

// NewLoader creates a loader for source. name is recorded as the Dataset source.
func NewLoader(source Source, name string, logger *internal.Logger) *Loader {
	if logger == nil {
		logger = internal.NewLogger(internal.LogLevelInfo)
	}
	return &Loader{
		source: source,
		name:   name,
		logger: logger.With("Loader"),
	}
}

// NewFileLoader creates a loader backed by a CSV or XLSX file
func NewFileLoader(config tabular.Config, logger *internal.Logger) *Loader {
	return NewLoader(tabular.NewReader(config), config.FilePath, logger)
}

// Load returns the cached Dataset, reading the source on first use
func (l *Loader) Load(ctx context.Context) (*cardio.Dataset, error) {
	l.mu.RLock()
	ds := l.dataset
	l.mu.RUnlock()
	if ds != nil {
		return ds, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.dataset != nil {
		return l.dataset, nil
	}

	start := time.Now()
	raw, err := l.source.Read(ctx)
	if err != nil {
		l.logger.Error("reading %s failed: %v", l.name, err)
		return nil, errors.Wrap(err, "failed to load dataset")
	}
	ds, err = Parse(raw)
	if err != nil {
		l.logger.Error("parsing %s failed: %v", l.name, err)
		return nil, errors.Wrap(err, "failed to load dataset")
	}

	ds.LoadID = uuid.NewString()
	ds.Source = l.name
	ds.LoadedAt = time.Now()
	l.dataset = ds

	l.logger.Info("loaded %d records from %s in %s (load %s)", ds.Len(), l.name, time.Since(start).Round(time.Millisecond), ds.LoadID)
	return ds, nil
}

// Loaded reports whether a Dataset is cached
func (l *Loader) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.dataset != nil
}

// Source names the file or source the Loader reads
func (l *Loader) Source() string {
	return l.name
}
