package ports

import (
	"context"

	"cardiodash/domain/cardio"
)

// DatasetLoader provides the process-wide survey Dataset
type DatasetLoader interface {
	// Load returns the same immutable Dataset on every successful call
	Load(ctx context.Context) (*cardio.Dataset, error)
}
