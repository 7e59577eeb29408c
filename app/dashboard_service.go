package app

import (
	"context"

	"cardiodash/internal/errors"
	"cardiodash/internal/pipeline"
	"cardiodash/ports"
)

// DashboardService answers every presentation-layer request from the cached Dataset
type DashboardService struct {
	loader   ports.DatasetLoader
	defaults pipeline.SelectionRequest
	options  pipeline.Options
}

// NewDashboardService creates a service whose unset filters fall back to defaults
func NewDashboardService(loader ports.DatasetLoader, defaults pipeline.SelectionRequest, options pipeline.Options) *DashboardService {
	return &DashboardService{
		loader:   loader,
		defaults: defaults,
		options:  options,
	}
}

// FilterChoices lists the selectable values and the default selection
type FilterChoices struct {
	Options  pipeline.FilterOptions `json:"options"`
	Defaults pipeline.SelectionInfo `json:"defaults"`
}

// Summarize recomputes the full dashboard payload for the given filter override
func (s *DashboardService) Summarize(ctx context.Context, override pipeline.SelectionRequest) (*pipeline.Summary, error) {
	ds, err := s.loader.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dataset not available")
	}
	sel := s.defaults.Merge(override).Resolve(ds)
	return pipeline.Summarize(ds, sel, s.options), nil
}

// Choices returns the filter options and configured defaults
func (s *DashboardService) Choices(ctx context.Context) (*FilterChoices, error) {
	ds, err := s.loader.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dataset not available")
	}
	sel := s.defaults.Resolve(ds)
	return &FilterChoices{
		Options: pipeline.AvailableOptions(ds),
		Defaults: pipeline.SelectionInfo{
			AgeCategory:    sel.AgeCategory.Values(),
			Sex:            sel.Sex.Values(),
			SmokingHistory: sel.SmokingHistory.Values(),
		},
	}, nil
}
