package container

import (
	"context"
	"fmt"

	"cardiodash/adapters/tabular"
	"cardiodash/app"
	"cardiodash/domain/cardio"
	"cardiodash/internal"
	"cardiodash/internal/config"
	"cardiodash/internal/dataset"
	"cardiodash/internal/pipeline"
	"cardiodash/internal/query"
)

// Container holds the application dependencies shared by every entry point
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	Loader  *dataset.Loader
	Service *app.DashboardService
}

// New wires the loader and dashboard service from cfg
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	logger := internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level))

	readerConfig := tabular.DefaultConfig()
	readerConfig.FilePath = cfg.Data.File
	if cfg.Data.Sheet != "" {
		readerConfig.Sheet = cfg.Data.Sheet
	}
	if cfg.Data.Delimiter != 0 {
		readerConfig.Delimiter = cfg.Data.Delimiter
	}

	loader := dataset.NewFileLoader(readerConfig, logger)
	service := app.NewDashboardService(
		loader,
		query.FromConfig(cfg.Filters),
		pipeline.Options{RecentCheckup: cfg.Data.RecentCheckup},
	)

	return &Container{
		Config:  cfg,
		Logger:  logger,
		Loader:  loader,
		Service: service,
	}, nil
}

// Preload reads the dataset so a bad source fails at startup instead of on the first request
func (c *Container) Preload(ctx context.Context) (*cardio.Dataset, error) {
	ds, err := c.Loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.Logger.With("Container").Info("dataset %s ready: %d records", ds.LoadID, ds.Len())
	return ds, nil
}
