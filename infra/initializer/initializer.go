// Package initializer wires infrastructure into the dependency container the
// application is built from.
package initializer

import (
	"github.com/lifeboard/lifeboard/infra"
	"github.com/lifeboard/lifeboard/infra/repository"
	"github.com/lifeboard/lifeboard/pkg/config"
)

// InitializeDependencies builds the Deps container: logger, database
// connection and unit of work.
func InitializeDependencies(cfg *config.App) (*config.Deps, error) {
	logger := setupLogger(&cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB.Url)
	if err != nil {
		return nil, err
	}

	return &config.Deps{
		Uow:    repository.NewUoW(db),
		Logger: logger,
		Config: cfg,
	}, nil
}
