// Package catalog opens the configured catalog source.
package catalog

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sangkips/promo-kiosk/internal/config"
	"github.com/sangkips/promo-kiosk/internal/domain/entity"
	"github.com/sangkips/promo-kiosk/internal/domain/enum"
	domainRepo "github.com/sangkips/promo-kiosk/internal/domain/repository"
	"github.com/sangkips/promo-kiosk/internal/infrastructure/database"
	"github.com/sangkips/promo-kiosk/internal/infrastructure/repository"
)

// Source is an open catalog repository and the function that releases it
type Source struct {
	Repository domainRepo.CatalogRepository
	Kind       enum.CatalogSource
	close      func() error
}

// Close releases the resources held by the source
func (s *Source) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open returns the catalog repository selected by cfg.Catalog.Source.
// A Postgres catalog is migrated and, when enabled, seeded from the catalog files.
func Open(ctx context.Context, cfg *config.Config, loc *time.Location, logger zerolog.Logger) (*Source, error) {
	kind, err := enum.ParseCatalogSource(cfg.Catalog.Source)
	if err != nil {
		return nil, err
	}

	switch kind {
	case enum.CatalogSourceYAML:
		return &Source{
			Repository: repository.NewYAMLCatalogRepository(cfg.Catalog.YAMLPath, loc),
			Kind:       kind,
		}, nil
	case enum.CatalogSourcePostgres:
		return openPostgres(ctx, cfg, loc, logger)
	default:
		return &Source{
			Repository: fileRepository(cfg, loc),
			Kind:       kind,
		}, nil
	}
}

func fileRepository(cfg *config.Config, loc *time.Location) domainRepo.CatalogRepository {
	return repository.NewFileCatalogRepository(cfg.Catalog.ProductsPath, cfg.Catalog.PromotionsPath, loc)
}

func openPostgres(ctx context.Context, cfg *config.Config, loc *time.Location, logger zerolog.Logger) (*Source, error) {
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}

	if err := database.AutoMigrate(db); err != nil {
		sqlDB.Close()
		return nil, err
	}

	repo := repository.NewCatalogRepository(db, loc)
	if cfg.Database.Seed {
		files := fileRepository(cfg, loc)
		products, err := files.ListProducts(ctx)
		if err == nil {
			var promotions []*entity.Promotion
			promotions, err = files.ListPromotions(ctx)
			if err == nil {
				err = database.SeedCatalog(ctx, repo, products, promotions)
			}
		}
		if err != nil {
			logger.Warn().Err(err).Msg("failed to seed catalog")
		}
	}

	return &Source{Repository: repo, Kind: enum.CatalogSourcePostgres, close: sqlDB.Close}, nil
}
