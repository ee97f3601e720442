package repository

import (
	"context"
	"time"

	"github.com/sangkips/promo-kiosk/internal/domain/entity"
	domainRepo "github.com/sangkips/promo-kiosk/internal/domain/repository"
	"gorm.io/gorm"
)

type catalogRepository struct {
	db  *gorm.DB
	loc *time.Location
}

// CatalogStore is a catalog that can be both read and seeded
type CatalogStore interface {
	domainRepo.CatalogRepository
	domainRepo.CatalogSeeder
}

// NewCatalogRepository creates a new Postgres-backed catalog repository
func NewCatalogRepository(db *gorm.DB, loc *time.Location) CatalogStore {
	return &catalogRepository{db: db, loc: loc}
}

func (r *catalogRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var records []entity.ProductRecord
	err := r.db.WithContext(ctx).
		Order("position ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].ToProduct())
	}
	return products, nil
}

func (r *catalogRepository) ListPromotions(ctx context.Context) ([]*entity.Promotion, error) {
	var records []entity.PromotionRecord
	err := r.db.WithContext(ctx).
		Order("start_date ASC, name ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	promotions := make([]*entity.Promotion, 0, len(records))
	for i := range records {
		promo, err := records[i].ToPromotion(r.loc)
		if err != nil {
			return nil, err
		}
		promotions = append(promotions, promo)
	}
	return promotions, nil
}

// SeedProducts inserts products only when the table is empty
func (r *catalogRepository) SeedProducts(ctx context.Context, products []entity.ProductRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.ProductRecord{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 || len(products) == 0 {
			return nil
		}
		return tx.Create(&products).Error
	})
}

// SeedPromotions inserts the promotions that do not exist yet, matched by name
func (r *catalogRepository) SeedPromotions(ctx context.Context, promotions []entity.PromotionRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range promotions {
			if err := tx.Where(entity.PromotionRecord{Name: promotions[i].Name}).
				FirstOrCreate(&promotions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
