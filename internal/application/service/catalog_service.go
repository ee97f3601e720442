package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sangkips/promo-kiosk/internal/domain/entity"
	"github.com/sangkips/promo-kiosk/internal/domain/inventory"
	"github.com/sangkips/promo-kiosk/internal/domain/repository"
	"github.com/sangkips/promo-kiosk/pkg/apperror"
	"github.com/sangkips/promo-kiosk/pkg/pagination"
)

// LoadStore reads the catalog from repo and builds an inventory store
func LoadStore(ctx context.Context, repo repository.CatalogRepository, logger zerolog.Logger) (*inventory.Store, error) {
	promotions, err := repo.ListPromotions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load promotions")
	}
	products, err := repo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load products")
	}

	store, err := inventory.NewStore(products, promotions)
	if err != nil {
		return nil, errors.Wrap(err, "build inventory")
	}

	logger.Info().
		Int("products", len(products)).
		Int("promotions", len(promotions)).
		Msg("catalog loaded")
	return store, nil
}

// ProductView is the stock board entry of one product
type ProductView struct {
	Name             string            `json:"name"`
	UnitPrice        int64             `json:"unit_price"`
	GeneralStock     int               `json:"general_stock"`
	PromotionalStock int               `json:"promotional_stock"`
	Available        int               `json:"available"`
	Promotion        *entity.Promotion `json:"promotion,omitempty"`
	PromotionActive  bool              `json:"promotion_active"`
}

// PromotionView is a promotion with its state at the time of the request
type PromotionView struct {
	*entity.Promotion
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// ProductFilter narrows a product listing
type ProductFilter struct {
	Search          string
	PromotionalOnly bool
	InStockOnly     bool
}

// CatalogService answers read-only stock board queries over a store
type CatalogService struct {
	store *inventory.Store
	clock func() time.Time
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store *inventory.Store, clock func() time.Time) *CatalogService {
	if clock == nil {
		clock = time.Now
	}
	return &CatalogService{store: store, clock: clock}
}

// ListProducts returns one page of products in catalog order
func (s *CatalogService) ListProducts(filter ProductFilter, params *pagination.PaginationParams) *pagination.PaginatedResult[ProductView] {
	params.Validate()

	all := s.views()
	filtered := make([]ProductView, 0, len(all))
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, v := range all {
		if search != "" && !strings.Contains(strings.ToLower(v.Name), search) {
			continue
		}
		if filter.PromotionalOnly && v.Promotion == nil {
			continue
		}
		if filter.InStockOnly && v.Available == 0 {
			continue
		}
		filtered = append(filtered, v)
	}

	total := len(filtered)
	start := min(params.Offset(), total)
	end := min(start+params.PerPage, total)

	return pagination.NewPaginatedResult(
		filtered[start:end],
		pagination.NewPagination(params.Page, params.PerPage, int64(total)),
	)
}

// GetProduct returns a single product by name
func (s *CatalogService) GetProduct(name string) (*ProductView, error) {
	for _, v := range s.views() {
		if v.Name == name {
			return &v, nil
		}
	}
	return nil, apperror.NewNotFoundError("Product")
}

// ListPromotions returns every promotion, sorted by start time
func (s *CatalogService) ListPromotions(activeOnly bool) []PromotionView {
	now := s.clock()
	promos := s.store.Promotions()
	views := make([]PromotionView, 0, len(promos))
	for _, p := range promos {
		active := p.ActiveAt(now)
		if activeOnly && !active {
			continue
		}
		views = append(views, PromotionView{Promotion: p, Label: p.Label(), Active: active})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].StartAt.Before(views[j].StartAt)
	})
	return views
}

func (s *CatalogService) views() []ProductView {
	now := s.clock()
	rows := s.store.Rows()
	views := make([]ProductView, 0, len(rows))
	index := make(map[string]int, len(rows))

	for _, row := range rows {
		i, seen := index[row.Product.Name]
		if !seen {
			i = len(views)
			index[row.Product.Name] = i
			views = append(views, ProductView{Name: row.Product.Name, UnitPrice: row.Product.UnitPrice})
		}
		v := &views[i]
		if row.Promotional {
			v.PromotionalStock = row.Product.Quantity
			v.Promotion = row.Promotion
			v.PromotionActive = row.Promotion != nil && row.Promotion.ActiveAt(now)
		} else {
			v.GeneralStock = row.Product.Quantity
		}
	}
	for i := range views {
		views[i].Available = s.store.Available(views[i].Name, now)
	}
	return views
}
