package repository

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sangkips/promo-kiosk/internal/domain/entity"
	domainRepo "github.com/sangkips/promo-kiosk/internal/domain/repository"
	"gopkg.in/yaml.v3"
)

// yamlCatalog is the on-disk shape of a single-file catalog
type yamlCatalog struct {
	Promotions []yamlPromotion `yaml:"promotions"`
	Products   []yamlProduct   `yaml:"products"`
}

type yamlPromotion struct {
	Name      string `yaml:"name"`
	Buy       int    `yaml:"buy"`
	Get       int    `yaml:"get"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
}

type yamlProduct struct {
	Name      string `yaml:"name"`
	Price     int64  `yaml:"price"`
	Quantity  int    `yaml:"quantity"`
	Promotion string `yaml:"promotion"`
}

type yamlCatalogRepository struct {
	path string
	loc  *time.Location

	once    sync.Once
	catalog *yamlCatalog
	err     error
}

// NewYAMLCatalogRepository creates a catalog repository over one YAML file.
// The file is read once, on first use.
func NewYAMLCatalogRepository(path string, loc *time.Location) domainRepo.CatalogRepository {
	return &yamlCatalogRepository{path: path, loc: loc}
}

func (r *yamlCatalogRepository) load() (*yamlCatalog, error) {
	r.once.Do(func() {
		f, err := os.Open(r.path)
		if err != nil {
			r.err = errors.Wrap(err, "open catalog file")
			return
		}
		defer f.Close()
		r.catalog, r.err = decodeYAMLCatalog(f)
		r.err = errors.Wrapf(r.err, "parse %s", r.path)
	})
	return r.catalog, r.err
}

func (r *yamlCatalogRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	catalog, err := r.load()
	if err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(catalog.Products))
	for i, p := range catalog.Products {
		if p.Name == "" {
			return nil, errors.Errorf("products[%d]: name is required", i)
		}
		if p.Price <= 0 || p.Quantity < 0 {
			return nil, errors.Errorf("products[%d] %q: price must be positive and quantity non-negative", i, p.Name)
		}
		products = append(products, entity.NewProduct(p.Name, p.Price, p.Quantity, p.Promotion))
	}
	return products, nil
}

func (r *yamlCatalogRepository) ListPromotions(ctx context.Context) ([]*entity.Promotion, error) {
	catalog, err := r.load()
	if err != nil {
		return nil, err
	}

	promotions := make([]*entity.Promotion, 0, len(catalog.Promotions))
	for i, p := range catalog.Promotions {
		promo, err := entity.NewPromotion(p.Name, p.Buy, p.Get, p.StartDate, p.EndDate, r.loc)
		if err != nil {
			return nil, errors.Wrapf(err, "promotions[%d]", i)
		}
		promotions = append(promotions, promo)
	}
	return promotions, nil
}

func decodeYAMLCatalog(in io.Reader) (*yamlCatalog, error) {
	var catalog yamlCatalog
	dec := yaml.NewDecoder(in)
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil {
		if err == io.EOF {
			return &catalog, nil
		}
		return nil, err
	}
	return &catalog, nil
}
