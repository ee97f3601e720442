package repository

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sangkips/promo-kiosk/internal/domain/entity"
	domainRepo "github.com/sangkips/promo-kiosk/internal/domain/repository"
)

const (
	productColumns   = 4 // name,price,quantity,promotion
	promotionColumns = 5 // name,buy,get,start_date,end_date
)

type fileCatalogRepository struct {
	productsPath   string
	promotionsPath string
	loc            *time.Location
}

// NewFileCatalogRepository creates a catalog repository over the products and
// promotions files. Promotion dates are interpreted in loc.
func NewFileCatalogRepository(productsPath, promotionsPath string, loc *time.Location) domainRepo.CatalogRepository {
	return &fileCatalogRepository{
		productsPath:   productsPath,
		promotionsPath: promotionsPath,
		loc:            loc,
	}
}

func (r *fileCatalogRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	f, err := os.Open(r.productsPath)
	if err != nil {
		return nil, errors.Wrap(err, "open products file")
	}
	defer f.Close()

	products, err := ParseProducts(f)
	return products, errors.Wrapf(err, "parse %s", r.productsPath)
}

func (r *fileCatalogRepository) ListPromotions(ctx context.Context) ([]*entity.Promotion, error) {
	f, err := os.Open(r.promotionsPath)
	if err != nil {
		return nil, errors.Wrap(err, "open promotions file")
	}
	defer f.Close()

	promotions, err := ParsePromotions(f, r.loc)
	return promotions, errors.Wrapf(err, "parse %s", r.promotionsPath)
}

// ParseProducts reads "name,price,quantity,promotion" rows after a header row
func ParseProducts(in io.Reader) ([]*entity.Product, error) {
	records, err := readRows(in, productColumns)
	if err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(records))
	for _, rec := range records {
		price, err := strconv.ParseInt(rec.fields[1], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid price", rec.line)
		}
		quantity, err := strconv.Atoi(rec.fields[2])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid quantity", rec.line)
		}
		if price <= 0 || quantity < 0 {
			return nil, errors.Errorf("line %d: price must be positive and quantity non-negative", rec.line)
		}
		products = append(products, entity.NewProduct(rec.fields[0], price, quantity, rec.fields[3]))
	}
	return products, nil
}

// ParsePromotions reads "name,buy,get,start_date,end_date" rows after a header row
func ParsePromotions(in io.Reader, loc *time.Location) ([]*entity.Promotion, error) {
	records, err := readRows(in, promotionColumns)
	if err != nil {
		return nil, err
	}

	promotions := make([]*entity.Promotion, 0, len(records))
	for _, rec := range records {
		buy, err := strconv.Atoi(rec.fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid buy count", rec.line)
		}
		get, err := strconv.Atoi(rec.fields[2])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid get count", rec.line)
		}
		promo, err := entity.NewPromotion(rec.fields[0], buy, get, rec.fields[3], rec.fields[4], loc)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", rec.line)
		}
		promotions = append(promotions, promo)
	}
	return promotions, nil
}

type row struct {
	line   int
	fields []string
}

// readRows returns the trimmed data rows of a comma separated file, skipping
// the header row and blank lines.
func readRows(in io.Reader, columns int) ([]row, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []row
	header := true
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read catalog row")
		}
		if header {
			header = false
			continue
		}
		line, _ := reader.FieldPos(0)
		if len(fields) != columns {
			return nil, errors.Errorf("line %d: expected %d columns, got %d", line, columns, len(fields))
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		rows = append(rows, row{line: line, fields: fields})
	}
	return rows, nil
}
