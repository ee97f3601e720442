// Package inventory holds the kiosk's two name-keyed stock collections.
//
// A Store is populated once from the catalog and afterwards only has quantities
// decremented. It is not safe for concurrent mutation: one order session owns it.
package inventory

import (
	"fmt"
	"time"

	"github.com/sangkips/promo-kiosk/internal/domain/entity"
)

// Store keeps promotional and general stock plus the promotion definitions
type Store struct {
	promotional map[string]*entity.Product
	general     map[string]*entity.Product
	promotions  map[string]*entity.Promotion

	names          []string // product names in first-seen catalog order
	promotionNames []string
}

// StockRow is a read-only view of one stock row for display
type StockRow struct {
	Product     entity.Product
	Promotional bool
	Promotion   *entity.Promotion
}

// NewStore builds a store from catalog rows.
// Rows with a promotion go to promotional stock, the rest to general stock. Every
// promotional product without a general row gets a general row with quantity 0.
func NewStore(products []*entity.Product, promotions []*entity.Promotion) (*Store, error) {
	s := &Store{
		promotional: make(map[string]*entity.Product),
		general:     make(map[string]*entity.Product),
		promotions:  make(map[string]*entity.Promotion, len(promotions)),
	}

	for _, promo := range promotions {
		if _, dup := s.promotions[promo.Name]; dup {
			return nil, fmt.Errorf("duplicate promotion %q", promo.Name)
		}
		p := *promo
		s.promotions[promo.Name] = &p
		s.promotionNames = append(s.promotionNames, promo.Name)
	}

	for _, product := range products {
		if product.Quantity < 0 {
			return nil, fmt.Errorf("product %q has negative quantity %d", product.Name, product.Quantity)
		}
		if product.UnitPrice <= 0 {
			return nil, fmt.Errorf("product %q has non-positive price %d", product.Name, product.UnitPrice)
		}

		target := s.general
		if product.HasPromotion() {
			if _, ok := s.promotions[product.PromotionName]; !ok {
				return nil, fmt.Errorf("product %q references unknown promotion %q", product.Name, product.PromotionName)
			}
			target = s.promotional
		}
		if _, dup := target[product.Name]; dup {
			return nil, fmt.Errorf("duplicate stock row for product %q", product.Name)
		}

		if !s.known(product.Name) {
			s.names = append(s.names, product.Name)
		}
		target[product.Name] = product.Copy()
	}

	for name, promoProduct := range s.promotional {
		if _, ok := s.general[name]; !ok {
			s.general[name] = entity.NewProduct(name, promoProduct.UnitPrice, 0, "")
		}
	}

	return s, nil
}

func (s *Store) known(name string) bool {
	_, inGeneral := s.general[name]
	_, inPromotional := s.promotional[name]
	return inGeneral || inPromotional
}

// Has reports whether the catalog knows the product
func (s *Store) Has(name string) bool {
	_, ok := s.general[name]
	return ok
}

// LookupPromotional returns the promotional row of a product, if any
func (s *Store) LookupPromotional(name string) (*entity.Product, bool) {
	p, ok := s.promotional[name]
	return p, ok
}

// LookupGeneral returns the general row of a product.
// Every known product has one, so a miss is an invariant violation.
func (s *Store) LookupGeneral(name string) (*entity.Product, error) {
	p, ok := s.general[name]
	if !ok {
		return nil, invariantf("lookup general", name, "no general stock row")
	}
	return p, nil
}

// LookupPromotion returns a promotion definition by name
func (s *Store) LookupPromotion(name string) (*entity.Promotion, bool) {
	p, ok := s.promotions[name]
	return p, ok
}

// ActivePromotion returns the promotional row and its promotion when the product
// has promotional stock left and now is inside the promotion window.
func (s *Store) ActivePromotion(name string, now time.Time) (*entity.Product, *entity.Promotion, bool) {
	product, ok := s.promotional[name]
	if !ok || !product.InStock() {
		return nil, nil, false
	}
	promo, ok := s.promotions[product.PromotionName]
	if !ok || !promo.ActiveAt(now) {
		return nil, nil, false
	}
	return product, promo, true
}

// Available returns how many units of a product can be sold at now.
// Promotional stock only counts while its promotion is active.
func (s *Store) Available(name string, now time.Time) int {
	general, ok := s.general[name]
	if !ok {
		return 0
	}
	if promoProduct, _, active := s.ActivePromotion(name, now); active {
		return promoProduct.Quantity + general.Quantity
	}
	return general.Quantity
}

// DecrementPromotional removes amount units from promotional stock
func (s *Store) DecrementPromotional(name string, amount int) error {
	return decrement(s.promotional, "decrement promotional", name, amount)
}

// DecrementGeneral removes amount units from general stock
func (s *Store) DecrementGeneral(name string, amount int) error {
	return decrement(s.general, "decrement general", name, amount)
}

func decrement(stock map[string]*entity.Product, op, name string, amount int) error {
	product, ok := stock[name]
	if !ok {
		return invariantf(op, name, "no such stock row")
	}
	if amount < 0 {
		return invariantf(op, name, "negative amount %d", amount)
	}
	if amount > product.Quantity {
		return invariantf(op, name, "amount %d exceeds quantity %d", amount, product.Quantity)
	}
	product.Quantity -= amount
	return nil
}

// Rows returns a snapshot of every stock row in catalog order,
// the promotional row of a product first.
func (s *Store) Rows() []StockRow {
	rows := make([]StockRow, 0, len(s.promotional)+len(s.general))
	for _, name := range s.names {
		if p, ok := s.promotional[name]; ok {
			rows = append(rows, StockRow{
				Product:     *p,
				Promotional: true,
				Promotion:   s.promotions[p.PromotionName],
			})
		}
		rows = append(rows, StockRow{Product: *s.general[name]})
	}
	return rows
}

// Promotions returns the promotion definitions in catalog order
func (s *Store) Promotions() []*entity.Promotion {
	promos := make([]*entity.Promotion, 0, len(s.promotionNames))
	for _, name := range s.promotionNames {
		promos = append(promos, s.promotions[name])
	}
	return promos
}

// Clone returns a deep copy of the store, used for previews and isolated tests
func (s *Store) Clone() *Store {
	c := &Store{
		promotional:    make(map[string]*entity.Product, len(s.promotional)),
		general:        make(map[string]*entity.Product, len(s.general)),
		promotions:     make(map[string]*entity.Promotion, len(s.promotions)),
		names:          append([]string(nil), s.names...),
		promotionNames: append([]string(nil), s.promotionNames...),
	}
	for name, p := range s.promotional {
		c.promotional[name] = p.Copy()
	}
	for name, p := range s.general {
		c.general[name] = p.Copy()
	}
	for name, p := range s.promotions {
		promo := *p
		c.promotions[name] = &promo
	}
	return c
}
