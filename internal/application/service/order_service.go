package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sangkips/promo-kiosk/internal/domain/entity"
	"github.com/sangkips/promo-kiosk/internal/domain/inventory"
	"github.com/sangkips/promo-kiosk/pkg/apperror"
	"github.com/sangkips/promo-kiosk/pkg/utils"
)

// OrderService runs one kiosk order at a time against a single inventory
type OrderService struct {
	engine *FulfillmentEngine
	policy MembershipPolicy
	clock  func() time.Time
	logger zerolog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	engine *FulfillmentEngine,
	policy MembershipPolicy,
	clock func() time.Time,
	logger zerolog.Logger,
) *OrderService {
	if clock == nil {
		clock = time.Now
	}
	return &OrderService{
		engine: engine,
		policy: policy,
		clock:  clock,
		logger: logger,
	}
}

// PreparedOrder is a parsed and validated order, pinned to the instant it was checked
type PreparedOrder struct {
	Lines []entity.OrderLine
	At    time.Time
}

// FulfilledOrder holds the per-line outcomes of an order
type FulfilledOrder struct {
	Fulfillments []*Fulfillment
	At           time.Time
}

// Stock returns the current stock rows for display
func (s *OrderService) Stock() []inventory.StockRow {
	return s.engine.Store().Rows()
}

// Prepare parses raw input and validates it against the current stock.
// Nothing is mutated; a returned error is an *apperror.AppError the customer can fix.
func (s *OrderService) Prepare(input string) (*PreparedOrder, error) {
	lines, err := ParseOrder(input)
	if err != nil {
		return nil, err
	}
	lines = MergeOrderLines(lines)

	now := s.clock()
	if err := s.Validate(lines, now); err != nil {
		return nil, err
	}
	return &PreparedOrder{Lines: lines, At: now}, nil
}

// Validate checks every line before any of them is fulfilled:
// existence first, then non-zero quantity, then stock.
func (s *OrderService) Validate(lines []entity.OrderLine, now time.Time) error {
	store := s.engine.Store()
	for _, line := range lines {
		if !store.Has(line.ProductName) {
			return apperror.WithField(apperror.ErrProductNotFound, line.ProductName, "unknown product")
		}
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return apperror.WithField(apperror.ErrZeroQuantity, line.ProductName, "quantity must be positive")
		}
	}
	for _, line := range lines {
		if line.Quantity > store.Available(line.ProductName, now) {
			return apperror.WithField(apperror.ErrExceedsStock, line.ProductName, "not enough stock")
		}
	}
	return nil
}

// Fulfill resolves every line of order in submission order
func (s *OrderService) Fulfill(ctx context.Context, order *PreparedOrder, port DecisionPort) (*FulfilledOrder, error) {
	fulfilled := &FulfilledOrder{
		Fulfillments: make([]*Fulfillment, 0, len(order.Lines)),
		At:           order.At,
	}
	for _, line := range order.Lines {
		f, err := s.engine.Fulfill(ctx, line, port, order.At)
		if err != nil {
			return nil, err
		}
		fulfilled.Fulfillments = append(fulfilled.Fulfillments, f)
	}
	return fulfilled, nil
}

// Checkout prices a fulfilled order. Lines the customer reduced to zero units are left off.
func (s *OrderService) Checkout(order *FulfilledOrder, membership bool) *entity.Receipt {
	lines := make([]entity.OrderedLineResult, 0, len(order.Fulfillments))
	bonuses := make([]entity.BonusItem, 0, len(order.Fulfillments))
	for _, f := range order.Fulfillments {
		if f.Line.Quantity > 0 {
			lines = append(lines, f.Line)
		}
		if f.Bonus != nil {
			bonuses = append(bonuses, *f.Bonus)
		}
	}

	receipt := stampReceipt(BuildReceipt(lines, bonuses, membership, s.policy), utils.GenerateInvoiceNo("INV-"), order.At)

	s.logger.Info().
		Str("invoice_no", receipt.InvoiceNo).
		Int("lines", len(receipt.OrderedLines)).
		Int64("total", receipt.TotalPrice).
		Int64("promotional_discount", receipt.PromotionalDiscount).
		Int64("membership_discount", receipt.MembershipDiscount).
		Int64("final", receipt.FinalPrice).
		Msg("order checked out")

	return receipt
}

// PlaceOrder fulfills and checks out a prepared order in one step
func (s *OrderService) PlaceOrder(ctx context.Context, order *PreparedOrder, port DecisionPort, membership bool) (*entity.Receipt, error) {
	fulfilled, err := s.Fulfill(ctx, order, port)
	if err != nil {
		return nil, err
	}
	return s.Checkout(fulfilled, membership), nil
}
