package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sangkips/promo-kiosk/internal/domain/entity"
	"github.com/sangkips/promo-kiosk/internal/domain/enum"
	"github.com/sangkips/promo-kiosk/internal/domain/inventory"
)

// Fulfillment is the outcome of one order line
type Fulfillment struct {
	Line  entity.OrderedLineResult
	Bonus *entity.BonusItem
	Path  enum.FulfillmentPath
}

// FulfillmentEngine sources order lines from promotional and general stock.
// It trusts that lines were validated against the store before they arrive.
type FulfillmentEngine struct {
	store  *inventory.Store
	logger zerolog.Logger
}

// NewFulfillmentEngine creates a new fulfillment engine over store
func NewFulfillmentEngine(store *inventory.Store, logger zerolog.Logger) *FulfillmentEngine {
	return &FulfillmentEngine{
		store:  store,
		logger: logger,
	}
}

// Store returns the inventory the engine mutates
func (e *FulfillmentEngine) Store() *inventory.Store {
	return e.store
}

// Fulfill resolves one order line at now, asking port when the customer has to decide.
// Stock consumed by a line stays consumed; later lines see the reduced quantities.
func (e *FulfillmentEngine) Fulfill(ctx context.Context, line entity.OrderLine, port DecisionPort, now time.Time) (*Fulfillment, error) {
	if line.Quantity <= 0 {
		return nil, &inventory.InvariantError{Op: "fulfill", Product: line.ProductName, Detail: "quantity must be positive"}
	}

	var (
		result *Fulfillment
		err    error
	)
	promoProduct, promo, active := e.store.ActivePromotion(line.ProductName, now)
	switch {
	case !active:
		result, err = e.fulfillGeneral(line)
	case line.Quantity/promo.UnitSize() >= promoProduct.Quantity/promo.UnitSize():
		result, err = e.fulfillExhausting(ctx, line, promoProduct, promo, port)
	default:
		result, err = e.fulfillCovered(ctx, line, promoProduct, promo, port)
	}
	if err != nil {
		return nil, err
	}

	e.logger.Debug().
		Str("product", line.ProductName).
		Int("requested", line.Quantity).
		Int("fulfilled", result.Line.Quantity).
		Int("bonus", result.Line.BonusQuantity).
		Stringer("path", result.Path).
		Msg("order line fulfilled")

	return result, nil
}

// fulfillGeneral serves the whole line at full price from general stock
func (e *FulfillmentEngine) fulfillGeneral(line entity.OrderLine) (*Fulfillment, error) {
	general, err := e.store.LookupGeneral(line.ProductName)
	if err != nil {
		return nil, err
	}
	if err := e.store.DecrementGeneral(line.ProductName, line.Quantity); err != nil {
		return nil, err
	}

	return &Fulfillment{
		Line: entity.NewOrderedLineResult(line.ProductName, line.Quantity, general.UnitPrice, general.PriceOf(line.Quantity), 0),
		Path: enum.FulfillmentPathGeneral,
	}, nil
}

// fulfillExhausting handles a request whose full units use up every full unit
// left in promotional stock. Units past the last full unit are a shortfall.
func (e *FulfillmentEngine) fulfillExhausting(ctx context.Context, line entity.OrderLine, promoProduct *entity.Product, promo *entity.Promotion, port DecisionPort) (*Fulfillment, error) {
	name := line.ProductName
	unit := promo.UnitSize()
	availableUnits := promoProduct.Quantity / unit

	bonus := availableUnits * promo.Get
	consumed := availableUnits * unit
	shortfall := line.Quantity - consumed

	quantity := line.Quantity
	var amountWithoutPromotion int64
	fromPromo, fromGeneral := consumed, 0

	if shortfall > 0 {
		payFull, err := port.AskPayFullPriceForShortfall(ctx, name, shortfall)
		if err != nil {
			return nil, errors.Wrapf(err, "ask shortfall decision for %s", name)
		}
		if payFull {
			leftover := min(shortfall, promoProduct.Quantity-consumed)
			fromPromo += leftover
			fromGeneral = shortfall - leftover
			amountWithoutPromotion = promoProduct.PriceOf(shortfall)
		} else {
			quantity -= shortfall
		}
	}

	// General first: the promotional amount is derived from promotional stock and cannot fail
	if err := e.store.DecrementGeneral(name, fromGeneral); err != nil {
		return nil, err
	}
	if err := e.store.DecrementPromotional(name, fromPromo); err != nil {
		return nil, err
	}

	return e.promoResult(name, quantity, promoProduct.UnitPrice, amountWithoutPromotion, bonus, enum.FulfillmentPathPromoExhausted), nil
}

// fulfillCovered handles a request whose full units all fit in promotional stock.
// A remainder of exactly Buy units earns an offer of one more free unit.
func (e *FulfillmentEngine) fulfillCovered(ctx context.Context, line entity.OrderLine, promoProduct *entity.Product, promo *entity.Promotion, port DecisionPort) (*Fulfillment, error) {
	name := line.ProductName
	unit := promo.UnitSize()
	requestedUnits := line.Quantity / unit

	bonus := requestedUnits * promo.Get
	consumed := requestedUnits * unit
	remainder := line.Quantity - consumed

	quantity := line.Quantity
	amountWithoutPromotion := promoProduct.PriceOf(remainder)
	take := consumed + remainder

	if remainder == promo.Buy {
		accept, err := port.AskAcceptBonusUnit(ctx, name, promo.Get)
		if err != nil {
			return nil, errors.Wrapf(err, "ask bonus decision for %s", name)
		}
		if accept {
			take = consumed + unit
			bonus += promo.Get
			quantity += promo.Get
			amountWithoutPromotion = 0
		}
	}

	if err := e.store.DecrementPromotional(name, take); err != nil {
		return nil, err
	}

	return e.promoResult(name, quantity, promoProduct.UnitPrice, amountWithoutPromotion, bonus, enum.FulfillmentPathPromoCovered), nil
}

func (e *FulfillmentEngine) promoResult(name string, quantity int, unitPrice, amountWithoutPromotion int64, bonus int, path enum.FulfillmentPath) *Fulfillment {
	f := &Fulfillment{
		Line: entity.NewOrderedLineResult(name, quantity, unitPrice, amountWithoutPromotion, bonus),
		Path: path,
	}
	if bonus > 0 {
		f.Bonus = &entity.BonusItem{Name: name, Quantity: bonus, UnitPrice: unitPrice}
	}
	return f
}
