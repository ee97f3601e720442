// Package console runs the kiosk conversation on a terminal.
package console

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sangkips/promo-kiosk/internal/application/service"
	"github.com/sangkips/promo-kiosk/internal/domain/entity"
	"github.com/sangkips/promo-kiosk/pkg/apperror"
)

// ReceiptPrinter prints a finished receipt
type ReceiptPrinter interface {
	PrintReceipt(r *entity.Receipt) error
}

// Controller drives the order loop: show stock, take an order, settle it, repeat
type Controller struct {
	orders    *service.OrderService
	printer   ReceiptPrinter
	input     *InputView
	output    *OutputView
	decisions service.DecisionPort
	logger    zerolog.Logger
}

// NewController creates a new console controller. printer may be nil.
func NewController(orders *service.OrderService, printer ReceiptPrinter, input *InputView, output *OutputView, logger zerolog.Logger) *Controller {
	return &Controller{
		orders:    orders,
		printer:   printer,
		input:     input,
		output:    output,
		decisions: NewDecisions(input),
		logger:    logger,
	}
}

// Run serves orders until the customer stops shopping.
// Input errors are shown and asked again; any other error ends the session.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.output.ShowStock(c.orders.Stock())

		receipt, err := c.serveOrder(ctx)
		if err != nil {
			return err
		}
		c.output.ShowReceipt(receipt)
		c.print(receipt)

		more, err := c.input.AskYesNo(promptContinue)
		if err != nil {
			return errors.Wrap(err, "read continue answer")
		}
		if !more {
			return nil
		}
	}
}

func (c *Controller) serveOrder(ctx context.Context) (*entity.Receipt, error) {
	order, err := c.readOrder()
	if err != nil {
		return nil, err
	}

	fulfilled, err := c.orders.Fulfill(ctx, order, c.decisions)
	if err != nil {
		return nil, errors.Wrap(err, "fulfill order")
	}

	membership, err := c.input.AskYesNo(promptMembership)
	if err != nil {
		return nil, errors.Wrap(err, "read membership answer")
	}
	return c.orders.Checkout(fulfilled, membership), nil
}

// readOrder asks until the order parses and passes stock validation
func (c *Controller) readOrder() (*service.PreparedOrder, error) {
	for {
		raw, err := c.input.ReadOrder()
		if err != nil {
			return nil, errors.Wrap(err, "read order")
		}
		order, err := c.orders.Prepare(raw)
		if err == nil {
			return order, nil
		}
		if !apperror.IsAppError(err) {
			return nil, err
		}
		c.logger.Debug().Str("input", raw).Err(err).Msg("order rejected")
		c.output.ShowError(err)
	}
}

func (c *Controller) print(r *entity.Receipt) {
	if c.printer == nil {
		return
	}
	if err := c.printer.PrintReceipt(r); err != nil {
		c.logger.Warn().Err(err).Str("invoice_no", r.InvoiceNo).Msg("receipt not printed")
	}
}
