package console

import (
	"context"
	"fmt"
)

// Decisions asks the fulfillment questions on the console
type Decisions struct {
	in *InputView
}

// NewDecisions creates a console decision port
func NewDecisions(in *InputView) *Decisions {
	return &Decisions{in: in}
}

func (d *Decisions) AskPayFullPriceForShortfall(ctx context.Context, name string, shortfall int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return d.in.AskYesNo(fmt.Sprintf(promptShortfall, shortfall, name))
}

func (d *Decisions) AskAcceptBonusUnit(ctx context.Context, name string, bonus int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return d.in.AskYesNo(fmt.Sprintf(promptBonus, bonus, name))
}
