package service

import "context"

// DecisionPort answers the two questions fulfillment may ask the customer.
// Answers are already validated Y/N; the error only reports a failed interaction.
type DecisionPort interface {
	// AskPayFullPriceForShortfall asks whether shortfall units that miss the
	// promotion should still be bought at full price.
	AskPayFullPriceForShortfall(ctx context.Context, name string, shortfall int) (bool, error)
	// AskAcceptBonusUnit asks whether to take bonus more free units by
	// completing one more buy-get unit.
	AskAcceptBonusUnit(ctx context.Context, name string, bonus int) (bool, error)
}
