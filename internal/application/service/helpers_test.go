package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sangkips/promo-kiosk/internal/domain/entity"
	"github.com/sangkips/promo-kiosk/internal/domain/inventory"
	"github.com/stretchr/testify/require"
)

var (
	testLoc  = time.FixedZone("KST", 9*60*60)
	inWindow = time.Date(2026, 10, 19, 12, 0, 0, 0, testLoc)
)

type question struct {
	kind  string
	name  string
	count int
}

// scriptedDecisions answers from a fixed list and records every question
type scriptedDecisions struct {
	answers []bool
	asked   []question
	err     error
}

func answers(a ...bool) *scriptedDecisions {
	return &scriptedDecisions{answers: a}
}

func (d *scriptedDecisions) next(q question) (bool, error) {
	d.asked = append(d.asked, q)
	if d.err != nil {
		return false, d.err
	}
	if len(d.answers) == 0 {
		return false, fmt.Errorf("unexpected question %+v", q)
	}
	a := d.answers[0]
	d.answers = d.answers[1:]
	return a, nil
}

func (d *scriptedDecisions) AskPayFullPriceForShortfall(_ context.Context, name string, shortfall int) (bool, error) {
	return d.next(question{kind: "shortfall", name: name, count: shortfall})
}

func (d *scriptedDecisions) AskAcceptBonusUnit(_ context.Context, name string, bonus int) (bool, error) {
	return d.next(question{kind: "bonus", name: name, count: bonus})
}

var errStdinClosed = errors.New("stdin closed")

func mustPromotion(t *testing.T, name string, buy, get int, start, end string) *entity.Promotion {
	t.Helper()
	p, err := entity.NewPromotion(name, buy, get, start, end, testLoc)
	require.NoError(t, err)
	return p
}

// newColaStore stocks cola at 1,000 under a year-long buy-2-get-1 promotion,
// orange juice at 1,800 under buy-1-get-1, and water without promotion.
func newColaStore(t *testing.T, promoQty, generalQty int) *inventory.Store {
	t.Helper()
	store, err := inventory.NewStore(
		[]*entity.Product{
			entity.NewProduct("cola", 1000, promoQty, "Soda 2+1"),
			entity.NewProduct("cola", 1000, generalQty, "null"),
			entity.NewProduct("orange juice", 1800, 9, "MD Pick"),
			entity.NewProduct("water", 500, 10, "null"),
		},
		[]*entity.Promotion{
			mustPromotion(t, "Soda 2+1", 2, 1, "2026-01-01", "2026-12-31"),
			mustPromotion(t, "MD Pick", 1, 1, "2026-01-01", "2026-12-31"),
		},
	)
	require.NoError(t, err)
	return store
}

func promoQty(t *testing.T, store *inventory.Store, name string) int {
	t.Helper()
	p, ok := store.LookupPromotional(name)
	require.True(t, ok)
	return p.Quantity
}

func generalQty(t *testing.T, store *inventory.Store, name string) int {
	t.Helper()
	p, err := store.LookupGeneral(name)
	require.NoError(t, err)
	return p.Quantity
}
