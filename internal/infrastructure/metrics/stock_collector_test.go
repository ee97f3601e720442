package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sangkips/promo-kiosk/internal/domain/entity"
	"github.com/sangkips/promo-kiosk/internal/domain/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRows []inventory.StockRow

func (r fixedRows) Rows() []inventory.StockRow { return r }

func TestStockCollector(t *testing.T) {
	collector := NewStockCollector(fixedRows{
		{Product: entity.Product{Name: "cola", UnitPrice: 1000, Quantity: 4, PromotionName: "Soda 2+1"}, Promotional: true},
		{Product: entity.Product{Name: "cola", UnitPrice: 1000, Quantity: 10}},
		{Product: entity.Product{Name: "water", UnitPrice: 500, Quantity: 0}},
	})

	expected := `
# HELP kiosk_stock_units Units left in stock, by product and stock kind.
# TYPE kiosk_stock_units gauge
kiosk_stock_units{kind="general",product="cola"} 10
kiosk_stock_units{kind="general",product="water"} 0
kiosk_stock_units{kind="promotional",product="cola"} 4
`
	require.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected)))
	assert.Equal(t, 3, testutil.CollectAndCount(collector))
}

func TestStockCollector_FollowsStore(t *testing.T) {
	store, err := inventory.NewStore([]*entity.Product{entity.NewProduct("water", 500, 10, "null")}, nil)
	require.NoError(t, err)
	collector := NewStockCollector(store)

	require.NoError(t, store.DecrementGeneral("water", 3))
	expected := `
# HELP kiosk_stock_units Units left in stock, by product and stock kind.
# TYPE kiosk_stock_units gauge
kiosk_stock_units{kind="general",product="water"} 7
`
	assert.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected)))
}
