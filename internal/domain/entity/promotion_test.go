package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seoul = time.FixedZone("KST", 9*60*60)

func TestPromotion_ActiveAtIsInclusive(t *testing.T) {
	promo, err := NewPromotion("Flash Sale", 1, 1, "2026-11-01", "2026-11-30", seoul)
	require.NoError(t, err)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before start", time.Date(2026, 10, 31, 23, 59, 59, 0, seoul), false},
		{"first second", time.Date(2026, 11, 1, 0, 0, 0, 0, seoul), true},
		{"mid window", time.Date(2026, 11, 15, 12, 0, 0, 0, seoul), true},
		{"last second", time.Date(2026, 11, 30, 23, 59, 59, 0, seoul), true},
		{"day after end", time.Date(2026, 12, 1, 0, 0, 0, 0, seoul), false},
		{"same instant in UTC", time.Date(2026, 10, 31, 15, 0, 0, 0, time.UTC), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, promo.ActiveAt(tt.at))
		})
	}
}

func TestPromotion_SingleDayWindow(t *testing.T) {
	promo, err := NewPromotion("One Day", 2, 1, "2026-05-05", "2026-05-05", seoul)
	require.NoError(t, err)

	assert.True(t, promo.ActiveAt(time.Date(2026, 5, 5, 18, 0, 0, 0, seoul)))
	assert.False(t, promo.ActiveAt(time.Date(2026, 5, 6, 0, 0, 0, 0, seoul)))
	assert.Equal(t, 3, promo.UnitSize())
	assert.Equal(t, "2+1", promo.Label())
}

func TestNewPromotion_Rejects(t *testing.T) {
	tests := []struct {
		name       string
		buy, get   int
		start, end string
	}{
		{"zero buy", 0, 1, "2026-01-01", "2026-12-31"},
		{"zero get", 2, 0, "2026-01-01", "2026-12-31"},
		{"bad start", 2, 1, "2026/01/01", "2026-12-31"},
		{"bad end", 2, 1, "2026-01-01", "tomorrow"},
		{"end before start", 2, 1, "2026-12-31", "2026-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPromotion("broken", tt.buy, tt.get, tt.start, tt.end, seoul)
			assert.Error(t, err)
		})
	}
}

func TestNormalizePromotionName(t *testing.T) {
	tests := map[string]string{
		"":            "",
		"null":        "",
		"NULL":        "",
		" none ":      "",
		"Soda 2+1":    "Soda 2+1",
		"  MD Pick  ": "MD Pick",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizePromotionName(in), "input %q", in)
	}
}

func TestProduct(t *testing.T) {
	p := NewProduct(" cola ", 1000, 3, "null")

	assert.Equal(t, "cola", p.Name)
	assert.False(t, p.HasPromotion())
	assert.True(t, p.InStock())
	assert.Equal(t, int64(3000), p.PriceOf(3))

	c := p.Copy()
	c.Quantity = 0
	assert.Equal(t, 3, p.Quantity)
	assert.False(t, c.InStock())
}
