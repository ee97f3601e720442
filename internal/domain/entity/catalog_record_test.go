package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductRecord(t *testing.T) {
	promo := NewProductRecord(NewProduct("cola", 1000, 10, "Soda 2+1"), 0)
	require.NotNil(t, promo.PromotionName)
	assert.Equal(t, "Soda 2+1", *promo.PromotionName)
	assert.Equal(t, *NewProduct("cola", 1000, 10, "Soda 2+1"), *promo.ToProduct())

	general := NewProductRecord(NewProduct("cola", 1000, 10, "null"), 1)
	assert.Nil(t, general.PromotionName)
	assert.Equal(t, 1, general.Position)
	assert.False(t, general.ToProduct().HasPromotion())
}

func TestPromotionRecord_KeepsCalendarDates(t *testing.T) {
	promo, err := NewPromotion("Flash Sale", 1, 1, "2026-11-01", "2026-11-30", seoul)
	require.NoError(t, err)

	record := NewPromotionRecord(promo)
	assert.Equal(t, "2026-11-01", record.StartDate.Format(PromotionDateLayout))
	assert.Equal(t, "2026-11-30", record.EndDate.Format(PromotionDateLayout))

	restored, err := record.ToPromotion(seoul)
	require.NoError(t, err)
	assert.Equal(t, promo, restored)
}

func TestRecords_BeforeCreateAssignsID(t *testing.T) {
	p := &ProductRecord{}
	require.NoError(t, p.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, p.ID)

	fixed := uuid.New()
	q := &PromotionRecord{ID: fixed}
	require.NoError(t, q.BeforeCreate(nil))
	assert.Equal(t, fixed, q.ID)
}
