package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := map[int64]string{
		0:       "0",
		500:     "500",
		1000:    "1,000",
		18300:   "18,300",
		1234567: "1,234,567",
	}
	for amount, want := range tests {
		assert.Equal(t, want, Format(amount))
	}
}

func TestDiscountAndUnit(t *testing.T) {
	assert.Equal(t, "-1,000", Discount(1000))
	assert.Equal(t, "-0", Discount(0))
	assert.Equal(t, "6,400 won", WithUnit(6400))
}
