package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeDiscountedPrice(t *testing.T) {
	cases := []struct {
		price    string
		discount string
		want     string
	}{
		{"100", "10", "90"},
		{"100", "0", "100"},
		{"49.99", "50", "24.995"},
		{"10", "100", "0"},
	}
	for _, tc := range cases {
		p := Product{
			PricePerItem:       decimal.RequireFromString(tc.price),
			DiscountPercentage: decimal.RequireFromString(tc.discount),
		}
		got := p.ComputeDiscountedPrice()
		assert.True(t, decimal.RequireFromString(tc.want).Equal(got),
			"price %s discount %s: want %s, got %s", tc.price, tc.discount, tc.want, got)
	}
}
