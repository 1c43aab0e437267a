// internal/models/order_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderTotalSumsPerLine(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{UnitPrice: 10.00, Quantity: 2},
			{UnitPrice: 5.00, Quantity: 3},
		},
	}

	// 10*2 + 5*3, never (10+5)*(2+3)
	assert.InDelta(t, 35.00, order.Total(), 0.001)
}

func TestOrderTotalEmptyOrder(t *testing.T) {
	order := &Order{}
	assert.Zero(t, order.Total())
}

func TestOrderTotalSingleLine(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{UnitPrice: 19.99, Quantity: 1},
		},
	}

	assert.InDelta(t, 19.99, order.Total(), 0.001)
}

func TestOrderTotalUsesSnapshotPrice(t *testing.T) {
	// The line's unit price drives the total even when the linked product
	// has since changed price.
	order := &Order{
		Items: []OrderItem{
			{UnitPrice: 20.00, Quantity: 2, Product: Product{Price: 99.99}},
		},
	}

	assert.InDelta(t, 40.00, order.Total(), 0.001)
}
