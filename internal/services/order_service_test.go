// internal/services/order_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/clothify/clothify-backend/internal/models"
)

func cartItemWithProduct(price float64, quantity int) models.CartItem {
	product := models.Product{Price: price}
	product.ID = uuid.New()

	item := models.CartItem{
		ProductID: product.ID,
		Quantity:  quantity,
		Product:   product,
	}
	return item
}

func TestSnapshotCartItemsCopiesCurrentPrices(t *testing.T) {
	orderID := uuid.New()
	items := []models.CartItem{
		cartItemWithProduct(10.00, 2),
		cartItemWithProduct(5.00, 3),
	}

	orderItems, err := snapshotCartItems(orderID, items)
	assert.NoError(t, err)
	assert.Len(t, orderItems, 2)

	assert.Equal(t, orderID, orderItems[0].OrderID)
	assert.Equal(t, items[0].ProductID, orderItems[0].ProductID)
	assert.Equal(t, 2, orderItems[0].Quantity)
	assert.InDelta(t, 10.00, orderItems[0].UnitPrice, 0.001)
	assert.InDelta(t, 5.00, orderItems[1].UnitPrice, 0.001)
}

// A product removed from the catalog after it was added to the cart loads as
// a zero-value association. Checkout must fail rather than write a free line.
func TestSnapshotCartItemsRejectsRemovedProduct(t *testing.T) {
	items := []models.CartItem{
		cartItemWithProduct(10.00, 2),
		{ProductID: uuid.New(), Quantity: 1}, // association not loaded
	}

	orderItems, err := snapshotCartItems(uuid.New(), items)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no longer available")
	assert.Nil(t, orderItems)
}

func TestSnapshotCartItemsEmptyCart(t *testing.T) {
	orderItems, err := snapshotCartItems(uuid.New(), nil)
	assert.NoError(t, err)
	assert.Empty(t, orderItems)
}
