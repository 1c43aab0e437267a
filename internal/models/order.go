// internal/models/order.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	BaseModel
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`

	// Relationships
	User  User       `json:"-" gorm:"foreignKey:UserID"`
	Items []CartItem `json:"items,omitempty" gorm:"foreignKey:CartID"`
}

type CartItem struct {
	BaseModel
	CartID    uuid.UUID `json:"cart_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null;check:quantity >= 1"`

	// Relationships
	Cart    Cart    `json:"-" gorm:"foreignKey:CartID"`
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

type Order struct {
	BaseModel
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	PlacedAt time.Time `json:"placed_at" gorm:"not null;index"`
	// Never taken from client input; the payment collaborator drives transitions.
	PaymentStatus    PaymentStatus `json:"payment_status" gorm:"type:varchar(20);default:'pending';index"`
	PaymentReference string        `json:"payment_reference,omitempty" gorm:"size:255"`

	// Relationships
	User  User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null;check:quantity >= 1"`
	// Price snapshot taken at checkout; later product price changes do not
	// alter placed orders.
	UnitPrice float64 `json:"unit_price" gorm:"type:decimal(10,2);not null"`

	// Relationships
	Order   Order   `json:"-" gorm:"foreignKey:OrderID"`
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// Total sums unit price times quantity across the order's line items.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}
