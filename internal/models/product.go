// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Category struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Description string `json:"description,omitempty" gorm:"type:text"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`

	// Annotated on list queries, not a column.
	ProductCount int64 `json:"product_count" gorm:"->;-:migration"`
}

type Product struct {
	BaseModel
	CategoryID  uuid.UUID      `json:"category_id" gorm:"type:uuid;not null;index"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Price       float64        `json:"price" gorm:"type:decimal(10,2);not null;check:price >= 0"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`

	// Relationships
	Category   Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Images     []ProductImage `json:"images,omitempty" gorm:"foreignKey:ProductID"`
	Reviews    []Review       `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
	OrderItems []OrderItem    `json:"-" gorm:"foreignKey:ProductID"`
}

type ProductImage struct {
	BaseModel
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	URL       string    `json:"url" gorm:"size:512;not null"`
	// Storage object key, empty for externally hosted images.
	Key     string `json:"key,omitempty" gorm:"size:255"`
	AltText string `json:"alt_text,omitempty" gorm:"size:255"`

	// Relationships
	Product Product `json:"-" gorm:"foreignKey:ProductID"`
}
