package models

import (
	"strings"
	"time"
)

// Variant is a purchasable color/stock combination nested under a Product.
// It never exists independently of its product.
type Variant struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	Color     string `gorm:"not null" json:"color" validate:"required"`
	Stock     int    `gorm:"not null;default:0" json:"stock" validate:"gte=0"`
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:100;not null;index" json:"name" validate:"required,min=3,max=100"`
	Description string    `gorm:"type:text;not null" json:"description" validate:"required,max=500"`
	Price       float64   `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	Variants    []Variant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants" validate:"min=1,dive"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Normalize trims whitespace before validation and persistence.
func (p *Product) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	for i := range p.Variants {
		p.Variants[i].Color = strings.TrimSpace(p.Variants[i].Color)
	}
}

// Validate checks all field constraints at once, including the at-least-one
// variant rule, and returns every violation keyed by field path.
func (p *Product) Validate() ValidationErrors {
	return validateStruct(p, productMessages)
}

// VariantByID locates a variant inside the product's own variant list.
// Returns nil when the id is not present.
func (p *Product) VariantByID(variantID uint) *Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}

var productMessages = map[string]string{
	"Name.required":        "Product name is required",
	"Name.min":             "Product name must be at least 3 characters long",
	"Name.max":             "Product name cannot exceed 100 characters",
	"Description.required": "Product description is required",
	"Description.max":      "Product description cannot exceed 500 characters",
	"Price.gte":            "Price cannot be negative",
	"Variants.min":         "There must be at least one variant for the product",
	"Color.required":       "Color is required",
	"Stock.gte":            "Stock quantity cannot be negative",
}
