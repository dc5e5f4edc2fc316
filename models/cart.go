package models

import "time"

type Cart struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint       `gorm:"uniqueIndex;not null" json:"user_id"` // one open cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem references a product variant; it owns neither. Price is the product
// price snapshotted when the item was added, not looked up live.
type CartItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    uint    `gorm:"index" json:"cart_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	VariantID uint    `gorm:"not null" json:"variant_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}

// ItemFor returns the line matching the (product, variant) pair, nil if none.
// A cart holds at most one such line; duplicates merge by summing quantity.
func (c *Cart) ItemFor(productID, variantID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].VariantID == variantID {
			return &c.Items[i]
		}
	}
	return nil
}
