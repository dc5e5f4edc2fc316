package cartControllers

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rakeshrg123/Mechine-test/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sentinel errors for the cart workflow. Handlers map these to HTTP statuses.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrVariantNotFound   = errors.New("variant not found")
	ErrInsufficientStock = errors.New("not enough stock available")
	ErrCartNotFound      = errors.New("cart not found")
	ErrItemNotFound      = errors.New("item not found in cart")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrEmptyCart         = errors.New("cart is empty")
)

// AddToCart puts quantity units of a product variant into the user's cart,
// creating the cart if needed. The requested amount is checked against current
// stock, but stock is not decremented here; that happens at checkout. When the
// (product, variant) pair is already in the cart the quantities are summed
// without re-checking the new total against stock.
func AddToCart(db *gorm.DB, userID, productID, variantID uint, quantity int) (*models.Cart, error) {
	var product models.Product
	if err := db.Preload("Variants").First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	variant := product.VariantByID(variantID)
	if variant == nil {
		return nil, ErrVariantNotFound
	}
	if variant.Stock < quantity {
		return nil, ErrInsufficientStock
	}

	var cart models.Cart
	err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		cart = models.Cart{UserID: userID}
	}

	if item := cart.ItemFor(productID, variantID); item != nil {
		item.Quantity += quantity
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: productID,
			VariantID: variantID,
			Quantity:  quantity,
			Price:     product.Price, // snapshot, used for the checkout total
		})
	}

	if err := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateCartItem overwrites the quantity of an existing cart line. Stock is
// not re-validated against the new quantity.
func UpdateCartItem(db *gorm.DB, userID, productID, variantID uint, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	item := cart.ItemFor(productID, variantID)
	if item == nil {
		return nil, ErrItemNotFound
	}

	item.Quantity = quantity
	if err := db.Save(item).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveFromCart deletes one line from the cart. An emptied cart record is
// kept; only ClearCart and Checkout remove the cart itself.
func RemoveFromCart(db *gorm.DB, userID, productID, variantID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	item := cart.ItemFor(productID, variantID)
	if item == nil {
		return nil, ErrItemNotFound
	}

	if err := db.Delete(&models.CartItem{}, item.ID).Error; err != nil {
		return nil, err
	}

	remaining := cart.Items[:0]
	for _, it := range cart.Items {
		if it.ID != item.ID {
			remaining = append(remaining, it)
		}
	}
	cart.Items = remaining
	return &cart, nil
}

// EnrichedCartItem joins a cart line with the live product name and variant
// color. When the product or variant has since been deleted, sentinel labels
// are used instead of failing.
type EnrichedCartItem struct {
	ProductID   uint    `json:"productId"`
	VariantID   uint    `json:"variantId"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ProductName string  `json:"productName"`
	VariantName string  `json:"variantName"`
}

// GetCartDetails resolves the user's cart with live catalog labels. A missing
// cart or an empty one yields an empty slice, never an error.
func GetCartDetails(db *gorm.DB, userID uint) ([]EnrichedCartItem, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	enriched := make([]EnrichedCartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		out := EnrichedCartItem{
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			Quantity:    item.Quantity,
			Price:       item.Price,
			ProductName: "Unknown Product",
			VariantName: "Unknown Variant",
		}

		var product models.Product
		err := db.Preload("Variants").First(&product, item.ProductID).Error
		if err == nil {
			out.ProductName = product.Name
			if variant := product.VariantByID(item.VariantID); variant != nil {
				out.VariantName = variant.Color
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		enriched = append(enriched, out)
	}
	return enriched, nil
}

// CartItemCount returns the number of line items in the user's cart (not the
// summed quantities). A missing cart counts as zero.
func CartItemCount(db *gorm.DB, userID uint) (int, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return len(cart.Items), nil
}

// ClearCart deletes the user's cart record and its items.
func ClearCart(db *gorm.DB, userID uint) error {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartNotFound
		}
		return err
	}
	return db.Select(clause.Associations).Delete(&cart).Error
}

// Checkout converts the user's cart into an order. The whole sequence —
// per-line stock validation and decrement, order creation, cart deletion —
// runs inside one transaction and commits or rolls back as a unit. The total
// is computed from the snapshotted cart-item prices, not live catalog prices.
func Checkout(db *gorm.DB, userID uint) (*models.Order, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var total float64
		items := make([]models.OrderItem, 0, len(cart.Items))

		for _, item := range cart.Items {
			// Guarded decrement: only succeeds when stock still covers the
			// line, so concurrent checkouts cannot drive stock negative.
			res := tx.Model(&models.Variant{}).
				Where("id = ? AND product_id = ? AND stock >= ?", item.VariantID, item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				var variant models.Variant
				err := tx.Where("id = ? AND product_id = ?", item.VariantID, item.ProductID).First(&variant).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrVariantNotFound
				}
				if err != nil {
					return err
				}
				return ErrInsufficientStock
			}

			total += item.Price * float64(item.Quantity)
			items = append(items, models.OrderItem{
				ProductID: item.ProductID,
				VariantID: item.VariantID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}

		order = models.Order{
			Reference:   newOrderRef(),
			UserID:      userID,
			Items:       items,
			TotalAmount: total,
			Status:      models.OrderStatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Select(clause.Associations).Delete(&cart).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// newOrderRef builds a unique human-sortable order reference.
func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
