package cartControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	orderControllers "github.com/rakeshrg123/Mechine-test/controllers/order"
	"gorm.io/gorm"
)

type AddToCartInput struct {
	UserID    uint `json:"userId" binding:"required"`
	ProductID uint `json:"productId" binding:"required"`
	VariantID uint `json:"variantId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	VariantID uint `json:"variantId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type RemoveFromCartInput struct {
	ProductID uint `json:"productId"`
	VariantID uint `json:"variantId"`
}

// POST /api/cart/addtocart
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		cart, err := AddToCart(db, input.UserID, input.ProductID, input.VariantID, input.Quantity)
		if err != nil {
			respondWorkflowError(c, err, "Error adding product to cart")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product added to cart", "cart": cart})
	}
}

// GET /api/cart/count/:userId
func GetCartCountHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}

		count, err := CartItemCount(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item count"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

// PUT /api/cart/cart/:userId
func UpdateCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		cart, err := UpdateCartItem(db, userID, input.ProductID, input.VariantID, input.Quantity)
		if err != nil {
			respondWorkflowError(c, err, "Error updating cart")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "cart": cart})
	}
}

// DELETE /api/cart/cart/:userId
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}

		if err := ClearCart(db, userID); err != nil {
			respondWorkflowError(c, err, "Error clearing cart")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /api/cart/:userId
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}

		items, err := GetCartDetails(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart details."})
			return
		}
		if len(items) == 0 {
			// Empty-cart sentinel, not a server error.
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Cart is empty.",
				"cart":    gin.H{"items": []EnrichedCartItem{}},
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": gin.H{"items": items}})
	}
}

// POST /api/cart/checkout/:userId
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}

		order, err := Checkout(db, userID)
		if err != nil {
			respondWorkflowError(c, err, "Error processing checkout")
			return
		}

		log.Printf("order %s placed for user %d, total %.2f", order.Reference, userID, order.TotalAmount)
		orderControllers.BroadcastOrder(*order)

		c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "order": order})
	}
}

// DELETE /api/cart/removefromcart/:userId
func RemoveFromCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}

		var input RemoveFromCartInput
		if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == 0 || input.VariantID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Product ID and Variant ID are required"})
			return
		}

		cart, err := RemoveFromCart(db, userID, input.ProductID, input.VariantID)
		if err != nil {
			respondWorkflowError(c, err, "Error removing item from cart")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart", "cart": cart})
	}
}

func parseUserID(c *gin.Context) (uint, bool) {
	raw := c.Param("userId")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return 0, false
	}
	return uint(id), true
}

// respondWorkflowError maps workflow sentinels to HTTP statuses; anything
// unrecognised is a 500 with a per-endpoint message so store failures never
// crash the process.
func respondWorkflowError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
	case errors.Is(err, ErrVariantNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Variant not found"})
	case errors.Is(err, ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Cart not found"})
	case errors.Is(err, ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found in cart"})
	case errors.Is(err, ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Not enough stock available"})
	case errors.Is(err, ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be greater than zero"})
	case errors.Is(err, ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cart is empty"})
	default:
		log.Printf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
	}
}
