package domain

import "errors"

var ErrCartItemNotFound = errors.New("cart item not found")

// CartItem links an account to a product with a quantity. Only the quantity
// is mutable after creation.
type CartItem struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	AccountID string `json:"account_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
