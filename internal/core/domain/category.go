package domain

import "errors"

var ErrCategoryNotFound = errors.New("category not found")

// Category groups catalog products.
type Category struct {
	ID   string `json:"id" bson:"_id,omitempty"`
	Name string `json:"name"`
}
