package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// LowStockThreshold is the stock level below which a product shows up in
// inventory alerts.
const LowStockThreshold = 5

// Product is a catalog item. Lab supplies carry batch/chemical codes and
// elaboration/expiry dates on top of the usual storefront fields.
type Product struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name"`
	BatchCode     string    `json:"batch_code"`
	Description   string    `json:"description"`
	ChemCode      string    `json:"chem_code"`
	ExpDate       time.Time `json:"exp_date"`
	ElabDate      time.Time `json:"elab_date"`
	Cost          int       `json:"cost"`
	Stock         int       `json:"stock"`
	CriticalStock int       `json:"critical_stock"`
	Supplier      string    `json:"supplier"`
	CategoryID    string    `json:"category_id"`
	Image         string    `json:"image"`
	Active        bool      `json:"active"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"created_at"`
}
