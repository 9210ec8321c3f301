package handler

import (
	"time"

	"github.com/hazellab/catalog-api/internal/core/ports"
)

type productRequest struct {
	Name          string    `json:"name"           validate:"required"`
	BatchCode     string    `json:"batch_code"`
	Description   string    `json:"description"`
	ChemCode      string    `json:"chem_code"`
	ExpDate       time.Time `json:"exp_date"`
	ElabDate      time.Time `json:"elab_date"`
	Cost          int       `json:"cost"           validate:"min=0"`
	Stock         int       `json:"stock"          validate:"min=0"`
	CriticalStock int       `json:"critical_stock" validate:"min=0"`
	Supplier      string    `json:"supplier"`
	CategoryID    string    `json:"category_id"`
	Image         string    `json:"image"`
	Active        bool      `json:"active"`
	Featured      bool      `json:"featured"`
}

func (r productRequest) toInput() ports.ProductInput {
	return ports.ProductInput{
		Name:          r.Name,
		BatchCode:     r.BatchCode,
		Description:   r.Description,
		ChemCode:      r.ChemCode,
		ExpDate:       r.ExpDate,
		ElabDate:      r.ElabDate,
		Cost:          r.Cost,
		Stock:         r.Stock,
		CriticalStock: r.CriticalStock,
		Supplier:      r.Supplier,
		CategoryID:    r.CategoryID,
		Image:         r.Image,
		Active:        r.Active,
		Featured:      r.Featured,
	}
}

type imageRequest struct {
	Image string `json:"image" validate:"required"`
}
