package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-admin/internal/domain"
)

// CreateItemRequest entrada para dar de alta un artículo.
type CreateItemRequest struct {
	Name          string          `json:"name" validate:"required,max=200"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	Stock         int             `json:"stock" validate:"gte=0"`
	MinStockLevel int             `json:"minStockLevel" validate:"gte=0"`
}

// Validate etiquetas + importes no negativos.
func (r CreateItemRequest) Validate() error {
	if err := Validate(r); err != nil {
		return err
	}
	return nonNegative(&r.Price, &r.Cost)
}

// UpdateItemRequest cambios parciales: campo nil = sin cambio.
type UpdateItemRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	Cost          *decimal.Decimal `json:"cost"`
	Stock         *int             `json:"stock" validate:"omitempty,gte=0"`
	MinStockLevel *int             `json:"minStockLevel" validate:"omitempty,gte=0"`
}

// Validate etiquetas + importes presentes no negativos.
func (r UpdateItemRequest) Validate() error {
	if err := Validate(r); err != nil {
		return err
	}
	return nonNegative(r.Price, r.Cost)
}

func nonNegative(amounts ...*decimal.Decimal) error {
	for _, a := range amounts {
		if a != nil && a.IsNegative() {
			return fmt.Errorf("%w: precio y costo no pueden ser negativos", domain.ErrInvalidInput)
		}
	}
	return nil
}
