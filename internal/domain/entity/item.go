package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Importes persistidos como números JSON, no como cadenas.
	decimal.MarshalJSONWithoutQuotes = true
}

// Item representa un artículo del inventario. Stock nunca es negativo.
type Item struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"` // precio de venta
	Cost          decimal.Decimal `json:"cost"`  // costo de compra
	Stock         int             `json:"stock"`
	MinStockLevel int             `json:"minStockLevel"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// IsLowStock true si el stock está en o bajo el mínimo pero no agotado.
func (i Item) IsLowStock() bool {
	return i.Stock <= i.MinStockLevel && i.Stock > 0
}

// IsOutOfStock true si no queda stock.
func (i Item) IsOutOfStock() bool {
	return i.Stock == 0
}

// MarginPercentage margen bruto redondeado: (precio - costo) / precio * 100. Cero si el precio es cero.
func (i Item) MarginPercentage() decimal.Decimal {
	if i.Price.IsZero() {
		return decimal.Zero
	}
	return i.Price.Sub(i.Cost).Div(i.Price).Mul(decimal.NewFromInt(100)).Round(0)
}
