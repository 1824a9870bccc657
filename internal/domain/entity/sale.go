package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SystemSeller vendedor registrado cuando no hay usuario autenticado.
const SystemSeller = "system"

// Sale es un hecho histórico inmutable: precio y total quedan fijados al momento de la venta.
type Sale struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"itemId"`
	Quantity  int             `json:"quantity"`
	SalePrice decimal.Decimal `json:"salePrice"`
	Total     decimal.Decimal `json:"total"` // SalePrice * Quantity
	SoldBy    string          `json:"soldBy"`
	SoldAt    time.Time       `json:"soldAt"`
}
