package dto

import "github.com/shopspring/decimal"

// DashboardMetricsDTO indicadores del panel principal calculados sobre ventas y artículos actuales.
type DashboardMetricsDTO struct {
	// Unidades
	TotalItemsSold int `json:"totalItemsSold"` // suma de cantidades, histórico
	ItemsSoldToday int `json:"itemsSoldToday"`

	// MostPopularItem nombre del artículo con más unidades vendidas, "N/A" si no hay ventas.
	MostPopularItem string `json:"mostPopularItem"`

	// Ingresos
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	RevenueToday     decimal.Decimal `json:"revenueToday"`
	YesterdayRevenue decimal.Decimal `json:"yesterdayRevenue"`
	AverageSaleValue decimal.Decimal `json:"averageSaleValue"`

	// Stock
	LowStockItems   int `json:"lowStockItems"` // stock <= mínimo y > 0
	OutOfStockItems int `json:"outOfStockItems"`
}

// ReplenishmentSuggestionDTO artículo a reponer con la cantidad sugerida de pedido.
type ReplenishmentSuggestionDTO struct {
	ItemID             string          `json:"itemId"`
	ItemName           string          `json:"itemName"`
	CurrentStock       int             `json:"currentStock"`
	MinStockLevel      int             `json:"minStockLevel"`
	IdealStock         int             `json:"idealStock"` // ceil(mínimo * 1.5)
	SuggestedOrderQty  int             `json:"suggestedOrderQty"`
	UnitCost           decimal.Decimal `json:"unitCost"`
	EstimatedOrderCost decimal.Decimal `json:"estimatedOrderCost"`
	MarginPercentage   decimal.Decimal `json:"marginPercentage"`
	OutOfStock         bool            `json:"outOfStock"`
	Priority           int             `json:"priority"` // 1 = más urgente
}
