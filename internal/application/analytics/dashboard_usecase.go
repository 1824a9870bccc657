// Package analytics contiene los indicadores del panel principal y la lista de reposición.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
)

const noPopularItem = "N/A"

// ItemSource y SaleSource instantáneas de solo lectura (los stores las implementan).
type ItemSource interface {
	Current() []entity.Item
}

type SaleSource interface {
	Current() []entity.Sale
}

// DashboardUseCase calcula indicadores sobre las instantáneas actuales de artículos y ventas.
type DashboardUseCase struct {
	items ItemSource
	sales SaleSource
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(items ItemSource, sales SaleSource) *DashboardUseCase {
	return &DashboardUseCase{items: items, sales: sales}
}

// GetMetrics indicadores a la fecha now. "Hoy" empieza a las 00:00 en la zona de now.
func (uc *DashboardUseCase) GetMetrics(now time.Time) *dto.DashboardMetricsDTO {
	sales := uc.sales.Current()
	items := uc.items.Current()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	m := &dto.DashboardMetricsDTO{
		MostPopularItem:  noPopularItem,
		TotalRevenue:     decimal.Zero,
		RevenueToday:     decimal.Zero,
		YesterdayRevenue: decimal.Zero,
		AverageSaleValue: decimal.Zero,
	}

	// ── Ventas ─────────────────────────────────────────────────────────────────
	unitsByItem := make(map[string]int)
	var order []string // itemIDs en orden de primera venta
	for _, s := range sales {
		m.TotalItemsSold += s.Quantity
		m.TotalRevenue = m.TotalRevenue.Add(s.Total)

		switch {
		case !s.SoldAt.Before(todayStart):
			m.ItemsSoldToday += s.Quantity
			m.RevenueToday = m.RevenueToday.Add(s.Total)
		case !s.SoldAt.Before(yesterdayStart):
			m.YesterdayRevenue = m.YesterdayRevenue.Add(s.Total)
		}

		if _, seen := unitsByItem[s.ItemID]; !seen {
			order = append(order, s.ItemID)
		}
		unitsByItem[s.ItemID] += s.Quantity
	}
	if len(sales) > 0 {
		m.AverageSaleValue = m.TotalRevenue.Div(decimal.NewFromInt(int64(len(sales)))).Round(2)
	}

	// El primero en alcanzar el máximo gana los empates.
	popularID, maxUnits := "", 0
	for _, id := range order {
		if unitsByItem[id] > maxUnits {
			popularID, maxUnits = id, unitsByItem[id]
		}
	}

	// ── Stock ──────────────────────────────────────────────────────────────────
	for _, it := range items {
		if it.ID == popularID {
			m.MostPopularItem = it.Name
		}
		if it.IsLowStock() {
			m.LowStockItems++
		}
		if it.IsOutOfStock() {
			m.OutOfStockItems++
		}
	}
	return m
}
