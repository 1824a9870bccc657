package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
)

// ReplenishmentList artículos con stock bajo o agotado y la cantidad sugerida de pedido
// para llegar a 1.5 veces el mínimo (al menos una unidad). Ordenados por mayor déficit.
func (uc *DashboardUseCase) ReplenishmentList() []dto.ReplenishmentSuggestionDTO {
	factor := decimal.NewFromFloat(1.5)

	out := make([]dto.ReplenishmentSuggestionDTO, 0)
	for _, it := range uc.items.Current() {
		if !it.IsLowStock() && !it.IsOutOfStock() {
			continue
		}
		ideal := int(decimal.NewFromInt(int64(it.MinStockLevel)).Mul(factor).Ceil().IntPart())
		qty := ideal - it.Stock
		if qty < 1 {
			qty = 1
		}
		out = append(out, dto.ReplenishmentSuggestionDTO{
			ItemID:             it.ID,
			ItemName:           it.Name,
			CurrentStock:       it.Stock,
			MinStockLevel:      it.MinStockLevel,
			IdealStock:         ideal,
			SuggestedOrderQty:  qty,
			UnitCost:           it.Cost,
			EstimatedOrderCost: it.Cost.Mul(decimal.NewFromInt(int64(qty))),
			MarginPercentage:   it.MarginPercentage(),
			OutOfStock:         it.IsOutOfStock(),
		})
	}

	// Mayor déficit primero; a igual déficit, los agotados antes.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		defA, defB := a.MinStockLevel-a.CurrentStock, b.MinStockLevel-b.CurrentStock
		if defA != defB {
			return defA > defB
		}
		return a.OutOfStock && !b.OutOfStock
	})

	for i := range out {
		out[i].Priority = i + 1
	}
	return out
}
