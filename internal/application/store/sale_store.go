package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-admin/internal/domain"
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
	"github.com/jhoicas/Inventario-admin/internal/domain/repository"
)

// SaleStore historial de ventas. Las ventas no se editan ni se eliminan.
type SaleStore struct {
	*Collection[entity.Sale]
	w     *Writer
	items *ItemStore
}

func newSaleStore(w *Writer, items *ItemStore) *SaleStore {
	return &SaleStore{Collection: newCollection[entity.Sale](repository.KeySales, &w.view, nil), w: w, items: items}
}

// SellItem registra una venta y descuenta el stock en un único commit: ningún suscriptor
// ve la venta sin el descuento ni el descuento sin la venta. soldBy vacío se registra como "system".
func (s *SaleStore) SellItem(ctx context.Context, itemID string, quantity int, soldBy string) (*entity.Sale, error) {
	if soldBy == "" {
		soldBy = entity.SystemSeller
	}
	var sale entity.Sale
	err := s.w.Run(ctx, s.name, func(tx *Tx) error {
		if quantity <= 0 {
			return fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
		}
		items := s.items.snapshot()
		i := find(items, byItemID(itemID))
		if i < 0 {
			return domain.ErrItemNotFound
		}
		item := items[i]
		if quantity > item.Stock {
			return &domain.InsufficientStockError{ItemID: itemID, Available: item.Stock, Requested: quantity}
		}

		now := s.w.now()
		item.Stock -= quantity
		item.UpdatedAt = now
		sale = entity.Sale{
			ID:        s.w.newID(),
			ItemID:    itemID,
			Quantity:  quantity,
			SalePrice: item.Price,
			Total:     item.Price.Mul(decimal.NewFromInt(int64(quantity))),
			SoldBy:    soldBy,
			SoldAt:    now,
		}

		if err := s.items.stageReplaceAll(tx, replaced(items, i, item)); err != nil {
			return err
		}
		return stage(tx, s.Collection, with(s.snapshot(), sale))
	})
	if err != nil {
		return nil, err
	}
	s.w.metrics.UnitsSold(quantity)
	return &sale, nil
}

// Get busca una venta por id.
func (s *SaleStore) Get(id string) (entity.Sale, bool) {
	sales := s.snapshot()
	if i := find(sales, func(v entity.Sale) bool { return v.ID == id }); i >= 0 {
		return sales[i], true
	}
	return entity.Sale{}, false
}

// ByItem ventas de un artículo en orden de registro.
func (s *SaleStore) ByItem(itemID string) []entity.Sale {
	return s.filter(func(v entity.Sale) bool { return v.ItemID == itemID })
}

// BySeller ventas registradas por soldBy.
func (s *SaleStore) BySeller(soldBy string) []entity.Sale {
	return s.filter(func(v entity.Sale) bool { return v.SoldBy == soldBy })
}

func (s *SaleStore) filter(keep func(entity.Sale) bool) []entity.Sale {
	out := make([]entity.Sale, 0)
	for _, v := range s.snapshot() {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
