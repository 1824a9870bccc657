package store

import (
	"context"
	"strings"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	"github.com/jhoicas/Inventario-admin/internal/domain"
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
	"github.com/jhoicas/Inventario-admin/internal/domain/repository"
)

// ItemStore catálogo de artículos con nombre único.
type ItemStore struct {
	*Collection[entity.Item]
	w *Writer
}

func newItemStore(w *Writer) *ItemStore {
	return &ItemStore{Collection: newCollection[entity.Item](repository.KeyItems, &w.view, nil), w: w}
}

// Get busca un artículo por id.
func (s *ItemStore) Get(id string) (entity.Item, bool) {
	items := s.snapshot()
	if i := find(items, byItemID(id)); i >= 0 {
		return items[i], true
	}
	return entity.Item{}, false
}

// Search artículos cuyo nombre contiene term, sin distinguir mayúsculas. term vacío devuelve todos.
func (s *ItemStore) Search(term string) []entity.Item {
	needle := entity.FoldKey(strings.TrimSpace(term))
	out := make([]entity.Item, 0)
	for _, it := range s.snapshot() {
		if strings.Contains(entity.FoldKey(it.Name), needle) {
			out = append(out, it)
		}
	}
	return out
}

// AddItem da de alta un artículo.
func (s *ItemStore) AddItem(ctx context.Context, in dto.CreateItemRequest) (*entity.Item, error) {
	var created entity.Item
	err := s.w.Run(ctx, s.name, func(tx *Tx) error {
		if err := in.Validate(); err != nil {
			return err
		}
		items := s.snapshot()
		if itemNameTaken(items, in.Name, "") {
			return domain.ErrDuplicateName
		}
		now := s.w.now()
		created = entity.Item{
			ID:            s.w.newID(),
			Name:          in.Name,
			Description:   in.Description,
			Price:         in.Price,
			Cost:          in.Cost,
			Stock:         in.Stock,
			MinStockLevel: in.MinStockLevel,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		return stage(tx, s.Collection, with(items, created))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateItem aplica los campos presentes en in y refresca UpdatedAt.
func (s *ItemStore) UpdateItem(ctx context.Context, id string, in dto.UpdateItemRequest) (*entity.Item, error) {
	var updated entity.Item
	err := s.w.Run(ctx, s.name, func(tx *Tx) error {
		if err := in.Validate(); err != nil {
			return err
		}
		items := s.snapshot()
		i := find(items, byItemID(id))
		if i < 0 {
			return domain.ErrNotFound
		}
		updated = items[i]
		if in.Name != nil {
			if itemNameTaken(items, *in.Name, id) {
				return domain.ErrDuplicateName
			}
			updated.Name = *in.Name
		}
		if in.Description != nil {
			updated.Description = *in.Description
		}
		if in.Price != nil {
			updated.Price = *in.Price
		}
		if in.Cost != nil {
			updated.Cost = *in.Cost
		}
		if in.Stock != nil {
			updated.Stock = *in.Stock
		}
		if in.MinStockLevel != nil {
			updated.MinStockLevel = *in.MinStockLevel
		}
		updated.UpdatedAt = s.w.now()
		return stage(tx, s.Collection, replaced(items, i, updated))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteItem elimina un artículo. Las ventas que lo referencian se conservan.
func (s *ItemStore) DeleteItem(ctx context.Context, id string) error {
	return s.w.Run(ctx, s.name, func(tx *Tx) error {
		items := s.snapshot()
		i := find(items, byItemID(id))
		if i < 0 {
			return domain.ErrNotFound
		}
		return stage(tx, s.Collection, without(items, i))
	})
}

// ReplaceAll sustituye la colección completa sin validar campos.
func (s *ItemStore) ReplaceAll(ctx context.Context, items []entity.Item) error {
	next := append(make([]entity.Item, 0, len(items)), items...)
	return s.w.Run(ctx, s.name, func(tx *Tx) error {
		return s.stageReplaceAll(tx, next)
	})
}

// stageReplaceAll prepara el reemplazo dentro de una Tx ya abierta (venta).
func (s *ItemStore) stageReplaceAll(tx *Tx, items []entity.Item) error {
	return stage(tx, s.Collection, items)
}

func byItemID(id string) func(entity.Item) bool {
	return func(it entity.Item) bool { return it.ID == id }
}

func itemNameTaken(items []entity.Item, name, exceptID string) bool {
	return find(items, func(it entity.Item) bool {
		return it.ID != exceptID && entity.SameFold(it.Name, name)
	}) >= 0
}
