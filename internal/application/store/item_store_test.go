package store_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	"github.com/jhoicas/Inventario-admin/internal/domain"
)

func TestAddItem(t *testing.T) {
	db, _ := newDB(t)
	ctx := context.Background()
	w := mustItem(t, db, "Widget", 10, 4, 5, 2)
	assert.Equal(t, 5, w.Stock)

	_, err := db.Items.AddItem(ctx, dto.CreateItemRequest{Name: "wIDGET", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	_, err = db.Items.AddItem(ctx, dto.CreateItemRequest{Name: "Tornillo", Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = db.Items.AddItem(ctx, dto.CreateItemRequest{Name: "Tornillo", Cost: decimal.NewFromInt(-2)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Len(t, db.Items.Current(), 1)
}

func TestUpdateItem(t *testing.T) {
	db, _ := newDB(t)
	ctx := context.Background()
	w := mustItem(t, db, "Widget", 10, 4, 5, 2)
	mustItem(t, db, "Gadget", 20, 8, 1, 0)

	upd, err := db.Items.UpdateItem(ctx, w.ID, dto.UpdateItemRequest{
		Price: ptr(decimal.NewFromInt(12)), Stock: ptr(9), Description: ptr("azul"),
	})
	require.NoError(t, err)
	assert.True(t, upd.Price.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, 9, upd.Stock)
	assert.Equal(t, "azul", upd.Description)
	assert.Equal(t, "Widget", upd.Name)

	_, err = db.Items.UpdateItem(ctx, w.ID, dto.UpdateItemRequest{Name: ptr("GADGET")})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
	_, err = db.Items.UpdateItem(ctx, w.ID, dto.UpdateItemRequest{MinStockLevel: ptr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = db.Items.UpdateItem(ctx, "x", dto.UpdateItemRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteItem_ConservaVentasHistoricas(t *testing.T) {
	db, _ := newDB(t)
	ctx := context.Background()
	w := mustItem(t, db, "Widget", 10, 4, 5, 2)
	_, err := db.Sales.SellItem(ctx, w.ID, 1, "u1")
	require.NoError(t, err)

	require.NoError(t, db.Items.DeleteItem(ctx, w.ID))
	assert.Empty(t, db.Items.Current())
	assert.Len(t, db.Sales.ByItem(w.ID), 1)

	assert.ErrorIs(t, db.Items.DeleteItem(ctx, w.ID), domain.ErrNotFound)
}

func TestSearch(t *testing.T) {
	db, _ := newDB(t)
	mustItem(t, db, "Widget Azul", 1, 1, 1, 0)
	mustItem(t, db, "Gadget", 1, 1, 1, 0)
	mustItem(t, db, "Mini WIDGET", 1, 1, 1, 0)

	got := db.Items.Search("widget")
	require.Len(t, got, 2)
	assert.Equal(t, "Widget Azul", got[0].Name)
	assert.Equal(t, "Mini WIDGET", got[1].Name)
	assert.Len(t, db.Items.Search(""), 3)
	assert.Empty(t, db.Items.Search("nada"))
}

func TestReplaceAll_SinValidacionPorCampo(t *testing.T) {
	db, _ := newDB(t)
	w := mustItem(t, db, "Widget", 10, 4, 5, 2)
	items := db.Items.Current()
	items[0].Stock = 0

	require.NoError(t, db.Items.ReplaceAll(context.Background(), items))
	got, ok := db.Items.Get(w.ID)
	require.True(t, ok)
	assert.Equal(t, 0, got.Stock)
	assert.True(t, got.IsOutOfStock())
}
