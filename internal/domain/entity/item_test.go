package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
)

func TestItem_IndicadoresDeStock(t *testing.T) {
	cases := []struct {
		name       string
		stock, min int
		low, out   bool
	}{
		{"sobre el mínimo", 5, 2, false, false},
		{"en el mínimo", 2, 2, true, false},
		{"bajo el mínimo", 1, 2, true, false},
		{"agotado", 0, 2, false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			it := entity.Item{Stock: c.stock, MinStockLevel: c.min}
			assert.Equal(t, c.low, it.IsLowStock())
			assert.Equal(t, c.out, it.IsOutOfStock())
		})
	}
}

func TestItem_MarginPercentage(t *testing.T) {
	it := entity.Item{Price: decimal.NewFromInt(10), Cost: decimal.NewFromInt(4)}
	assert.True(t, decimal.NewFromInt(60).Equal(it.MarginPercentage()))

	free := entity.Item{Price: decimal.Zero, Cost: decimal.NewFromInt(4)}
	assert.True(t, free.MarginPercentage().IsZero())
}

func TestIsSeedRoleName(t *testing.T) {
	assert.True(t, entity.IsSeedRoleName("Admin"))
	assert.True(t, entity.IsSeedRoleName("SUPERVISOR"))
	assert.True(t, entity.IsSeedRoleName("salesPerson"))
	assert.False(t, entity.IsSeedRoleName("Cajero"))
}

func TestPermission_ValidYNormalize(t *testing.T) {
	assert.True(t, entity.PermissionManageSales.Valid())
	assert.False(t, entity.Permission("manage_sells").Valid())

	got := entity.NormalizePermissions([]entity.Permission{
		entity.PermissionManageItems, entity.PermissionViewDashboard, entity.PermissionManageItems,
	})
	assert.Equal(t, []entity.Permission{entity.PermissionManageItems, entity.PermissionViewDashboard}, got)
}

func TestSameFold(t *testing.T) {
	assert.True(t, entity.SameFold("Widget", "wIDGET"))
	assert.True(t, entity.SameFold("Ana@Mail.com", "ana@mail.com"))
	assert.False(t, entity.SameFold("Widget", "Widgets"))
}

func TestItem_ImportesComoNumerosJSON(t *testing.T) {
	it := entity.Item{ID: "w", Name: "Widget", Price: decimal.RequireFromString("10.5"), Cost: decimal.NewFromInt(4)}
	raw, err := json.Marshal(it)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"price":10.5`)
	assert.Contains(t, string(raw), `"cost":4`)

	s := entity.Sale{ID: "s", SalePrice: decimal.NewFromInt(10), Total: decimal.NewFromInt(30)}
	raw, err = json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"total":30`)

	// Los datos guardados con importes entre comillas se siguen leyendo.
	var old entity.Item
	require.NoError(t, json.Unmarshal([]byte(`{"id":"w","price":"10.5","cost":"4"}`), &old))
	assert.True(t, old.Price.Equal(decimal.RequireFromString("10.5")))
}

func TestRole_CloneNoCompartePermisos(t *testing.T) {
	r := entity.Role{ID: "r", Permissions: []entity.Permission{entity.PermissionViewDashboard}}
	c := r.Clone()
	c.Permissions[0] = entity.PermissionManageUsers
	assert.Equal(t, entity.PermissionViewDashboard, r.Permissions[0])
}
