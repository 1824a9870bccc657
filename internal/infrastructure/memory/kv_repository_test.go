package memory_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-admin/internal/infrastructure/memory"
)

func TestKVRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	r := memory.NewKVRepository()

	_, ok, err := r.Get(ctx, "items")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Set(ctx, "items", json.RawMessage(`[{"id":"1"}]`)))
	v, ok, err := r.Get(ctx, "items")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"1"}]`, string(v))

	// Mutar el valor devuelto no altera lo almacenado.
	v[0] = '{'
	v2, _, _ := r.Get(ctx, "items")
	assert.JSONEq(t, `[{"id":"1"}]`, string(v2))

	require.NoError(t, r.Delete(ctx, "items"))
	_, ok, _ = r.Get(ctx, "items")
	assert.False(t, ok)
	assert.Empty(t, r.Keys())
}
