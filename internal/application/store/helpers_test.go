package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	"github.com/jhoicas/Inventario-admin/internal/application/store"
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
	"github.com/jhoicas/Inventario-admin/internal/infrastructure/memory"
)

var fixedNow = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

var errKVDown = errors.New("almacenamiento no disponible")

// failingKV almacenamiento en memoria que falla al escribir las claves marcadas.
type failingKV struct {
	*memory.KVRepo
	mu      sync.Mutex
	failSet map[string]bool
}

func newFailingKV() *failingKV {
	return &failingKV{KVRepo: memory.NewKVRepository(), failSet: map[string]bool{}}
}

func (f *failingKV) failOn(keys ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		f.failSet[k] = true
	}
}

func (f *failingKV) Set(ctx context.Context, key string, value json.RawMessage) error {
	f.mu.Lock()
	fail := f.failSet[key]
	f.mu.Unlock()
	if fail {
		return errKVDown
	}
	return f.KVRepo.Set(ctx, key, value)
}

// testOptions reloj fijo e ids secuenciales.
func testOptions() store.Options {
	n := 0
	return store.Options{
		Now: func() time.Time { return fixedNow },
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}

func openDB(t *testing.T, kv *failingKV, opts store.Options) *store.Database {
	t.Helper()
	db, err := store.Open(context.Background(), kv, opts)
	require.NoError(t, err)
	return db
}

func newDB(t *testing.T) (*store.Database, *failingKV) {
	t.Helper()
	kv := newFailingKV()
	return openDB(t, kv, testOptions()), kv
}

func mustRole(t *testing.T, db *store.Database, name string, perms ...entity.Permission) *entity.Role {
	t.Helper()
	r, err := db.Roles.CreateRole(context.Background(), dto.CreateRoleRequest{Name: name, Permissions: perms})
	require.NoError(t, err)
	return r
}

func mustUser(t *testing.T, db *store.Database, username, email, roleID string) *entity.User {
	t.Helper()
	u, err := db.Users.CreateUser(context.Background(), dto.CreateUserRequest{
		Fullname: "Usuario " + username, Username: username, Email: email, RoleID: roleID,
	})
	require.NoError(t, err)
	return u
}

func mustItem(t *testing.T, db *store.Database, name string, price, cost int64, stock, min int) *entity.Item {
	t.Helper()
	it, err := db.Items.AddItem(context.Background(), dto.CreateItemRequest{
		Name: name, Price: decimal.NewFromInt(price), Cost: decimal.NewFromInt(cost), Stock: stock, MinStockLevel: min,
	})
	require.NoError(t, err)
	return it
}

func ptr[T any](v T) *T { return &v }
