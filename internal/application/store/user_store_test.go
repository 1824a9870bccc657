package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	"github.com/jhoicas/Inventario-admin/internal/application/store"
	"github.com/jhoicas/Inventario-admin/internal/domain"
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
)

func TestCreateUser_EmailDuplicadoConOtroUsername(t *testing.T) {
	db, _ := newDB(t)
	mustUser(t, db, "ana", "Ana@Example.com", "")

	_, err := db.Users.CreateUser(context.Background(), dto.CreateUserRequest{
		Fullname: "Otra Ana", Username: "ana_dos", Email: "ANA@example.COM",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.Len(t, db.Users.Current(), 1)
}

func TestCreateUser_UsernameSeReportaAntesQueEmail(t *testing.T) {
	db, _ := newDB(t)
	mustUser(t, db, "ana", "ana@example.com", "")

	_, err := db.Users.CreateUser(context.Background(), dto.CreateUserRequest{
		Fullname: "Ana", Username: "ANA", Email: "ana@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestCreateUser_RolInexistenteSePermite(t *testing.T) {
	db, _ := newDB(t)
	u := mustUser(t, db, "ana", "ana@example.com", "rol-fantasma")
	assert.Equal(t, "rol-fantasma", u.RoleID)
	assert.Equal(t, fixedNow, u.CreatedAt)
	assert.Equal(t, fixedNow, u.UpdatedAt)
}

func TestUpdateUser(t *testing.T) {
	kv := newFailingKV()
	clock := fixedNow
	opts := testOptions()
	opts.Now = func() time.Time { return clock }
	db := openDB(t, kv, opts)
	ctx := context.Background()

	ana := mustUser(t, db, "ana", "ana@example.com", "")
	mustUser(t, db, "luis", "luis@example.com", "")

	clock = fixedNow.Add(time.Hour)
	upd, err := db.Users.UpdateUser(ctx, ana.ID, dto.UpdateUserRequest{Fullname: ptr("Ana María"), Email: ptr("ANA@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", upd.Fullname)
	assert.Equal(t, "ana", upd.Username)
	assert.Equal(t, fixedNow, upd.CreatedAt)
	assert.Equal(t, clock, upd.UpdatedAt)

	_, err = db.Users.UpdateUser(ctx, ana.ID, dto.UpdateUserRequest{Username: ptr("LUIS")})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	_, err = db.Users.UpdateUser(ctx, ana.ID, dto.UpdateUserRequest{Email: ptr("luis@EXAMPLE.com")})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	_, err = db.Users.UpdateUser(ctx, "x", dto.UpdateUserRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	db, _ := newDB(t)
	ctx := context.Background()
	admin := mustUser(t, db, entity.BootstrapAdminUsername, "admin@example.com", "")
	ana := mustUser(t, db, "ana", "ana@example.com", "")

	assert.ErrorIs(t, db.Users.DeleteUser(ctx, admin.ID), domain.ErrProtectedUser)
	assert.ErrorIs(t, db.Users.DeleteUser(ctx, "x"), domain.ErrNotFound)
	require.NoError(t, db.Users.DeleteUser(ctx, ana.ID))

	users := db.Users.Current()
	require.Len(t, users, 1)
	assert.Equal(t, admin.ID, users[0].ID)
}

func TestFindByUsername(t *testing.T) {
	db, _ := newDB(t)
	ana := mustUser(t, db, "Ana", "ana@example.com", "")

	got, ok := db.Users.FindByUsername("ana")
	require.True(t, ok)
	assert.Equal(t, ana.ID, got.ID)

	_, ok = db.Users.FindByUsername("nadie")
	assert.False(t, ok)
}

func TestOpen_DatosCorruptosEsError(t *testing.T) {
	kv := newFailingKV()
	require.NoError(t, kv.Set(context.Background(), "users", []byte(`{"no":"es una lista"}`)))

	_, err := store.Open(context.Background(), kv, testOptions())
	assert.Error(t, err)
}
