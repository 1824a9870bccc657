package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	"github.com/jhoicas/Inventario-admin/internal/domain"
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
)

func ptr[T any](v T) *T { return &v }

func TestCreateRoleRequest_PermisoInvalido(t *testing.T) {
	ok := dto.CreateRoleRequest{Name: "Cajero", Permissions: []entity.Permission{entity.PermissionManageSales}}
	assert.NoError(t, dto.Validate(ok))

	bad := dto.CreateRoleRequest{Name: "Cajero", Permissions: []entity.Permission{"manage_sells"}}
	assert.ErrorIs(t, dto.Validate(bad), domain.ErrInvalidInput)

	noName := dto.CreateRoleRequest{Name: ""}
	assert.ErrorIs(t, dto.Validate(noName), domain.ErrInvalidInput)
}

func TestUpdateRoleRequest_NombreVacioPresente(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.UpdateRoleRequest{}))
	assert.ErrorIs(t, dto.Validate(dto.UpdateRoleRequest{Name: ptr("")}), domain.ErrInvalidInput)
}

func TestCreateUserRequest_Email(t *testing.T) {
	ok := dto.CreateUserRequest{Fullname: "Ana Pérez", Username: "ana_p", Email: "ana@example.com"}
	assert.NoError(t, dto.Validate(ok))

	bad := ok
	bad.Email = "no-es-email"
	assert.ErrorIs(t, dto.Validate(bad), domain.ErrInvalidInput)
}

func TestCreateItemRequest_Validate(t *testing.T) {
	ok := dto.CreateItemRequest{Name: "Widget", Price: decimal.NewFromInt(10), Cost: decimal.NewFromInt(4), Stock: 5, MinStockLevel: 2}
	assert.NoError(t, ok.Validate())

	negStock := ok
	negStock.Stock = -1
	assert.ErrorIs(t, negStock.Validate(), domain.ErrInvalidInput)

	negPrice := ok
	negPrice.Price = decimal.NewFromInt(-1)
	assert.ErrorIs(t, negPrice.Validate(), domain.ErrInvalidInput)
}

func TestUpdateItemRequest_Validate(t *testing.T) {
	assert.NoError(t, dto.UpdateItemRequest{Stock: ptr(0)}.Validate())
	assert.ErrorIs(t, dto.UpdateItemRequest{Stock: ptr(-3)}.Validate(), domain.ErrInvalidInput)
	assert.ErrorIs(t, dto.UpdateItemRequest{Cost: ptr(decimal.NewFromFloat(-0.5))}.Validate(), domain.ErrInvalidInput)
}

func TestNewErrorResponse(t *testing.T) {
	r := dto.NewErrorResponse(&domain.RoleInUseError{Count: 2})
	assert.Equal(t, "ROLE_IN_USE", r.Code)
	assert.NotEmpty(t, r.Message)
}
