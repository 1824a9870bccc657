package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-admin/internal/domain"
)

func TestRoleInUseError_EsErrRoleInUseConConteo(t *testing.T) {
	var err error = &domain.RoleInUseError{Count: 2}

	assert.ErrorIs(t, err, domain.ErrRoleInUse)
	var inUse *domain.RoleInUseError
	assert.True(t, errors.As(err, &inUse))
	assert.Equal(t, 2, inUse.Count)
	assert.Contains(t, err.Error(), "(2)")
}

func TestInsufficientStockError_EsErrInsufficientStock(t *testing.T) {
	err := fmt.Errorf("vender: %w", &domain.InsufficientStockError{ItemID: "i1", Available: 2, Requested: 3})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, "INSUFFICIENT_STOCK", domain.Code(err))
}

func TestCode(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{domain.ErrDuplicateName, "DUPLICATE_NAME"},
		{domain.ErrDuplicateEmail, "DUPLICATE_EMAIL"},
		{&domain.RoleInUseError{Count: 1}, "ROLE_IN_USE"},
		{fmt.Errorf("envuelto: %w", domain.ErrProtectedRole), "PROTECTED_ROLE"},
		{domain.ErrInvalidCredentials, "INVALID_CREDENTIALS"},
		{errors.New("otro"), "INTERNAL"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, domain.Code(c.err))
	}
}
