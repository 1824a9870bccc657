package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Inventario-admin/internal/domain"
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
)

// ErrorResponse código estable + mensaje legible, para que la UI presente el fallo.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse construye la respuesta a partir de un error de dominio.
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{Code: domain.Code(err), Message: err.Error()}
}

// validate instancia compartida: cachea la metadata de los structs y es segura entre goroutines.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("permission", func(fl validator.FieldLevel) bool {
		return entity.Permission(fl.Field().String()).Valid()
	})
	return v
}

// Validate aplica las etiquetas `validate` de s. Los fallos se devuelven envueltos en domain.ErrInvalidInput.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(fields, ", "))
}
