package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/SscSPs/pos_monedas/internal/apperrors"
	"github.com/SscSPs/pos_monedas/internal/core/domain"
	"github.com/SscSPs/pos_monedas/internal/dto"
	"github.com/SscSPs/pos_monedas/internal/utils/pagination"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// fieldMessages maps "field.tag" to the message returned to the caller.
var fieldMessages = map[string]string{
	"codigoIso.notblank": "El campo codigoIso es requerido",
	"codigoIso.len":      "El codigoIso debe tener exactamente 3 caracteres (ej: COP, USD, EUR)",
	"codigoIso.alpha":    "El codigoIso debe contener solo letras mayúsculas (ej: COP, USD, EUR)",
	"nombre.notblank":    "El campo nombre es requerido",
	"nombre.max":         "El nombre no puede exceder 50 caracteres",
	"simbolo.notblank":   "El campo simbolo es requerido",
	"simbolo.max":        "El simbolo no puede exceder 10 caracteres",
	"decimales.min":      "El campo decimales debe estar entre 0 y 10",
	"decimales.max":      "El campo decimales debe estar entre 0 y 10",
	"decimales.type":     "El campo decimales debe ser un número entero",
	"activo.type":        "El campo activo debe ser un valor booleano (true o false)",
	"PageNumber.min":     "El parámetro pageNumber debe ser un entero mayor o igual a 1",
	"PageSize.min":       "El parámetro pageSize debe ser un entero mayor o igual a 1",
	"PageSize.max":       "El parámetro pageSize no puede ser mayor a 500",
}

const msgInvalidCurrencyID = "El monedaId debe ser un número positivo válido"

// toValidationError converts the first failing field into a typed validation error.
func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return apperrors.NewValidationError("%s", msg)
	}
	return apperrors.NewValidationError("El campo %s es inválido", fe.Field())
}

// normalizeAndValidateCurrency uppercases the ISO code in place and checks the request.
// Rules are applied in body field order and the first failure is returned; fields sent
// with the wrong JSON type are reported only once every field rule passes.
func normalizeAndValidateCurrency(req *dto.CurrencyRequest) error {
	req.CodigoISO = strings.ToUpper(req.CodigoISO)
	if err := validate.Struct(req); err != nil {
		return toValidationError(err)
	}
	if len(req.InvalidTypes) > 0 {
		field := req.InvalidTypes[0]
		if msg, ok := fieldMessages[field+".type"]; ok {
			return apperrors.NewValidationError("%s", msg)
		}
		return apperrors.NewValidationError("El campo %s tiene un tipo de dato inválido", field)
	}
	return nil
}

func validateCurrencyID(currencyID int64) error {
	if currencyID <= 0 {
		return apperrors.NewValidationError("%s", msgInvalidCurrencyID)
	}
	return nil
}

const msgPageNumberTooLarge = "El parámetro pageNumber no puede ser mayor a %d para pageSize %d"

func validatePagination(params domain.PaginationParams) error {
	if err := validate.Struct(params); err != nil {
		return toValidationError(err)
	}
	if limit := pagination.MaxPageNumber(params.PageSize); params.PageNumber > limit {
		return apperrors.NewValidationError(msgPageNumberTooLarge, limit, params.PageSize)
	}
	return nil
}
