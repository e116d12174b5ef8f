package dto

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/SscSPs/pos_monedas/internal/core/domain"
)

// CurrencyRequest is the body accepted by the create and update endpoints.
type CurrencyRequest struct {
	CodigoISO string `json:"codigoIso" validate:"notblank,len=3,alpha" example:"USD"`
	Nombre    string `json:"nombre" validate:"notblank,max=50" example:"Dólar estadounidense"`
	Simbolo   string `json:"simbolo" validate:"notblank,max=10" example:"$"`
	Decimales *int   `json:"decimales,omitempty" validate:"omitempty,min=0,max=10" example:"2"`
	Activo    *bool  `json:"activo,omitempty" example:"true"`

	// InvalidTypes lists body fields that were present with a JSON type the field cannot hold.
	InvalidTypes []string `json:"-"`
}

var jsonNull = []byte("null")

// UnmarshalJSON decodes the body without failing on mistyped fields, recording them in
// InvalidTypes so they can be reported after the field rules. An explicit null
// decimales counts as absent; an explicit null activo is not a boolean.
func (r *CurrencyRequest) UnmarshalJSON(data []byte) error {
	type fields CurrencyRequest
	raw := struct {
		*fields
		Decimales json.RawMessage `json:"decimales"`
		Activo    json.RawMessage `json:"activo"`
	}{fields: (*fields)(r)}

	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return err
		}
		r.InvalidTypes = append(r.InvalidTypes, typeErr.Field)
	}

	if len(raw.Decimales) > 0 && !bytes.Equal(raw.Decimales, jsonNull) {
		var decimales int
		if err := json.Unmarshal(raw.Decimales, &decimales); err != nil {
			r.InvalidTypes = append(r.InvalidTypes, "decimales")
		} else {
			r.Decimales = &decimales
		}
	}

	if len(raw.Activo) > 0 {
		var activo bool
		if bytes.Equal(raw.Activo, jsonNull) || json.Unmarshal(raw.Activo, &activo) != nil {
			r.InvalidTypes = append(r.InvalidTypes, "activo")
		} else {
			r.Activo = &activo
		}
	}
	return nil
}

// ToCurrencyInput converts the request into the repository write input.
func (r CurrencyRequest) ToCurrencyInput() domain.CurrencyInput {
	return domain.CurrencyInput{
		ISOCode:  r.CodigoISO,
		Name:     r.Nombre,
		Symbol:   r.Simbolo,
		Decimals: r.Decimales,
		Active:   r.Activo,
	}
}

// ListCurrenciesParams defines the query parameters of the listing endpoint.
type ListCurrenciesParams struct {
	PageNumber string `form:"pageNumber"`
	PageSize   string `form:"pageSize"`
}

// ListCurrenciesResponse is the data payload of the listing endpoint.
type ListCurrenciesResponse struct {
	Monedas []domain.Currency `json:"monedas"`
}

// ToListCurrenciesResponse wraps a page of currencies, never returning a nil list.
func ToListCurrenciesResponse(currencies []domain.Currency) ListCurrenciesResponse {
	if currencies == nil {
		currencies = []domain.Currency{}
	}
	return ListCurrenciesResponse{Monedas: currencies}
}
