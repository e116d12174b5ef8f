package mapping

import (
	"github.com/SscSPs/pos_monedas/internal/core/domain"
	"github.com/SscSPs/pos_monedas/internal/models"
)

// ToDomainCurrency converts a model Currency (moneda row) to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyID: m.MonedaID,
		ISOCode:    m.CodigoISO,
		Name:       m.Nombre,
		Symbol:     m.Simbolo,
		Decimals:   m.Decimales,
		Active:     m.Activo,
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
