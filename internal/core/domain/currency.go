package domain

// Currency represents a currency (moneda) as exposed to API clients.
type Currency struct {
	CurrencyID int64  `json:"monedaId"`
	ISOCode    string `json:"codigoIso"` // e.g. "USD"
	Name       string `json:"nombre"`    // e.g. "US Dollar"
	Symbol     string `json:"simbolo"`   // e.g. "$"
	Decimals   int    `json:"decimales"`
	Active     bool   `json:"activo"`
}

// CurrencyInput is the validated, normalized data used to create or replace a currency.
// Nil Decimals/Active are defaulted by the repository at write time.
type CurrencyInput struct {
	ISOCode  string
	Name     string
	Symbol   string
	Decimals *int
	Active   *bool
}
