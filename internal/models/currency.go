package models

// Currency mirrors a row of the moneda table.
type Currency struct {
	MonedaID  int64  `db:"moneda_id"`
	CodigoISO string `db:"codigo_iso"`
	Nombre    string `db:"nombre"`
	Simbolo   string `db:"simbolo"`
	Decimales int    `db:"decimales"`
	Activo    bool   `db:"activo"`
}
