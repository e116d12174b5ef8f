package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyRequest_UnmarshalJSON(t *testing.T) {
	two := 2
	yes := true

	tests := []struct {
		name string
		body string
		want CurrencyRequest
	}{
		{
			name: "all fields",
			body: `{"codigoIso":"usd","nombre":"Dólar","simbolo":"$","decimales":2,"activo":true}`,
			want: CurrencyRequest{CodigoISO: "usd", Nombre: "Dólar", Simbolo: "$", Decimales: &two, Activo: &yes},
		},
		{
			name: "optional fields absent",
			body: `{"codigoIso":"usd","nombre":"Dólar","simbolo":"$"}`,
			want: CurrencyRequest{CodigoISO: "usd", Nombre: "Dólar", Simbolo: "$"},
		},
		{
			name: "null decimales is absent",
			body: `{"codigoIso":"usd","decimales":null}`,
			want: CurrencyRequest{CodigoISO: "usd"},
		},
		{
			name: "null activo is mistyped",
			body: `{"codigoIso":"usd","activo":null}`,
			want: CurrencyRequest{CodigoISO: "usd", InvalidTypes: []string{"activo"}},
		},
		{
			name: "string activo and fractional decimales",
			body: `{"decimales":2.5,"activo":"true"}`,
			want: CurrencyRequest{InvalidTypes: []string{"decimales", "activo"}},
		},
		{
			name: "mistyped string field keeps the rest",
			body: `{"codigoIso":"usd","nombre":["x"],"simbolo":"$"}`,
			want: CurrencyRequest{CodigoISO: "usd", Simbolo: "$", InvalidTypes: []string{"nombre"}},
		},
		{
			name: "null body",
			body: `null`,
			want: CurrencyRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got CurrencyRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrencyRequest_UnmarshalJSON_NotAnObject(t *testing.T) {
	for _, body := range []string{`[]`, `"usd"`, `12`} {
		var got CurrencyRequest
		assert.Error(t, json.Unmarshal([]byte(body), &got), body)
	}
}

func TestToCurrencyInput(t *testing.T) {
	three := 3
	no := false
	req := CurrencyRequest{CodigoISO: "CLP", Nombre: "Peso chileno", Simbolo: "$", Decimales: &three, Activo: &no, InvalidTypes: []string{"x"}}

	input := req.ToCurrencyInput()

	assert.Equal(t, "CLP", input.ISOCode)
	assert.Equal(t, "Peso chileno", input.Name)
	assert.Equal(t, "$", input.Symbol)
	assert.Equal(t, &three, input.Decimals)
	assert.Equal(t, &no, input.Active)
}
