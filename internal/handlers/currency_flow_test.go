package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/SscSPs/pos_monedas/internal/apperrors"
	"github.com/SscSPs/pos_monedas/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_monedas/internal/core/ports/repositories"
	"github.com/SscSPs/pos_monedas/internal/core/services"
	"github.com/SscSPs/pos_monedas/internal/dto"
	"github.com/SscSPs/pos_monedas/internal/envelope"
	"github.com/SscSPs/pos_monedas/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// memoryCurrencyRepository keeps rows in a map keyed by id.
type memoryCurrencyRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.Currency
}

func newMemoryCurrencyRepository() *memoryCurrencyRepository {
	return &memoryCurrencyRepository{nextID: 1, rows: map[int64]models.Currency{}}
}

var _ portsrepo.CurrencyRepositoryFacade = (*memoryCurrencyRepository)(nil)

func (r *memoryCurrencyRepository) sorted() []models.Currency {
	out := make([]models.Currency, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MonedaID < out[j].MonedaID })
	return out
}

func (r *memoryCurrencyRepository) FindCurrencyByID(_ context.Context, currencyID int64) (*models.Currency, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[currencyID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &row, nil
}

func (r *memoryCurrencyRepository) ListCurrencies(_ context.Context) ([]models.Currency, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(), nil
}

func (r *memoryCurrencyRepository) ListCurrenciesPaginated(_ context.Context, params domain.PaginationParams) ([]models.Currency, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.sorted()
	start := (params.PageNumber - 1) * params.PageSize
	if start >= len(all) {
		return []models.Currency{}, int64(len(all)), nil
	}
	end := min(start+params.PageSize, len(all))
	return all[start:end], int64(len(all)), nil
}

func (r *memoryCurrencyRepository) ExistsByISOCode(_ context.Context, isoCode string, excludeID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, row := range r.rows {
		if row.CodigoISO == isoCode && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func toRow(id int64, input domain.CurrencyInput) models.Currency {
	row := models.Currency{MonedaID: id, CodigoISO: input.ISOCode, Nombre: input.Name, Simbolo: input.Symbol, Decimales: 2, Activo: true}
	if input.Decimals != nil {
		row.Decimales = *input.Decimals
	}
	if input.Active != nil {
		row.Activo = *input.Active
	}
	return row
}

func (r *memoryCurrencyRepository) CreateCurrency(_ context.Context, input domain.CurrencyInput) (*models.Currency, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row := toRow(r.nextID, input)
	r.rows[row.MonedaID] = row
	r.nextID++
	return &row, nil
}

func (r *memoryCurrencyRepository) UpdateCurrency(_ context.Context, currencyID int64, input domain.CurrencyInput) (*models.Currency, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[currencyID]; !ok {
		return nil, apperrors.ErrNotFound
	}
	row := toRow(currencyID, input)
	r.rows[currencyID] = row
	return &row, nil
}

func (r *memoryCurrencyRepository) DeleteCurrency(_ context.Context, currencyID int64) (*models.Currency, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[currencyID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(r.rows, currencyID)
	return &row, nil
}

// CurrencyFlowTestSuite drives the router, the real service and an in-memory store together.
type CurrencyFlowTestSuite struct {
	suite.Suite
	router *gin.Engine
	repo   *memoryCurrencyRepository
}

func (suite *CurrencyFlowTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.repo = newMemoryCurrencyRepository()
	suite.router = newTestRouter(services.NewCurrencyService(suite.repo))
}

func (suite *CurrencyFlowTestSuite) do(method, path, body string, withHeaders bool) *httptest.ResponseRecorder {
	return performRequest(suite.router, method, path, body, withHeaders)
}

func (suite *CurrencyFlowTestSuite) assertError(w *httptest.ResponseRecorder, status int, code, detail string) {
	assertErrorEnvelope(&suite.Suite, w, status, code, detail)
}

func (suite *CurrencyFlowTestSuite) create(codigo, nombre string) domain.Currency {
	w := suite.do(http.MethodPost, "/v1/pos/monedas", `{"codigoIso":"`+codigo+`","nombre":"`+nombre+`","simbolo":"$"}`, true)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp envelope.SuccessResponse[domain.Currency]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func (suite *CurrencyFlowTestSuite) TestCreateAppliesDefaultsAndUppercases() {
	created := suite.create("cop", "Peso colombiano")

	suite.Equal("COP", created.ISOCode)
	suite.Equal(2, created.Decimals)
	suite.True(created.Active)
	suite.Positive(created.CurrencyID)
}

func (suite *CurrencyFlowTestSuite) TestDuplicateISOCodeConflicts() {
	suite.create("USD", "Dólar")

	w := suite.do(http.MethodPost, "/v1/pos/monedas", `{"codigoIso":"usd","nombre":"Otro","simbolo":"$"}`, true)

	suite.assertError(w, http.StatusConflict, "E003", "Ya existe una moneda con el código ISO: USD")
}

func (suite *CurrencyFlowTestSuite) TestUpdateKeepingOwnISOCode() {
	created := suite.create("EUR", "Euro")

	w := suite.do(http.MethodPut, "/v1/pos/monedas/"+itoa(created.CurrencyID), `{"codigoIso":"EUR","nombre":"Euro europeo","simbolo":"€","decimales":3}`, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp envelope.SuccessResponse[domain.Currency]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Euro europeo", resp.Data.Name)
	suite.Equal(3, resp.Data.Decimals)
}

func (suite *CurrencyFlowTestSuite) TestUpdateToAnotherRecordsISOCodeConflicts() {
	suite.create("USD", "Dólar")
	eur := suite.create("EUR", "Euro")

	w := suite.do(http.MethodPut, "/v1/pos/monedas/"+itoa(eur.CurrencyID), `{"codigoIso":"USD","nombre":"Euro","simbolo":"€"}`, true)

	suite.assertError(w, http.StatusConflict, "E003", "Ya existe otra moneda con el código ISO: USD")
}

func (suite *CurrencyFlowTestSuite) TestUpdateMissingRecord() {
	w := suite.do(http.MethodPut, "/v1/pos/monedas/77", `{"codigoIso":"USD","nombre":"Dólar","simbolo":"$"}`, true)

	suite.assertError(w, http.StatusNotFound, "E002", "Moneda con ID 77 no encontrada")
}

func (suite *CurrencyFlowTestSuite) TestDeleteReturnsSnapshotThenNotFound() {
	created := suite.create("JPY", "Yen")
	path := "/v1/pos/monedas/" + itoa(created.CurrencyID)

	w := suite.do(http.MethodDelete, path, "", true)
	suite.Equal(http.StatusOK, w.Code)
	var resp envelope.SuccessResponse[domain.Currency]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created, resp.Data)

	w = suite.do(http.MethodDelete, path, "", true)
	suite.assertError(w, http.StatusNotFound, "E002", "")

	w = suite.do(http.MethodGet, path, "", true)
	suite.assertError(w, http.StatusNotFound, "E002", "")
}

func (suite *CurrencyFlowTestSuite) TestPaginatedListing() {
	for _, code := range []string{"USD", "EUR", "COP", "CLP", "MXN"} {
		suite.create(code, "Moneda "+code)
	}

	w := suite.do(http.MethodGet, "/v1/pos/monedas?pageNumber=1&pageSize=2", "", true)

	suite.Equal(http.StatusOK, w.Code)
	var resp envelope.PaginatedResponse[dto.ListCurrenciesResponse]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Data.Monedas, 2)
	suite.Equal(domain.Pagination{TotalElement: 5, PageSize: 2, PageNumber: 1, HasMoreElements: true}, resp.Pagination)

	w = suite.do(http.MethodGet, "/v1/pos/monedas?pageNumber=3&pageSize=2", "", true)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Data.Monedas, 1)
	suite.False(resp.Pagination.HasMoreElements)
}

func (suite *CurrencyFlowTestSuite) TestPageSizeOutOfRange() {
	w := suite.do(http.MethodGet, "/v1/pos/monedas?pageNumber=1&pageSize=501", "", true)

	suite.assertError(w, http.StatusBadRequest, "E001", "El parámetro pageSize no puede ser mayor a 500")
}

func (suite *CurrencyFlowTestSuite) TestInvalidISOCode() {
	w := suite.do(http.MethodPost, "/v1/pos/monedas", `{"codigoIso":"US1","nombre":"x","simbolo":"$"}`, true)

	suite.assertError(w, http.StatusBadRequest, "E001", "El codigoIso debe contener solo letras mayúsculas (ej: COP, USD, EUR)")
	suite.Empty(suite.repo.rows)
}

func (suite *CurrencyFlowTestSuite) TestPageNumberBeyondAddressableOffset() {
	for _, code := range []string{"USD", "EUR", "COP", "CLP", "MXN"} {
		suite.create(code, "Moneda "+code)
	}

	w := suite.do(http.MethodGet, "/v1/pos/monedas?pageNumber=72057594037927937&pageSize=256", "", true)

	suite.assertError(w, http.StatusBadRequest, "E001", "El parámetro pageNumber no puede ser mayor a 36028797018963968 para pageSize 256")
	suite.NotContains(w.Body.String(), "USD")
}

func (suite *CurrencyFlowTestSuite) TestMistypedFields() {
	tests := []struct {
		name   string
		body   string
		detail string
	}{
		{"activo null", `{"codigoIso":"ars","nombre":"Peso","simbolo":"$","activo":null}`, "El campo activo debe ser un valor booleano (true o false)"},
		{"activo string", `{"codigoIso":"ars","nombre":"Peso","simbolo":"$","activo":"yes"}`, "El campo activo debe ser un valor booleano (true o false)"},
		{"decimales string", `{"codigoIso":"ars","nombre":"Peso","simbolo":"$","decimales":"two"}`, "El campo decimales debe ser un número entero"},
		{"decimales before activo", `{"codigoIso":"ars","nombre":"Peso","simbolo":"$","decimales":1.5,"activo":null}`, "El campo decimales debe ser un número entero"},
		{"field rules before activo", `{"codigoIso":"toolong","nombre":"Peso","simbolo":"$","activo":"yes"}`, "El codigoIso debe tener exactamente 3 caracteres (ej: COP, USD, EUR)"},
		{"nombre number", `{"codigoIso":"ars","nombre":5,"simbolo":"$"}`, "El campo nombre es requerido"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/v1/pos/monedas", tt.body, true)
			suite.assertError(w, http.StatusBadRequest, "E001", tt.detail)
		})
	}
	suite.Empty(suite.repo.rows)
}

func (suite *CurrencyFlowTestSuite) TestNullDecimalesUsesDefault() {
	w := suite.do(http.MethodPost, "/v1/pos/monedas", `{"codigoIso":"ars","nombre":"Peso","simbolo":"$","decimales":null,"activo":false}`, true)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp envelope.SuccessResponse[domain.Currency]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2, resp.Data.Decimals)
	suite.False(resp.Data.Active)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestCurrencyFlowTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyFlowTestSuite))
}
