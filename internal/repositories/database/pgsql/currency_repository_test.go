package pgsql

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/pos_monedas/internal/apperrors"
	"github.com/SscSPs/pos_monedas/internal/core/domain"
	"github.com/SscSPs/pos_monedas/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
)

type CurrencyRepositoryTestSuite struct {
	suite.Suite
	db   *fakeDB
	repo *PgxCurrencyRepository
	ctx  context.Context
}

func (suite *CurrencyRepositoryTestSuite) SetupTest() {
	suite.db = &fakeDB{}
	suite.repo = NewCurrencyRepository(suite.db)
	suite.ctx = context.Background()
}

func intPtr(i int) *int    { return &i }
func boolPtr(b bool) *bool { return &b }

var usd = models.Currency{MonedaID: 1, CodigoISO: "USD", Nombre: "Dollar", Simbolo: "$", Decimales: 2, Activo: true}

func (suite *CurrencyRepositoryTestSuite) TestCreateCurrency_AppliesDefaults() {
	suite.db.row = [][]any{currencyValues(usd)}

	created, err := suite.repo.CreateCurrency(suite.ctx, domain.CurrencyInput{ISOCode: "USD", Name: "Dollar", Symbol: "$"})

	suite.Require().NoError(err)
	suite.Equal(usd, *created)
	call := suite.db.lastCall()
	suite.Contains(call.sql, "INSERT INTO moneda")
	suite.Equal([]any{"USD", "Dollar", "$", 2, true}, call.args)
}

func (suite *CurrencyRepositoryTestSuite) TestCreateCurrency_ExplicitValues() {
	suite.db.row = [][]any{currencyValues(usd)}

	_, err := suite.repo.CreateCurrency(suite.ctx, domain.CurrencyInput{
		ISOCode: "JPY", Name: "Yen", Symbol: "¥", Decimals: intPtr(0), Active: boolPtr(false),
	})

	suite.Require().NoError(err)
	suite.Equal([]any{"JPY", "Yen", "¥", 0, false}, suite.db.lastCall().args)
}

func (suite *CurrencyRepositoryTestSuite) TestCreateCurrency_UniqueViolationIsConflict() {
	suite.db.rowErrs = []error{&pgconn.PgError{Code: "23505", ConstraintName: "moneda_codigo_iso_key"}}

	created, err := suite.repo.CreateCurrency(suite.ctx, domain.CurrencyInput{ISOCode: "USD", Name: "Dollar", Symbol: "$"})

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	appErr, ok := apperrors.As(err)
	suite.Require().True(ok)
	suite.Equal("Ya existe una moneda con el código ISO: USD", appErr.Message)
}

func (suite *CurrencyRepositoryTestSuite) TestCreateCurrency_OtherErrorIsWrapped() {
	dbErr := errors.New("connection reset")
	suite.db.rowErrs = []error{dbErr}

	_, err := suite.repo.CreateCurrency(suite.ctx, domain.CurrencyInput{ISOCode: "USD"})

	suite.ErrorIs(err, dbErr)
	_, ok := apperrors.As(err)
	suite.False(ok)
}

func (suite *CurrencyRepositoryTestSuite) TestFindCurrencyByID() {
	suite.db.row = [][]any{currencyValues(usd)}

	found, err := suite.repo.FindCurrencyByID(suite.ctx, 1)

	suite.Require().NoError(err)
	suite.Equal(usd, *found)
	suite.Equal([]any{int64(1)}, suite.db.lastCall().args)
}

func (suite *CurrencyRepositoryTestSuite) TestFindCurrencyByID_NotFound() {
	found, err := suite.repo.FindCurrencyByID(suite.ctx, 99)

	suite.Nil(found)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyRepositoryTestSuite) TestListCurrencies() {
	eur := models.Currency{MonedaID: 2, CodigoISO: "EUR", Nombre: "Euro", Simbolo: "€", Decimales: 2, Activo: true}
	suite.db.rows = [][][]any{{currencyValues(usd), currencyValues(eur)}}

	list, err := suite.repo.ListCurrencies(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal([]models.Currency{usd, eur}, list)
	suite.Contains(suite.db.lastCall().sql, "ORDER BY moneda_id")
}

func (suite *CurrencyRepositoryTestSuite) TestListCurrencies_Empty() {
	list, err := suite.repo.ListCurrencies(suite.ctx)

	suite.Require().NoError(err)
	suite.NotNil(list)
	suite.Empty(list)
}

func (suite *CurrencyRepositoryTestSuite) TestListCurrencies_QueryError() {
	suite.db.queryErr = errors.New("boom")

	list, err := suite.repo.ListCurrencies(suite.ctx)

	suite.Nil(list)
	suite.ErrorIs(err, suite.db.queryErr)
}

func (suite *CurrencyRepositoryTestSuite) TestListCurrenciesPaginated_OffsetAndTotal() {
	suite.db.rows = [][][]any{{currencyValues(usd)}}
	suite.db.row = [][]any{{int64(5)}}

	list, total, err := suite.repo.ListCurrenciesPaginated(suite.ctx, domain.PaginationParams{PageNumber: 3, PageSize: 2})

	suite.Require().NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(list, 1)

	page, ok := suite.db.callContaining("LIMIT $1 OFFSET $2")
	suite.Require().True(ok)
	suite.Equal([]any{2, 4}, page.args)
	_, ok = suite.db.callContaining("COUNT(*)")
	suite.True(ok)
}

func (suite *CurrencyRepositoryTestSuite) TestUpdateCurrency() {
	updated := usd
	updated.Nombre = "US Dollar"
	suite.db.row = [][]any{currencyValues(updated)}

	got, err := suite.repo.UpdateCurrency(suite.ctx, 1, domain.CurrencyInput{ISOCode: "USD", Name: "US Dollar", Symbol: "$"})

	suite.Require().NoError(err)
	suite.Equal("US Dollar", got.Nombre)
	suite.Equal([]any{"USD", "US Dollar", "$", 2, true, int64(1)}, suite.db.lastCall().args)
}

func (suite *CurrencyRepositoryTestSuite) TestUpdateCurrency_NotFound() {
	got, err := suite.repo.UpdateCurrency(suite.ctx, 7, domain.CurrencyInput{ISOCode: "USD"})

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyRepositoryTestSuite) TestUpdateCurrency_UniqueViolationIsConflict() {
	suite.db.rowErrs = []error{&pgconn.PgError{Code: "23505", ConstraintName: "moneda_codigo_iso_key"}}

	_, err := suite.repo.UpdateCurrency(suite.ctx, 7, domain.CurrencyInput{ISOCode: "EUR"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CurrencyRepositoryTestSuite) TestDeleteCurrency_ReturnsSnapshot() {
	suite.db.row = [][]any{currencyValues(usd)}

	deleted, err := suite.repo.DeleteCurrency(suite.ctx, 1)

	suite.Require().NoError(err)
	suite.Equal(usd, *deleted)
	suite.Contains(suite.db.lastCall().sql, "RETURNING")
}

func (suite *CurrencyRepositoryTestSuite) TestDeleteCurrency_NotFound() {
	deleted, err := suite.repo.DeleteCurrency(suite.ctx, 1)

	suite.Nil(deleted)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyRepositoryTestSuite) TestExistsByISOCode() {
	suite.db.row = [][]any{{true}}

	exists, err := suite.repo.ExistsByISOCode(suite.ctx, "USD", 0)

	suite.Require().NoError(err)
	suite.True(exists)
	suite.Equal([]any{"USD", int64(0)}, suite.db.lastCall().args)
}

func (suite *CurrencyRepositoryTestSuite) TestIsUniqueViolation() {
	suite.True(isUniqueViolation(&pgconn.PgError{Code: "23505"}, ""))
	suite.False(isUniqueViolation(&pgconn.PgError{Code: "23505", ConstraintName: "other"}, isoCodeConstraint))
	suite.False(isUniqueViolation(&pgconn.PgError{Code: "23503"}, ""))
	suite.False(isUniqueViolation(errors.New("x"), ""))
}

func TestCurrencyRepository(t *testing.T) {
	suite.Run(t, new(CurrencyRepositoryTestSuite))
}
