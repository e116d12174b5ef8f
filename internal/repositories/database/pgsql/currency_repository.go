package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pos_monedas/internal/apperrors"
	"github.com/SscSPs/pos_monedas/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_monedas/internal/core/ports/repositories"
	"github.com/SscSPs/pos_monedas/internal/models"
	"github.com/SscSPs/pos_monedas/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

// Write-time defaults for optional fields.
const (
	defaultDecimales = 2
	defaultActivo    = true
)

// isoCodeConstraint is the unique constraint on moneda.codigo_iso created by the migrations.
const isoCodeConstraint = "moneda_codigo_iso_key"

const (
	createCurrencyQuery = `
		INSERT INTO moneda (codigo_iso, nombre, simbolo, decimales, activo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING moneda_id, codigo_iso, nombre, simbolo, decimales, activo;
	`
	findCurrencyByIDQuery = `
		SELECT moneda_id, codigo_iso, nombre, simbolo, decimales, activo
		FROM moneda
		WHERE moneda_id = $1;
	`
	listCurrenciesQuery = `
		SELECT moneda_id, codigo_iso, nombre, simbolo, decimales, activo
		FROM moneda
		ORDER BY moneda_id;
	`
	listCurrenciesPageQuery = `
		SELECT moneda_id, codigo_iso, nombre, simbolo, decimales, activo
		FROM moneda
		ORDER BY moneda_id
		LIMIT $1 OFFSET $2;
	`
	countCurrenciesQuery = `SELECT COUNT(*) FROM moneda;`
	updateCurrencyQuery  = `
		UPDATE moneda
		SET codigo_iso = $1,
			nombre = $2,
			simbolo = $3,
			decimales = $4,
			activo = $5
		WHERE moneda_id = $6
		RETURNING moneda_id, codigo_iso, nombre, simbolo, decimales, activo;
	`
	deleteCurrencyQuery = `
		DELETE FROM moneda
		WHERE moneda_id = $1
		RETURNING moneda_id, codigo_iso, nombre, simbolo, decimales, activo;
	`
	existsByISOCodeQuery = `
		SELECT EXISTS (
			SELECT 1 FROM moneda WHERE codigo_iso = $1 AND moneda_id <> $2
		);
	`
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// NewCurrencyRepository creates a currency repository over the given pool or transaction.
func NewCurrencyRepository(db DBTX) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{BaseRepository: BaseRepository{DB: db}}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var c models.Currency
	err := row.Scan(
		&c.MonedaID,
		&c.CodigoISO,
		&c.Nombre,
		&c.Simbolo,
		&c.Decimales,
		&c.Activo,
	)
	return c, err
}

func writeArgs(input domain.CurrencyInput) (int, bool) {
	decimales := defaultDecimales
	if input.Decimals != nil {
		decimales = *input.Decimals
	}
	activo := defaultActivo
	if input.Active != nil {
		activo = *input.Active
	}
	return decimales, activo
}

// CreateCurrency inserts a currency, applying defaults for decimales and activo.
func (r *PgxCurrencyRepository) CreateCurrency(ctx context.Context, input domain.CurrencyInput) (*models.Currency, error) {
	decimales, activo := writeArgs(input)

	c, err := scanCurrency(r.DB.QueryRow(ctx, createCurrencyQuery,
		input.ISOCode,
		input.Name,
		input.Symbol,
		decimales,
		activo,
	))
	if err != nil {
		if isUniqueViolation(err, isoCodeConstraint) {
			return nil, apperrors.Wrap(apperrors.KindConflict, err, fmt.Sprintf("Ya existe una moneda con el código ISO: %s", input.ISOCode))
		}
		return nil, fmt.Errorf("failed to create currency %s: %w", input.ISOCode, err)
	}
	return &c, nil
}

// FindCurrencyByID retrieves a currency by its id.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*models.Currency, error) {
	c, err := scanCurrency(r.DB.QueryRow(ctx, findCurrencyByIDQuery, currencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by id %d: %w", currencyID, err)
	}
	return &c, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	return r.queryCurrencies(ctx, listCurrenciesQuery)
}

// ListCurrenciesPaginated retrieves one page of currencies and the total number of rows.
func (r *PgxCurrencyRepository) ListCurrenciesPaginated(ctx context.Context, params domain.PaginationParams) ([]models.Currency, int64, error) {
	currencies, err := r.queryCurrencies(ctx, listCurrenciesPageQuery, params.PageSize, pagination.Offset(params))
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.DB.QueryRow(ctx, countCurrenciesQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count currencies: %w", err)
	}
	return currencies, total, nil
}

func (r *PgxCurrencyRepository) queryCurrencies(ctx context.Context, query string, args ...any) ([]models.Currency, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	currencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}
	if currencies == nil {
		return []models.Currency{}, nil
	}
	return currencies, nil
}

// UpdateCurrency replaces every mutable field of a currency.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currencyID int64, input domain.CurrencyInput) (*models.Currency, error) {
	decimales, activo := writeArgs(input)

	c, err := scanCurrency(r.DB.QueryRow(ctx, updateCurrencyQuery,
		input.ISOCode,
		input.Name,
		input.Symbol,
		decimales,
		activo,
		currencyID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		if isUniqueViolation(err, isoCodeConstraint) {
			return nil, apperrors.Wrap(apperrors.KindConflict, err, fmt.Sprintf("Ya existe otra moneda con el código ISO: %s", input.ISOCode))
		}
		return nil, fmt.Errorf("failed to update currency %d: %w", currencyID, err)
	}
	return &c, nil
}

// DeleteCurrency deletes a currency and returns the row as it was before deletion.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID int64) (*models.Currency, error) {
	c, err := scanCurrency(r.DB.QueryRow(ctx, deleteCurrencyQuery, currencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete currency %d: %w", currencyID, err)
	}
	return &c, nil
}

// ExistsByISOCode reports whether a currency other than excludeID already uses isoCode.
func (r *PgxCurrencyRepository) ExistsByISOCode(ctx context.Context, isoCode string, excludeID int64) (bool, error) {
	var exists bool
	if err := r.DB.QueryRow(ctx, existsByISOCodeQuery, isoCode, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check currency iso code %s: %w", isoCode, err)
	}
	return exists, nil
}
