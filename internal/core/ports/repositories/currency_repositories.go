package repositories

import (
	"context"

	"github.com/SscSPs/pos_monedas/internal/core/domain"
	"github.com/SscSPs/pos_monedas/internal/models"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a currency by id. Returns apperrors.ErrNotFound when absent.
	FindCurrencyByID(ctx context.Context, currencyID int64) (*models.Currency, error)

	// ListCurrencies retrieves every currency ordered by id.
	ListCurrencies(ctx context.Context) ([]models.Currency, error)

	// ListCurrenciesPaginated retrieves one page of currencies and the total row count.
	ListCurrenciesPaginated(ctx context.Context, params domain.PaginationParams) ([]models.Currency, int64, error)

	// ExistsByISOCode reports whether a currency other than excludeID uses the ISO code.
	// Pass 0 to check every row.
	ExistsByISOCode(ctx context.Context, isoCode string, excludeID int64) (bool, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// CreateCurrency inserts a currency and returns the stored row.
	CreateCurrency(ctx context.Context, input domain.CurrencyInput) (*models.Currency, error)

	// UpdateCurrency replaces every field but the id. Returns apperrors.ErrNotFound when no row matched.
	UpdateCurrency(ctx context.Context, currencyID int64, input domain.CurrencyInput) (*models.Currency, error)

	// DeleteCurrency removes a currency and returns its last stored values.
	// Returns apperrors.ErrNotFound when no row matched.
	DeleteCurrency(ctx context.Context, currencyID int64) (*models.Currency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
