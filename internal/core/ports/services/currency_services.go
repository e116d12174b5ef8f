package services

import (
	"context"

	"github.com/SscSPs/pos_monedas/internal/core/domain"
	"github.com/SscSPs/pos_monedas/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a specific currency by its id.
	GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// ListAllCurrencies retrieves every currency as a single page.
	ListAllCurrencies(ctx context.Context) (*domain.CurrencyPage, error)

	// ListCurrencies retrieves one page of currencies.
	ListCurrencies(ctx context.Context, params domain.PaginationParams) (*domain.CurrencyPage, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	CreateCurrency(ctx context.Context, req dto.CurrencyRequest) (*domain.Currency, error)
	UpdateCurrency(ctx context.Context, currencyID int64, req dto.CurrencyRequest) (*domain.Currency, error)
	DeleteCurrency(ctx context.Context, currencyID int64) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
