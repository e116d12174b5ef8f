package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pos_monedas/internal/apperrors"
	"github.com/SscSPs/pos_monedas/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_monedas/internal/core/ports/repositories"
	"github.com/SscSPs/pos_monedas/internal/dto"
	"github.com/SscSPs/pos_monedas/internal/utils/mapping"
	"github.com/SscSPs/pos_monedas/internal/utils/pagination"
)

// CurrencyService validates currency requests and orchestrates the repository.
type CurrencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CurrencyRequest) (*domain.Currency, error) {
	if err := normalizeAndValidateCurrency(&req); err != nil {
		return nil, err
	}

	exists, err := s.currencyRepo.ExistsByISOCode(ctx, req.CodigoISO, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to check currency ISO code", "codigo_iso", req.CodigoISO)
		return nil, fmt.Errorf("failed to check currency iso code in service: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("Ya existe una moneda con el código ISO: %s", req.CodigoISO)
	}

	created, err := s.currencyRepo.CreateCurrency(ctx, req.ToCurrencyInput())
	if err != nil {
		if _, ok := apperrors.As(err); ok {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to create currency", "codigo_iso", req.CodigoISO)
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	currency := mapping.ToDomainCurrency(*created)
	s.LogInfo(ctx, "Currency created", "moneda_id", currency.CurrencyID, "codigo_iso", currency.ISOCode)
	return &currency, nil
}

func (s *CurrencyService) GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	if err := validateCurrencyID(currencyID); err != nil {
		return nil, err
	}

	model, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Moneda con ID %d no encontrada", currencyID)
		}
		s.LogError(ctx, err, "Failed to get currency", "moneda_id", currencyID)
		return nil, fmt.Errorf("failed to get currency by id in service: %w", err)
	}

	currency := mapping.ToDomainCurrency(*model)
	return &currency, nil
}

func (s *CurrencyService) ListAllCurrencies(ctx context.Context) (*domain.CurrencyPage, error) {
	models, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}

	currencies := mapping.ToDomainCurrencySlice(models)
	return &domain.CurrencyPage{
		Currencies: currencies,
		Pagination: pagination.SinglePage(len(currencies)),
	}, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context, params domain.PaginationParams) (*domain.CurrencyPage, error) {
	if err := validatePagination(params); err != nil {
		return nil, err
	}

	models, total, err := s.currencyRepo.ListCurrenciesPaginated(ctx, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies page",
			"page_number", params.PageNumber, "page_size", params.PageSize)
		return nil, fmt.Errorf("failed to list currencies page in service: %w", err)
	}

	s.LogDebug(ctx, "Listed currencies page", "total", total, "returned", len(models))
	return &domain.CurrencyPage{
		Currencies: mapping.ToDomainCurrencySlice(models),
		Pagination: pagination.NewPagination(params, total),
	}, nil
}

func (s *CurrencyService) UpdateCurrency(ctx context.Context, currencyID int64, req dto.CurrencyRequest) (*domain.Currency, error) {
	if err := validateCurrencyID(currencyID); err != nil {
		return nil, err
	}
	if err := normalizeAndValidateCurrency(&req); err != nil {
		return nil, err
	}

	if _, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Moneda con ID %d no encontrada", currencyID)
		}
		s.LogError(ctx, err, "Failed to load currency for update", "moneda_id", currencyID)
		return nil, fmt.Errorf("failed to get currency for update in service: %w", err)
	}

	exists, err := s.currencyRepo.ExistsByISOCode(ctx, req.CodigoISO, currencyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check currency ISO code", "codigo_iso", req.CodigoISO)
		return nil, fmt.Errorf("failed to check currency iso code in service: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("Ya existe otra moneda con el código ISO: %s", req.CodigoISO)
	}

	updated, err := s.currencyRepo.UpdateCurrency(ctx, currencyID, req.ToCurrencyInput())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("No se pudo actualizar la moneda con ID %d", currencyID)
		}
		if _, ok := apperrors.As(err); ok {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to update currency", "moneda_id", currencyID)
		return nil, fmt.Errorf("failed to update currency in service: %w", err)
	}

	currency := mapping.ToDomainCurrency(*updated)
	s.LogInfo(ctx, "Currency updated", "moneda_id", currency.CurrencyID)
	return &currency, nil
}

func (s *CurrencyService) DeleteCurrency(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	if err := validateCurrencyID(currencyID); err != nil {
		return nil, err
	}

	deleted, err := s.currencyRepo.DeleteCurrency(ctx, currencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Moneda con ID %d no encontrada", currencyID)
		}
		s.LogError(ctx, err, "Failed to delete currency", "moneda_id", currencyID)
		return nil, fmt.Errorf("failed to delete currency in service: %w", err)
	}

	currency := mapping.ToDomainCurrency(*deleted)
	s.LogInfo(ctx, "Currency deleted", "moneda_id", currency.CurrencyID)
	return &currency, nil
}
