package pgsql

import (
	portsrepo "github.com/SscSPs/pos_monedas/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository against the same pool.
func NewRepositoryProvider(db DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo: NewCurrencyRepository(db),
	}
}
