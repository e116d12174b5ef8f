package services

// ServiceContainer holds instances of all the application services.
// Handlers and the CLI receive their services through it.
type ServiceContainer struct {
	Currency CurrencySvcFacade
}
