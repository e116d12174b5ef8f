// monedasctl is the operator CLI for the currency catalogue: it applies migrations and
// reads currencies straight from the database, bypassing the HTTP layer.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	portssvc "github.com/SscSPs/pos_monedas/internal/core/ports/services"
	"github.com/SscSPs/pos_monedas/internal/core/services"
	"github.com/SscSPs/pos_monedas/internal/middleware"
	"github.com/SscSPs/pos_monedas/internal/platform/config"
	"github.com/SscSPs/pos_monedas/internal/repositories/database/pgsql"
	"github.com/SscSPs/pos_monedas/migrations"
	"github.com/SscSPs/pos_monedas/pkg/database"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

// app holds what the subcommands need. Tests replace openService.
type app struct {
	logger      *slog.Logger
	loadConfig  func() (*config.Config, error)
	openService func(ctx context.Context, cfg *config.Config) (portssvc.CurrencySvcFacade, func(), error)
	migrate     func(cfg *config.Config, logger *slog.Logger) error
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		logger:      logger,
		loadConfig:  config.LoadConfig,
		openService: openCurrencyService,
		migrate: func(cfg *config.Config, logger *slog.Logger) error {
			return database.RunMigrations(cfg.DatabaseURL, migrations.FS, logger)
		},
	}

	if err := newRootCmd(a).ExecuteContext(middleware.WithLogger(ctx, logger)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "monedasctl",
		Short:        "Operate the POS currency catalogue",
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(migrateCmd(a))
	rootCmd.AddCommand(listCmd(a))
	rootCmd.AddCommand(getCmd(a))
	return rootCmd
}

func migrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if err := a.migrate(cfg, a.logger); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		},
	}
}

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every currency as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			page, err := svc.ListAllCurrencies(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"monedas":    page.Currencies,
				"pagination": page.Pagination,
			})
		},
	}
}

func getCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <monedaId>",
		Short: "Print one currency as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			currencyID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid monedaId %q: %w", args[0], err)
			}

			svc, closeFn, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			currency, err := svc.GetCurrencyByID(cmd.Context(), currencyID)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), currency)
		},
	}
}

func (a *app) service(ctx context.Context) (portssvc.CurrencySvcFacade, func(), error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	return a.openService(ctx, cfg)
}

func openCurrencyService(ctx context.Context, cfg *config.Config) (portssvc.CurrencySvcFacade, func(), error) {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{MaxConns: 2, Ping: true})
	if err != nil {
		return nil, nil, err
	}
	container := services.NewServiceContainer(pgsql.NewRepositoryProvider(pool))
	return container.Currency, func() { database.ClosePgxPool(pool) }, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
