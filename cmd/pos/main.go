package main

import (
	"context"
	"os"

	"github.com/ricehouse/ricepos/internal/config"
	"github.com/ricehouse/ricepos/internal/console"
	"github.com/ricehouse/ricepos/internal/logger"
	"github.com/ricehouse/ricepos/internal/repository"
	"github.com/ricehouse/ricepos/internal/seed"
	"github.com/ricehouse/ricepos/internal/service"
	"github.com/ricehouse/ricepos/internal/validator"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// fx event logs would interleave with the interactive session
		fx.NopLogger,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			provideLogger,

			// Repositories
			repository.NewCustomerRepository,
			repository.NewProductRepository,
			repository.NewOrderRepository,
			repository.NewEmployeeRepository,

			// Services
			service.NewServiceParams,

			// Console UI
			provideUI,
		),
		fx.Invoke(run),
	)
	app.Run()
}

func provideLogger(cfg *config.Configuration) (*logger.Logger, error) {
	return logger.NewLogger(cfg.Logging.Level)
}

func provideUI(cfg *config.Configuration, params service.ServiceParams) *console.UI {
	return console.New(cfg, params, os.Stdin, os.Stdout)
}

func run(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cfg *config.Configuration,
	params service.ServiceParams,
	ui *console.UI,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Seed.Enabled {
				if err := seed.NewSeeder(params).Run(ctx); err != nil {
					return err
				}
			}

			// Guarantee the tier invariant holds before any read
			if err := service.NewCustomerService(params).ResyncAllTiers(ctx); err != nil {
				return err
			}

			go func() {
				if err := ui.Run(context.Background()); err != nil {
					log.Errorw("console session failed", "error", err)
				}
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("session closed", "store", cfg.Store.Name)
			return nil
		},
	})
}
