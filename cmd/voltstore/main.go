package main

import (
	"context"
	"log/slog"
	"os"

	"voltstore/config"
	"voltstore/internal/delivery"
	"voltstore/internal/delivery/http"
	"voltstore/internal/delivery/http/middleware"
	"voltstore/internal/delivery/http/router/handler"
	"voltstore/internal/domain/service"
	"voltstore/internal/infra/auth"
	logs "voltstore/internal/infra/log"
	"voltstore/internal/infra/persistence/postgres"
	"voltstore/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			newPasswordPolicy,
			auth.NewCredentialAuthenticator,
		),
	)
}

// newPasswordHasher creates a bcrypt hasher with the configured cost.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil {
		return auth.NewBcryptHasher()
	}

	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

// newPasswordPolicy creates the password policy from config overrides.
func newPasswordPolicy(cfg *config.Config) *service.PasswordPolicy {
	if cfg.PasswordStrength == nil {
		return service.NewPasswordPolicy()
	}

	return service.NewPasswordPolicyWithOptions(service.PasswordPolicyOptions{
		MinLength:        cfg.PasswordStrength.MinLength,
		RequireUppercase: cfg.PasswordStrength.RequireUppercase,
		RequireLowercase: cfg.PasswordStrength.RequireLowercase,
		RequireDigit:     cfg.PasswordStrength.RequireNumbers,
		RequireSymbol:    cfg.PasswordStrength.RequireSpecial,
	})
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProductService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
