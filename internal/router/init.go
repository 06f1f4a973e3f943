package router

import (
	"github.com/oksasatya/go-catalog-service/internal/application"
	"github.com/oksasatya/go-catalog-service/internal/container"
	pginfra "github.com/oksasatya/go-catalog-service/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-catalog-service/internal/interface/http"
	"github.com/oksasatya/go-catalog-service/internal/router/modules"
	"github.com/oksasatya/go-catalog-service/pkg/helpers"
)

// InitModules builds the catalog and auth modules from the container
// singletons and registers them. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()

	catalogSvc := application.NewCatalogService(pginfra.NewProductRepository(pool), logger)
	authSvc := application.NewAuthService(
		pginfra.NewUserRepository(pool),
		pginfra.NewRoleRepository(pool),
		helpers.NewBcryptHasher(),
		logger,
	)

	r.Add(modules.NewProductModule(handlers.NewProductHandler(catalogSvc, logger)))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
}
