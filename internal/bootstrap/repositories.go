package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gridloom/gridloom/internal/database/postgres"
	"github.com/gridloom/gridloom/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Account repository.Account
	Catalog repository.Catalog
	Market  repository.Market
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Account: postgres.NewAccountRepository(dbPool),
		Catalog: postgres.NewCatalogRepository(dbPool),
		Market:  postgres.NewMarketRepository(dbPool),
	}
}
