package components

import (
	"hosteed/internal/infra/cache"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/infra/readstore"
	"hosteed/internal/infra/uow"
	"hosteed/internal/pkg/config"
	"hosteed/internal/usecase/commands"
	"hosteed/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	cachedStoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Property
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PropertyViewQueries)),
		),
		readstore.NewPropertyReadStore,
		// Extra
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ExtraViewQueries)),
		),
		readstore.NewExtraReadStore,
		// Commission
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CommissionViewQueries)),
		),
		readstore.NewCommissionReadStore,
		// Calendar
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CalendarViewQueries)),
		),
		fx.Annotate(
			readstore.NewCalendarReadStore,
			fx.As(new(queries.CalendarReadStore)),
		),
		// Promotion
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PromotionViewQueries)),
		),
		fx.Annotate(
			readstore.NewPromotionReadStore,
			fx.As(new(queries.PromotionReadStore)),
		),
	),
)

// cachedStoreModule puts the Redis read-through layer in front of the rarely changing stores
// when a client is configured.
var cachedStoreModule = fx.Module("persistence/cache",
	fx.Provide(
		NewPropertyStore,
		NewExtraStore,
		NewCommissionStore,
		NewCacheInvalidator,
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork builds its repositories per transaction
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgq.Queries {
	return pgq.New()
}

func NewDBTX(pool *pgxpool.Pool) pgq.DBTX {
	return pool
}

func NewPropertyStore(base *readstore.PropertyReadStore, client *redis.Client, cfg config.Config) queries.PropertyReadStore {
	if client == nil {
		return base
	}
	return cache.NewPropertyStore(base, client, cfg.Redis.CacheTTL)
}

func NewExtraStore(base *readstore.ExtraReadStore, client *redis.Client, cfg config.Config) queries.ExtraReadStore {
	if client == nil {
		return base
	}
	return cache.NewExtraStore(base, client, cfg.Redis.CacheTTL)
}

func NewCommissionStore(base *readstore.CommissionReadStore, client *redis.Client, cfg config.Config) queries.CommissionReadStore {
	if client == nil {
		return base
	}
	return cache.NewCommissionStore(base, client, cfg.Redis.CacheTTL)
}

func NewCacheInvalidator(client *redis.Client) commands.CacheInvalidator {
	if client == nil {
		return commands.NoopInvalidator{}
	}
	return cache.NewInvalidator(client)
}
