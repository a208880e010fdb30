package app

import (
	"context"
	accountAPI "lottery_backend/internal/api/account"
	authAPI "lottery_backend/internal/api/auth"
	entropyAPI "lottery_backend/internal/api/entropy"
	poolAPI "lottery_backend/internal/api/pool"
	"lottery_backend/internal/config"
	"lottery_backend/internal/config/env"
	"lottery_backend/internal/entropy"
	"lottery_backend/internal/entropy/beacon"
	"lottery_backend/internal/entropy/ethsource"
	"lottery_backend/internal/metrics"
	"lottery_backend/internal/middleware"
	"lottery_backend/internal/repository"
	"lottery_backend/internal/repository/account_repo"
	"lottery_backend/internal/repository/auth_repo"
	"lottery_backend/internal/repository/block_repo"
	"lottery_backend/internal/repository/event_repo"
	"lottery_backend/internal/repository/memory"
	"lottery_backend/internal/repository/payout_repo"
	"lottery_backend/internal/repository/pool_repo"
	"lottery_backend/internal/service"
	"lottery_backend/internal/service/account"
	"lottery_backend/internal/service/auth"
	entropyServ "lottery_backend/internal/service/entropy"
	"lottery_backend/internal/service/pool"
	"lottery_backend/internal/service/registry"
	"os"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	configPathEnvName = "CONFIG_PATH"
	defaultConfigPath = "config.yaml"
)

type ServiceProvider struct {
	// Configs
	logCfg     config.LogConfig
	storageCfg config.StorageConfig
	pgConfig   config.PGConfig
	httpCfg    config.HTTPConfig
	jwtCfg     config.JWTConfig
	lotteryCfg config.LotteryConfig
	entropyCfg config.EntropyConfig

	//TXManager
	txManager trm.Manager

	// Database
	dbClient *pgxpool.Pool

	// Metrics
	promRegistry *prometheus.Registry
	metrics      *metrics.Metrics

	// Repositories
	poolRepo    repository.PoolRepository
	accountRepo repository.AccountRepository
	authRepo    repository.AuthRepository
	payoutRepo  repository.PayoutRepository
	eventRepo   repository.EventRepository
	blockRepo   repository.BlockRepository

	// Entropy
	producer      *beacon.Producer
	entropySource entropy.Source
	ethSource     *ethsource.Source

	// Services
	registryServ service.RegistryService
	poolServ     service.PoolService
	accountServ  service.AccountService
	authServ     service.AuthService
	entropyServ  service.EntropyService

	// Handlers
	poolHand    *poolAPI.Handler
	accountHand *accountAPI.Handler
	authHand    *authAPI.Handler
	entropyHand *entropyAPI.Handler

	router chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLogConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func configPath() string {
	if path := os.Getenv(configPathEnvName); len(path) > 0 {
		return path
	}
	return defaultConfigPath
}

func (sp *ServiceProvider) LotteryCfg() config.LotteryConfig {
	if sp.lotteryCfg == nil {
		cfg, err := env.NewLotteryConfigFromYAML(configPath())
		if err != nil {
			panic("failed to get lottery config: " + err.Error())
		}
		sp.lotteryCfg = cfg
	}
	return sp.lotteryCfg
}

func (sp *ServiceProvider) EntropyCfg() config.EntropyConfig {
	if sp.entropyCfg == nil {
		cfg, err := env.NewEntropyConfigFromYAML(configPath())
		if err != nil {
			panic("failed to get entropy config: " + err.Error())
		}
		sp.entropyCfg = cfg
	}
	return sp.entropyCfg
}

func (sp *ServiceProvider) inMemory() bool {
	return sp.StorageCfg().Driver() == env.StorageDriverMemory
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if sp.inMemory() {
			sp.txManager = memory.NewTxManager()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) PromRegistry() *prometheus.Registry {
	if sp.promRegistry == nil {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		sp.promRegistry = reg
	}
	return sp.promRegistry
}

func (sp *ServiceProvider) Metrics() *metrics.Metrics {
	if sp.metrics == nil {
		sp.metrics = metrics.New(sp.PromRegistry())
	}
	return sp.metrics
}

func (sp *ServiceProvider) PoolRepository(ctx context.Context) repository.PoolRepository {
	if sp.poolRepo == nil {
		if sp.inMemory() {
			sp.poolRepo = memory.NewPoolRepository()
		} else {
			sp.poolRepo = pool_repo.NewPoolRepository(sp.DBClient(ctx))
		}
	}
	return sp.poolRepo
}

func (sp *ServiceProvider) AccountRepository(ctx context.Context) repository.AccountRepository {
	if sp.accountRepo == nil {
		if sp.inMemory() {
			sp.accountRepo = memory.NewAccountRepository()
		} else {
			sp.accountRepo = account_repo.NewAccountRepository(sp.DBClient(ctx))
		}
	}
	return sp.accountRepo
}

func (sp *ServiceProvider) AuthRepository(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		if sp.inMemory() {
			sp.authRepo = memory.NewAuthRepository()
		} else {
			sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
		}
	}
	return sp.authRepo
}

func (sp *ServiceProvider) PayoutRepository(ctx context.Context) repository.PayoutRepository {
	if sp.payoutRepo == nil {
		if sp.inMemory() {
			sp.payoutRepo = memory.NewPayoutRepository()
		} else {
			sp.payoutRepo = payout_repo.NewPayoutRepository(sp.DBClient(ctx))
		}
	}
	return sp.payoutRepo
}

func (sp *ServiceProvider) EventRepository(ctx context.Context) repository.EventRepository {
	if sp.eventRepo == nil {
		if sp.inMemory() {
			sp.eventRepo = memory.NewEventRepository()
		} else {
			sp.eventRepo = event_repo.NewEventRepository(sp.DBClient(ctx))
		}
	}
	return sp.eventRepo
}

// BlockRepository - nil, если энтропия берётся из Ethereum
func (sp *ServiceProvider) BlockRepository(ctx context.Context) repository.BlockRepository {
	if sp.EntropyCfg().Driver() != env.EntropyDriverBeacon {
		return nil
	}
	if sp.blockRepo == nil {
		if sp.inMemory() {
			sp.blockRepo = memory.NewBlockRepository()
		} else {
			sp.blockRepo = block_repo.NewBlockRepository(sp.DBClient(ctx))
		}
	}
	return sp.blockRepo
}

// BlockProducer - nil, если энтропия берётся из Ethereum
func (sp *ServiceProvider) BlockProducer(ctx context.Context) *beacon.Producer {
	if sp.EntropyCfg().Driver() != env.EntropyDriverBeacon {
		return nil
	}
	if sp.producer == nil {
		sp.producer = beacon.NewProducer(sp.BlockRepository(ctx), sp.EntropyCfg().BlockInterval(), sp.Metrics())
	}
	return sp.producer
}

func (sp *ServiceProvider) EntropySource(ctx context.Context) entropy.Source {
	if sp.entropySource == nil {
		switch sp.EntropyCfg().Driver() {
		case env.EntropyDriverEthereum:
			src, err := ethsource.Dial(ctx, sp.EntropyCfg().EthRPCURL(), ethsource.Options{
				CacheSize:     sp.EntropyCfg().CacheSize(),
				Confirmations: sp.EntropyCfg().Confirmations(),
				Metrics:       sp.Metrics(),
			})
			if err != nil {
				panic("failed to create ethereum entropy source: " + err.Error())
			}
			sp.ethSource = src
			sp.entropySource = src
		default:
			sp.entropySource = beacon.NewSource(sp.BlockRepository(ctx))
		}
	}
	return sp.entropySource
}

func (sp *ServiceProvider) RegistryService(ctx context.Context) service.RegistryService {
	if sp.registryServ == nil {
		sp.registryServ = registry.NewRegistryService(
			sp.PoolRepository(ctx),
			sp.EventRepository(ctx),
			sp.LotteryCfg(),
			sp.Metrics(),
			sp.TXManager(ctx),
		)
	}
	return sp.registryServ
}

func (sp *ServiceProvider) PoolService(ctx context.Context) service.PoolService {
	if sp.poolServ == nil {
		sp.poolServ = pool.NewPoolService(pool.Deps{
			PoolRepo:    sp.PoolRepository(ctx),
			AccountRepo: sp.AccountRepository(ctx),
			PayoutRepo:  sp.PayoutRepository(ctx),
			EventRepo:   sp.EventRepository(ctx),
			Source:      sp.EntropySource(ctx),
			LotteryCfg:  sp.LotteryCfg(),
			Metrics:     sp.Metrics(),
			TxManager:   sp.TXManager(ctx),
		})
	}
	return sp.poolServ
}

func (sp *ServiceProvider) AccountService(ctx context.Context) service.AccountService {
	if sp.accountServ == nil {
		sp.accountServ = account.NewAccountService(sp.AccountRepository(ctx), sp.TXManager(ctx))
	}
	return sp.accountServ
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.TXManager(ctx), sp.AccountRepository(ctx), sp.AuthRepository(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) EntropyService(ctx context.Context) service.EntropyService {
	if sp.entropyServ == nil {
		sp.entropyServ = entropyServ.NewEntropyService(sp.EntropySource(ctx), sp.BlockRepository(ctx))
	}
	return sp.entropyServ
}

func (sp *ServiceProvider) PoolHandler(ctx context.Context) *poolAPI.Handler {
	if sp.poolHand == nil {
		sp.poolHand = poolAPI.NewHandler(poolAPI.HandlerDeps{
			Registry:       sp.RegistryService(ctx),
			Pools:          sp.PoolService(ctx),
			AmountDecimals: sp.LotteryCfg().AmountDecimals(),
		})
	}
	return sp.poolHand
}

func (sp *ServiceProvider) AccountHandler(ctx context.Context) *accountAPI.Handler {
	if sp.accountHand == nil {
		sp.accountHand = accountAPI.NewHandler(accountAPI.HandlerDeps{
			Serv:           sp.AccountService(ctx),
			AmountDecimals: sp.LotteryCfg().AmountDecimals(),
		})
	}
	return sp.accountHand
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:            sp.AuthService(ctx),
			RefreshTokenTTL: sp.JWTCfg().RefreshTokenDuration(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) EntropyHandler(ctx context.Context) *entropyAPI.Handler {
	if sp.entropyHand == nil {
		sp.entropyHand = entropyAPI.NewHandler(entropyAPI.HandlerDeps{Serv: sp.EntropyService(ctx)})
	}
	return sp.entropyHand
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)
		r.Use(middleware.Logger)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		mountRoutes(r, routes{
			pool:      sp.PoolHandler(ctx),
			account:   sp.AccountHandler(ctx),
			auth:      sp.AuthHandler(ctx),
			entropy:   sp.EntropyHandler(ctx),
			authMW:    middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()),
			metricsMW: promhttp.HandlerFor(sp.PromRegistry(), promhttp.HandlerOpts{}),
		})

		sp.router = r
	}
	return sp.router
}

// Close - освобождает внешние ресурсы
func (sp *ServiceProvider) Close() {
	if sp.ethSource != nil {
		sp.ethSource.Close()
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
