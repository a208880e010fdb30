package registry

import (
	"lottery_backend/internal/config"
	"lottery_backend/internal/metrics"
	"lottery_backend/internal/repository"
	"lottery_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	poolRepo   repository.PoolRepository
	eventRepo  repository.EventRepository
	lotteryCfg config.LotteryConfig
	metrics    *metrics.Metrics
	txManager  trm.Manager
}

// NewRegistryService Реестр пулов, единственный писатель списка пулов
func NewRegistryService(
	poolRepo repository.PoolRepository,
	eventRepo repository.EventRepository,
	lotteryCfg config.LotteryConfig,
	m *metrics.Metrics,
	txManager trm.Manager,
) service.RegistryService {
	return &serv{
		poolRepo:   poolRepo,
		eventRepo:  eventRepo,
		lotteryCfg: lotteryCfg,
		metrics:    m,
		txManager:  txManager,
	}
}
