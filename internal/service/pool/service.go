package pool

import (
	"lottery_backend/internal/config"
	"lottery_backend/internal/entropy"
	"lottery_backend/internal/metrics"
	"lottery_backend/internal/repository"
	"lottery_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	poolRepo    repository.PoolRepository
	accountRepo repository.AccountRepository
	payoutRepo  repository.PayoutRepository
	eventRepo   repository.EventRepository
	source      entropy.Source
	lotteryCfg  config.LotteryConfig
	metrics     *metrics.Metrics
	txManager   trm.Manager
}

type Deps struct {
	PoolRepo    repository.PoolRepository
	AccountRepo repository.AccountRepository
	PayoutRepo  repository.PayoutRepository
	EventRepo   repository.EventRepository
	Source      entropy.Source
	LotteryCfg  config.LotteryConfig
	Metrics     *metrics.Metrics
	TxManager   trm.Manager
}

func NewPoolService(deps Deps) service.PoolService {
	return &serv{
		poolRepo:    deps.PoolRepo,
		accountRepo: deps.AccountRepo,
		payoutRepo:  deps.PayoutRepo,
		eventRepo:   deps.EventRepo,
		source:      deps.Source,
		lotteryCfg:  deps.LotteryCfg,
		metrics:     deps.Metrics,
		txManager:   deps.TxManager,
	}
}
