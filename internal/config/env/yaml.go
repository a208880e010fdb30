package env

import (
	"errors"
	"fmt"
	"lottery_backend/internal/config"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EntropyDriverBeacon   = "beacon"
	EntropyDriverEthereum = "ethereum"

	defaultMaxPlayersLimit = 1000
	defaultRevealDelay     = 3
	defaultBlockInterval   = 2 * time.Second
	defaultCacheSize       = 1024
	defaultConfirmations   = 12
)

type fileConfig struct {
	Lottery struct {
		MaxPlayersLimit int    `yaml:"max_players_limit"`
		RevealDelay     uint64 `yaml:"reveal_delay"`
		OperatorAddress string `yaml:"operator_address"`
		AmountDecimals  int32  `yaml:"amount_decimals"`
	} `yaml:"lottery"`
	Entropy struct {
		Driver        string        `yaml:"driver"`
		BlockInterval time.Duration `yaml:"block_interval"`
		EthRPCURL     string        `yaml:"eth_rpc_url"`
		CacheSize     int           `yaml:"cache_size"`
		Confirmations *uint64       `yaml:"confirmations"`
	} `yaml:"entropy"`
}

type lotteryConfig struct {
	maxPlayersLimit int
	revealDelay     uint64
	operatorAddress string
	amountDecimals  int32
}

type entropyConfig struct {
	driver        string
	blockInterval time.Duration
	ethRPCURL     string
	cacheSize     int
	confirmations uint64
}

func readFileConfig(path string) (*fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err = yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}

// NewLotteryConfigFromYAML - читает секцию lottery
func NewLotteryConfigFromYAML(path string) (config.LotteryConfig, error) {
	fc, err := readFileConfig(path)
	if err != nil {
		return nil, err
	}

	cfg := &lotteryConfig{
		maxPlayersLimit: fc.Lottery.MaxPlayersLimit,
		revealDelay:     fc.Lottery.RevealDelay,
		operatorAddress: fc.Lottery.OperatorAddress,
		amountDecimals:  fc.Lottery.AmountDecimals,
	}
	if cfg.maxPlayersLimit == 0 {
		cfg.maxPlayersLimit = defaultMaxPlayersLimit
	}
	if cfg.revealDelay == 0 {
		cfg.revealDelay = defaultRevealDelay
	}

	if cfg.maxPlayersLimit < 0 {
		return nil, errors.New("lottery.max_players_limit must be positive")
	}
	if len(cfg.operatorAddress) == 0 {
		return nil, errors.New("lottery.operator_address not found")
	}
	if cfg.amountDecimals < 0 {
		return nil, errors.New("lottery.amount_decimals must not be negative")
	}

	return cfg, nil
}

// NewEntropyConfigFromYAML - читает секцию entropy
func NewEntropyConfigFromYAML(path string) (config.EntropyConfig, error) {
	fc, err := readFileConfig(path)
	if err != nil {
		return nil, err
	}

	cfg := &entropyConfig{
		driver:        fc.Entropy.Driver,
		blockInterval: fc.Entropy.BlockInterval,
		ethRPCURL:     fc.Entropy.EthRPCURL,
		cacheSize:     fc.Entropy.CacheSize,
	}
	if len(cfg.driver) == 0 {
		cfg.driver = EntropyDriverBeacon
	}
	if cfg.blockInterval == 0 {
		cfg.blockInterval = defaultBlockInterval
	}
	if cfg.cacheSize == 0 {
		cfg.cacheSize = defaultCacheSize
	}

	switch cfg.driver {
	case EntropyDriverBeacon:
		if cfg.blockInterval < 0 {
			return nil, errors.New("entropy.block_interval must be positive")
		}
	case EntropyDriverEthereum:
		if len(cfg.ethRPCURL) == 0 {
			return nil, errors.New("entropy.eth_rpc_url not found")
		}
		// Блок считается раскрытым только на этой глубине, чтобы реорганизация не поменяла значение
		cfg.confirmations = defaultConfirmations
		if fc.Entropy.Confirmations != nil {
			cfg.confirmations = *fc.Entropy.Confirmations
		}
	default:
		return nil, fmt.Errorf("unknown entropy driver %q", cfg.driver)
	}
	if cfg.cacheSize < 0 {
		return nil, errors.New("entropy.cache_size must be positive")
	}

	return cfg, nil
}

func (c *lotteryConfig) MaxPlayersLimit() int {
	return c.maxPlayersLimit
}

func (c *lotteryConfig) RevealDelay() uint64 {
	return c.revealDelay
}

func (c *lotteryConfig) OperatorAddress() string {
	return c.operatorAddress
}

func (c *lotteryConfig) AmountDecimals() int32 {
	return c.amountDecimals
}

func (c *entropyConfig) Driver() string {
	return c.driver
}

func (c *entropyConfig) BlockInterval() time.Duration {
	return c.blockInterval
}

func (c *entropyConfig) EthRPCURL() string {
	return c.ethRPCURL
}

func (c *entropyConfig) CacheSize() int {
	return c.cacheSize
}

func (c *entropyConfig) Confirmations() uint64 {
	return c.confirmations
}
