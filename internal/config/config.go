package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type LotteryConfig interface {
	MaxPlayersLimit() int
	RevealDelay() uint64
	OperatorAddress() string
	AmountDecimals() int32
}

type EntropyConfig interface {
	Driver() string
	BlockInterval() time.Duration
	EthRPCURL() string
	CacheSize() int
	Confirmations() uint64
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type StorageConfig interface {
	Driver() string
}

type LogConfig interface {
	Level() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
