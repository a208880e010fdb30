package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewLotteryConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
lottery:
  reveal_delay: 5
  operator_address: operator
  amount_decimals: 2
`)

	cfg, err := NewLotteryConfigFromYAML(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), cfg.RevealDelay())
	assert.Equal(t, defaultMaxPlayersLimit, cfg.MaxPlayersLimit())
	assert.Equal(t, "operator", cfg.OperatorAddress())
	assert.Equal(t, int32(2), cfg.AmountDecimals())
}

func TestNewLotteryConfigFromYAML_Invalid(t *testing.T) {
	cases := map[string]string{
		"no operator":     "lottery:\n  reveal_delay: 1\n",
		"negative limit":  "lottery:\n  max_players_limit: -1\n  operator_address: op\n",
		"negative digits": "lottery:\n  operator_address: op\n  amount_decimals: -3\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewLotteryConfigFromYAML(writeConfig(t, body))
			require.Error(t, err)
		})
	}
}

func TestNewEntropyConfigFromYAML(t *testing.T) {
	cfg, err := NewEntropyConfigFromYAML(writeConfig(t, "entropy:\n  block_interval: 500ms\n"))
	require.NoError(t, err)
	assert.Equal(t, EntropyDriverBeacon, cfg.Driver())
	assert.Equal(t, 500*time.Millisecond, cfg.BlockInterval())
	assert.Equal(t, defaultCacheSize, cfg.CacheSize())

	assert.Zero(t, cfg.Confirmations())

	_, err = NewEntropyConfigFromYAML(writeConfig(t, "entropy:\n  driver: ethereum\n"))
	require.Error(t, err)

	cfg, err = NewEntropyConfigFromYAML(writeConfig(t, "entropy:\n  driver: ethereum\n  eth_rpc_url: http://node\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(defaultConfirmations), cfg.Confirmations())

	cfg, err = NewEntropyConfigFromYAML(writeConfig(t, "entropy:\n  driver: ethereum\n  eth_rpc_url: http://node\n  confirmations: 0\n"))
	require.NoError(t, err)
	assert.Zero(t, cfg.Confirmations())

	_, err = NewEntropyConfigFromYAML(writeConfig(t, "entropy:\n  driver: dice\n"))
	require.Error(t, err)
}
