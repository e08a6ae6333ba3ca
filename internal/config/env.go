package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port           string        `envconfig:"PORT" default:"8080"`
	LedgerRPCURL   string        `envconfig:"LEDGER_RPC_URL" default:"https://octra.network"`
	CallTimeout    time.Duration `envconfig:"LEDGER_CALL_TIMEOUT" default:"10s"`
	WalletFilePath string        `envconfig:"WALLET_FILE_PATH"` // optional: encrypted .owt backup of loaded wallets
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetLedgerRPCURL returns the Octra ledger RPC base URL from configuration
func GetLedgerRPCURL() string {
	return Get().LedgerRPCURL
}

// GetCallTimeout returns the default per-call timeout for ledger requests
func GetCallTimeout() time.Duration {
	return Get().CallTimeout
}

// GetWalletFilePath returns path to the optional .owt backup file
func GetWalletFilePath() string {
	return Get().WalletFilePath
}
