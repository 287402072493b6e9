package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Redis          RedisConfig          `mapstructure:"redis"`
	NetBank        NetBankConfig        `mapstructure:"netbank"`
	Disbursement   DisbursementConfig   `mapstructure:"disbursement"`
	Reconciliation ReconciliationConfig `mapstructure:"reconciliation"`
	Balance        BalanceConfig        `mapstructure:"balance"`
	Worker         WorkerConfig         `mapstructure:"worker"`
	JWT            JWTConfig            `mapstructure:"jwt"`
	Log            LogConfig            `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// NetBankConfig carries the NetBank API credentials and per-rail fees
// (centavos).
type NetBankConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	TokenURL       string        `mapstructure:"token_url"`
	ClientID       string        `mapstructure:"client_id"`
	ClientSecret   string        `mapstructure:"client_secret"`
	SourceAccount  string        `mapstructure:"source_account"`
	SenderName     string        `mapstructure:"sender_name"`
	InstaPayFee    int64         `mapstructure:"instapay_fee"`
	PESONetFee     int64         `mapstructure:"pesonet_fee"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// DisbursementConfig sets the outbound transfer policy. Amounts are
// centavos.
type DisbursementConfig struct {
	MinimumAmount int64  `mapstructure:"minimum_amount"`
	Currency      string `mapstructure:"currency"`
}

// ReconciliationConfig controls the conservation check between issued
// funds and custodial bank funds.
type ReconciliationConfig struct {
	Enabled                 bool    `mapstructure:"enabled"`
	BufferAmount            int64   `mapstructure:"buffer_amount"`
	BufferPercent           float64 `mapstructure:"buffer_percent"`
	WarningThresholdPercent float64 `mapstructure:"warning_threshold_percent"`
	BlockGeneration         bool    `mapstructure:"block_generation"`
	AllowOvergeneration     bool    `mapstructure:"allow_overgeneration"`
	Override                bool    `mapstructure:"override"`
	SuppressWarnings        bool    `mapstructure:"suppress_warnings"`
	DefaultAccount          string  `mapstructure:"default_account"`
}

// BalanceConfig controls custodial balance monitoring.
type BalanceConfig struct {
	DefaultAccount  string   `mapstructure:"default_account"`
	AlertThreshold  int64    `mapstructure:"alert_threshold"`
	AlertRecipients []string `mapstructure:"alert_recipients"`
}

// WorkerConfig drives the background poller.
type WorkerConfig struct {
	StatusPollInterval   time.Duration `mapstructure:"status_poll_interval"`
	StatusPollBatchSize  int           `mapstructure:"status_poll_batch_size"`
	BalanceCheckInterval time.Duration `mapstructure:"balance_check_interval"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: VSG_ (Voucher
// Settlement Gateway). Nested keys use underscore: VSG_DATABASE_HOST,
// VSG_NETBANK_CLIENT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "voucher_settlement")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("netbank.base_url", "https://api.netbank.ph/v1")
	v.SetDefault("netbank.token_url", "https://auth.netbank.ph/oauth/token")
	v.SetDefault("netbank.client_id", "")
	v.SetDefault("netbank.client_secret", "")
	v.SetDefault("netbank.source_account", "")
	v.SetDefault("netbank.sender_name", "")
	v.SetDefault("netbank.instapay_fee", 1000)
	v.SetDefault("netbank.pesonet_fee", 1000)
	v.SetDefault("netbank.request_timeout", "30s")
	v.SetDefault("disbursement.minimum_amount", 10000)
	v.SetDefault("disbursement.currency", "PHP")
	v.SetDefault("reconciliation.enabled", true)
	v.SetDefault("reconciliation.buffer_amount", 0)
	v.SetDefault("reconciliation.buffer_percent", 10.0)
	v.SetDefault("reconciliation.warning_threshold_percent", 90.0)
	v.SetDefault("reconciliation.block_generation", true)
	v.SetDefault("reconciliation.allow_overgeneration", false)
	v.SetDefault("reconciliation.override", false)
	v.SetDefault("reconciliation.suppress_warnings", false)
	v.SetDefault("reconciliation.default_account", "")
	v.SetDefault("balance.default_account", "")
	v.SetDefault("balance.alert_threshold", 0)
	v.SetDefault("balance.alert_recipients", []string{})
	v.SetDefault("worker.status_poll_interval", "2m")
	v.SetDefault("worker.status_poll_batch_size", 50)
	v.SetDefault("worker.balance_check_interval", "15m")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "voucher-settlement")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: VSG_DATABASE_HOST -> database.host
	v.SetEnvPrefix("VSG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
