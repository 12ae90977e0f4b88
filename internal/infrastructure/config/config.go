package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Flush    FlushConfig    `mapstructure:"flush"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
	PoolSize int    `mapstructure:"pool_size"`
}

// CacheConfig carries one TTL per cache class. The buffer TTL must outlive
// the flush interval so an unflushed mutation normally survives until the
// next cycle picks it up.
type CacheConfig struct {
	RatingsTTL time.Duration `mapstructure:"ratings_ttl"`
	BufferTTL  time.Duration `mapstructure:"buffer_ttl"`
	RoomsTTL   time.Duration `mapstructure:"rooms_ttl"`
	SearchTTL  time.Duration `mapstructure:"search_ttl"`
	LockTTL    time.Duration `mapstructure:"lock_ttl"`
}

type FlushConfig struct {
	IntervalMinutes    uint64        `mapstructure:"interval_minutes"`
	WriteRate          float64       `mapstructure:"write_rate"`
	WriteBurst         int           `mapstructure:"write_burst"`
	BreakerMaxRequests uint32        `mapstructure:"breaker_max_requests"`
	BreakerInterval    time.Duration `mapstructure:"breaker_interval"`
	BreakerTimeout     time.Duration `mapstructure:"breaker_timeout"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

func LoadConfig() (*Config, error) {
	var err error
	if err = gotenv.Load("../.env"); err != nil {
		_ = gotenv.Load()
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := viper.UnmarshalKey("catalog", &config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	expandConfigEnvVars(&config)
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func expandConfigEnvVars(config *Config) {
	config.Database.Host = os.ExpandEnv(config.Database.Host)
	config.Database.Username = os.ExpandEnv(config.Database.Username)
	config.Database.Password = os.ExpandEnv(config.Database.Password)
	config.Database.Database = os.ExpandEnv(config.Database.Database)
	config.Database.SSLMode = os.ExpandEnv(config.Database.SSLMode)

	config.Redis.Host = os.ExpandEnv(config.Redis.Host)
	config.Redis.Password = os.ExpandEnv(config.Redis.Password)
}

func (c *Config) applyDefaults() {
	if c.Cache.RatingsTTL == 0 {
		c.Cache.RatingsTTL = 5 * time.Minute
	}
	if c.Cache.BufferTTL == 0 {
		c.Cache.BufferTTL = 30 * time.Minute
	}
	if c.Cache.RoomsTTL == 0 {
		c.Cache.RoomsTTL = 30 * time.Minute
	}
	if c.Cache.SearchTTL == 0 {
		c.Cache.SearchTTL = 5 * time.Minute
	}
	if c.Cache.LockTTL == 0 {
		c.Cache.LockTTL = 5 * time.Second
	}
	if c.Flush.IntervalMinutes == 0 {
		c.Flush.IntervalMinutes = 5
	}
	if c.Flush.WriteRate == 0 {
		c.Flush.WriteRate = 50
	}
	if c.Flush.WriteBurst == 0 {
		c.Flush.WriteBurst = 10
	}
	if c.Flush.BreakerMaxRequests == 0 {
		c.Flush.BreakerMaxRequests = 3
	}
	if c.Flush.BreakerInterval == 0 {
		c.Flush.BreakerInterval = time.Minute
	}
	if c.Flush.BreakerTimeout == 0 {
		c.Flush.BreakerTimeout = 30 * time.Second
	}
	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 50
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode)
}

func (c *RedisConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Redis.Host == "" {
		return fmt.Errorf("redis host is required")
	}

	flushInterval := time.Duration(c.Flush.IntervalMinutes) * time.Minute
	if c.Cache.BufferTTL <= flushInterval {
		return fmt.Errorf("buffer TTL %s must exceed the flush interval %s", c.Cache.BufferTTL, flushInterval)
	}

	return nil
}
