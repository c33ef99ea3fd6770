package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all verifier configuration.
type Config struct {
	Runtime  RuntimeConfig `mapstructure:"runtime"`
	Redis    RedisConfig   `mapstructure:"redis"`
	Neo4j    Neo4jConfig   `mapstructure:"neo4j"`
	MongoDB  MongoConfig   `mapstructure:"mongodb"`
	InfluxDB InfluxConfig  `mapstructure:"influxdb"`
	Kafka    KafkaConfig   `mapstructure:"kafka"`
	Ollama   OllamaConfig  `mapstructure:"ollama"`
	Probe    ProbeConfig   `mapstructure:"probe"`
	Log      LogConfig     `mapstructure:"log"`
	EnvFile  string        `mapstructure:"env_file"`
}

type RuntimeConfig struct {
	MinVersion string `mapstructure:"min_version"` // e.g. "go1.22"
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

type Neo4jConfig struct {
	URI      string `mapstructure:"uri"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type MongoConfig struct {
	URI string `mapstructure:"uri"`
}

type InfluxConfig struct {
	URL   string `mapstructure:"url"`
	Token string `mapstructure:"token"`
}

type KafkaConfig struct {
	Broker string `mapstructure:"broker"`
}

type OllamaConfig struct {
	URL string `mapstructure:"url"`
}

type ProbeConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: GCV_ (GCombinatr Verifier).
// Nested keys use underscore: GCV_REDIS_HOST, GCV_NEO4J_PASSWORD, etc.
// The InfluxDB token additionally honors the client-native INFLUXDB_TOKEN.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults: the well-known local endpoints of the GCombinatr stack.
	v.SetDefault("runtime.min_version", "go1.22")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("neo4j.uri", "neo4j://localhost:7687")
	v.SetDefault("neo4j.username", "neo4j")
	v.SetDefault("neo4j.password", "password")
	v.SetDefault("mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("influxdb.url", "http://localhost:8086")
	v.SetDefault("influxdb.token", "your-token")
	v.SetDefault("kafka.broker", "localhost:9092")
	v.SetDefault("ollama.url", "http://localhost:11434")
	v.SetDefault("probe.timeout", "2s")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.pretty", true)
	v.SetDefault("env_file", ".env")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: GCV_REDIS_HOST -> redis.host
	v.SetEnvPrefix("GCV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("influxdb.token", "INFLUXDB_TOKEN", "GCV_INFLUXDB_TOKEN"); err != nil {
		return nil, fmt.Errorf("binding influxdb token env: %w", err)
	}

	// Read config file (not required — defaults and env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Probe.Timeout <= 0 {
		return nil, fmt.Errorf("probe timeout must be positive, got %s", cfg.Probe.Timeout)
	}

	return &cfg, nil
}
