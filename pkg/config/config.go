package config

import (
	"os"
	"strconv"
)

type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type MQConfig struct {
	URL string `yaml:"url"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// WebhookConfig holds the outbound notification endpoints (e.g. an n8n flow
// that forwards to WhatsApp). Empty URLs disable the corresponding dispatch.
type WebhookConfig struct {
	CompletedURL string `yaml:"completed_url"`
	DelayedURL   string `yaml:"delayed_url"`
	SummaryURL   string `yaml:"summary_url"`
}

// SummaryConfig controls the daily summary runner.
type SummaryConfig struct {
	CronSpec string `yaml:"cron_spec"` // robfig/cron expression, e.g. "0 7 * * *"
}

func OverrideDBFromEnv(cfg *DBConfig) {
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Name = name
	}
}

func OverrideMQFromEnv(cfg *MQConfig) {
	if url := os.Getenv("MQ_URL"); url != "" {
		cfg.URL = url
	}
}

func OverrideRedisFromEnv(cfg *RedisConfig) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Password = password
	}
}

func OverrideJWTFromEnv(cfg *JWTConfig) {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Secret = secret
	}
}

func OverrideServerFromEnv(cfg *ServerConfig) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Port = port
	}
}

func OverrideWebhookFromEnv(cfg *WebhookConfig) {
	if url := os.Getenv("WEBHOOK_COMPLETED_URL"); url != "" {
		cfg.CompletedURL = url
	}
	if url := os.Getenv("WEBHOOK_DELAYED_URL"); url != "" {
		cfg.DelayedURL = url
	}
	if url := os.Getenv("WEBHOOK_SUMMARY_URL"); url != "" {
		cfg.SummaryURL = url
	}
}

func OverrideSummaryFromEnv(cfg *SummaryConfig) {
	if spec := os.Getenv("SUMMARY_CRON"); spec != "" {
		cfg.CronSpec = spec
	}
}
