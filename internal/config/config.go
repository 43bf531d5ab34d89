package config

import (
	"log"

	"gopkg.in/yaml.v3"

	"relotrack/pkg/config"
)

type Config struct {
	DB      config.DBConfig      `yaml:"db"`
	MQ      config.MQConfig      `yaml:"mq"`
	Redis   config.RedisConfig   `yaml:"redis"`
	JWT     config.JWTConfig     `yaml:"jwt"`
	Server  config.ServerConfig  `yaml:"server"`
	Webhook config.WebhookConfig `yaml:"webhook"`
	Summary config.SummaryConfig `yaml:"summary"`
}

// Load reads base.yaml plus the environment overlay and applies env-var
// overrides on top. It exits on malformed config since nothing can run
// without one.
func Load() *Config {
	env := config.GetConfigEnv()
	configDir := config.GetEnv("CONFIG_DIR", "config")

	cfgMap, err := config.LoadConfig(env, configDir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var cfg Config
	cfgData, err := yaml.Marshal(cfgMap)
	if err != nil {
		log.Fatalf("failed to marshal config: %v", err)
	}
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	config.OverrideDBFromEnv(&cfg.DB)
	config.OverrideMQFromEnv(&cfg.MQ)
	config.OverrideRedisFromEnv(&cfg.Redis)
	config.OverrideJWTFromEnv(&cfg.JWT)
	config.OverrideServerFromEnv(&cfg.Server)
	config.OverrideWebhookFromEnv(&cfg.Webhook)
	config.OverrideSummaryFromEnv(&cfg.Summary)

	return &cfg
}
