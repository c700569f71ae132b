package main

import "github.com/ilyakaznacheev/cleanenv"

// Config is the demo server configuration, read from the environment.
type Config struct {
	Addr       string `env:"STARDEMO_ADDR" env-default:":8080"`
	SigningKey string `env:"STARDEMO_SIGNING_KEY" env-default:"stardemo-dev-signing-key"`
	LogLevel   string `env:"STARDEMO_LOG_LEVEL" env-default:"info"`
	LogFormat  string `env:"STARDEMO_LOG_FORMAT" env-default:"text"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
