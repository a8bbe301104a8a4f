package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "FLOWS_"

type Config struct {
	Primary    Primary          `koanf:"primary"`
	Coffee     CoffeeConfig     `koanf:"coffee"`
	Submit     SubmitConfig     `koanf:"submit"`
	HTTPClient HTTPClientConfig `koanf:"http_client"`
	Logger     LoggerConfig     `koanf:"logger"`
	Metrics    MetricsConfig    `koanf:"metrics"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// CoffeeConfig configures the read flow. Token is sent as a static bearer credential.
type CoffeeConfig struct {
	URL                string `koanf:"url" validate:"required,url"`
	Token              string `koanf:"token" validate:"required"`
	StatusErrorMessage string `koanf:"status_error_message" validate:"required"`
}

// SubmitConfig configures the write flow.
type SubmitConfig struct {
	URL                string `koanf:"url" validate:"required,url"`
	StatusErrorMessage string `koanf:"status_error_message" validate:"required"`
}

type HTTPClientConfig struct {
	Timeout time.Duration `koanf:"timeout" validate:"required"`
}

type LoggerConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

type MetricsConfig struct {
	Namespace    string `koanf:"namespace" validate:"required"`
	TextfilePath string `koanf:"textfile_path"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                 "development",
		"coffee.url":                  "https://api.sampleapis.com/coffee/hot",
		"coffee.status_error_message": "Network response was not ok",
		"submit.url":                  "https://jsonplaceholder.typicode.com/posts",
		"submit.status_error_message": "Failed to submit data.",
		"http_client.timeout":         "30s",
		"logger.level":                "info",
		"logger.format":               "text",
		"metrics.namespace":           "request_flows",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
