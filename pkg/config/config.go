package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
)

const (
	AppEnvDev = "development"

	LogFormatJSON    = "json"
	LogFormatConsole = "console"

	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	LLM  LLMConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	var errs error
	errs = multierr.Append(errs, c.App.validate())
	errs = multierr.Append(errs, c.HTTP.validate())
	errs = multierr.Append(errs, c.LLM.validate())
	return errs
}

type AppConfig struct {
	Name         string `envconfig:"APP_NAME" default:"Quotation Microservice"`
	Version      string `envconfig:"APP_VERSION" default:"1.0.0"`
	Env          string `envconfig:"APP_ENV" default:"development"`
	Port         string `envconfig:"PORT" default:"8000"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LOG_WARN_STACK" default:"false"`
	LogFormat    string `envconfig:"LOG_FORMAT"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev) || strings.EqualFold(a.Env, "dev")
}

// LogOutputFormat is LOG_FORMAT when set, otherwise console output in
// development and JSON everywhere else.
func (a AppConfig) LogOutputFormat() string {
	if format := strings.ToLower(strings.TrimSpace(a.LogFormat)); format != "" {
		return format
	}
	if a.IsDev() {
		return LogFormatConsole
	}
	return LogFormatJSON
}

// Addr is the listen address derived from Port.
func (a AppConfig) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(a.Port), ":")
}

func (a AppConfig) validate() error {
	port, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(a.Port), ":"))
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid %s %q", EnvPort, a.Port)
	}
	return nil
}

type HTTPConfig struct {
	ReadHeaderTimeout  time.Duration `envconfig:"HTTP_READ_HEADER_TIMEOUT" default:"10s"`
	ShutdownTimeout    time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"15s"`
	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

func (h HTTPConfig) validate() error {
	var errs error
	if h.ReadHeaderTimeout < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%s must not be negative", EnvReadHeaderTimeout))
	}
	if h.ShutdownTimeout < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%s must not be negative", EnvShutdownTimeout))
	}
	return errs
}

type LLMConfig struct {
	Provider string        `envconfig:"LLM_PROVIDER" default:"gemini"`
	Timeout  time.Duration `envconfig:"LLM_TIMEOUT" default:"30s"`

	GeminiAPIKey  string `envconfig:"GEMINI_API_KEY"`
	GeminiModel   string `envconfig:"GEMINI_MODEL" default:"gemini-pro"`
	GeminiBaseURL string `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com"`

	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel   string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com"`
}

// NormalizedProvider returns the lower-cased provider name.
func (l LLMConfig) NormalizedProvider() string {
	p := strings.ToLower(strings.TrimSpace(l.Provider))
	if p == "" {
		return ProviderGemini
	}
	return p
}

// Enabled reports whether the selected provider has a credential configured.
func (l LLMConfig) Enabled() bool {
	switch l.NormalizedProvider() {
	case ProviderOpenAI:
		return strings.TrimSpace(l.OpenAIAPIKey) != ""
	default:
		return strings.TrimSpace(l.GeminiAPIKey) != ""
	}
}

func (l LLMConfig) validate() error {
	switch l.NormalizedProvider() {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unsupported %s %q", EnvLLMProvider, l.Provider)
	}
	if l.Timeout < 0 {
		return fmt.Errorf("%s must not be negative", EnvLLMTimeout)
	}
	return nil
}
