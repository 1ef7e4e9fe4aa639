package config

// Environment variable names read by Load.
const (
	EnvAppEnv            = "APP_ENV"
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvLLMProvider       = "LLM_PROVIDER"
	EnvLLMTimeout        = "LLM_TIMEOUT"
	EnvGeminiAPIKey      = "GEMINI_API_KEY"
	EnvGeminiModel       = "GEMINI_MODEL"
	EnvOpenAIAPIKey      = "OPENAI_API_KEY"
	EnvCORSOrigins       = "CORS_ALLOWED_ORIGINS"
	EnvShutdownTimeout   = "HTTP_SHUTDOWN_TIMEOUT"
	EnvReadHeaderTimeout = "HTTP_READ_HEADER_TIMEOUT"
)
