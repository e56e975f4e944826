package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Redis      RedisConfig      `mapstructure:"redis"`
	LLM        LLMConfig        `mapstructure:"llm"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Search     SearchConfig     `mapstructure:"search"`
	OCR        OCRConfig        `mapstructure:"ocr"`
	Batch      BatchConfig      `mapstructure:"batch"`
	Stream     StreamConfig     `mapstructure:"stream"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// RedisConfig holds Redis configuration for the batch job store
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the host:port address of the Redis server
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// LLMConfig selects and configures the text generation backend
type LLMConfig struct {
	Provider    string           `mapstructure:"provider"`
	Temperature float64          `mapstructure:"temperature"`
	MaxTokens   int              `mapstructure:"max_tokens"`
	Timeout     time.Duration    `mapstructure:"timeout"`
	OpenAI      LLMBackendConfig `mapstructure:"openai"`
	Groq        LLMBackendConfig `mapstructure:"groq"`
}

// LLMBackendConfig holds the credentials and endpoint of one backend
type LLMBackendConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// Backend returns the configuration of the selected provider
func (l LLMConfig) Backend() (LLMBackendConfig, error) {
	switch strings.ToLower(l.Provider) {
	case "openai":
		return l.OpenAI, nil
	case "groq":
		return l.Groq, nil
	default:
		return LLMBackendConfig{}, fmt.Errorf("unknown llm provider %q", l.Provider)
	}
}

// ClassifierConfig controls the classification step
type ClassifierConfig struct {
	EnforceOverrides bool `mapstructure:"enforce_overrides"`
}

// SearchConfig holds web search provider configuration
type SearchConfig struct {
	MaxResults int              `mapstructure:"max_results"`
	Timeout    time.Duration    `mapstructure:"timeout"`
	Tavily     TavilyConfig     `mapstructure:"tavily"`
	DuckDuckGo DuckDuckGoConfig `mapstructure:"duckduckgo"`
}

// TavilyConfig holds Tavily search configuration
type TavilyConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// DuckDuckGoConfig holds DuckDuckGo search configuration
type DuckDuckGoConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	BaseURL string `mapstructure:"base_url"`
}

// OCRConfig holds text recognition configuration
type OCRConfig struct {
	Languages []string `mapstructure:"languages"`
}

// BatchConfig holds spreadsheet batch configuration
type BatchConfig struct {
	TTL            time.Duration `mapstructure:"ttl"`
	RatePerSecond  float64       `mapstructure:"rate_per_second"`
	MaxUploadBytes int64         `mapstructure:"max_upload_bytes"`
}

// StreamConfig controls the progressive reveal of answers
type StreamConfig struct {
	ChunkSize int           `mapstructure:"chunk_size"`
	Delay     time.Duration `mapstructure:"delay"`
}

// Load reads configuration from an optional config file, a .env file and
// QPRISM_ prefixed environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("QPRISM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindCredentials(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks values that have no safe fallback
func (c *Config) Validate() error {
	if _, err := c.LLM.Backend(); err != nil {
		return err
	}
	if c.Search.MaxResults < 1 {
		return fmt.Errorf("search.max_results must be positive")
	}
	if c.Stream.ChunkSize < 1 {
		return fmt.Errorf("stream.chunk_size must be positive")
	}
	// A full ask makes two sequential LLM calls with a search in between
	if budget := c.RequestBudget(); c.Server.WriteTimeout > 0 && c.Server.WriteTimeout <= budget {
		return fmt.Errorf("server.write_timeout (%s) must exceed 2*llm.timeout + search.timeout (%s)", c.Server.WriteTimeout, budget)
	}
	return nil
}

// RequestBudget is the worst-case time one ask spends waiting on providers
func (c *Config) RequestBudget() time.Duration {
	return 2*c.LLM.Timeout + c.Search.Timeout
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 5*time.Minute)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// LLM defaults
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.temperature", 0.1)
	v.SetDefault("llm.max_tokens", 0)
	v.SetDefault("llm.timeout", 120*time.Second)
	v.SetDefault("llm.openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.openai.model", "gpt-4o")
	v.SetDefault("llm.groq.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("llm.groq.model", "llama-3.3-70b-versatile")

	// Classifier defaults
	v.SetDefault("classifier.enforce_overrides", true)

	// Search defaults
	v.SetDefault("search.max_results", 5)
	v.SetDefault("search.timeout", 15*time.Second)
	v.SetDefault("search.tavily.enabled", true)
	v.SetDefault("search.tavily.base_url", "https://api.tavily.com")
	v.SetDefault("search.duckduckgo.enabled", true)
	v.SetDefault("search.duckduckgo.base_url", "https://html.duckduckgo.com/html/")

	// OCR defaults
	v.SetDefault("ocr.languages", []string{"eng", "hin"})

	// Batch defaults
	v.SetDefault("batch.ttl", time.Hour)
	v.SetDefault("batch.rate_per_second", 0)
	v.SetDefault("batch.max_upload_bytes", 10<<20)

	// Stream defaults
	v.SetDefault("stream.chunk_size", 20)
	v.SetDefault("stream.delay", 50*time.Millisecond)
}

// bindCredentials lets provider keys come from their conventional
// environment variable names as well as the prefixed ones.
func bindCredentials(v *viper.Viper) error {
	bindings := map[string][]string{
		"llm.openai.api_key":    {"QPRISM_LLM_OPENAI_API_KEY", "OPENAI_API_KEY"},
		"llm.groq.api_key":      {"QPRISM_LLM_GROQ_API_KEY", "GROQ_API_KEY"},
		"search.tavily.api_key": {"QPRISM_SEARCH_TAVILY_API_KEY", "TAVILY_API_KEY"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}
