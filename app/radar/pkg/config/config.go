package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultAPIKeyEnv 默认依次尝试的凭证环境变量
var DefaultAPIKeyEnv = []string{"API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"}

// Config 雷达引擎配置
type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Search      SearchConfig      `yaml:"search"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
}

// LLMConfig LLM 相关配置
type LLMConfig struct {
	BaseURL string `yaml:"base_url"`
	// APIKey 所有环境变量都未设置时使用
	APIKey    string   `yaml:"api_key"`
	APIKeyEnv []string `yaml:"api_key_env"`
	// KeyPrefix 期望的凭证前缀，不匹配时仅告警
	KeyPrefix string `yaml:"key_prefix"`
	Model     string `yaml:"model"`
	// Timeout 单次调用超时（秒）
	Timeout int `yaml:"timeout"`
}

// SearchConfig 搜索相关配置，Provider 为空时不做搜索增强
type SearchConfig struct {
	Provider     string        `yaml:"provider"`
	MaxResults   int           `yaml:"max_results"`
	FetchContent bool          `yaml:"fetch_content"`
	Tavily       TavilyConfig  `yaml:"tavily"`
	SearXNG      SearXNGConfig `yaml:"searxng"`
}

// TavilyConfig Tavily 配置
type TavilyConfig struct {
	APIKey string `yaml:"api_key"`
}

// SearXNGConfig SearXNG 配置
type SearXNGConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig 并发控制配置
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"`
}

// ApplyDefaults 填充未配置的字段
func (c *Config) ApplyDefaults() {
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gemini-2.5-flash"
	}
	if len(c.LLM.APIKeyEnv) == 0 {
		c.LLM.APIKeyEnv = append([]string(nil), DefaultAPIKeyEnv...)
	}
	if c.LLM.Timeout <= 0 {
		c.LLM.Timeout = 90
	}
	if c.Search.MaxResults <= 0 {
		c.Search.MaxResults = 8
	}
	if c.Concurrency.QPS <= 0 {
		c.Concurrency.QPS = 1
	}
	if c.Concurrency.RPM <= 0 {
		c.Concurrency.RPM = 30
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// LoadConfig 从指定路径加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}
