package server

import (
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/conf"
	"github.com/iWorld-y/compliance_radar/app/radar/pkg/config"
	"github.com/iWorld-y/compliance_radar/app/radar/pkg/engine"
	drLogger "github.com/iWorld-y/compliance_radar/app/radar/pkg/logger"
)

// NewRadarEngine 初始化雷达引擎，c 为空时使用默认配置
func NewRadarEngine(c *conf.Radar, logger log.Logger) (*engine.Engine, func(), error) {
	drCfg := radarConfig(c)

	eng, err := engine.NewEngine(drCfg, engine.WithLogger(drLogger.Log))
	if err != nil {
		log.NewHelper(logger).Errorf("Failed to init engine: %v", err)
		return nil, nil, err
	}

	cleanup := func() {
		log.NewHelper(logger).Info("Cleaning up radar engine")
	}
	return eng, cleanup, nil
}

// radarConfig 将 internal/conf.Radar 转换为 pkg/config.Config
func radarConfig(c *conf.Radar) *config.Config {
	drCfg := &config.Config{}
	if c == nil {
		drCfg.ApplyDefaults()
		return drCfg
	}

	if l := c.Llm; l != nil {
		drCfg.LLM = config.LLMConfig{
			BaseURL:   l.BaseUrl,
			APIKey:    l.ApiKey,
			APIKeyEnv: l.ApiKeyEnv,
			KeyPrefix: l.KeyPrefix,
			Model:     l.Model,
			Timeout:   int(l.Timeout),
		}
	}
	if s := c.Search; s != nil {
		drCfg.Search = config.SearchConfig{
			Provider:     s.Provider,
			MaxResults:   int(s.MaxResults),
			FetchContent: s.FetchContent,
		}
		if s.Tavily != nil {
			drCfg.Search.Tavily.APIKey = s.Tavily.ApiKey
		}
		if s.Searxng != nil {
			drCfg.Search.SearXNG = config.SearXNGConfig{
				BaseURL: s.Searxng.BaseUrl,
				Timeout: int(s.Searxng.Timeout),
			}
		}
	}
	if c.Log != nil {
		drCfg.Log = config.LogConfig{Level: c.Log.Level, File: c.Log.File}
	}
	if c.Concurrency != nil {
		drCfg.Concurrency = config.ConcurrencyConfig{
			QPS: int(c.Concurrency.Qps),
			RPM: int(c.Concurrency.Rpm),
		}
	}

	drCfg.ApplyDefaults()
	return drCfg
}
