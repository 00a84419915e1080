package factory

import (
	"fmt"

	"github.com/iWorld-y/compliance_radar/app/radar/pkg/config"
	"github.com/iWorld-y/compliance_radar/app/radar/pkg/search"
	"github.com/iWorld-y/compliance_radar/app/radar/pkg/searxng"
	"github.com/iWorld-y/compliance_radar/app/radar/pkg/tavily"
)

// NewSearcher 根据配置创建搜索实例，未配置 provider 时返回 nil，表示不做搜索增强
func NewSearcher(cfg *config.Config) (search.Searcher, error) {
	switch cfg.Search.Provider {
	case "":
		return nil, nil

	case "tavily":
		if cfg.Search.Tavily.APIKey == "" {
			return nil, fmt.Errorf("tavily api key is missing")
		}
		return tavily.NewClient(cfg.Search.Tavily.APIKey), nil

	case "searxng":
		baseURL := cfg.Search.SearXNG.BaseURL
		if baseURL == "" {
			return nil, fmt.Errorf("searxng base url is missing")
		}
		return searxng.NewClient(baseURL, cfg.Search.SearXNG.Timeout), nil

	default:
		return nil, fmt.Errorf("unknown search provider: %s", cfg.Search.Provider)
	}
}
