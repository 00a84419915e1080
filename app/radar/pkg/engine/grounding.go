package engine

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-shiori/go-readability"

	"github.com/iWorld-y/compliance_radar/app/radar/pkg/search"
)

const (
	groundingWindowDays = 90
	minSnippetLen       = 500
	maxSnippetLen       = 2000
	fetchTimeout        = 30 * time.Second
)

// Fetcher 抓取网页正文，需遵守 ctx 的取消和截止时间
type Fetcher func(ctx context.Context, pageURL string) (string, error)

func fetchAndCleanContent(ctx context.Context, pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/html") {
		return "", fmt.Errorf("not a HTML document: %q", ct)
	}

	article, err := readability.FromReader(resp.Body, u)
	if err != nil {
		return "", err
	}
	return article.TextContent, nil
}

// truncateRunes 按字符截断，避免切断多字节字符
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// ground 搜索近期动态并补全过短的摘要，未配置搜索时返回 nil
func (e *Engine) ground(ctx context.Context) ([]search.Result, error) {
	if e.searcher == nil {
		return nil, nil
	}

	now := e.now()
	req := &search.Request{
		Query:      searchQuery,
		Topic:      search.TopicNews,
		MaxResults: e.cfg.Search.MaxResults,
		StartDate:  now.AddDate(0, 0, -groundingWindowDays).Format(time.DateOnly),
		EndDate:    now.Format(time.DateOnly),
	}
	resp, err := e.searcher.Search(ctx, req)
	if err != nil {
		return nil, err
	}
	e.log.Debugf("搜索返回 %d 条结果", len(resp.Results))

	results := make([]search.Result, 0, len(resp.Results))
	for _, item := range resp.Results {
		if item.URL == "" {
			continue
		}
		content := item.Content
		if e.cfg.Search.FetchContent && e.fetch != nil && utf8.RuneCountInString(content) < minSnippetLen {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			fetched, err := e.fetch(ctx, item.URL)
			if err != nil {
				e.log.Debugf("抓取正文失败 [%s]: %v", item.URL, err)
			} else if len(fetched) > len(content) {
				content = fetched
			}
		}
		item.Content = truncateRunes(content, maxSnippetLen)
		results = append(results, item)
	}
	return results, nil
}
