package search

import "context"

// 搜索主题
const (
	TopicGeneral = "general"
	TopicNews    = "news"
)

// Searcher 定义通用的搜索接口，用于为模型调用提供近期来源
type Searcher interface {
	Search(ctx context.Context, req *Request) (*Response, error)
}

// Request 通用搜索请求
type Request struct {
	Query             string
	Topic             string
	MaxResults        int
	IncludeRawContent bool
	// StartDate、EndDate 格式为 YYYY-MM-DD，为空表示不限
	StartDate string
	EndDate   string
}

// Response 通用搜索响应
type Response struct {
	Results []Result
}

// Result 单条搜索结果，Content 为摘要，会被正文抓取补全
type Result struct {
	Title         string
	URL           string
	Content       string
	RawContent    string
	Score         float64
	PublishedDate string
}
