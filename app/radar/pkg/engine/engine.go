package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/compliance_radar/app/radar/pkg/config"
	"github.com/iWorld-y/compliance_radar/app/radar/pkg/logger"
	dm "github.com/iWorld-y/compliance_radar/app/radar/pkg/model"
	"github.com/iWorld-y/compliance_radar/app/radar/pkg/search"
	"github.com/iWorld-y/compliance_radar/app/radar/pkg/search/factory"
)

// ChatModelFactory 按请求解析出的凭证创建模型客户端
type ChatModelFactory func(ctx context.Context, apiKey string) (model.BaseChatModel, error)

// Result 一次合成的结果，Degraded 为 true 时 Payload 为降级数据，Cause 记录原因
type Result struct {
	Payload  *dm.Payload
	Degraded bool
	Cause    error
}

// Engine 雷达引擎：搜索增强 + 两轮模型调用生成仪表盘数据
type Engine struct {
	cfg       *config.Config
	newModel  ChatModelFactory
	searcher  search.Searcher
	fetch     Fetcher
	limiter   *rate.Limiter
	validator *jsonschema.Schema
	now       func() time.Time
	lookupEnv func(string) (string, bool)
	log       *logrus.Entry
}

// Option 引擎选项
type Option func(*Engine)

// WithChatModelFactory 替换模型客户端的创建方式
func WithChatModelFactory(f ChatModelFactory) Option {
	return func(e *Engine) { e.newModel = f }
}

// WithSearcher 替换搜索客户端，传 nil 关闭搜索增强
func WithSearcher(s search.Searcher) Option {
	return func(e *Engine) { e.searcher = s }
}

// WithFetcher 替换正文抓取
func WithFetcher(f Fetcher) Option {
	return func(e *Engine) { e.fetch = f }
}

// WithClock 替换时钟
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithEnvLookup 替换环境变量读取
func WithEnvLookup(lookup func(string) (string, bool)) Option {
	return func(e *Engine) { e.lookupEnv = lookup }
}

// WithLogger 指定日志实例
func WithLogger(l *logrus.Logger) Option {
	return func(e *Engine) { e.log = logrus.NewEntry(l).WithField("module", "engine") }
}

// NewEngine 创建引擎实例
func NewEngine(cfg *config.Config, opts ...Option) (*Engine, error) {
	cfg.ApplyDefaults()

	validator, err := newPayloadValidator()
	if err != nil {
		return nil, fmt.Errorf("payload schema 编译失败: %w", err)
	}

	// 初始化搜索客户端
	searcher, err := factory.NewSearcher(cfg)
	if err != nil {
		return nil, fmt.Errorf("搜索客户端初始化失败: %w", err)
	}

	// 初始化限流器
	limit := rate.Limit(float64(cfg.Concurrency.RPM) / 60.0)
	burst := cfg.Concurrency.QPS

	e := &Engine{
		cfg:       cfg,
		newModel:  openAIChatModel(cfg),
		searcher:  searcher,
		fetch:     fetchAndCleanContent,
		limiter:   rate.NewLimiter(limit, burst),
		validator: validator,
		now:       time.Now,
		lookupEnv: os.LookupEnv,
		log:       logrus.NewEntry(logger.Log).WithField("module", "engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.searcher == nil {
		e.log.Warn("未配置搜索服务，检索调用不做搜索增强")
	}
	return e, nil
}

// openAIChatModel 默认使用 OpenAI 兼容接口，要求 JSON 输出
func openAIChatModel(cfg *config.Config) ChatModelFactory {
	return func(ctx context.Context, apiKey string) (model.BaseChatModel, error) {
		cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL: cfg.LLM.BaseURL,
			APIKey:  apiKey,
			Model:   cfg.LLM.Model,
			Timeout: time.Duration(cfg.LLM.Timeout) * time.Second,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("LLM 初始化失败: %w", err)
		}
		return cm, nil
	}
}

// ResolveCredential 解析本次请求使用的凭证，只记录前缀和长度
func (e *Engine) ResolveCredential() (Credential, error) {
	cred, err := ResolveAPIKey(e.cfg.LLM.APIKeyEnv, e.cfg.LLM.APIKey, e.lookupEnv)
	if err != nil {
		e.log.Errorf("凭证解析失败: %v", err)
		return Credential{}, err
	}

	e.log.WithField("source", cred.Source).Infof("使用凭证 %s", cred.Masked())
	if prefix := e.cfg.LLM.KeyPrefix; prefix != "" && !strings.HasPrefix(cred.Key, prefix) {
		e.log.Warnf("凭证前缀不是 %q，可能无效", prefix)
	}
	return cred, nil
}

// Synthesize 生成新的动态和风险报告，任何上游失败都降级为合成数据
func (e *Engine) Synthesize(ctx context.Context, apiKey string, focusAreas []dm.FocusArea) *Result {
	payload, err := e.generate(ctx, apiKey)
	if err != nil {
		e.log.Warnf("模型调用失败，使用合成数据: %v", err)
		return &Result{
			Payload:  SyntheticPayload(e.now(), focusAreas),
			Degraded: true,
			Cause:    err,
		}
	}
	e.log.Infof("生成完成: %d 条动态, %d 个关注领域, %d 条知识库更新",
		len(payload.NewUpdates), len(payload.RiskReport.FocusAreas), len(payload.UpdatedKnowledgeBaseItems))
	return &Result{Payload: payload}
}

func (e *Engine) generate(ctx context.Context, apiKey string) (*dm.Payload, error) {
	cm, err := e.newModel(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	// 1. 检索
	results, err := e.ground(ctx)
	if err != nil {
		// 搜索失败不影响后续调用
		e.log.Warnf("搜索增强失败: %v", err)
		results = nil
	}
	prompt := groundedSearchPrompt(results)

	e.log.Info("开始检索...")
	system := &schema.Message{Role: schema.System, Content: systemPrompt}
	searchMsg := &schema.Message{Role: schema.User, Content: prompt}
	searchResp, err := e.call(ctx, cm, []*schema.Message{system, searchMsg})
	if err != nil {
		return nil, fmt.Errorf("search call: %w", err)
	}

	// 2. 结构化生成
	e.log.Info("开始生成...")
	messages := []*schema.Message{
		system,
		searchMsg,
		{Role: schema.Assistant, Content: searchResp.Content},
		{Role: schema.User, Content: processingPrompt(e.now())},
	}
	genResp, err := e.call(ctx, cm, messages)
	if err != nil {
		return nil, fmt.Errorf("generation call: %w", err)
	}

	return parsePayload(e.validator, genResp.Content)
}

// call 限流后调用模型，不重试
func (e *Engine) call(ctx context.Context, cm model.BaseChatModel, messages []*schema.Message) (*schema.Message, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	resp, err := cm.Generate(ctx, messages)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, errors.New("empty response")
	}
	return resp, nil
}
