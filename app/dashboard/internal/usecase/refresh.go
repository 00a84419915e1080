package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/domain"
	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/repo"
	"github.com/iWorld-y/compliance_radar/app/radar/pkg/engine"
)

// Synthesizer 生成新数据的上游协作方，由雷达引擎实现
type Synthesizer interface {
	ResolveCredential() (engine.Credential, error)
	Synthesize(ctx context.Context, apiKey string, focusAreas []domain.FocusArea) *engine.Result
}

// RefreshUseCase 刷新编排：调用雷达引擎并把结果合并进存储
type RefreshUseCase struct {
	repo      repo.DashboardRepo
	dashboard *DashboardUseCase
	synth     Synthesizer
	now       func() time.Time
	// mu 串行化刷新，批注仍可能落在读取和替换之间
	mu  sync.Mutex
	log *log.Helper
}

// NewRefreshUseCase 创建刷新逻辑实例
func NewRefreshUseCase(repo repo.DashboardRepo, dashboard *DashboardUseCase, synth Synthesizer, logger log.Logger) *RefreshUseCase {
	return &RefreshUseCase{
		repo:      repo,
		dashboard: dashboard,
		synth:     synth,
		now:       time.Now,
		log:       log.NewHelper(logger),
	}
}

// Refresh 执行一次刷新，上游失败时降级为合成数据而不是返回错误
func (uc *RefreshUseCase) Refresh(ctx context.Context) (result *domain.RefreshResult, err error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			uc.log.WithContext(ctx).Errorf("refresh panic: %v", r)
			result, err = nil, domain.ErrRefreshFailed(fmt.Sprint(r))
		}
	}()

	cred, err := uc.synth.ResolveCredential()
	switch {
	case errors.Is(err, engine.ErrMissingAPIKey):
		return nil, domain.ErrMissingAPIKey()
	case errors.Is(err, engine.ErrInvalidAPIKey):
		return nil, domain.ErrInvalidAPIKey()
	case err != nil:
		return nil, domain.ErrRefreshFailed(err.Error())
	}

	current := uc.repo.GetRiskReport(ctx)
	res := uc.synth.Synthesize(ctx, cred.Key, current.FocusAreas)
	if res == nil || res.Payload == nil {
		return nil, domain.ErrRefreshFailed("empty synthesis result")
	}
	if res.Degraded {
		uc.log.WithContext(ctx).Warnf("refresh degraded to synthetic data: %v", res.Cause)
	}
	payload := res.Payload

	// 1. 动态：去重后插到最前
	existing := uc.repo.ListUpdates(ctx)
	fresh := dedupeUpdates(existing, payload.NewUpdates)
	if len(fresh) > 0 {
		uc.repo.ReplaceUpdates(ctx, append(fresh, existing...))
	}

	// 2. 风险报告：只替换生成的字段，stats 和归档保留
	if draft := payload.RiskReport; draft != nil {
		report := uc.repo.GetRiskReport(ctx)
		report.LastUpdated = draft.LastUpdated
		report.Score = draft.Score
		report.Summary = draft.Summary
		report.FocusAreas = draft.FocusAreas
		uc.repo.ReplaceRiskReport(ctx, report)
	}

	// 3. 知识库：可选的条目更新
	if len(payload.UpdatedKnowledgeBaseItems) > 0 {
		kb := mergeKnowledgeBase(uc.repo.ListKnowledgeBase(ctx), payload.UpdatedKnowledgeBaseItems, uc.now())
		uc.repo.ReplaceKnowledgeBase(ctx, kb)
	}

	uc.repo.RecalculateStats(ctx)
	uc.log.WithContext(ctx).Infof("refresh done: %d new updates, degraded=%t", len(fresh), res.Degraded)

	return &domain.RefreshResult{
		Snapshot: uc.dashboard.Snapshot(ctx),
		Degraded: res.Degraded,
	}, nil
}

// dedupeUpdates 过滤与已有动态或同批次动态 id、title.en 重复的条目，保持原顺序
func dedupeUpdates(existing, incoming []domain.UpdateItem) []domain.UpdateItem {
	ids := make(map[string]struct{}, len(existing)+len(incoming))
	titles := make(map[string]struct{}, len(existing)+len(incoming))
	for _, u := range existing {
		ids[u.ID] = struct{}{}
		if u.Title.EN != "" {
			titles[u.Title.EN] = struct{}{}
		}
	}

	var fresh []domain.UpdateItem
	for _, u := range incoming {
		if _, ok := ids[u.ID]; ok {
			continue
		}
		if _, ok := titles[u.Title.EN]; ok && u.Title.EN != "" {
			continue
		}
		ids[u.ID] = struct{}{}
		if u.Title.EN != "" {
			titles[u.Title.EN] = struct{}{}
		}
		fresh = append(fresh, u)
	}
	return fresh
}

// mergeKnowledgeBase 按 id 或 title.en 合并知识库更新，未匹配的追加到末尾
func mergeKnowledgeBase(current, incoming []domain.KnowledgeItem, now time.Time) []domain.KnowledgeItem {
	merged := append([]domain.KnowledgeItem(nil), current...)
	for i, in := range incoming {
		idx := -1
		for j, it := range merged {
			if (in.ID != "" && it.ID == in.ID) || (in.Title.EN != "" && it.Title.EN == in.Title.EN) {
				idx = j
				break
			}
		}
		if idx >= 0 {
			merged[idx] = merged[idx].MergeFrom(in)
			continue
		}
		if in.ID == "" {
			in.ID = fmt.Sprintf("kb-%d-%d", now.UnixMilli(), i)
		}
		merged = append(merged, in)
	}
	return merged
}
