package repo

import (
	"context"

	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/domain"
)

// DashboardRepo 仪表盘数据仓库接口，读取方法返回副本
type DashboardRepo interface {
	ListKnowledgeBase(ctx context.Context) []domain.KnowledgeItem
	ListUpdates(ctx context.Context) []domain.UpdateItem
	GetRiskReport(ctx context.Context) domain.RiskReport

	// ReplaceKnowledgeBase 整体替换知识库
	ReplaceKnowledgeBase(ctx context.Context, items []domain.KnowledgeItem)
	// ReplaceUpdates 整体替换动态列表
	ReplaceUpdates(ctx context.Context, items []domain.UpdateItem)
	// ReplaceRiskReport 整体替换风险报告
	ReplaceRiskReport(ctx context.Context, report domain.RiskReport)
	// RecalculateStats 按集合大小重算统计
	RecalculateStats(ctx context.Context)

	SetKnowledgeURL(ctx context.Context, id, url string) error
	SetKnowledgeNote(ctx context.Context, id, note string) error
	SetKnowledgeLinks(ctx context.Context, id string, links []domain.CustomLink) error

	SetUpdateURL(ctx context.Context, id, url string) error
	SetUpdateNote(ctx context.Context, id, note string) error
	SetUpdateLinks(ctx context.Context, id string, links []domain.CustomLink) error

	// SetEventURL 按关注领域 name.en 和事件 title.en 定位关联事件
	SetEventURL(ctx context.Context, focusAreaName, eventTitle, url string) error
	SetFocusAreaNote(ctx context.Context, focusAreaName, note string) error
	SetFocusAreaLinks(ctx context.Context, focusAreaName string, links []domain.CustomLink) error
}
