package usecase

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/domain"
	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/repo"
)

// DashboardUseCase 仪表盘读取逻辑
type DashboardUseCase struct {
	repo repo.DashboardRepo
	log  *log.Helper
}

// NewDashboardUseCase 创建仪表盘读取逻辑实例
func NewDashboardUseCase(repo repo.DashboardRepo, logger log.Logger) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, log: log.NewHelper(logger)}
}

// ListKnowledgeBase 按日期倒序列出知识库
func (uc *DashboardUseCase) ListKnowledgeBase(ctx context.Context) []domain.KnowledgeItem {
	return sortKnowledgeBase(uc.repo.ListKnowledgeBase(ctx))
}

// ListUpdates 按日期倒序列出动态
func (uc *DashboardUseCase) ListUpdates(ctx context.Context) []domain.UpdateItem {
	return sortUpdates(uc.repo.ListUpdates(ctx))
}

// GetRiskReport 读取前先重算统计
func (uc *DashboardUseCase) GetRiskReport(ctx context.Context) domain.RiskReport {
	uc.repo.RecalculateStats(ctx)
	return uc.repo.GetRiskReport(ctx)
}

// Snapshot 返回三个集合的排序快照
func (uc *DashboardUseCase) Snapshot(ctx context.Context) *domain.Snapshot {
	return &domain.Snapshot{
		Updates:       uc.ListUpdates(ctx),
		RiskReport:    uc.GetRiskReport(ctx),
		KnowledgeBase: uc.ListKnowledgeBase(ctx),
	}
}
