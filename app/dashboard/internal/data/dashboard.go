package data

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/domain"
	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/repo"
)

type dashboardRepo struct {
	store *Store
	log   *log.Helper
}

// NewDashboardRepo 创建仪表盘仓库
func NewDashboardRepo(store *Store, logger log.Logger) repo.DashboardRepo {
	return &dashboardRepo{
		store: store,
		log:   log.NewHelper(logger),
	}
}

func (r *dashboardRepo) ListKnowledgeBase(ctx context.Context) []domain.KnowledgeItem {
	return r.store.KnowledgeBase()
}

func (r *dashboardRepo) ListUpdates(ctx context.Context) []domain.UpdateItem {
	return r.store.Updates()
}

func (r *dashboardRepo) GetRiskReport(ctx context.Context) domain.RiskReport {
	return r.store.RiskReport()
}

func (r *dashboardRepo) ReplaceKnowledgeBase(ctx context.Context, items []domain.KnowledgeItem) {
	r.store.ReplaceKnowledgeBase(items)
}

func (r *dashboardRepo) ReplaceUpdates(ctx context.Context, items []domain.UpdateItem) {
	r.store.ReplaceUpdates(items)
}

func (r *dashboardRepo) ReplaceRiskReport(ctx context.Context, report domain.RiskReport) {
	r.store.ReplaceRiskReport(report)
}

func (r *dashboardRepo) RecalculateStats(ctx context.Context) {
	r.store.RecalculateStats()
}

func (r *dashboardRepo) SetKnowledgeURL(ctx context.Context, id, url string) error {
	return r.patchKnowledge(ctx, id, func(it *domain.KnowledgeItem) { it.URL = url })
}

func (r *dashboardRepo) SetKnowledgeNote(ctx context.Context, id, note string) error {
	return r.patchKnowledge(ctx, id, func(it *domain.KnowledgeItem) { it.Note = note })
}

func (r *dashboardRepo) SetKnowledgeLinks(ctx context.Context, id string, links []domain.CustomLink) error {
	links = copyLinks(links)
	return r.patchKnowledge(ctx, id, func(it *domain.KnowledgeItem) { it.CustomLinks = links })
}

func (r *dashboardRepo) SetUpdateURL(ctx context.Context, id, url string) error {
	return r.patchUpdate(ctx, id, func(it *domain.UpdateItem) { it.URL = url })
}

func (r *dashboardRepo) SetUpdateNote(ctx context.Context, id, note string) error {
	return r.patchUpdate(ctx, id, func(it *domain.UpdateItem) { it.Note = note })
}

func (r *dashboardRepo) SetUpdateLinks(ctx context.Context, id string, links []domain.CustomLink) error {
	links = copyLinks(links)
	return r.patchUpdate(ctx, id, func(it *domain.UpdateItem) { it.CustomLinks = links })
}

func (r *dashboardRepo) SetEventURL(ctx context.Context, focusAreaName, eventTitle, url string) error {
	found, ok := r.store.PatchFocusArea(focusAreaName, func(fa *domain.FocusArea) bool {
		for i := range fa.RelatedEvents {
			if fa.RelatedEvents[i].Title.EN == eventTitle {
				fa.RelatedEvents[i].URL = url
				return true
			}
		}
		return false
	})
	if !found || !ok {
		r.log.WithContext(ctx).Debugf("related event not found: focus=%q event=%q", focusAreaName, eventTitle)
		return domain.ErrItemNotFound()
	}
	return nil
}

func (r *dashboardRepo) SetFocusAreaNote(ctx context.Context, focusAreaName, note string) error {
	return r.patchFocusArea(ctx, focusAreaName, func(fa *domain.FocusArea) { fa.Note = note })
}

func (r *dashboardRepo) SetFocusAreaLinks(ctx context.Context, focusAreaName string, links []domain.CustomLink) error {
	links = copyLinks(links)
	return r.patchFocusArea(ctx, focusAreaName, func(fa *domain.FocusArea) { fa.CustomLinks = links })
}

func (r *dashboardRepo) patchKnowledge(ctx context.Context, id string, fn func(*domain.KnowledgeItem)) error {
	if !r.store.PatchKnowledge(id, fn) {
		r.log.WithContext(ctx).Debugf("knowledge item not found: %q", id)
		return domain.ErrItemNotFound()
	}
	return nil
}

func (r *dashboardRepo) patchUpdate(ctx context.Context, id string, fn func(*domain.UpdateItem)) error {
	if !r.store.PatchUpdate(id, fn) {
		r.log.WithContext(ctx).Debugf("update item not found: %q", id)
		return domain.ErrItemNotFound()
	}
	return nil
}

func (r *dashboardRepo) patchFocusArea(ctx context.Context, name string, fn func(*domain.FocusArea)) error {
	found, _ := r.store.PatchFocusArea(name, func(fa *domain.FocusArea) bool {
		fn(fa)
		return true
	})
	if !found {
		r.log.WithContext(ctx).Debugf("focus area not found: %q", name)
		return domain.ErrFocusAreaNotFound()
	}
	return nil
}

// copyLinks 整体替换时复制调用方的切片，nil 视为空列表
func copyLinks(links []domain.CustomLink) []domain.CustomLink {
	out := make([]domain.CustomLink, len(links))
	copy(out, links)
	return out
}
