package usecase

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/domain"
	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/repo"
)

// AnnotateUseCase 用户批注：链接、备注和自定义链接
type AnnotateUseCase struct {
	repo repo.DashboardRepo
	log  *log.Helper
}

// NewAnnotateUseCase 创建批注逻辑实例
func NewAnnotateUseCase(repo repo.DashboardRepo, logger log.Logger) *AnnotateUseCase {
	return &AnnotateUseCase{repo: repo, log: log.NewHelper(logger)}
}

func (uc *AnnotateUseCase) SetKnowledgeURL(ctx context.Context, id, url string) error {
	if id == "" {
		return domain.ErrMissingID()
	}
	return uc.repo.SetKnowledgeURL(ctx, id, url)
}

func (uc *AnnotateUseCase) SetKnowledgeNote(ctx context.Context, id, note string) error {
	if id == "" {
		return domain.ErrMissingID()
	}
	return uc.repo.SetKnowledgeNote(ctx, id, note)
}

func (uc *AnnotateUseCase) SetKnowledgeLinks(ctx context.Context, id string, links []domain.CustomLink) error {
	if id == "" {
		return domain.ErrMissingID()
	}
	return uc.repo.SetKnowledgeLinks(ctx, id, links)
}

func (uc *AnnotateUseCase) SetUpdateURL(ctx context.Context, id, url string) error {
	if id == "" {
		return domain.ErrMissingID()
	}
	return uc.repo.SetUpdateURL(ctx, id, url)
}

func (uc *AnnotateUseCase) SetUpdateNote(ctx context.Context, id, note string) error {
	if id == "" {
		return domain.ErrMissingID()
	}
	return uc.repo.SetUpdateNote(ctx, id, note)
}

func (uc *AnnotateUseCase) SetUpdateLinks(ctx context.Context, id string, links []domain.CustomLink) error {
	if id == "" {
		return domain.ErrMissingID()
	}
	return uc.repo.SetUpdateLinks(ctx, id, links)
}

// SetEventURL 需要同时提供关注领域名称和事件标题
func (uc *AnnotateUseCase) SetEventURL(ctx context.Context, focusAreaName, eventTitle, url string) error {
	if focusAreaName == "" || eventTitle == "" {
		return domain.ErrMissingIdentifiers()
	}
	return uc.repo.SetEventURL(ctx, focusAreaName, eventTitle, url)
}

func (uc *AnnotateUseCase) SetFocusAreaNote(ctx context.Context, focusAreaName, note string) error {
	if focusAreaName == "" {
		return domain.ErrMissingFocusAreaName()
	}
	return uc.repo.SetFocusAreaNote(ctx, focusAreaName, note)
}

func (uc *AnnotateUseCase) SetFocusAreaLinks(ctx context.Context, focusAreaName string, links []domain.CustomLink) error {
	if focusAreaName == "" {
		return domain.ErrMissingFocusAreaName()
	}
	return uc.repo.SetFocusAreaLinks(ctx, focusAreaName, links)
}
