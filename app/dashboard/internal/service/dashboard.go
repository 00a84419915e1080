package service

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/domain"
	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/usecase"
)

// DashboardService 仪表盘 HTTP 接口
type DashboardService struct {
	ucDashboard *usecase.DashboardUseCase
	ucAnnotate  *usecase.AnnotateUseCase
	ucRefresh   *usecase.RefreshUseCase
	log         *log.Helper
}

func NewDashboardService(ucDashboard *usecase.DashboardUseCase, ucAnnotate *usecase.AnnotateUseCase, ucRefresh *usecase.RefreshUseCase, logger log.Logger) *DashboardService {
	return &DashboardService{
		ucDashboard: ucDashboard,
		ucAnnotate:  ucAnnotate,
		ucRefresh:   ucRefresh,
		log:         log.NewHelper(logger),
	}
}

func (s *DashboardService) ListKnowledgeBase(ctx context.Context, _ *struct{}) ([]domain.KnowledgeItem, error) {
	return s.ucDashboard.ListKnowledgeBase(ctx), nil
}

func (s *DashboardService) ListUpdates(ctx context.Context, _ *struct{}) ([]domain.UpdateItem, error) {
	return s.ucDashboard.ListUpdates(ctx), nil
}

func (s *DashboardService) GetRiskReport(ctx context.Context, _ *struct{}) (*domain.RiskReport, error) {
	report := s.ucDashboard.GetRiskReport(ctx)
	return &report, nil
}

func (s *DashboardService) Refresh(ctx context.Context, _ *struct{}) (*RefreshReply, error) {
	res, err := s.ucRefresh.Refresh(ctx)
	if err != nil {
		s.log.WithContext(ctx).Errorf("refresh failed: %v", err)
		return nil, err
	}
	return &RefreshReply{Success: true, Degraded: res.Degraded, Data: res.Snapshot}, nil
}

func (s *DashboardService) SetKnowledgeURL(ctx context.Context, req *LinkRequest) (*MutationReply, error) {
	return reply(msgLinkUpdated, s.ucAnnotate.SetKnowledgeURL(ctx, req.ID, req.URL))
}

func (s *DashboardService) SetKnowledgeNote(ctx context.Context, req *NoteRequest) (*MutationReply, error) {
	return reply(msgNoteUpdated, s.ucAnnotate.SetKnowledgeNote(ctx, req.ID, req.Note))
}

func (s *DashboardService) SetKnowledgeLinks(ctx context.Context, req *LinksRequest) (*MutationReply, error) {
	return reply(msgLinksUpdated, s.ucAnnotate.SetKnowledgeLinks(ctx, req.ID, req.Links))
}

func (s *DashboardService) SetUpdateURL(ctx context.Context, req *LinkRequest) (*MutationReply, error) {
	return reply(msgLinkUpdated, s.ucAnnotate.SetUpdateURL(ctx, req.ID, req.URL))
}

func (s *DashboardService) SetUpdateNote(ctx context.Context, req *NoteRequest) (*MutationReply, error) {
	return reply(msgNoteUpdated, s.ucAnnotate.SetUpdateNote(ctx, req.ID, req.Note))
}

func (s *DashboardService) SetUpdateLinks(ctx context.Context, req *LinksRequest) (*MutationReply, error) {
	return reply(msgLinksUpdated, s.ucAnnotate.SetUpdateLinks(ctx, req.ID, req.Links))
}

func (s *DashboardService) SetEventURL(ctx context.Context, req *EventLinkRequest) (*MutationReply, error) {
	return reply(msgLinkUpdated, s.ucAnnotate.SetEventURL(ctx, req.FocusAreaName, req.EventTitle, req.URL))
}

func (s *DashboardService) SetFocusAreaNote(ctx context.Context, req *FocusNoteRequest) (*MutationReply, error) {
	return reply(msgNoteUpdated, s.ucAnnotate.SetFocusAreaNote(ctx, req.FocusAreaName, req.Note))
}

func (s *DashboardService) SetFocusAreaLinks(ctx context.Context, req *FocusLinksRequest) (*MutationReply, error) {
	return reply(msgLinksUpdated, s.ucAnnotate.SetFocusAreaLinks(ctx, req.FocusAreaName, req.Links))
}

func reply(message string, err error) (*MutationReply, error) {
	if err != nil {
		return nil, err
	}
	return &MutationReply{Success: true, Message: message}, nil
}
