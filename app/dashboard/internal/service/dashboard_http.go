package service

import (
	"context"
	nethttp "net/http"

	"github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationListKnowledgeBase = "/dashboard.v1.Dashboard/ListKnowledgeBase"
	OperationListUpdates       = "/dashboard.v1.Dashboard/ListUpdates"
	OperationGetRiskReport     = "/dashboard.v1.Dashboard/GetRiskReport"
	OperationRefresh           = "/dashboard.v1.Dashboard/Refresh"
	OperationSetKnowledgeURL   = "/dashboard.v1.Dashboard/SetKnowledgeURL"
	OperationSetKnowledgeNote  = "/dashboard.v1.Dashboard/SetKnowledgeNote"
	OperationSetKnowledgeLinks = "/dashboard.v1.Dashboard/SetKnowledgeLinks"
	OperationSetUpdateURL      = "/dashboard.v1.Dashboard/SetUpdateURL"
	OperationSetUpdateNote     = "/dashboard.v1.Dashboard/SetUpdateNote"
	OperationSetUpdateLinks    = "/dashboard.v1.Dashboard/SetUpdateLinks"
	OperationSetEventURL       = "/dashboard.v1.Dashboard/SetEventURL"
	OperationSetFocusAreaNote  = "/dashboard.v1.Dashboard/SetFocusAreaNote"
	OperationSetFocusAreaLinks = "/dashboard.v1.Dashboard/SetFocusAreaLinks"
)

// RegisterDashboardHTTPServer 注册仪表盘路由
func RegisterDashboardHTTPServer(srv *http.Server, s *DashboardService) {
	r := srv.Route("/")
	r.GET("/api/knowledge-base", handle(OperationListKnowledgeBase, s.ListKnowledgeBase))
	r.GET("/api/updates", handle(OperationListUpdates, s.ListUpdates))
	r.GET("/api/report", handle(OperationGetRiskReport, s.GetRiskReport))
	r.POST("/api/refresh", handle(OperationRefresh, s.Refresh))

	r.POST("/api/links/knowledge-base", handle(OperationSetKnowledgeURL, s.SetKnowledgeURL))
	r.POST("/api/notes/knowledge-base", handle(OperationSetKnowledgeNote, s.SetKnowledgeNote))
	r.POST("/api/links/knowledge-base/custom", handle(OperationSetKnowledgeLinks, s.SetKnowledgeLinks))

	r.POST("/api/links/updates", handle(OperationSetUpdateURL, s.SetUpdateURL))
	r.POST("/api/notes/updates", handle(OperationSetUpdateNote, s.SetUpdateNote))
	r.POST("/api/links/updates/custom", handle(OperationSetUpdateLinks, s.SetUpdateLinks))

	r.POST("/api/links/risk-report", handle(OperationSetEventURL, s.SetEventURL))
	r.POST("/api/notes/risk-report", handle(OperationSetFocusAreaNote, s.SetFocusAreaNote))
	r.POST("/api/links/risk-report/custom", handle(OperationSetFocusAreaLinks, s.SetFocusAreaLinks))
}

// handle 在中间件链内解码请求体并调用 fn，以 JSON 返回
func handle[Req, Reply any](operation string, fn func(context.Context, *Req) (Reply, error)) http.HandlerFunc {
	return func(ctx http.Context) error {
		http.SetOperation(ctx, operation)
		h := ctx.Middleware(func(c context.Context, req interface{}) (interface{}, error) {
			in := req.(*Req)
			// 解码失败同样经过日志和恢复中间件
			if err := ctx.Bind(in); err != nil {
				return nil, err
			}
			return fn(c, in)
		})
		out, err := h(ctx, new(Req))
		if err != nil {
			return err
		}
		return ctx.JSON(nethttp.StatusOK, out)
	}
}
