package service

import "github.com/iWorld-y/compliance_radar/app/dashboard/internal/domain"

// 请求体字段缺失时按零值处理，由业务层做存在性校验

type LinkRequest struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type NoteRequest struct {
	ID   string `json:"id"`
	Note string `json:"note"`
}

type LinksRequest struct {
	ID    string              `json:"id"`
	Links []domain.CustomLink `json:"links"`
}

type EventLinkRequest struct {
	FocusAreaName string `json:"focusAreaName"`
	EventTitle    string `json:"eventTitle"`
	URL           string `json:"url"`
}

type FocusNoteRequest struct {
	FocusAreaName string `json:"focusAreaName"`
	Note          string `json:"note"`
}

type FocusLinksRequest struct {
	FocusAreaName string              `json:"focusAreaName"`
	Links         []domain.CustomLink `json:"links"`
}

// MutationReply 批注成功的响应
type MutationReply struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RefreshReply 刷新成功的响应，data 为合并后的完整数据
type RefreshReply struct {
	Success  bool             `json:"success"`
	Degraded bool             `json:"degraded"`
	Data     *domain.Snapshot `json:"data"`
}

// ErrorReply 错误响应
type ErrorReply struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

const (
	msgLinkUpdated  = "Link updated"
	msgNoteUpdated  = "Note updated"
	msgLinksUpdated = "Links updated"
)
