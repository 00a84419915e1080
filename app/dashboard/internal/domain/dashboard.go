package domain

import "github.com/iWorld-y/compliance_radar/app/radar/pkg/model"

// 仪表盘领域对象与雷达引擎共用同一套数据结构
type (
	LocalizedString = model.LocalizedString
	LocalizedList   = model.LocalizedList
	CustomLink      = model.CustomLink
	Party           = model.Party
	KnowledgeItem   = model.KnowledgeItem
	UpdateItem      = model.UpdateItem
	StatItem        = model.StatItem
	Stats           = model.Stats
	RelatedEvent    = model.RelatedEvent
	FocusArea       = model.FocusArea
	RiskReport      = model.RiskReport
)

// Snapshot 三个集合的完整快照，集合按日期倒序
type Snapshot struct {
	Updates       []UpdateItem    `json:"updates"`
	RiskReport    RiskReport      `json:"riskReport"`
	KnowledgeBase []KnowledgeItem `json:"knowledgeBase"`
}

// RefreshResult 刷新结果
type RefreshResult struct {
	Snapshot *Snapshot
	// Degraded 为 true 表示本次使用了合成数据
	Degraded bool
}
