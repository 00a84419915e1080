package model

// LocalizedString 中英双语文本
type LocalizedString struct {
	EN string `json:"en"`
	CN string `json:"cn"`
}

// LocalizedList 中英双语列表，例如风险报告的要点
type LocalizedList struct {
	EN []string `json:"en"`
	CN []string `json:"cn"`
}

// CustomLink 用户自定义链接，区别于记录本身的官方 url
type CustomLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PartyType 事件相关方类型
type PartyType string

const (
	PartyRegulator PartyType = "Regulator"
	PartyCompany   PartyType = "Company"
	PartyProduct   PartyType = "Product"
	PartyOther     PartyType = "Other"
)

// Party 事件相关方
type Party struct {
	Name string    `json:"name"`
	Type PartyType `json:"type"`
}

// Trend 统计趋势
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// KnowledgeItem 知识库条目：法规、指南或标准
type KnowledgeItem struct {
	ID           string          `json:"id"`
	Title        LocalizedString `json:"title"`
	Type         string          `json:"type"`
	Jurisdiction LocalizedString `json:"jurisdiction"`
	Date         string          `json:"date"`
	Summary      LocalizedString `json:"summary"`
	URL          string          `json:"url,omitempty"`
	Note         string          `json:"note,omitempty"`
	CustomLinks  []CustomLink    `json:"customLinks"`
}

// UpdateItem 动态条目：一条带日期的监管新闻或执法记录
type UpdateItem struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Title       LocalizedString `json:"title"`
	Source      string          `json:"source"`
	Content     LocalizedString `json:"content"`
	Analysis    LocalizedString `json:"analysis"`
	Parties     []Party         `json:"parties,omitempty"`
	URL         string          `json:"url,omitempty"`
	Note        string          `json:"note,omitempty"`
	CustomLinks []CustomLink    `json:"customLinks"`
}

// StatItem 风险报告中的单项统计
type StatItem struct {
	Label LocalizedString `json:"label"`
	Count int             `json:"count"`
	Trend Trend           `json:"trend"`
}

// Stats 风险报告统计，count 由集合大小派生
type Stats struct {
	Legislation StatItem `json:"legislation"`
	Enforcement StatItem `json:"enforcement"`
}

// RelatedEvent 关注领域关联的执法事件
type RelatedEvent struct {
	Title LocalizedString `json:"title"`
	URL   string          `json:"url,omitempty"`
}

// FocusArea 风险报告中的关注领域，Name.EN 作为自然键
type FocusArea struct {
	Name          LocalizedString `json:"name"`
	Summary       LocalizedString `json:"summary"`
	Citation      string          `json:"citation,omitempty"`
	RelatedEvents []RelatedEvent  `json:"relatedEvents,omitempty"`
	Note          string          `json:"note,omitempty"`
	CustomLinks   []CustomLink    `json:"customLinks"`
}

// RiskReport 风险报告（单例）
type RiskReport struct {
	LastUpdated        string        `json:"lastUpdated"`
	Score              string        `json:"score"`
	Summary            LocalizedList `json:"summary"`
	Stats              Stats         `json:"stats"`
	FocusAreas         []FocusArea   `json:"focusAreas"`
	ArchivedFocusAreas []FocusArea   `json:"archivedFocusAreas,omitempty"`
}

// ReportDraft LLM 生成的风险报告，只包含刷新时整体替换的字段
type ReportDraft struct {
	LastUpdated string        `json:"lastUpdated"`
	Score       string        `json:"score"`
	Summary     LocalizedList `json:"summary"`
	FocusAreas  []FocusArea   `json:"focusAreas"`
}

// Payload 一次刷新生成（或降级合成）的数据
type Payload struct {
	NewUpdates                []UpdateItem    `json:"newUpdates"`
	RiskReport                *ReportDraft    `json:"riskReport"`
	UpdatedKnowledgeBaseItems []KnowledgeItem `json:"updatedKnowledgeBaseItems,omitempty"`
}
