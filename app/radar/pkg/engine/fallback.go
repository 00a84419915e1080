package engine

import (
	"fmt"
	"time"

	"github.com/iWorld-y/compliance_radar/app/radar/pkg/model"
)

// SyntheticPayload 生成降级数据：一条当天的模拟动态，风险报告沿用当前关注领域
func SyntheticPayload(now time.Time, focusAreas []model.FocusArea) *model.Payload {
	today := now.UTC().Format(time.DateOnly)

	areas := model.CloneFocusAreas(focusAreas)
	if areas == nil {
		areas = []model.FocusArea{}
	}

	return &model.Payload{
		NewUpdates: []model.UpdateItem{
			{
				ID:   fmt.Sprintf("sim-%d", now.UnixMilli()),
				Date: today,
				Title: model.LocalizedString{
					EN: "New AI Compliance Guidelines Released (Simulated)",
					CN: "新AI合规指南发布（模拟）",
				},
				Source: "EU AI Office",
				Content: model.LocalizedString{
					EN: "The EU AI Office has released updated guidelines for general-purpose AI models, emphasizing stricter transparency requirements.",
					CN: "欧盟AI办公室发布了通用人工智能模型的更新指南，强调了更严格的透明度要求。",
				},
				Analysis: model.LocalizedString{
					EN: "This update clarifies the documentation needed for compliance by Q3 2026.",
					CN: "此次更新明确了2026年第三季度合规所需的文件。",
				},
				Parties:     []model.Party{{Name: "EU AI Office", Type: model.PartyRegulator}},
				URL:         "https://digital-strategy.ec.europa.eu/en/policies/ai-office",
				CustomLinks: []model.CustomLink{},
			},
		},
		RiskReport: &model.ReportDraft{
			LastUpdated: today,
			Score:       "Medium",
			Summary: model.LocalizedList{
				EN: []string{
					"The EU AI Office has released new transparency guidelines. We must update our technical documentation by Q3 2026 to include detailed model training data sources.",
					"Recent fines against RetailCo for emotion recognition show that using AI to analyze customer sentiment in stores is now strictly prohibited.",
					"With the new age verification rules enforced on OpenAI, we need to verify if our user sign-up flow meets the 'strict age-gating' standard.",
				},
				CN: []string{
					"欧盟AI办公室发布了新的透明度指南。我们必须在2026年第三季度前更新技术文档，详细说明模型训练数据的来源。",
					"近期RetailCo因情绪识别被罚款，这表明在商店中使用AI分析客户情绪现在是被严格禁止的。",
					"随着OpenAI被强制执行新的年龄验证规则，我们需要核实我们的用户注册流程是否达到了'严格年龄门槛'的标准。",
				},
			},
			FocusAreas: areas,
		},
	}
}
