package data

import (
	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/domain"
	"github.com/iWorld-y/compliance_radar/app/radar/pkg/model"
)

func text(en, cn string) domain.LocalizedString {
	return domain.LocalizedString{EN: en, CN: cn}
}

// DefaultSeed 启动时加载的初始数据（截至 2026 年 2 月）
func DefaultSeed() Seed {
	return Seed{
		KnowledgeBase: seedKnowledgeBase(),
		Updates:       seedUpdates(),
		RiskReport:    seedRiskReport(),
	}
}

func seedKnowledgeBase() []domain.KnowledgeItem {
	return []domain.KnowledgeItem{
		{
			ID:           "kb-1",
			Title:        text("EU AI Act", "欧盟人工智能法案"),
			Type:         "Legislation",
			Jurisdiction: text("EU", "欧盟"),
			Date:         "2024-06-12",
			Summary: text(
				"The comprehensive AI law is now fully applicable for prohibited practices and GPAI governance. High-risk system obligations are phasing in.",
				"这部全面的人工智能法律现已完全适用于禁止行为和通用人工智能（GPAI）治理。高风险系统的义务正在逐步实施。",
			),
			URL: "https://eur-lex.europa.eu/legal-content/EN/TXT/?uri=CELEX:32024R1689",
		},
		{
			ID:           "kb-2",
			Title:        text("GDPR", "通用数据保护条例"),
			Type:         "Legislation",
			Jurisdiction: text("EU", "欧盟"),
			Date:         "2018-05-25",
			Summary: text(
				"The foundational privacy law. Recent enforcement focuses on automated decision-making and data scraping for AI training.",
				"基础隐私法律。近期的执法重点在于自动化决策和用于AI训练的数据抓取。",
			),
			URL: "https://eur-lex.europa.eu/eli/reg/2016/679/oj",
		},
		{
			ID:           "kb-5",
			Title:        text("AI Office: GPAI Code of Practice", "AI办公室：通用人工智能行为准则"),
			Type:         "Guidance",
			Jurisdiction: text("EU", "欧盟"),
			Date:         "2025-04-10",
			Summary: text(
				"Finalized code of practice for providers of general-purpose AI models, detailing transparency and copyright compliance.",
				"针对通用人工智能模型提供者的最终行为准则，详细说明了透明度和版权合规性。",
			),
			URL: "https://digital-strategy.ec.europa.eu/en/policies/ai-office",
		},
		{
			ID:           "kb-6",
			Title:        text("CNIL Guidelines on AI Development", "CNIL关于AI开发的指南"),
			Type:         "Guidance",
			Jurisdiction: text("France", "法国"),
			Date:         "2025-10-05",
			Summary: text(
				"Updated recommendations on 'legitimate interest' as a legal basis for training AI models on personal data.",
				"关于将'合法利益'作为在个人数据上训练AI模型的法律依据的更新建议。",
			),
			URL: "https://www.cnil.fr/en/topic/artificial-intelligence",
		},
		{
			ID:           "kb-7",
			Title:        text("CEN-CENELEC Harmonised Standards Draft", "CEN-CENELEC协调标准草案"),
			Type:         "Standard",
			Jurisdiction: text("EU", "欧盟"),
			Date:         "2025-12-20",
			Summary: text(
				"Draft standards for risk management and data governance in high-risk AI systems, expected to be harmonized by mid-2026.",
				"高风险AI系统风险管理和数据治理的标准草案，预计将于2026年中期协调统一。",
			),
			URL: "https://www.cencenelec.eu/",
		},
		{
			ID:           "kb-8",
			Title:        text("BfDI Position Paper on LLMs", "BfDI关于大型语言模型的立场文件"),
			Type:         "Guidance",
			Jurisdiction: text("Germany", "德国"),
			Date:         "2026-01-10",
			Summary: text(
				"German Federal Commissioner's stance on the 'right to be forgotten' in the context of unlearning for LLMs.",
				"德国联邦专员关于大型语言模型（LLM）背景下'被遗忘权'（遗忘学习）的立场。",
			),
			URL: "https://www.bfdi.bund.de/",
		},
	}
}

func seedUpdates() []domain.UpdateItem {
	return []domain.UpdateItem{
		{
			ID:     "up-8",
			Date:   "2026-01-25",
			Title:  text("Google Gemini 2 Privacy Audit", "Google Gemini 2隐私审计"),
			Source: "Irish DPC",
			Content: text(
				"The Irish DPC has concluded its preliminary audit of Google's Gemini 2 model, requiring enhanced opt-in mechanisms for processing user interactions history.",
				"爱尔兰DPC已结束对Google Gemini 2模型的初步审计，要求针对处理用户交互历史记录增强选择加入机制。",
			),
			Analysis: text(
				"Even established players are facing granular requirements on data retention and user control.",
				"即使是老牌厂商也面临着关于数据保留和用户控制的细粒度要求。",
			),
			Parties: []domain.Party{
				{Name: "Irish DPC", Type: model.PartyRegulator},
				{Name: "Google", Type: model.PartyCompany},
				{Name: "Gemini 2", Type: model.PartyProduct},
			},
			URL: "https://www.dataprotection.ie/",
		},
		{
			ID:     "up-3",
			Date:   "2026-01-15",
			Title:  text("First AI Act Fine Issued", "首张AI法案罚单开出"),
			Source: "Spanish AEPD",
			Content: text(
				"The Spanish AEPD, acting as the market surveillance authority, fined a retailer for using prohibited emotion recognition AI in stores.",
				"作为市场监管机构的西班牙AEPD对一家零售商处以罚款，因其在店内使用被禁止的情绪识别AI。",
			),
			Analysis: text(
				"Signals the start of strict enforcement on 'unacceptable risk' AI systems. Retail and HR sectors are under high scrutiny.",
				"标志着对'不可接受风险'AI系统开始严格执法。零售和人力资源部门受到高度审查。",
			),
			Parties: []domain.Party{
				{Name: "AEPD", Type: model.PartyRegulator},
				{Name: "RetailCo", Type: model.PartyCompany},
			},
			URL: "https://www.aepd.es/",
		},
		{
			ID:     "up-4",
			Date:   "2025-12-10",
			Title:  text("Meta Pauses AI Training in EU", "Meta暂停在欧盟的AI训练"),
			Source: "Reuters",
			Content: text(
				"Following objections from the Irish DPC, Meta has agreed to pause using public content from Facebook/Instagram users in the EU to train its Llama 4 models.",
				"在爱尔兰DPC提出异议后，Meta同意暂停使用欧盟Facebook/Instagram用户的公开内容来训练其Llama 4模型。",
			),
			Analysis: text(
				"Reaffirms that 'opt-out' models for data training are being challenged. Consent or strictly defined legitimate interest is becoming the only viable path.",
				"重申数据训练的'退出'模式正受到挑战。同意或严格定义的合法利益正成为唯一可行的途径。",
			),
			Parties: []domain.Party{
				{Name: "Irish DPC", Type: model.PartyRegulator},
				{Name: "Meta", Type: model.PartyCompany},
				{Name: "Llama 4", Type: model.PartyProduct},
			},
			URL: "https://www.reuters.com/",
		},
		{
			ID:     "up-5",
			Date:   "2026-01-28",
			Title:  text("DeepSeek Faces GDPR Inquiry", "DeepSeek面临GDPR质询"),
			Source: "Politico EU",
			Content: text(
				"German and French DPAs have launched a joint inquiry into DeepSeek's data processing practices for EU users, specifically regarding cross-border data transfers to China.",
				"德国和法国的数据保护机构已对DeepSeek针对欧盟用户的数据处理做法展开联合质询，特别是关于向中国跨境传输数据的问题。",
			),
			Analysis: text(
				"Non-EU foundation models are facing increasing scrutiny on data sovereignty and transfer mechanisms (SCCs).",
				"非欧盟基础模型在数据主权和传输机制（SCCs）方面正面临越来越多的审查。",
			),
			Parties: []domain.Party{
				{Name: "BfDI", Type: model.PartyRegulator},
				{Name: "CNIL", Type: model.PartyRegulator},
				{Name: "DeepSeek", Type: model.PartyCompany},
			},
			URL: "https://www.politico.eu/",
		},
		{
			ID:     "up-6",
			Date:   "2026-01-20",
			Title:  text("OpenAI Implements New Age Checks", "OpenAI实施新的年龄验证"),
			Source: "TechCrunch",
			Content: text(
				"To comply with the Italian Garante's orders and the DSA, OpenAI has rolled out stricter age verification for ChatGPT users across the EU.",
				"为了遵守意大利Garante的命令和数字服务法案（DSA），OpenAI已在欧盟范围内为ChatGPT用户推出了更严格的年龄验证措施。",
			),
			Analysis: text(
				"Child safety remains a top priority for regulators. AI platforms must demonstrate robust age-gating, not just self-declaration.",
				"儿童安全仍然是监管机构的首要任务。AI平台必须证明其拥有强大的年龄门槛，而不仅仅是自我声明。",
			),
			Parties: []domain.Party{
				{Name: "Garante Privacy", Type: model.PartyRegulator},
				{Name: "OpenAI", Type: model.PartyCompany},
				{Name: "ChatGPT", Type: model.PartyProduct},
			},
			URL: "https://techcrunch.com/",
		},
		{
			ID:     "up-7",
			Date:   "2026-02-01",
			Title:  text("Mistral AI Certification Audit", "Mistral AI认证审计"),
			Source: "Les Echos",
			Content: text(
				"French champion Mistral AI has voluntarily submitted its latest 'Large' model for early conformity assessment under the AI Act to demonstrate sovereign compliance.",
				"法国领军企业Mistral AI已自愿提交其最新的'Large'模型，根据AI法案进行早期合规性评估，以展示主权合规性。",
			),
			Analysis: text(
				"European companies are using compliance as a competitive differentiator against US/Chinese rivals.",
				"欧洲公司正在将合规性作为对抗美国/中国竞争对手的差异化竞争优势。",
			),
			Parties: []domain.Party{
				{Name: "Mistral AI", Type: model.PartyCompany},
			},
			URL: "https://www.lesechos.fr/",
		},
		{
			ID:     "up-1",
			Date:   "2024-05-21",
			Title:  text("Council of EU approves AI Act", "欧盟理事会批准AI法案"),
			Source: "Council of the EU",
			Content: text(
				"The Council of the EU has formally adopted the Artificial Intelligence Act. This is the final step in the legislative process.",
				"欧盟理事会已正式通过《人工智能法案》。这是立法程序的最后一步。",
			),
			Analysis: text(
				"Historical milestone. While old news in 2026, it set the stage for the current compliance landscape.",
				"历史性里程碑。虽然在2026年已是旧闻，但它为当前的合规环境奠定了基础。",
			),
			Parties: []domain.Party{
				{Name: "Council of the EU", Type: model.PartyRegulator},
			},
			URL: "https://www.consilium.europa.eu/en/press/press-releases/2024/05/21/artificial-intelligence-ai-act-council-gives-final-green-light-to-the-first-worldwide-rules-on-ai/",
		},
	}
}

func seedRiskReport() domain.RiskReport {
	return domain.RiskReport{
		LastUpdated: "2026-02-21",
		Score:       "Medium",
		Summary: domain.LocalizedList{
			EN: []string{
				"Enforcement has broadened beyond GDPR to specific AI Act violations. The 'DeepSeek' inquiry highlights the EU's focus on data sovereignty and cross-border transfers for non-EU models.",
				"Major players like OpenAI, Google, and Meta are adapting by implementing stricter age-gating and pausing training on EU data, setting a precedent for 'compliance by design' in the region.",
				"The regulatory landscape is fragmenting slightly as national authorities (Germany, France, Spain) take the lead on specific issues like 'right to be forgotten' in LLMs and biometric surveillance.",
			},
			CN: []string{
				"执法范围已从GDPR扩展到具体的AI法案违规行为。'DeepSeek'质询突显了欧盟对非欧盟模型的数据主权和跨境传输的关注。",
				"OpenAI、Google和Meta等主要参与者正在通过实施更严格的年龄门槛和暂停在欧盟数据上的训练来适应，为该地区的'设计合规'树立了先例。",
				"随着国家当局（德国、法国、西班牙）在LLM中的'被遗忘权'和生物识别监控等具体问题上占据主导地位，监管环境略显分散。",
			},
		},
		Stats: domain.Stats{
			Legislation: domain.StatItem{Label: text("Active Bills/Acts", "现行法案/草案"), Trend: model.TrendStable},
			Enforcement: domain.StatItem{Label: text("Enforcement Actions", "执法行动 (2025-26)"), Trend: model.TrendUp},
		},
		FocusAreas: []domain.FocusArea{
			{
				Name: text("Cross-Border Data", "跨境数据"),
				Summary: text(
					"Transferring EU user data to non-adequate jurisdictions (e.g., China, US without DPF) for model inference or training is under intense scrutiny.",
					"将欧盟用户数据传输到非充分管辖区（如中国、未加入DPF的美国）进行模型推理或训练正受到严密审查。",
				),
				Citation: "GDPR Ch. V",
				RelatedEvents: []domain.RelatedEvent{
					{Title: text("DeepSeek GDPR Inquiry", "DeepSeek GDPR质询"), URL: "https://www.politico.eu/"},
				},
			},
			{
				Name: text("Prohibited AI", "被禁AI"),
				Summary: text(
					"Biometric categorization and emotion recognition in workplaces/schools are banned. First enforcement actions have targeted retail.",
					"工作场所/学校中的生物识别分类和情绪识别被禁止。首批执法行动已针对零售业。",
				),
				Citation: "AI Act Art. 5",
				RelatedEvents: []domain.RelatedEvent{
					{Title: text("First AI Act Fine Issued", "首张AI法案罚单开出"), URL: "https://www.aepd.es/"},
				},
			},
			{
				Name: text("GPAI Transparency", "GPAI透明度"),
				Summary: text(
					"Providers must maintain detailed technical documentation and comply with EU copyright law. The 'opt-out' mechanism for TDM is under legal review.",
					"提供者必须维护详细的技术文档并遵守欧盟版权法。文本数据挖掘（TDM）的'退出'机制正在接受法律审查。",
				),
				Citation: "AI Act Art. 53",
				RelatedEvents: []domain.RelatedEvent{
					{Title: text("Mistral AI Certification", "Mistral AI认证"), URL: "https://www.lesechos.fr/"},
				},
			},
			{
				Name: text("Child Safety", "儿童安全"),
				Summary: text(
					"Strict age verification is required for AI services accessible to minors. Self-declaration is no longer considered sufficient compliance.",
					"面向未成年人的AI服务需要严格的年龄验证。自我声明不再被视为充分合规。",
				),
				Citation: "DSA Art. 28",
				RelatedEvents: []domain.RelatedEvent{
					{Title: text("OpenAI Age Checks", "OpenAI年龄验证"), URL: "https://techcrunch.com/"},
				},
			},
			{
				Name: text("Data Scraping", "数据抓取"),
				Summary: text(
					"Legitimate interest is increasingly rejected as a basis for scraping public web data for training. Explicit consent or contracts are preferred.",
					"合法利益作为抓取公共网络数据进行训练的依据正日益被驳回。明确同意或合同更为可取。",
				),
				Citation: "GDPR Art. 6",
				RelatedEvents: []domain.RelatedEvent{
					{Title: text("Meta Pauses AI Training", "Meta暂停AI训练"), URL: "https://www.reuters.com/"},
				},
			},
		},
	}
}
