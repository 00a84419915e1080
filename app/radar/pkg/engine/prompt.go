package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/iWorld-y/compliance_radar/app/radar/pkg/search"
)

const systemPrompt = "You are a JSON generator. Respond with a single JSON object and nothing else."

// searchPrompt 第一轮调用：检索近期监管动态
const searchPrompt = "Latest EU AI regulation news and enforcement actions (last 3 months). Focus on major fines or new laws."

// searchQuery 搜索增强使用的关键词
const searchQuery = "EU AI Act GDPR enforcement action fine regulator"

// processingPromptTpl 第二轮调用：基于检索结果生成结构化数据
// 参数依次为：当前日期（长格式）、当前日期（长格式）、当前日期（ISO）
const processingPromptTpl = `Current Date: %s.
Task: Update ALL content to reflect the status as of today.

CRITICAL INSTRUCTION FOR EXECUTIVE SUMMARY:
- Target Audience: Product Managers and Executives (Non-technical, Non-legal).
- Tone: Actionable, Specific, and Business-Oriented.
- RULE 1: NO VAGUE PRONOUNS OR REFERENCES.
  - BAD: "Recent enforcement actions highlight the importance of data governance." (Which actions?)
  - GOOD: "The €20M fine against Clearview AI highlights the strict ban on scraping biometric data."
  - BAD: "Companies should prepare for the upcoming deadline." (Which deadline?)
  - GOOD: "Companies must update technical documentation by August 2, 2026, to comply with the AI Act."
- RULE 2: EXPLAIN IMPACT. Tell them WHAT to do or WHY it matters.
- RULE 3: AVOID JARGON. Use terms PMs understand (e.g., "user consent", "feature rollback", "documentation update") rather than legal citations alone.

CRITICAL INSTRUCTION FOR LINKS:
- All URLs, especially in 'relatedEvents', MUST be specific deep links to the actual article, press release, or document.
- DO NOT use generic homepages (e.g., "https://www.reuters.com/" is BAD; "https://www.reuters.com/technology/article-123" is GOOD).

Based on the search results:
1. Generate new update items for any recent events (last 3 months).
2. Completely REGENERATE the Risk Assessment Report to reflect the status as of %s.
3. Identify the current TOP 3 Critical Compliance Areas.
4. Optionally, if a "Draft" or "Proposal" knowledge base entry has since become "Legislation" or "Standard", list it under "updatedKnowledgeBaseItems".

Output JSON structure:
{
  "newUpdates": [
    {
      "id": "string",
      "date": "YYYY-MM-DD",
      "title": { "en": "string", "cn": "string" },
      "source": "string",
      "content": { "en": "string", "cn": "string" },
      "analysis": { "en": "string", "cn": "string" },
      "parties": [ { "name": "string", "type": "Regulator/Company/Product" } ],
      "url": "string"
    }
  ],
  "riskReport": {
    "lastUpdated": "%s",
    "score": "Low/Medium/High",
    "summary": { "en": ["Point 1", "Point 2"], "cn": ["Point 1", "Point 2"] },
    "focusAreas": [
      {
        "name": { "en": "string", "cn": "string" },
        "summary": { "en": "string", "cn": "string" },
        "citation": "string",
        "relatedEvents": [{ "title": { "en": "string", "cn": "string" }, "url": "string" }]
      }
    ]
  },
  "updatedKnowledgeBaseItems": [
    {
      "id": "string (existing ID if updating, or new)",
      "title": { "en": "string", "cn": "string" },
      "type": "Legislation/Guidance/Standard",
      "jurisdiction": { "en": "string", "cn": "string" },
      "date": "YYYY-MM-DD",
      "summary": { "en": "string", "cn": "string" },
      "url": "string"
    }
  ]
}`

// processingPrompt 生成第二轮提示词
func processingPrompt(now time.Time) string {
	long := now.Format("January 2, 2006")
	return fmt.Sprintf(processingPromptTpl, long, long, now.Format(time.DateOnly))
}

// groundedSearchPrompt 将搜索结果附加到第一轮提示词之后
func groundedSearchPrompt(results []search.Result) string {
	if len(results) == 0 {
		return searchPrompt
	}

	var sb strings.Builder
	sb.WriteString(searchPrompt)
	sb.WriteString("\n\nUse the following web search results as your sources. Cite their URLs.\n\n")
	for i, r := range results {
		fmt.Fprintf(&sb, "[%d] %s", i+1, r.Title)
		if r.PublishedDate != "" {
			fmt.Fprintf(&sb, " (%s)", r.PublishedDate)
		}
		fmt.Fprintf(&sb, "\nURL: %s\n%s\n\n", r.URL, r.Content)
	}
	sb.WriteString(`Return a JSON object: {"results": [{"title": "string", "date": "YYYY-MM-DD", "source": "string", "url": "string", "summary": "string"}]}`)
	return sb.String()
}
