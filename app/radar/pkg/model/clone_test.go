package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskReportClone(t *testing.T) {
	orig := RiskReport{
		Summary: LocalizedList{EN: []string{"a"}, CN: []string{"甲"}},
		FocusAreas: []FocusArea{{
			Name:          LocalizedString{EN: "F"},
			RelatedEvents: []RelatedEvent{{Title: LocalizedString{EN: "E"}, URL: "u"}},
			CustomLinks:   []CustomLink{{Name: "n", URL: "u"}},
		}},
	}
	c := orig.Clone()
	c.Summary.EN[0] = "x"
	c.FocusAreas[0].RelatedEvents[0].URL = "x"
	c.FocusAreas[0].CustomLinks[0].URL = "x"

	assert.Equal(t, "a", orig.Summary.EN[0])
	assert.Equal(t, "u", orig.FocusAreas[0].RelatedEvents[0].URL)
	assert.Equal(t, "u", orig.FocusAreas[0].CustomLinks[0].URL)
}

func TestKnowledgeItemMergeFrom(t *testing.T) {
	current := KnowledgeItem{
		ID:          "kb-7",
		Title:       LocalizedString{EN: "CEN-CENELEC Harmonised Standards Draft"},
		Type:        "Standard",
		Date:        "2025-12-20",
		URL:         "https://www.cencenelec.eu/",
		Note:        "watch",
		CustomLinks: []CustomLink{{Name: "n", URL: "u"}},
	}
	merged := current.MergeFrom(KnowledgeItem{
		ID:    "other",
		Title: LocalizedString{EN: "CEN-CENELEC Harmonised Standards", CN: "协调标准"},
		Date:  "2026-06-01",
	})

	assert.Equal(t, "kb-7", merged.ID)
	assert.Equal(t, "CEN-CENELEC Harmonised Standards", merged.Title.EN)
	assert.Equal(t, "Standard", merged.Type)
	assert.Equal(t, "2026-06-01", merged.Date)
	assert.Equal(t, "https://www.cencenelec.eu/", merged.URL)
	assert.Equal(t, "watch", merged.Note)
	assert.Len(t, merged.CustomLinks, 1)
}

func TestNormalizePartyType(t *testing.T) {
	assert.Equal(t, PartyCompany, NormalizePartyType("Company"))
	assert.Equal(t, PartyOther, NormalizePartyType("Person"))
	assert.Equal(t, PartyOther, NormalizePartyType(""))
}

func TestKnowledgeItemJSON(t *testing.T) {
	data, err := json.Marshal(KnowledgeItem{ID: "kb-1"})
	require.NoError(t, err)
	// url、note 为空时省略，customLinks 始终输出
	assert.NotContains(t, string(data), `"url"`)
	assert.NotContains(t, string(data), `"note"`)
	assert.Contains(t, string(data), `"customLinks":null`)
}
