package data

import (
	"context"
	"testing"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/domain"
)

func newTestRepo() (*Store, *dashboardRepo) {
	s := NewStore(DefaultSeed())
	return s, NewDashboardRepo(s, log.DefaultLogger).(*dashboardRepo)
}

func TestDashboardRepo_KnowledgeMutations(t *testing.T) {
	ctx := context.Background()
	s, r := newTestRepo()

	require.NoError(t, r.SetKnowledgeURL(ctx, "kb-2", "https://gdpr.eu"))
	require.NoError(t, r.SetKnowledgeNote(ctx, "kb-2", "check DPIA"))
	links := []domain.CustomLink{{Name: "Guide", URL: "https://example.com/guide"}}
	require.NoError(t, r.SetKnowledgeLinks(ctx, "kb-2", links))

	// 调用方修改原切片不影响存储
	links[0].Name = "changed"

	var got domain.KnowledgeItem
	for _, it := range s.KnowledgeBase() {
		if it.ID == "kb-2" {
			got = it
		}
	}
	assert.Equal(t, "https://gdpr.eu", got.URL)
	assert.Equal(t, "check DPIA", got.Note)
	assert.Equal(t, []domain.CustomLink{{Name: "Guide", URL: "https://example.com/guide"}}, got.CustomLinks)

	// 整体替换而非合并
	require.NoError(t, r.SetKnowledgeLinks(ctx, "kb-2", nil))
	for _, it := range s.KnowledgeBase() {
		if it.ID == "kb-2" {
			assert.NotNil(t, it.CustomLinks)
			assert.Empty(t, it.CustomLinks)
		}
	}

	err := r.SetKnowledgeNote(ctx, "kb-404", "x")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, "Item not found", errors.FromError(err).Message)
}

func TestDashboardRepo_UpdateMutations(t *testing.T) {
	ctx := context.Background()
	s, r := newTestRepo()

	require.NoError(t, r.SetUpdateURL(ctx, "up-3", "https://www.aepd.es/press/1"))
	require.NoError(t, r.SetUpdateNote(ctx, "up-3", "retail"))
	require.NoError(t, r.SetUpdateLinks(ctx, "up-3", []domain.CustomLink{{Name: "a", URL: "b"}}))

	for _, u := range s.Updates() {
		if u.ID == "up-3" {
			assert.Equal(t, "https://www.aepd.es/press/1", u.URL)
			assert.Equal(t, "retail", u.Note)
			assert.Len(t, u.CustomLinks, 1)
		}
	}
	assert.True(t, errors.IsNotFound(r.SetUpdateURL(ctx, "nope", "")))
}

func TestDashboardRepo_FocusAreaMutations(t *testing.T) {
	ctx := context.Background()
	s, r := newTestRepo()

	require.NoError(t, r.SetFocusAreaNote(ctx, "Prohibited AI", "audit stores"))
	require.NoError(t, r.SetFocusAreaLinks(ctx, "Prohibited AI", []domain.CustomLink{{Name: "Art 5", URL: "https://ai-act/5"}}))
	require.NoError(t, r.SetEventURL(ctx, "Prohibited AI", "First AI Act Fine Issued", "https://www.aepd.es/fine"))

	fa := s.RiskReport().FocusAreas[1]
	assert.Equal(t, "Prohibited AI", fa.Name.EN)
	assert.Equal(t, "audit stores", fa.Note)
	assert.Len(t, fa.CustomLinks, 1)
	assert.Equal(t, "https://www.aepd.es/fine", fa.RelatedEvents[0].URL)

	err := r.SetFocusAreaNote(ctx, "Unknown", "x")
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, "Focus area not found", errors.FromError(err).Message)

	// 关注领域或事件任一不存在都返回 404
	assert.True(t, errors.IsNotFound(r.SetEventURL(ctx, "Unknown", "First AI Act Fine Issued", "u")))
	assert.True(t, errors.IsNotFound(r.SetEventURL(ctx, "Prohibited AI", "Unknown event", "u")))
}

func TestDashboardRepo_MissLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	links := []domain.CustomLink{{Name: "a", URL: "b"}}

	tests := []struct {
		name string
		call func(*dashboardRepo) error
	}{
		{"kb url", func(r *dashboardRepo) error { return r.SetKnowledgeURL(ctx, "kb-404", "x") }},
		{"kb note", func(r *dashboardRepo) error { return r.SetKnowledgeNote(ctx, "kb-404", "x") }},
		{"kb links", func(r *dashboardRepo) error { return r.SetKnowledgeLinks(ctx, "kb-404", links) }},
		{"update url", func(r *dashboardRepo) error { return r.SetUpdateURL(ctx, "up-404", "x") }},
		{"update note", func(r *dashboardRepo) error { return r.SetUpdateNote(ctx, "up-404", "x") }},
		{"update links", func(r *dashboardRepo) error { return r.SetUpdateLinks(ctx, "up-404", links) }},
		{"event url", func(r *dashboardRepo) error { return r.SetEventURL(ctx, "Prohibited AI", "Unknown event", "x") }},
		{"focus note", func(r *dashboardRepo) error { return r.SetFocusAreaNote(ctx, "Unknown", "x") }},
		{"focus links", func(r *dashboardRepo) error { return r.SetFocusAreaLinks(ctx, "Unknown", links) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, r := newTestRepo()
			kb, updates, report := s.KnowledgeBase(), s.Updates(), s.RiskReport()

			assert.True(t, errors.IsNotFound(tt.call(r)))
			assert.Equal(t, kb, s.KnowledgeBase())
			assert.Equal(t, updates, s.Updates())
			assert.Equal(t, report, s.RiskReport())
		})
	}
}
