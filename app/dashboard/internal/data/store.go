package data

import (
	"sync"

	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/domain"
	"github.com/iWorld-y/compliance_radar/app/radar/pkg/model"
)

// Seed 初始数据
type Seed struct {
	KnowledgeBase []domain.KnowledgeItem
	Updates       []domain.UpdateItem
	RiskReport    domain.RiskReport
}

// Store 进程内记录存储，对外只暴露副本
type Store struct {
	mu            sync.RWMutex
	knowledgeBase []domain.KnowledgeItem
	updates       []domain.UpdateItem
	report        domain.RiskReport
}

// NewStore 基于 seed 创建存储，seed 会被深拷贝
func NewStore(seed Seed) *Store {
	s := &Store{
		knowledgeBase: normalizeKnowledge(model.CloneKnowledgeItems(seed.KnowledgeBase)),
		updates:       normalizeUpdates(model.CloneUpdateItems(seed.Updates)),
		report:        normalizeReport(seed.RiskReport.Clone()),
	}
	s.recalculate()
	return s
}

func (s *Store) KnowledgeBase() []domain.KnowledgeItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneKnowledgeItems(s.knowledgeBase)
}

func (s *Store) Updates() []domain.UpdateItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneUpdateItems(s.updates)
}

func (s *Store) RiskReport() domain.RiskReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report.Clone()
}

func (s *Store) ReplaceKnowledgeBase(items []domain.KnowledgeItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.knowledgeBase = normalizeKnowledge(model.CloneKnowledgeItems(items))
	s.recalculate()
}

func (s *Store) ReplaceUpdates(items []domain.UpdateItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = normalizeUpdates(model.CloneUpdateItems(items))
	s.recalculate()
}

// ReplaceRiskReport 替换报告，stats.count 仍由集合大小决定
func (s *Store) ReplaceRiskReport(report domain.RiskReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = normalizeReport(report.Clone())
	s.recalculate()
}

func (s *Store) RecalculateStats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recalculate()
}

func (s *Store) recalculate() {
	s.report.Stats.Legislation.Count = len(s.knowledgeBase)
	s.report.Stats.Enforcement.Count = len(s.updates)
}

// PatchKnowledge 对 id 匹配的第一条知识库条目执行 fn，未找到返回 false
func (s *Store) PatchKnowledge(id string, fn func(*domain.KnowledgeItem)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.knowledgeBase {
		if s.knowledgeBase[i].ID == id {
			fn(&s.knowledgeBase[i])
			return true
		}
	}
	return false
}

// PatchUpdate 对 id 匹配的第一条动态执行 fn，未找到返回 false
func (s *Store) PatchUpdate(id string, fn func(*domain.UpdateItem)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.updates {
		if s.updates[i].ID == id {
			fn(&s.updates[i])
			return true
		}
	}
	return false
}

// PatchFocusArea 对 name.en 匹配的第一个关注领域执行 fn
// found 表示关注领域是否存在，ok 为 fn 的返回值
func (s *Store) PatchFocusArea(name string, fn func(*domain.FocusArea) bool) (found, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.report.FocusAreas {
		if s.report.FocusAreas[i].Name.EN == name {
			return true, fn(&s.report.FocusAreas[i])
		}
	}
	return false, false
}

func emptyLinks(links []domain.CustomLink) []domain.CustomLink {
	if links == nil {
		return []domain.CustomLink{}
	}
	return links
}

func normalizeKnowledge(items []domain.KnowledgeItem) []domain.KnowledgeItem {
	if items == nil {
		return []domain.KnowledgeItem{}
	}
	for i := range items {
		items[i].CustomLinks = emptyLinks(items[i].CustomLinks)
	}
	return items
}

func normalizeUpdates(items []domain.UpdateItem) []domain.UpdateItem {
	if items == nil {
		return []domain.UpdateItem{}
	}
	for i := range items {
		items[i].CustomLinks = emptyLinks(items[i].CustomLinks)
	}
	return items
}

func normalizeFocusAreas(areas []domain.FocusArea) []domain.FocusArea {
	for i := range areas {
		areas[i].CustomLinks = emptyLinks(areas[i].CustomLinks)
	}
	return areas
}

func normalizeReport(r domain.RiskReport) domain.RiskReport {
	if r.FocusAreas == nil {
		r.FocusAreas = []domain.FocusArea{}
	}
	r.FocusAreas = normalizeFocusAreas(r.FocusAreas)
	r.ArchivedFocusAreas = normalizeFocusAreas(r.ArchivedFocusAreas)
	return r
}
