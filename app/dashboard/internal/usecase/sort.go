package usecase

import (
	"sort"
	"time"

	"github.com/iWorld-y/compliance_radar/app/dashboard/internal/domain"
)

var dateLayouts = []string{time.DateOnly, time.RFC3339, "2006-01"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// newerFirst 日期倒序，无法解析的日期排在最后
func newerFirst(a, b string) bool {
	ta, okA := parseDate(a)
	tb, okB := parseDate(b)
	switch {
	case okA && okB:
		return ta.After(tb)
	case okA != okB:
		return okA
	default:
		return false
	}
}

func sortKnowledgeBase(items []domain.KnowledgeItem) []domain.KnowledgeItem {
	sort.SliceStable(items, func(i, j int) bool {
		return newerFirst(items[i].Date, items[j].Date)
	})
	return items
}

func sortUpdates(items []domain.UpdateItem) []domain.UpdateItem {
	sort.SliceStable(items, func(i, j int) bool {
		return newerFirst(items[i].Date, items[j].Date)
	})
	return items
}
