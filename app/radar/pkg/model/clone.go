package model

// 存储层对外只暴露副本，以下方法做深拷贝

func cloneLinks(links []CustomLink) []CustomLink {
	if links == nil {
		return nil
	}
	out := make([]CustomLink, len(links))
	copy(out, links)
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// Clone 深拷贝
func (l LocalizedList) Clone() LocalizedList {
	return LocalizedList{EN: cloneStrings(l.EN), CN: cloneStrings(l.CN)}
}

// Clone 深拷贝
func (k KnowledgeItem) Clone() KnowledgeItem {
	k.CustomLinks = cloneLinks(k.CustomLinks)
	return k
}

// Clone 深拷贝
func (u UpdateItem) Clone() UpdateItem {
	if u.Parties != nil {
		parties := make([]Party, len(u.Parties))
		copy(parties, u.Parties)
		u.Parties = parties
	}
	u.CustomLinks = cloneLinks(u.CustomLinks)
	return u
}

// Clone 深拷贝
func (f FocusArea) Clone() FocusArea {
	if f.RelatedEvents != nil {
		events := make([]RelatedEvent, len(f.RelatedEvents))
		copy(events, f.RelatedEvents)
		f.RelatedEvents = events
	}
	f.CustomLinks = cloneLinks(f.CustomLinks)
	return f
}

// CloneFocusAreas 深拷贝关注领域列表
func CloneFocusAreas(areas []FocusArea) []FocusArea {
	if areas == nil {
		return nil
	}
	out := make([]FocusArea, len(areas))
	for i, a := range areas {
		out[i] = a.Clone()
	}
	return out
}

// Clone 深拷贝
func (r RiskReport) Clone() RiskReport {
	r.Summary = r.Summary.Clone()
	r.FocusAreas = CloneFocusAreas(r.FocusAreas)
	r.ArchivedFocusAreas = CloneFocusAreas(r.ArchivedFocusAreas)
	return r
}

// CloneKnowledgeItems 深拷贝知识库列表
func CloneKnowledgeItems(items []KnowledgeItem) []KnowledgeItem {
	if items == nil {
		return nil
	}
	out := make([]KnowledgeItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// CloneUpdateItems 深拷贝动态列表
func CloneUpdateItems(items []UpdateItem) []UpdateItem {
	if items == nil {
		return nil
	}
	out := make([]UpdateItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// MergeFrom 用 incoming 中的非空字段覆盖当前条目，id 和用户批注（note、customLinks）保留
func (k KnowledgeItem) MergeFrom(incoming KnowledgeItem) KnowledgeItem {
	merged := k.Clone()
	if incoming.Title.EN != "" || incoming.Title.CN != "" {
		merged.Title = incoming.Title
	}
	if incoming.Type != "" {
		merged.Type = incoming.Type
	}
	if incoming.Jurisdiction.EN != "" || incoming.Jurisdiction.CN != "" {
		merged.Jurisdiction = incoming.Jurisdiction
	}
	if incoming.Date != "" {
		merged.Date = incoming.Date
	}
	if incoming.Summary.EN != "" || incoming.Summary.CN != "" {
		merged.Summary = incoming.Summary
	}
	if incoming.URL != "" {
		merged.URL = incoming.URL
	}
	return merged
}

// NormalizePartyType 未知的相关方类型归为 Other
func NormalizePartyType(t PartyType) PartyType {
	switch t {
	case PartyRegulator, PartyCompany, PartyProduct, PartyOther:
		return t
	default:
		return PartyOther
	}
}
