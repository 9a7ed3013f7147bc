// Package collection derives what the dashboard shows from the item list
// and the current search/filter state. Nothing here mutates the list.
package collection

import (
	"strings"

	"github.com/dmitrijs2005/brainly/internal/client/models"
)

// View is the transient search and filter state. An empty Filter means
// every kind is shown.
type View struct {
	Query  string
	Filter models.Kind
}

// MatchesSearch is a case-insensitive substring match against the title.
func (v View) MatchesSearch(it models.Item) bool {
	if v.Query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(it.Title), strings.ToLower(v.Query))
}

// MatchesFilter compares kinds exactly.
func (v View) MatchesFilter(it models.Item) bool {
	return v.Filter == "" || it.Type == v.Filter
}

// Visible returns the items passing both predicates, in list order.
func (v View) Visible(items []models.Item) []models.Item {
	out := make([]models.Item, 0, len(items))
	for _, it := range items {
		if v.MatchesSearch(it) && v.MatchesFilter(it) {
			out = append(out, it)
		}
	}
	return out
}

// KindsPresent lists the distinct kinds in items in first-seen order.
func KindsPresent(items []models.Item) []models.Kind {
	seen := make(map[models.Kind]struct{}, len(models.Kinds()))
	var out []models.Kind
	for _, it := range items {
		if _, ok := seen[it.Type]; ok {
			continue
		}
		seen[it.Type] = struct{}{}
		out = append(out, it.Type)
	}
	return out
}

// Find returns the item with id, if present.
func Find(items []models.Item, id string) (models.Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return models.Item{}, false
}
