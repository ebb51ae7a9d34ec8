package models

import (
	"sort"
	"strings"

	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// MatchRule assigns a category to imported transactions whose note matches a
// glob pattern. Lower priority values win.
type MatchRule struct {
	DefaultModel
	Priority uint   `json:"priority" example:"1"`
	Match    string `json:"match" example:"REWE*"`
	Category string `json:"category" example:"Groceries"`
}

// BeforeSave validates the rule.
func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	r.Category = strings.TrimSpace(r.Category)

	if r.Match == "" {
		return ErrMatchRuleEmpty
	}

	return nil
}

// MatchCategory returns the category of the first rule matching the note.
// Rules are tried ordered by priority, then by pattern for stable results.
func MatchCategory(rules []MatchRule, note string) (string, bool) {
	sorted := make([]MatchRule, len(rules))
	copy(sorted, rules)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority < sorted[j].Priority
		}

		return sorted[i].Match < sorted[j].Match
	})

	for _, rule := range sorted {
		if glob.Glob(rule.Match, note) {
			return rule.Category, true
		}
	}

	return "", false
}
