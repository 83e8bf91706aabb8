package catalog

import "strings"

// Rule assigns a category when any keyword appears in a device name.
type Rule struct {
	Category Category
	Keywords []string
}

// Classifier derives categories for records whose source stored none,
// from ordered keyword rules over the device name. First rule wins.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier from ordered rules.
func NewClassifier(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the category for a device name, or CategoryOther
// when no rule matches.
func (c *Classifier) Classify(name string) Category {
	lower := strings.ToLower(name)
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(kw)) {
				return rule.Category
			}
		}
	}
	return CategoryOther
}

// Apply returns a copy of records with empty categories filled in.
// The input slice is left untouched.
func (c *Classifier) Apply(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	for i := range out {
		if out[i].Category == "" {
			out[i].Category = c.Classify(out[i].Name)
		}
	}
	return out
}
