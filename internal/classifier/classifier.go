// Package classifier assigns a spending category to a transaction
// description using ordered keyword rules.
package classifier

import (
	"strings"

	"smartspend/internal/core"
)

// Rule maps a category to the keywords that select it. A description
// matches when it contains any keyword as a case-insensitive substring.
type Rule struct {
	Category string   `yaml:"category" json:"category"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// Match describes how a description was classified. RuleIndex is -1 and
// Keyword is empty when no rule matched and the fallback was used.
type Match struct {
	Category  string `json:"category"`
	RuleIndex int    `json:"rule"`
	Keyword   string `json:"keyword"`
}

// Fallback reports whether the match came from the default category.
func (m Match) Fallback() bool { return m.RuleIndex < 0 }

// Classifier evaluates rules in order; the first rule with a keyword hit
// wins. It is immutable after construction and safe for concurrent use.
type Classifier struct {
	rules    []Rule
	fallback string
}

var defaultRules = []Rule{
	{Category: core.Transport, Keywords: []string{"uber", "lyft", "train", "bus"}},
	{Category: core.Food, Keywords: []string{"restaurant", "food", "grocery", "zomato", "swiggy"}},
	{Category: core.Shopping, Keywords: []string{"amazon", "flipkart", "shop"}},
	{Category: core.Entertainment, Keywords: []string{"netflix", "hotstar", "movie", "subscription"}},
	{Category: core.Utilities, Keywords: []string{"bill", "electricity", "water", "internet", "rent"}},
}

// DefaultFallback is the category assigned when no built-in rule matches.
const DefaultFallback = core.Shopping

// New builds a classifier over rules. Keywords are lower-cased and blank
// keywords dropped; the caller's slices are not retained.
func New(rules []Rule, fallback string) *Classifier {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		kws := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				kws = append(kws, kw)
			}
		}
		out = append(out, Rule{Category: strings.TrimSpace(r.Category), Keywords: kws})
	}
	if strings.TrimSpace(fallback) == "" {
		fallback = DefaultFallback
	}
	return &Classifier{rules: out, fallback: strings.TrimSpace(fallback)}
}

// Default returns a classifier over the built-in rules.
func Default() *Classifier {
	return New(defaultRules, DefaultFallback)
}

// DefaultRules returns a copy of the built-in rules.
func DefaultRules() []Rule {
	return cloneRules(defaultRules)
}

// Classify returns the category for description. It never fails.
func (c *Classifier) Classify(description string) string {
	return c.Explain(description).Category
}

// Explain returns the category together with the rule and keyword that
// selected it.
func (c *Classifier) Explain(description string) Match {
	text := strings.ToLower(description)
	for i, r := range c.rules {
		for _, kw := range r.Keywords {
			if strings.Contains(text, kw) {
				return Match{Category: r.Category, RuleIndex: i, Keyword: kw}
			}
		}
	}
	return Match{Category: c.fallback, RuleIndex: -1}
}

// Rules returns a copy of the rules in evaluation order.
func (c *Classifier) Rules() []Rule { return cloneRules(c.rules) }

// Fallback returns the category used when no rule matches.
func (c *Classifier) Fallback() string { return c.fallback }

func cloneRules(in []Rule) []Rule {
	out := make([]Rule, len(in))
	for i, r := range in {
		out[i] = Rule{Category: r.Category, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}
