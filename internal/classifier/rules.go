package classifier

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoRules       = errors.New("rule file has no rules")
	ErrEmptyCategory = errors.New("rule has empty category")
	ErrNoKeywords    = errors.New("rule has no keywords")
)

type ruleFile struct {
	Fallback string `yaml:"fallback"`
	Rules    []Rule `yaml:"rules"`
}

// LoadRules parses a YAML rule file:
//
//	fallback: Shopping
//	rules:
//	  - category: Transport
//	    keywords: [uber, lyft]
//
// Rules keep their file order.
func LoadRules(r io.Reader) (*Classifier, error) {
	var f ruleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRules
		}
		return nil, fmt.Errorf("decode rules: %w", err)
	}
	if len(f.Rules) == 0 {
		return nil, ErrNoRules
	}
	for i, rule := range f.Rules {
		if strings.TrimSpace(rule.Category) == "" {
			return nil, fmt.Errorf("rule %d: %w", i+1, ErrEmptyCategory)
		}
		hasKeyword := false
		for _, kw := range rule.Keywords {
			if strings.TrimSpace(kw) != "" {
				hasKeyword = true
				break
			}
		}
		if !hasKeyword {
			return nil, fmt.Errorf("rule %d (%s): %w", i+1, rule.Category, ErrNoKeywords)
		}
	}
	return New(f.Rules, f.Fallback), nil
}

// LoadRulesFile reads rules from path.
func LoadRulesFile(path string) (*Classifier, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer fh.Close()
	return LoadRules(fh)
}
