package classifier

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRules(t *testing.T) {
	src := `
fallback: Misc
rules:
  - category: Travel
    keywords: [Flight, hotel]
  - category: Food
    keywords: [cafe]
`
	c, err := LoadRules(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "Travel", c.Classify("FLIGHT booking"))
	assert.Equal(t, "Food", c.Classify("Corner cafe"))
	assert.Equal(t, "Misc", c.Classify("something else"))
}

func TestLoadRulesErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"empty", "", ErrNoRules},
		{"no rules", "fallback: Misc\n", ErrNoRules},
		{"blank category", "rules:\n  - category: ''\n    keywords: [a]\n", ErrEmptyCategory},
		{"no keywords", "rules:\n  - category: Food\n    keywords: []\n", ErrNoKeywords},
		{"blank keywords", "rules:\n  - category: Food\n    keywords: [' ']\n", ErrNoKeywords},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadRules(strings.NewReader(tc.src))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoadRulesRejectsUnknownFields(t *testing.T) {
	_, err := LoadRules(strings.NewReader("rules:\n  - category: Food\n    words: [a]\n"))
	require.Error(t, err)
}

func TestLoadRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - category: Pets\n    keywords: [vet]\n"), 0o600))

	c, err := LoadRulesFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Pets", c.Classify("Vet visit"))
	assert.Equal(t, DefaultFallback, c.Classify("other"))

	_, err = LoadRulesFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
