package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDefaultRules(t *testing.T) {
	c := Default()
	cases := []struct {
		desc string
		want string
	}{
		{"Uber to work", "Transport"},
		{"Zomato dinner", "Food"},
		{"Amazon purchase", "Shopping"},
		{"Electricity bill", "Utilities"},
		{"Netflix subscription", "Entertainment"},
		{"Grocery shopping", "Food"},
		{"Movie tickets", "Entertainment"},
		{"Water bill", "Utilities"},
		{"Metro card recharge", "Shopping"},
		{"Cab fare", "Shopping"},
		{"UBER EATS", "Transport"},
		{"", "Shopping"},
		{"   ", "Shopping"},
		{"Business lunch", "Transport"}, // "bus" substring
		{"Shopping for groceries", "Shopping"},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Classify(tc.desc))
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	c := Default()
	// Transport is evaluated before Food.
	assert.Equal(t, "Transport", c.Classify("Uber Eats food order"))
	// Shopping is evaluated before Utilities.
	assert.Equal(t, "Shopping", c.Classify("Amazon internet bill"))
	// Entertainment is evaluated before Utilities.
	assert.Equal(t, "Entertainment", c.Classify("Hotstar subscription bill"))
}

func TestClassifyIsTotal(t *testing.T) {
	c := Default()
	for _, desc := range []string{"", "??", "नमस्ते", "\x00\xff", "random words"} {
		assert.NotEmpty(t, c.Classify(desc))
	}
}

func TestExplain(t *testing.T) {
	c := Default()

	m := c.Explain("Netflix subscription")
	assert.Equal(t, Match{Category: "Entertainment", RuleIndex: 3, Keyword: "netflix"}, m)
	assert.False(t, m.Fallback())

	m = c.Explain("Cab fare")
	assert.Equal(t, "Shopping", m.Category)
	assert.True(t, m.Fallback())
	assert.Empty(t, m.Keyword)
}

func TestNewNormalizesKeywords(t *testing.T) {
	c := New([]Rule{{Category: " Travel ", Keywords: []string{" FLIGHT ", "", "Hotel"}}}, "")
	assert.Equal(t, "Travel", c.Classify("Flight to Goa"))
	assert.Equal(t, "Travel", c.Classify("hotel stay"))
	assert.Equal(t, DefaultFallback, c.Fallback())
	assert.Equal(t, []Rule{{Category: "Travel", Keywords: []string{"flight", "hotel"}}}, c.Rules())
}

func TestDefaultRulesIsCopy(t *testing.T) {
	rules := DefaultRules()
	rules[0].Keywords[0] = "changed"
	assert.Equal(t, "uber", DefaultRules()[0].Keywords[0])
	assert.Equal(t, "Transport", Default().Classify("uber"))
}
