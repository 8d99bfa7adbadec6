package structure

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryGroups(t *testing.T) {
	groups := map[Category]Group{
		NounClause:   Clause,
		AdjClause:    Clause,
		AdvClause:    Clause,
		PrepPhrase:   Phrase,
		ToInfinitive: NonFinite,
		Participle:   NonFinite,
	}
	for c, g := range groups {
		assert.Equal(t, g, c.Group(), c.String())
	}

	assert.Greater(t, NonFinite.Priority(), Clause.Priority())
	assert.Greater(t, Clause.Priority(), Phrase.Priority())

	assert.Equal(t, Brackets{Open: '[', Close: ']'}, Clause.Brackets())
	assert.Equal(t, Brackets{Open: '(', Close: ')'}, Phrase.Brackets())
	assert.Equal(t, Brackets{Open: '{', Close: '}'}, NonFinite.Brackets())
}

func TestCategoryJSON(t *testing.T) {
	b, err := json.Marshal(Span{Start: 7, End: 17, Category: ToInfinitive})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":7,"end":17,"type":"to_inf"}`, string(b))

	var s Span
	require.NoError(t, json.Unmarshal([]byte(`{"start":1,"end":4,"type":"pp"}`), &s))
	assert.Equal(t, Span{Start: 1, End: 4, Category: PrepPhrase}, s)

	assert.Error(t, json.Unmarshal([]byte(`{"start":1,"end":4,"type":"verb_phrase"}`), &s))
}

func TestParseCategory(t *testing.T) {
	for _, c := range []Category{NounClause, AdjClause, AdvClause, PrepPhrase, ToInfinitive, Participle} {
		parsed, err := ParseCategory(c.String())
		assert.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	_, err := ParseCategory("clause")
	assert.Error(t, err)
	assert.Equal(t, "category(42)", Category(42).String())
}

func TestHasBrackets(t *testing.T) {
	assert.True(t, HasBrackets("I want {to go home}."))
	assert.True(t, HasBrackets("a ] b"))
	assert.False(t, HasBrackets("I want to go home."))
	assert.False(t, HasBrackets("<p>"))
}

func TestSpan(t *testing.T) {
	a := Span{Start: 0, End: 10, Category: AdjClause}
	b := Span{Start: 5, End: 15, Category: PrepPhrase}
	c := Span{Start: 10, End: 12, Category: PrepPhrase}

	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c), "touching spans do not overlap")
	assert.True(t, a.Contains(Span{Start: 2, End: 10}))
	assert.False(t, a.Contains(b))
	assert.Equal(t, Span{Start: 0, End: 8, Category: AdjClause}, a.Clamp(8))
	assert.False(t, Span{Start: 3, End: 3}.Valid())
}
