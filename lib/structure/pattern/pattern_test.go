package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/lexicon"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/structure"
)

func spanText(text string, s structure.Span) string {
	return string([]rune(text)[s.Start:s.End])
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []structure.Span
		absent   []structure.Category
	}{
		{
			name: "relative clause stops before the main verb",
			text: "The book which I bought yesterday is great.",
			expected: []structure.Span{
				{Start: 9, End: 33, Category: structure.AdjClause},
			},
		},
		{
			name: "to-infinitive and the overlapping prepositional phrase",
			text: "I want to go home.",
			expected: []structure.Span{
				{Start: 7, End: 17, Category: structure.ToInfinitive},
				{Start: 7, End: 17, Category: structure.PrepPhrase},
			},
		},
		{
			name: "to before a determiner is a preposition",
			text: "He went to the store.",
			expected: []structure.Span{
				{Start: 8, End: 20, Category: structure.PrepPhrase},
			},
			absent: []structure.Category{structure.ToInfinitive},
		},
		{
			name: "adverbial clause runs to the comma",
			text: "I stayed home because it was raining, and slept.",
			expected: []structure.Span{
				{Start: 14, End: 36, Category: structure.AdvClause},
			},
		},
		{
			name: "leading comma is trimmed from a relative clause",
			text: "My car, which is red, is fast.",
			expected: []structure.Span{
				{Start: 8, End: 20, Category: structure.AdjClause},
			},
		},
		{
			name:   "long prepositional phrases are rejected",
			text:   "He walked through extraordinarily incomprehensible bureaucratic labyrinths today",
			absent: []structure.Category{structure.PrepPhrase},
		},
		{
			name: "offsets are codepoints",
			text: "Café owners who love coffee smile.",
			expected: []structure.Span{
				{Start: 12, End: 33, Category: structure.AdjClause},
			},
		},
		{
			name: "accented words stay whole inside a to-infinitive",
			text: "I want to visit the café today.",
			expected: []structure.Span{
				{Start: 7, End: 30, Category: structure.ToInfinitive},
			},
		},
		{
			name: "combining marks are part of the word",
			text: "I want to visit the cafe\u0301 today.",
			expected: []structure.Span{
				{Start: 7, End: 31, Category: structure.ToInfinitive},
			},
		},
		{
			name: "accented words stay whole inside a prepositional phrase",
			text: "We met in Zürich yesterday.",
			expected: []structure.Span{
				{Start: 7, End: 26, Category: structure.PrepPhrase},
			},
		},
		{
			name: "relative clause after a tab starts at the pronoun",
			text: "The car,\twhich is red, is fast.",
			expected: []structure.Span{
				{Start: 9, End: 21, Category: structure.AdjClause},
			},
		},
		{
			name:   "subordinators inside longer words are ignored",
			text:   "Please ask them first.",
			absent: []structure.Category{structure.AdvClause},
		},
		{
			name:   "relative pronouns inside longer words are ignored",
			text:   "Take whichever you like.",
			absent: []structure.Category{structure.AdjClause},
		},
		{
			name:   "short clauses are noise",
			text:   "I know that.",
			absent: []structure.Category{structure.AdjClause},
		},
	}

	e := New(nil)
	for _, tt := range tests {
		actual, err := e.Extract(tt.text)
		require.NoError(t, err, tt.name)

		for _, expected := range tt.expected {
			assert.Contains(t, actual, expected, tt.name)
		}
		for _, s := range actual {
			assert.NotContains(t, tt.absent, s.Category, "%s: unexpected span %q", tt.name, spanText(tt.text, s))
			assert.True(t, s.Valid(), tt.name)
			assert.LessOrEqual(t, s.End, len([]rune(tt.text)), tt.name)
		}
	}
}

func TestExtractSpanText(t *testing.T) {
	text := "The book which I bought yesterday is great."
	spans, err := New(nil).Extract(text)
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, "which I bought yesterday", spanText(text, spans[0]))
}

func TestExtractWordEdges(t *testing.T) {
	texts := []string{
		"I want to visit the café today.",
		"We met in Zürich yesterday.",
		"Les élèves who study in Montréal arrive because naïve façades fall.",
	}
	e := New(nil)
	for _, text := range texts {
		runes := []rune(text)
		spans, err := e.Extract(text)
		require.NoError(t, err)
		require.NotEmpty(t, spans, text)

		for _, s := range spans {
			if s.Start > 0 {
				assert.False(t, isWordRune(runes[s.Start-1]) && isWordRune(runes[s.Start]), "%q starts inside a word", spanText(text, s))
			}
			if s.End < len(runes) {
				assert.False(t, isWordRune(runes[s.End-1]) && isWordRune(runes[s.End]), "%q ends inside a word", spanText(text, s))
			}
		}
	}
}

func TestExtractEmpty(t *testing.T) {
	e := New(nil)
	for _, text := range []string{"", "   ", "\n\t"} {
		spans, err := e.Extract(text)
		assert.NoError(t, err)
		assert.Empty(t, spans)
	}
}

func TestExtractMultiWordSubordinator(t *testing.T) {
	text := "Speak slowly so that everyone understands."
	spans, err := New(nil).Extract(text)
	require.NoError(t, err)

	assert.Contains(t, spans, structure.Span{Start: 13, End: 41, Category: structure.AdvClause})
}

func TestExtractCustomLexicon(t *testing.T) {
	lex := lexicon.Default()
	lex.Prepositions = lexicon.NewWordSet("beside")

	spans, err := New(lex).Extract("She sat beside the fire in the hall.")
	require.NoError(t, err)

	var phrases []string
	for _, s := range spans {
		if s.Category == structure.PrepPhrase {
			phrases = append(phrases, spanText("She sat beside the fire in the hall.", s))
		}
	}
	assert.Equal(t, []string{"beside the fire in the"}, phrases)
}

func TestName(t *testing.T) {
	assert.Equal(t, "pattern", New(nil).Name())
}
