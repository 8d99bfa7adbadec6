package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Tokenize(t *testing.T) {
	for _, test := range []struct {
		name          string
		text          string
		expectedText  []string
		expectedStart []int
		expectedEnd   []int
	}{
		{
			name:          "empty string",
			text:          "",
			expectedText:  nil,
			expectedStart: nil,
			expectedEnd:   nil,
		},
		{
			name:          "punctuation is its own token",
			text:          "Hello, world!",
			expectedText:  []string{"Hello", ",", "world", "!"},
			expectedStart: []int{0, 5, 7, 12},
			expectedEnd:   []int{5, 6, 12, 13},
		},
		{
			name:          "offsets count codepoints, not bytes",
			text:          "βωα  νπψ",
			expectedText:  []string{"βωα", "νπψ"},
			expectedStart: []int{0, 5},
			expectedEnd:   []int{3, 8},
		},
	} {
		t.Log(test.name)
		var texts []string
		var starts, ends []int
		for _, w := range Words(test.text) {
			texts = append(texts, w.Text)
			starts = append(starts, w.Start)
			ends = append(ends, w.End)
		}
		assert.Equal(t, test.expectedText, texts, test.name)
		assert.Equal(t, test.expectedStart, starts, test.name)
		assert.Equal(t, test.expectedEnd, ends, test.name)
	}
}

func TestNormalizeString(t *testing.T) {
	tests := []struct {
		name                string
		inputToken          string
		expectedToken       string
		expectedSentenceEnd bool
	}{
		{
			name:                "empty string",
			inputToken:          "",
			expectedToken:       "",
			expectedSentenceEnd: false,
		},
		{
			name:                "only a sentence end",
			inputToken:          ".",
			expectedToken:       "",
			expectedSentenceEnd: true,
		},
		{
			name:                "start with enclosing character",
			inputToken:          "(hello",
			expectedToken:       "hello",
			expectedSentenceEnd: false,
		},
		{
			name:                "end with sentence end",
			inputToken:          "hello?",
			expectedToken:       "hello",
			expectedSentenceEnd: true,
		},
		{
			name:                "end with comma",
			inputToken:          "hello,",
			expectedToken:       "hello",
			expectedSentenceEnd: false,
		},
		{
			name:                "full width characters are folded",
			inputToken:          "Ｗｈｉｃｈ",
			expectedToken:       "which",
			expectedSentenceEnd: false,
		},
	}
	for _, tt := range tests {
		actualToken, actualSentenceEnd := NormalizeString(tt.inputToken)
		assert.Equal(t, tt.expectedToken, actualToken, tt.name)
		assert.Equal(t, tt.expectedSentenceEnd, actualSentenceEnd, tt.name)
	}
}

func TestOffsets(t *testing.T) {
	s := "añb€c"
	o := NewOffsets(s)

	assert.Equal(t, 5, o.Len())
	assert.Equal(t, 0, o.Rune(0))
	assert.Equal(t, 1, o.Rune(1))
	// ñ is two bytes
	assert.Equal(t, 2, o.Rune(3))
	// € is three bytes
	assert.Equal(t, 3, o.Rune(4))
	assert.Equal(t, 4, o.Rune(7))
	assert.Equal(t, 5, o.Rune(len(s)))
	assert.Equal(t, 5, o.Rune(100))
	assert.Equal(t, 0, o.Rune(-1))
}

func TestStrip(t *testing.T) {
	runes := []rune(", which it is  ")
	start := StripLeft(runes, 0, len(runes), func(r rune) bool { return r == ',' || r == ' ' })
	end := StripRight(runes, start, len(runes), IsSpace)

	assert.Equal(t, "which it is", string(runes[start:end]))

	// never crosses over
	allSpace := []rune("   ")
	s := StripLeft(allSpace, 0, 3, IsSpace)
	assert.Equal(t, 3, s)
	assert.Equal(t, 3, StripRight(allSpace, s, 3, IsSpace))
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "blank",
			input:    "   ",
			expected: nil,
		},
		{
			name:     "single sentence without terminator",
			input:    "no full stop here",
			expected: []string{"no full stop here"},
		},
		{
			name:     "two sentences",
			input:    "I want to go home. The book is great!",
			expected: []string{"I want to go home.", "The book is great!"},
		},
		{
			name:     "lowercase continuation is not a new sentence",
			input:    "See e.g. the example. Then stop.",
			expected: []string{"See e.g. the example.", "Then stop."},
		},
		{
			name:     "closing quote stays with its sentence",
			input:    `He said "stop." She did.`,
			expected: []string{`He said "stop."`, "She did."},
		},
		{
			name:     "extra whitespace is trimmed",
			input:    "  Is it?   Yes.  ",
			expected: []string{"Is it?", "Yes."},
		},
	}
	for _, tt := range tests {
		var actual []string
		for _, s := range SplitSentences(tt.input) {
			actual = append(actual, s.Text)
		}
		assert.Equal(t, tt.expected, actual, tt.name)
	}
}
