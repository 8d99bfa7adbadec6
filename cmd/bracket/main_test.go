package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/analyzer"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/reader/html"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/reader/text"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/structure/pattern"
)

func TestRun(t *testing.T) {
	a := analyzer.New(pattern.New(nil))
	input := "The book which I bought yesterday is great. I want to go home.\nThey stayed {home} because it rained.\n"

	tests := []struct {
		name     string
		opts     options
		expected string
	}{
		{
			name:     "skips bracketed lines",
			expected: "The book [which I bought yesterday] is great.\nI want {to go home}.\nThey stayed {home} because it rained.\n",
		},
		{
			name:     "force analyzes bracketed lines",
			opts:     options{force: true},
			expected: "The book [which I bought yesterday] is great.\nI want {to go home}.\nThey stayed {home} [because it rained].\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(a, text.Reader{}, strings.NewReader(input), &out, tt.opts))
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestRun_Json(t *testing.T) {
	a := analyzer.New(pattern.New(nil))
	var out bytes.Buffer
	err := run(a, text.Reader{}, strings.NewReader("I want to go home.\nAlready [done].\n"), &out, options{json: true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)

	var sentence analyzer.SentenceResult
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &sentence))
	assert.Equal(t, 1, sentence.Index)
	assert.Equal(t, "I want {to go home}.", sentence.AnalyzedText)
	assert.Len(t, sentence.Spans, 1)
}

func TestRun_Html(t *testing.T) {
	a := analyzer.New(pattern.New(nil))
	var out bytes.Buffer
	err := run(a, html.Reader{}, strings.NewReader("<div><p>I want to go home.</p><p>The book which I bought yesterday is great.</p></div>"), &out, options{})
	require.NoError(t, err)
	assert.Equal(t, "I want {to go home}.\nThe book [which I bought yesterday] is great.\n", out.String())
}
