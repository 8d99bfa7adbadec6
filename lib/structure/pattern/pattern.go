/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package pattern

import (
	"regexp"
	"strings"
	"unicode"

	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/lexicon"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/structure"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/text"
)

const (
	Name = "pattern"

	// Prepositional phrases longer than this are more likely clause fragments.
	maxPhraseLength = 40
	minClauseLength = 5

	// Go's \w and \b are ASCII only. Each rule instead starts after a non-word rune
	// (or at the start of the text) and captures the span as its first group.
	word      = `[\p{L}\p{M}\p{N}_]`
	nonWord   = `[^\p{L}\p{M}\p{N}_]`
	wordStart = `(?i)(?:^|` + nonWord + `)`
	clauseRun = `(?:[^\p{L}\p{M}\p{N}_.?!,;][^.?!,;]*)?`
)

// Extractor finds spans with lexical patterns. It needs no parser and never fails.
type Extractor struct {
	lexicon    *lexicon.Lexicon
	toInf      *regexp.Regexp
	prepPhrase *regexp.Regexp
	relClause  *regexp.Regexp
	advClause  *regexp.Regexp
}

// New compiles the pattern rules from lex. A nil lexicon means lexicon.Default().
func New(lex *lexicon.Lexicon) *Extractor {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Extractor{
		lexicon:    lex,
		toInf:      regexp.MustCompile(wordStart + `(to\s+([\p{L}\p{M}]+)(?:\s+` + word + `+){0,5})`),
		prepPhrase: regexp.MustCompile(wordStart + `((?:` + alternation(lex.Prepositions) + `)\s+` + word + `+(?:\s+` + word + `+){0,3})`),
		relClause:  regexp.MustCompile(wordStart + `((?:` + alternation(lex.RelativePronouns) + `)` + clauseRun + `)`),
		advClause:  regexp.MustCompile(wordStart + `((?:` + alternation(lex.Subordinators) + `)` + clauseRun + `)`),
	}
}

// alternation builds a regexp alternation, longest words first, with the spaces of
// multi-word entries matching any whitespace.
func alternation(words lexicon.WordSet) string {
	sorted := words.Sorted()
	parts := make([]string, len(sorted))
	for i, w := range sorted {
		parts[i] = strings.Join(strings.Fields(regexp.QuoteMeta(w)), `\s+`)
	}
	return strings.Join(parts, "|")
}

func (e *Extractor) Name() string {
	return Name
}

// Extract never returns an error. Each rule scans the whole text, so spans from
// different rules may overlap; resolving them is left to structure.Resolve.
func (e *Extractor) Extract(s string) ([]structure.Span, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	m := matcher{
		text:    s,
		runes:   []rune(s),
		offsets: text.NewOffsets(s),
	}

	var spans []structure.Span
	spans = append(spans, e.toInfinitives(m)...)
	spans = append(spans, e.prepPhrases(m)...)
	spans = append(spans, e.relativeClauses(m)...)
	spans = append(spans, e.adverbialClauses(m)...)
	return spans, nil
}

type matcher struct {
	text    string
	runes   []rune
	offsets text.Offsets
}

// find returns the codepoint range of every match of re and of its submatches.
// Matches whose first group ends inside a word ("as" in "ask") are dropped.
func (m matcher) find(re *regexp.Regexp) [][]int {
	var found [][]int
	for _, match := range re.FindAllStringSubmatchIndex(m.text, -1) {
		for i, b := range match {
			if b >= 0 {
				match[i] = m.offsets.Rune(b)
			}
		}
		if m.inWord(match[3]) {
			continue
		}
		found = append(found, match)
	}
	return found
}

// inWord is true if the rune at i continues the word before it.
func (m matcher) inWord(i int) bool {
	return i > 0 && i < len(m.runes) && isWordRune(m.runes[i-1]) && isWordRune(m.runes[i])
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.In(r, unicode.L, unicode.M, unicode.N)
}

func (m matcher) span(start, end int, category structure.Category) structure.Span {
	end = text.StripRight(m.runes, start, end, text.IsSpace)
	return structure.Span{Start: start, End: end, Category: category}
}

func (e *Extractor) toInfinitives(m matcher) []structure.Span {
	var spans []structure.Span
	for _, match := range m.find(e.toInf) {
		verb := string(m.runes[match[4]:match[5]])
		if e.lexicon.NonVerbs.Contains(verb) {
			continue
		}
		spans = append(spans, m.span(match[2], match[3], structure.ToInfinitive))
	}
	return spans
}

func (e *Extractor) prepPhrases(m matcher) []structure.Span {
	var spans []structure.Span
	for _, match := range m.find(e.prepPhrase) {
		s := m.span(match[2], match[3], structure.PrepPhrase)
		if s.Len() > maxPhraseLength {
			continue
		}
		spans = append(spans, s)
	}
	return spans
}

func (e *Extractor) relativeClauses(m matcher) []structure.Span {
	var spans []structure.Span
	for _, match := range m.find(e.relClause) {
		end := e.clauseEnd(m.runes, match[2], match[3])
		s := m.span(match[2], end, structure.AdjClause)
		if s.Len() < minClauseLength {
			continue
		}
		spans = append(spans, s)
	}
	return spans
}

// clauseEnd finds where a relative clause gives way to the verb of the clause it
// modifies, e.g. "which I bought yesterday | is great". A finite verb ends the clause
// unless it is the first word after the pronoun or follows a subject, an auxiliary
// or an adverb such as "not".
func (e *Extractor) clauseEnd(runes []rune, start, end int) int {
	words := text.Words(string(runes[start:end]))
	for i := 2; i < len(words); i++ {
		w := words[i]
		if !w.Alpha || !e.lexicon.FiniteVerbs.Contains(w.Text) {
			continue
		}
		if e.lexicon.ClauseContinuers.Contains(words[i-1].Text) {
			continue
		}
		return start + w.Start
	}
	return end
}

func (e *Extractor) adverbialClauses(m matcher) []structure.Span {
	var spans []structure.Span
	for _, match := range m.find(e.advClause) {
		s := m.span(match[2], match[3], structure.AdvClause)
		if s.Len() < minClauseLength {
			continue
		}
		spans = append(spans, s)
	}
	return spans
}
