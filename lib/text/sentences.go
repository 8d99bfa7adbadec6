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

package text

import (
	"strings"
	"unicode"
)

var closingMarks = map[string]struct{}{
	"\"": {},
	"'":  {},
	")":  {},
	"]":  {},
	"”":  {},
	"’":  {},
}

// Sentence is a trimmed sentence with its codepoint offsets in the paragraph.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// SplitSentences splits a paragraph after '.', '?' or '!' (plus any closing quotes or
// brackets) when the terminator is followed by whitespace and a word that starts with
// an uppercase letter or a quote. Empty sentences are dropped.
func SplitSentences(paragraph string) []Sentence {
	if strings.TrimSpace(paragraph) == "" {
		return nil
	}
	runes := []rune(paragraph)
	words := Words(paragraph)

	var sentences []Sentence
	emit := func(start, end int) {
		start = StripLeft(runes, start, end, IsSpace)
		end = StripRight(runes, start, end, IsSpace)
		if start < end {
			sentences = append(sentences, Sentence{Text: string(runes[start:end]), Start: start, End: end})
		}
	}

	start := 0
	for i := 0; i < len(words); i++ {
		if !isTerminator(words[i].Text) {
			continue
		}
		// keep closing quotes and brackets with the sentence they close
		end := i
		for end+1 < len(words) && isClosingMark(words[end+1].Text) && words[end+1].Start == words[end].End {
			end++
		}
		if end+1 >= len(words) {
			break
		}
		next := words[end+1]
		if next.Start == words[end].End || !startsSentence(next.Text) {
			i = end
			continue
		}
		emit(start, words[end].End)
		start = next.Start
		i = end
	}
	emit(start, len(runes))
	return sentences
}

func isTerminator(w string) bool {
	for _, r := range w {
		if !IsSentenceEnd(r) {
			return false
		}
	}
	return w != ""
}

func isClosingMark(w string) bool {
	_, ok := closingMarks[w]
	return ok
}

func startsSentence(w string) bool {
	for _, r := range w {
		return unicode.IsUpper(r) || r == '"' || r == '“'
	}
	return false
}
