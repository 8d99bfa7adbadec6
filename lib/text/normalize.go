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

	"golang.org/x/text/unicode/norm"
)

var TokenDelimiters = map[rune]struct{}{
	'(':  {},
	')':  {},
	'{':  {},
	'}':  {},
	'[':  {},
	']':  {},
	'"':  {},
	'\'': {},
	':':  {},
	';':  {},
	',':  {},
	'.':  {},
	'?':  {},
	'!':  {},
}

var sentenceEnders = map[rune]struct{}{
	'.': {},
	'?': {},
	'!': {},
}

func IsTokenDelimiter(r rune) bool {
	_, ok := TokenDelimiters[r]
	return ok
}

func IsSentenceEnd(r rune) bool {
	_, ok := sentenceEnders[r]
	return ok
}

func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// NormalizeString prepares a word for comparison against a word list. Enclosing
// punctuation is removed, the text is NFKC normalised and lowercased.
// sentenceEnd is true if the word ended with a sentence terminator.
func NormalizeString(token string) (normalized string, sentenceEnd bool) {
	runes := []rune(token)

	// Check length so we dont index an empty slice
	if len(runes) == 0 {
		return "", false
	} else if len(runes) == 1 && IsTokenDelimiter(runes[0]) {
		return "", IsSentenceEnd(runes[0])
	}

	// remove quotes, brackets etc. from start
	if IsTokenDelimiter(runes[0]) {
		runes = runes[1:]
	}

	// remove quotes, brackets etc. from end
	if last := runes[len(runes)-1]; IsTokenDelimiter(last) {
		sentenceEnd = IsSentenceEnd(last)
		runes = runes[:len(runes)-1]
	}

	// normalise to NFKC so full width and compatibility forms compare equal
	normalized = norm.NFKC.String(string(runes))
	normalized = strings.ToLower(normalized)

	return normalized, sentenceEnd
}

// Normalize is NormalizeString without the sentence end flag.
func Normalize(token string) string {
	n, _ := NormalizeString(token)
	return n
}
