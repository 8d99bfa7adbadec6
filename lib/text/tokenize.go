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
	"unicode/utf8"

	"github.com/blevesearch/segment"
)

const NonAlphaNumericChar = 0

// Word is a token with its codepoint offsets in the text it came from.
type Word struct {
	Text  string
	Start int
	End   int
	// Letter, number or ideographic word (as opposed to punctuation or whitespace).
	Alpha bool
}

// Tokenize splits text into words and punctuation and calls onWord for each one.
// Whitespace is skipped. Offsets are codepoint offsets, not byte offsets, so they
// can be used directly as span boundaries.
func Tokenize(text string, onWord func(Word) error) error {
	segmenter := segment.NewWordSegmenterDirect([]byte(text))

	var position int
	for segmenter.Segment() {
		segmentBytes := segmenter.Bytes()
		// get length of string (take account of greek chars) then update position
		length := utf8.RuneCount(segmentBytes)

		if segmenter.Type() == NonAlphaNumericChar && isWhitespace(segmentBytes) {
			position += length
			continue
		}

		word := Word{
			Text:  string(segmentBytes),
			Start: position,
			End:   position + length,
			Alpha: segmenter.Type() != NonAlphaNumericChar,
		}
		if err := onWord(word); err != nil {
			return err
		}
		position += length
	}
	return segmenter.Err()
}

// Words returns every non-whitespace token of text.
func Words(text string) []Word {
	var words []Word
	_ = Tokenize(text, func(w Word) error {
		words = append(words, w)
		return nil
	})
	return words
}

func isWhitespace(b []byte) bool {
	r, _ := utf8.DecodeRune(b)
	return IsSpace(r)
}
