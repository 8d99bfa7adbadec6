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

import "unicode/utf8"

// Offsets converts byte offsets of a string (as returned by the regexp package) into
// codepoint offsets.
type Offsets struct {
	runeAt []int
}

func NewOffsets(s string) Offsets {
	runeAt := make([]int, len(s)+1)
	var r int
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		for j := 0; j < size; j++ {
			runeAt[i+j] = r
		}
		i += size
		r++
	}
	runeAt[len(s)] = r
	return Offsets{runeAt: runeAt}
}

// Rune returns the codepoint offset of byte offset b. Offsets inside a multi-byte
// rune map to that rune.
func (o Offsets) Rune(b int) int {
	if b < 0 {
		return 0
	}
	if b >= len(o.runeAt) {
		return o.runeAt[len(o.runeAt)-1]
	}
	return o.runeAt[b]
}

// Len is the number of codepoints in the string.
func (o Offsets) Len() int {
	return o.runeAt[len(o.runeAt)-1]
}
