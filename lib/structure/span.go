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

package structure

// Span is a half-open [Start, End) range of codepoints in the original text.
type Span struct {
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Category Category `json:"type"`
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) Group() Group {
	return s.Category.Group()
}

func (s Span) Valid() bool {
	return s.Start < s.End
}

// Overlaps reports whether the two spans share at least one codepoint.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && s.End > o.Start
}

// Contains reports whether o lies entirely inside s.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// Clamp limits the span to [0, n].
func (s Span) Clamp(n int) Span {
	s.Start = clamp(s.Start, n)
	s.End = clamp(s.End, n)
	return s
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// SpanExtractor finds candidate spans in a piece of text.
// Implementations return spans over codepoint offsets of text.
type SpanExtractor interface {
	Name() string
	Extract(text string) ([]Span, error)
}
