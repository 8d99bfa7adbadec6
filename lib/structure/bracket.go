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

import "sort"

type insertion struct {
	offset int
	char   rune
	close  bool
	// the other end of the span and the span's index, used to order brackets
	// sharing an offset
	partner int
	seq     int
}

// Insert writes the bracket pair of every span into text and returns the result.
//
// Insertions are applied from the highest offset down, so an insertion never moves
// an offset still to be applied. Where several brackets share an offset, closing
// brackets come out before opening ones, inner spans close before outer ones and
// outer spans open before inner ones.
func Insert(text string, spans []Span) string {
	if len(spans) == 0 {
		return text
	}

	runes := []rune(text)
	n := len(runes)

	events := make([]insertion, 0, 2*len(spans))
	for i, s := range spans {
		b := s.Group().Brackets()
		start, end := clamp(s.Start, n), clamp(s.End, n)
		if start >= end {
			continue
		}
		events = append(events,
			insertion{offset: start, char: b.Open, partner: end, seq: i},
			insertion{offset: end, char: b.Close, close: true, partner: start, seq: i},
		)
	}

	// sort in output order; applying in reverse gives descending offsets, and at a
	// shared offset each insertion lands in front of the ones already applied.
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.offset != b.offset {
			return a.offset < b.offset
		}
		if a.close != b.close {
			return a.close
		}
		// both close: the span that opened later closes first.
		// both open: the span that closes later opens first.
		if a.partner != b.partner {
			return a.partner > b.partner
		}
		if a.close {
			return a.seq > b.seq
		}
		return a.seq < b.seq
	})

	out := make([]rune, 0, n+len(events))
	out = append(out, runes...)
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		out = append(out, 0)
		copy(out[e.offset+1:], out[e.offset:])
		out[e.offset] = e.char
	}
	return string(out)
}
