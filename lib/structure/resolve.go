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

// Resolve turns a raw candidate set into the final, non-crossing span set for a
// text of textLen codepoints. Spans are clamped to the text and empty spans dropped.
//
// Candidates are ordered by start ascending, length descending and priority
// descending, then swept left to right. A candidate that overlaps the last accepted
// span replaces it only if its group has a strictly higher priority. Non-finite
// spans are additionally never allowed to overlap one another.
func Resolve(spans []Span, textLen int) []Span {
	candidates := make([]Span, 0, len(spans))
	for _, s := range spans {
		s = s.Clamp(textLen)
		if !s.Valid() {
			continue
		}
		candidates = append(candidates, s)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Len() != b.Len() {
			return a.Len() > b.Len()
		}
		if pa, pb := a.Group().Priority(), b.Group().Priority(); pa != pb {
			return pa > pb
		}
		return a.Category < b.Category
	})

	candidates = claimNonFinite(candidates)

	out := make([]Span, 0, len(candidates))
	for _, s := range candidates {
		if len(out) == 0 {
			out = append(out, s)
			continue
		}
		last := out[len(out)-1]
		if !s.Overlaps(last) {
			out = append(out, s)
			continue
		}
		if s.Group().Priority() > last.Group().Priority() {
			out[len(out)-1] = s
		}
	}
	return out
}

// claimNonFinite drops every non-finite span that intersects a non-finite span
// earlier in the (sorted) candidate list. Other groups pass through untouched.
func claimNonFinite(candidates []Span) []Span {
	var claimed []Span
	out := candidates[:0]

OuterLoop:
	for _, s := range candidates {
		if s.Group() == NonFinite {
			for _, c := range claimed {
				if s.Overlaps(c) {
					continue OuterLoop
				}
			}
			claimed = append(claimed, s)
		}
		out = append(out, s)
	}
	return out
}
