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

// StripLeft moves start forward past every leading rune for which strip returns true,
// never beyond end. It returns the new start.
func StripLeft(runes []rune, start, end int, strip func(rune) bool) int {
	for start < end && start < len(runes) && strip(runes[start]) {
		start++
	}
	return start
}

// StripRight moves end back past every trailing rune for which strip returns true,
// never beyond start. It returns the new end.
func StripRight(runes []rune, start, end int, strip func(rune) bool) int {
	if end > len(runes) {
		end = len(runes)
	}
	for end > start && strip(runes[end-1]) {
		end--
	}
	return end
}
