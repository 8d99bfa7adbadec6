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

import (
	"encoding/json"
	"fmt"
)

// Category is the fine syntactic category of a span.
type Category int

const (
	NounClause Category = iota
	AdjClause
	AdvClause
	PrepPhrase
	ToInfinitive
	Participle
)

// Group is the bracket group a category is rendered with.
type Group int

const (
	Phrase Group = iota + 1
	Clause
	NonFinite
)

var categoryNames = map[Category]string{
	NounClause:   "noun_clause",
	AdjClause:    "adj_clause",
	AdvClause:    "adv_clause",
	PrepPhrase:   "pp",
	ToInfinitive: "to_inf",
	Participle:   "participle",
}

var categoryGroups = map[Category]Group{
	NounClause:   Clause,
	AdjClause:    Clause,
	AdvClause:    Clause,
	PrepPhrase:   Phrase,
	ToInfinitive: NonFinite,
	Participle:   NonFinite,
}

// Brackets holds the opening and closing characters of a group.
type Brackets struct {
	Open  rune
	Close rune
}

var groupBrackets = map[Group]Brackets{
	Clause:    {Open: '[', Close: ']'},
	Phrase:    {Open: '(', Close: ')'},
	NonFinite: {Open: '{', Close: '}'},
}

// Legend describes each bracket pair for consumers of analysed text.
var Legend = map[string]string{
	"[]": "clauses (noun/adj/adv)",
	"()": "short phrases (PP etc.)",
	"{}": "non-finite (to-inf/participle)",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

func (c Category) Group() Group {
	return categoryGroups[c]
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Category) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	parsed, err := ParseCategory(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory returns the category with the given wire name.
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", name)
}

// Priority decides which of two overlapping spans survives resolution.
// It is assigned per group: non-finite > clause > phrase.
func (g Group) Priority() int {
	return int(g)
}

func (g Group) Brackets() Brackets {
	return groupBrackets[g]
}

func (g Group) String() string {
	switch g {
	case Clause:
		return "clause"
	case Phrase:
		return "phrase"
	case NonFinite:
		return "non_finite"
	}
	return "unknown"
}

// IsBracket reports whether r is one of the reserved structural markers.
func IsBracket(r rune) bool {
	for _, b := range groupBrackets {
		if r == b.Open || r == b.Close {
			return true
		}
	}
	return false
}

// HasBrackets reports whether s already contains structural markers.
func HasBrackets(s string) bool {
	for _, r := range s {
		if IsBracket(r) {
			return true
		}
	}
	return false
}
