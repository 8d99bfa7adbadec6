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

package lexicon

import (
	"fmt"
	"io/ioutil"
	"sort"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/text"
	"gopkg.in/yaml.v2"
)

// WordSet is a case-insensitive set of words or multi-word expressions.
type WordSet map[string]bool

func NewWordSet(words ...string) WordSet {
	set := make(WordSet, len(words))
	for _, w := range words {
		set[text.Normalize(w)] = true
	}
	return set
}

// Contains returns true if word (in any case or compatibility form) is in the set.
func (s WordSet) Contains(word string) bool {
	return s[text.Normalize(word)]
}

// Sorted returns the words longest first, so that alternations built from them prefer
// "so that" over "so".
func (s WordSet) Sorted() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	return words
}

// Lexicon holds the closed word classes the pattern rules are built from.
type Lexicon struct {
	Prepositions     WordSet
	RelativePronouns WordSet
	Subordinators    WordSet
	// Words that cannot start an infinitive after "to" (determiners, pronouns).
	NonVerbs WordSet
	// Finite verbs that can start a main clause after a relative clause.
	FiniteVerbs WordSet
	// Words after which a finite verb still belongs to the relative clause.
	ClauseContinuers WordSet
}

// Default returns the built-in English word lists.
func Default() *Lexicon {
	finite := []string{
		"is", "are", "was", "were", "am",
		"has", "have", "had",
		"does", "do", "did",
		"will", "would", "can", "could", "shall", "should", "may", "might", "must",
	}
	continuers := append([]string{
		"i", "you", "he", "she", "it", "we", "they", "there",
		"who", "which", "that",
		"not", "never", "also", "always", "just", "still", "already", "really", "often",
	}, finite...)

	return &Lexicon{
		Prepositions: NewWordSet(
			"of", "in", "on", "at", "for", "to", "with", "from", "about", "over", "under",
			"into", "onto", "through", "without", "within", "between", "among",
		),
		RelativePronouns: NewWordSet("which", "who", "whom", "whose", "that"),
		Subordinators: NewWordSet(
			"because", "when", "while", "although", "though", "since", "as", "if", "unless",
			"until", "once", "whereas", "where", "so that", "in order that",
		),
		NonVerbs: NewWordSet(
			"the", "a", "an", "my", "your", "his", "her", "its", "our", "their",
			"this", "that", "these", "those", "me", "him", "us", "them", "it",
			"some", "any", "every", "each", "no", "all",
		),
		FiniteVerbs:      NewWordSet(finite...),
		ClauseContinuers: NewWordSet(continuers...),
	}
}

type yamlLexicon struct {
	Prepositions     []string `yaml:"prepositions"`
	RelativePronouns []string `yaml:"relative_pronouns"`
	Subordinators    []string `yaml:"subordinators"`
	NonVerbs         []string `yaml:"non_verbs"`
	FiniteVerbs      []string `yaml:"finite_verbs"`
	ClauseContinuers []string `yaml:"clause_continuers"`
}

// Load returns the default lexicon with every word list present in the YAML file at
// path replacing its default.
func Load(path string) (*Lexicon, error) {

	bytes, err := ioutil.ReadFile(path)
	if err != nil {
		log.Error().Msg(fmt.Sprintf("could not find lexicon at %v", path))
		return nil, err
	}

	yamlLex := yamlLexicon{}
	if err := yaml.Unmarshal(bytes, &yamlLex); err != nil {
		log.Error().Msg(fmt.Sprintf("could not load lexicon from %v", path))
		return nil, err
	}

	res := Default()
	for _, override := range []struct {
		words  []string
		target *WordSet
	}{
		{yamlLex.Prepositions, &res.Prepositions},
		{yamlLex.RelativePronouns, &res.RelativePronouns},
		{yamlLex.Subordinators, &res.Subordinators},
		{yamlLex.NonVerbs, &res.NonVerbs},
		{yamlLex.FiniteVerbs, &res.FiniteVerbs},
		{yamlLex.ClauseContinuers, &res.ClauseContinuers},
	} {
		if len(override.words) > 0 {
			*override.target = NewWordSet(override.words...)
		}
	}

	log.Info().Msg(fmt.Sprintf("lexicon set from %v", path))

	return res, nil
}
