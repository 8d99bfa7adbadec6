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

package parser

import (
	"encoding/json"
	"errors"
	"fmt"

	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/structure/dependency"
)

var ErrNotConfigured = errors.New("dependency parser not configured")

type Config struct {
	Url       string
	TimeoutMs int `mapstructure:"timeout_ms"`
}

// Fetcher returns the raw dependency analysis of a text.
type Fetcher interface {
	Fetch(text string) (*cache.Lookup, error)
	Ready() bool
}

// Decode turns a raw analysis into a document.
func Decode(lookup *cache.Lookup) (*dependency.Doc, error) {
	if lookup == nil || len(lookup.Tokens) == 0 {
		return nil, fmt.Errorf("%w: no tokens", dependency.ErrMalformedParse)
	}
	var tokens []dependency.Token
	if err := json.Unmarshal(lookup.Tokens, &tokens); err != nil {
		return nil, fmt.Errorf("%w: %s", dependency.ErrMalformedParse, err)
	}
	return dependency.NewDoc(tokens)
}
