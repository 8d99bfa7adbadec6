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

package analyzer

import (
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/cache/remote"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/lexicon"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/parser"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/structure/dependency"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/structure/pattern"
)

// Config is the part of an app's config that describes the analyzer.
type Config struct {
	Parser        parser.Config
	ParseCache    parser.CacheConfig `mapstructure:"parse_cache"`
	Redis         remote.RedisConfig
	Elasticsearch remote.ElasticsearchConfig
	LexiconFile   string `mapstructure:"lexicon_file"`
}

// NewFromConfig builds an analyzer that prefers the dependency parser in conf and
// falls back to pattern extraction with the configured lexicon.
func NewFromConfig(conf Config, opts ...Option) (*Analyzer, error) {
	lex := lexicon.Default()
	if conf.LexiconFile != "" {
		var err error
		if lex, err = lexicon.Load(conf.LexiconFile); err != nil {
			return nil, err
		}
	}

	parseCache, err := parser.NewCache(conf.ParseCache, conf.Redis, conf.Elasticsearch)
	if err != nil {
		return nil, err
	}
	handle := parser.New(conf.Parser, nil, parseCache)

	opts = append([]Option{WithPreferred(dependency.New(handle))}, opts...)
	return New(pattern.New(lex), opts...), nil
}
