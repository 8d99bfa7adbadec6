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
	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/cache"
)

type cached struct {
	Fetcher
	cache cache.Client
}

// NewCached puts a cache in front of a fetcher. Cache failures are logged and
// otherwise ignored.
func NewCached(f Fetcher, c cache.Client) Fetcher {
	return &cached{Fetcher: f, cache: c}
}

func (c *cached) Fetch(text string) (*cache.Lookup, error) {
	key := cache.Key(text)

	lookup, err := c.cache.Get(key)
	if err != nil {
		log.Warn().Err(err).Msg("parse cache lookup failed")
	} else if lookup != nil {
		return lookup, nil
	}

	lookup, err = c.Fetcher.Fetch(text)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(key, lookup); err != nil {
		log.Warn().Err(err).Msg("parse cache update failed")
	}
	return lookup, nil
}
