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
	"sync"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/structure/dependency"
)

// Handle initialises a parser on first use and is read-only afterwards. It
// implements dependency.Parser.
type Handle struct {
	once    sync.Once
	init    func() (Fetcher, error)
	fetcher Fetcher
	ready   bool
	err     error
}

func NewHandle(init func() (Fetcher, error)) *Handle {
	return &Handle{init: init}
}

// New returns a handle for the parser service in conf, cached by c when c is
// not nil.
func New(conf Config, client HttpClient, c cache.Client) *Handle {
	return NewHandle(func() (Fetcher, error) {
		if conf.Url == "" {
			return nil, ErrNotConfigured
		}
		var f Fetcher = NewSpacy(conf, client)
		if c != nil {
			f = NewCached(f, c)
		}
		return f, nil
	})
}

func (h *Handle) load() {
	h.once.Do(func() {
		h.fetcher, h.err = h.init()
		if h.err != nil {
			log.Warn().Err(h.err).Msg("dependency parser unavailable")
			return
		}
		h.ready = h.fetcher.Ready()
		log.Info().Bool("ready", h.ready).Msg("dependency parser initialised")
	})
}

// Ready reports the result of the one-off readiness probe.
func (h *Handle) Ready() bool {
	h.load()
	return h.err == nil && h.ready
}

func (h *Handle) Parse(text string) (*dependency.Doc, error) {
	h.load()
	if h.err != nil {
		return nil, h.err
	}
	lookup, err := h.fetcher.Fetch(text)
	if err != nil {
		return nil, err
	}
	return Decode(lookup)
}
