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
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/structure"
)

// Result is the analysis of a single text.
type Result struct {
	Text         string            `json:"text"`
	AnalyzedText string            `json:"analyzed_text"`
	Spans        []structure.Span  `json:"spans"`
	Legend       map[string]string `json:"legend"`
}

// Candidate is an extractor that may not be usable, such as one backed by an
// external parser.
type Candidate interface {
	structure.SpanExtractor
	Ready() bool
}

// Observer is told about every analysis and every fallback.
type Observer interface {
	Analyzed(extractor string, spans []structure.Span, elapsed time.Duration)
	Fallback(extractor string, err error)
}

type Option func(*Analyzer)

// WithPreferred makes the analyzer use c instead of the fallback extractor when c
// reports ready on first use.
func WithPreferred(c Candidate) Option {
	return func(a *Analyzer) {
		a.preferred = c
	}
}

func WithObserver(o Observer) Option {
	return func(a *Analyzer) {
		a.observer = o
	}
}

// Analyzer finds spans in text, resolves them and renders them as brackets. It is
// safe for concurrent use.
type Analyzer struct {
	fallback  structure.SpanExtractor
	preferred Candidate
	observer  Observer

	once           sync.Once
	primary        structure.SpanExtractor
	usingPreferred bool
}

// New returns an analyzer that falls back to the given extractor whenever the
// preferred one is unavailable or fails.
func New(fallback structure.SpanExtractor, opts ...Option) *Analyzer {
	a := &Analyzer{fallback: fallback, observer: nopObserver{}}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Extractor returns the name of the extractor chosen for this analyzer.
func (a *Analyzer) Extractor() string {
	return a.selected().Name()
}

func (a *Analyzer) selected() structure.SpanExtractor {
	a.once.Do(func() {
		a.primary = a.fallback
		if a.preferred == nil {
			return
		}
		if probe(a.preferred) {
			a.primary = a.preferred
			a.usingPreferred = true
			log.Info().Str("extractor", a.preferred.Name()).Msg("using preferred extractor")
			return
		}
		log.Warn().Str("extractor", a.preferred.Name()).Str("fallback", a.fallback.Name()).Msg("preferred extractor not ready")
	})
	return a.primary
}

func probe(c Candidate) (ready bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("readiness probe panicked")
			ready = false
		}
	}()
	return c.Ready()
}

// Analyze brackets the structure of text. It never fails: if the chosen extractor
// errors or panics the fallback is used for this call, and if that fails too the
// text is returned without spans.
func (a *Analyzer) Analyze(text string) Result {
	if strings.TrimSpace(text) == "" {
		return newResult(text, text, nil)
	}

	start := time.Now()
	extractor := a.selected()
	spans, err := extract(extractor, text)
	if err != nil && a.usingPreferred {
		log.Debug().Err(err).Str("extractor", extractor.Name()).Msg("extraction failed, falling back")
		a.observer.Fallback(extractor.Name(), err)
		extractor = a.fallback
		spans, err = extract(extractor, text)
	}
	if err != nil {
		log.Error().Err(err).Str("extractor", extractor.Name()).Msg("extraction failed")
		spans = nil
	}

	resolved := structure.Resolve(spans, utf8.RuneCountInString(text))
	result := newResult(text, structure.Insert(text, resolved), resolved)
	a.observer.Analyzed(extractor.Name(), resolved, time.Since(start))
	return result
}

func extract(e structure.SpanExtractor, text string) (spans []structure.Span, err error) {
	defer func() {
		if r := recover(); r != nil {
			spans, err = nil, fmt.Errorf("extractor panicked: %v", r)
		}
	}()
	return e.Extract(text)
}

func newResult(text, analyzed string, spans []structure.Span) Result {
	if spans == nil {
		spans = []structure.Span{}
	}
	legend := make(map[string]string, len(structure.Legend))
	for k, v := range structure.Legend {
		legend[k] = v
	}
	return Result{
		Text:         text,
		AnalyzedText: analyzed,
		Spans:        spans,
		Legend:       legend,
	}
}

type nopObserver struct{}

func (nopObserver) Analyzed(string, []structure.Span, time.Duration) {}
func (nopObserver) Fallback(string, error)                          {}
