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

package testhelpers

import (
	"time"

	"github.com/stretchr/testify/mock"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/structure"
)

// MockExtractor is a testify mock of an extractor with a readiness probe.
type MockExtractor struct {
	mock.Mock
}

func NewMockExtractor(name string, ready bool) *MockExtractor {
	m := &MockExtractor{}
	m.On("Name").Return(name)
	m.On("Ready").Return(ready)
	return m
}

func (m *MockExtractor) Name() string {
	return m.Called().String(0)
}

func (m *MockExtractor) Ready() bool {
	return m.Called().Bool(0)
}

func (m *MockExtractor) Extract(text string) ([]structure.Span, error) {
	args := m.Called(text)
	spans, _ := args.Get(0).([]structure.Span)
	return spans, args.Error(1)
}

// Spans builds spans from (start, end, category) triples.
func Spans(triples ...interface{}) []structure.Span {
	spans := make([]structure.Span, 0, len(triples)/3)
	for i := 0; i+2 < len(triples); i += 3 {
		spans = append(spans, structure.Span{
			Start:    triples[i].(int),
			End:      triples[i+1].(int),
			Category: triples[i+2].(structure.Category),
		})
	}
	return spans
}

// Observation is one call recorded by a RecordingObserver.
type Observation struct {
	Extractor string
	Spans     []structure.Span
	Err       error
	Fallback  bool
}

type RecordingObserver struct {
	Observations []Observation
}

func (r *RecordingObserver) Analyzed(extractor string, spans []structure.Span, _ time.Duration) {
	r.Observations = append(r.Observations, Observation{Extractor: extractor, Spans: spans})
}

func (r *RecordingObserver) Fallback(extractor string, err error) {
	r.Observations = append(r.Observations, Observation{Extractor: extractor, Err: err, Fallback: true})
}
