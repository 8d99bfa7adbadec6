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

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/structure"
)

const namespace = "sentence_structure"

// Metrics records analyses in its own registry. It satisfies analyzer.Observer.
type Metrics struct {
	registry  *prometheus.Registry
	analyses  *prometheus.CounterVec
	fallbacks *prometheus.CounterVec
	spans     *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Texts analysed, by the extractor that produced the spans.",
		}, []string{"extractor"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallbacks_total",
			Help:      "Analyses where the chosen extractor failed and the fallback was used.",
		}, []string{"extractor"}),
		spans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spans_total",
			Help:      "Spans kept after resolution, by category.",
		}, []string{"type"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time taken to analyse a text.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		}, []string{"extractor"}),
	}
	m.registry.MustRegister(
		m.analyses,
		m.fallbacks,
		m.spans,
		m.duration,
		prometheus.NewGoCollector(),
	)
	return m
}

func (m *Metrics) Analyzed(extractor string, spans []structure.Span, elapsed time.Duration) {
	m.analyses.WithLabelValues(extractor).Inc()
	m.duration.WithLabelValues(extractor).Observe(elapsed.Seconds())
	for _, s := range spans {
		m.spans.WithLabelValues(s.Category.String()).Inc()
	}
}

func (m *Metrics) Fallback(extractor string, _ error) {
	m.fallbacks.WithLabelValues(extractor).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
