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

package main

import (
	"io"

	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/analyzer"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/reader/html"
)

type controller struct {
	analyzer *analyzer.Analyzer
}

func (c controller) Analyze(text string) analyzer.Result {
	return c.analyzer.Analyze(text)
}

func (c controller) AnalyzeParagraph(text string) analyzer.Paragraph {
	return c.analyzer.AnalyzeParagraph(text)
}

func (c controller) AnalyzeHTML(r io.Reader) (analyzer.Paragraph, error) {
	return c.analyzer.AnalyzeDocument(r, html.Reader{})
}

func (c controller) Extractor() string {
	return c.analyzer.Extractor()
}
